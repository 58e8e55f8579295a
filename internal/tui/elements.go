package tui

import (
	"github.com/hyperjump/sitesearch/internal/render"
)

// target identifies what a mouse press landed on.
type target int

const (
	targetOutside target = iota
	targetInput
	targetDropdown
)

type inputElement struct {
	m *Model
}

func (e inputElement) Value() string { return e.m.input.Value() }

func (e inputElement) Blur() { e.m.input.Blur() }

func (e inputElement) Is(t any) bool {
	v, ok := t.(target)
	return ok && v == targetInput
}

// dropdown is the results container drawn below the input.
type dropdown struct {
	hidden  bool
	content render.Fragment
}

func (d *dropdown) SetHidden(hidden bool) { d.hidden = hidden }

func (d *dropdown) Hidden() bool { return d.hidden }

func (d *dropdown) SetContent(f render.Fragment) { d.content = f }

func (d *dropdown) Contains(t any) bool {
	v, ok := t.(target)
	return ok && v == targetDropdown
}
