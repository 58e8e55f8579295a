package widget

import (
	"context"

	"github.com/hyperjump/sitesearch/internal/render"
)

// Headless is an in-memory Document. Events are delivered on the goroutine that calls
// Type, Click or Press; dispatched functions wait in a queue until Next or Drain runs them.
type Headless struct {
	attrs   map[string]string
	input   *HeadlessInput
	results *HeadlessContainer

	onInput []func(string)
	onClick []func(any)
	onKey   []func(string)

	queue chan func()
}

// HeadlessOption configures a Headless document.
type HeadlessOption func(*Headless)

// WithBaseURL sets the body's data-baseurl attribute.
func WithBaseURL(baseURL string) HeadlessOption {
	return func(h *Headless) { h.attrs[BaseURLAttribute] = baseURL }
}

// WithoutInput removes the search input from the document.
func WithoutInput() HeadlessOption {
	return func(h *Headless) { h.input = nil }
}

// WithoutResults removes the results container from the document.
func WithoutResults() HeadlessOption {
	return func(h *Headless) { h.results = nil }
}

// NewHeadless returns a document holding both widget elements. The results container
// starts hidden.
func NewHeadless(opts ...HeadlessOption) *Headless {
	h := &Headless{
		attrs:   make(map[string]string),
		input:   &HeadlessInput{},
		results: &HeadlessContainer{hidden: true},
		queue:   make(chan func(), 16),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// BodyAttribute implements Document.
func (h *Headless) BodyAttribute(name string) (string, bool) {
	v, ok := h.attrs[name]
	return v, ok
}

// Input implements Document. Any id resolves to the single input.
func (h *Headless) Input(string) (Input, bool) {
	if h.input == nil {
		return nil, false
	}
	return h.input, true
}

// Container implements Document. Any id resolves to the single container.
func (h *Headless) Container(string) (Container, bool) {
	if h.results == nil {
		return nil, false
	}
	return h.results, true
}

// OnInput implements Document.
func (h *Headless) OnInput(fn func(value string)) { h.onInput = append(h.onInput, fn) }

// OnClick implements Document.
func (h *Headless) OnClick(fn func(target any)) { h.onClick = append(h.onClick, fn) }

// OnKey implements Document.
func (h *Headless) OnKey(fn func(key string)) { h.onKey = append(h.onKey, fn) }

// Dispatch implements Document.
func (h *Headless) Dispatch(fn func()) {
	h.queue <- fn
}

// Next blocks until one dispatched function is available and runs it.
func (h *Headless) Next(ctx context.Context) error {
	select {
	case fn := <-h.queue:
		fn()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Drain runs every queued function without blocking and returns how many ran.
func (h *Headless) Drain() int {
	n := 0
	for {
		select {
		case fn := <-h.queue:
			fn()
			n++
		default:
			return n
		}
	}
}

// Type focuses the input, sets its value and fires the input event.
func (h *Headless) Type(value string) {
	if h.input != nil {
		h.input.value = value
		h.input.focused = true
	}
	for _, fn := range h.onInput {
		fn(value)
	}
}

// Click fires the global click event with target.
func (h *Headless) Click(target any) {
	for _, fn := range h.onClick {
		fn(target)
	}
}

// Press fires the global key event.
func (h *Headless) Press(key string) {
	for _, fn := range h.onKey {
		fn(key)
	}
}

// InputElement returns the input, usable as a click target. Nil when absent.
func (h *Headless) InputElement() *HeadlessInput { return h.input }

// ResultsElement returns the results container, usable as a click target. Nil when absent.
func (h *Headless) ResultsElement() *HeadlessContainer { return h.results }

// HeadlessInput is the in-memory search input.
type HeadlessInput struct {
	value   string
	focused bool
}

// Value implements Input.
func (i *HeadlessInput) Value() string { return i.value }

// Blur implements Input.
func (i *HeadlessInput) Blur() { i.focused = false }

// Focused reports whether the input has focus.
func (i *HeadlessInput) Focused() bool { return i.focused }

// Is implements Input.
func (i *HeadlessInput) Is(target any) bool {
	t, ok := target.(*HeadlessInput)
	return ok && t == i
}

// HeadlessContainer is the in-memory results container.
type HeadlessContainer struct {
	hidden  bool
	content render.Fragment
}

// HeadlessItem is a click target inside a container, e.g. one result link.
type HeadlessItem struct {
	parent *HeadlessContainer
	index  int
}

// Item returns a click target for the i-th child of the container.
func (c *HeadlessContainer) Item(i int) HeadlessItem {
	return HeadlessItem{parent: c, index: i}
}

// SetHidden implements Container.
func (c *HeadlessContainer) SetHidden(hidden bool) { c.hidden = hidden }

// Hidden implements Container.
func (c *HeadlessContainer) Hidden() bool { return c.hidden }

// SetContent implements Container.
func (c *HeadlessContainer) SetContent(f render.Fragment) { c.content = f }

// Content returns the last fragment set on the container.
func (c *HeadlessContainer) Content() render.Fragment { return c.content }

// InnerHTML returns the markup of the current content.
func (c *HeadlessContainer) InnerHTML() string { return c.content.HTML }

// Contains implements Container.
func (c *HeadlessContainer) Contains(target any) bool {
	switch t := target.(type) {
	case *HeadlessContainer:
		return t == c
	case HeadlessItem:
		return t.parent == c
	default:
		return false
	}
}
