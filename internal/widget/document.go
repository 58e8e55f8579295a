package widget

import "github.com/hyperjump/sitesearch/internal/render"

// Input is the search text field.
type Input interface {
	Value() string
	Blur()
	// Is reports whether target is this input.
	Is(target any) bool
}

// Container is the results dropdown.
type Container interface {
	SetHidden(hidden bool)
	Hidden() bool
	SetContent(f render.Fragment)
	// Contains reports whether target is the container or one of its descendants.
	Contains(target any) bool
}

// Document is the surface the widget binds to: element lookup, the body configuration
// attribute, global event subscriptions and the host's event loop.
//
// Every subscribed handler and every function passed to Dispatch must run on the same
// goroutine, one at a time.
type Document interface {
	BodyAttribute(name string) (string, bool)
	Input(id string) (Input, bool)
	Container(id string) (Container, bool)

	OnInput(fn func(value string))
	OnClick(fn func(target any))
	OnKey(fn func(key string))

	// Dispatch schedules fn on the event loop. It may be called from any goroutine.
	Dispatch(fn func())
}
