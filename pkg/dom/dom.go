// Package dom defines the host capabilities a form tracker needs from its
// document: element lookup, attribute and class access, and event
// subscription. Hosts provide an implementation; the tracker never touches a
// concrete UI toolkit.
package dom

// EventType names an event delivered to an element.
type EventType string

// Event types observed by the tracker.
const (
	EventNone   EventType = ""
	EventInput  EventType = "input"
	EventClick  EventType = "click"
	EventChange EventType = "change"
	EventReset  EventType = "reset"
)

// Element is a handle to a single element of the document.
//
// Implementations must return the same handle for the same underlying element
// so that handles can be compared and used as map keys.
type Element interface {
	// Tag returns the lower-case tag name, e.g. "form" or "input".
	Tag() string
	// Type returns the control type as a browser reports it: "text",
	// "checkbox", "textarea", "select-one", "select-multiple", ...
	// Non-control elements return an empty string.
	Type() string
	Name() string
	ID() string

	Value() string
	SetValue(value string)
	Checked() bool
	SetChecked(checked bool)
	Indeterminate() bool
	// SelectedIndexes returns the indexes of the selected options of a
	// select element in ascending order.
	SelectedIndexes() []int

	Attribute(name string) (string, bool)
	SetAttribute(name, value string)
	RemoveAttribute(name string)

	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool
}

// Event is a single delivery of an event to a target element.
type Event struct {
	Type   EventType
	Target Element

	defaultPrevented bool
}

// NewEvent returns an event of the given type targeted at el.
func NewEvent(typ EventType, el Element) *Event {
	return &Event{Type: typ, Target: el}
}

// PreventDefault cancels the default action the host would perform after
// dispatch, such as a native form reset.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Listener receives dispatched events.
type Listener func(ev *Event)

// Document is the capability interface of the hosting document.
type Document interface {
	// QuerySelectorAll returns the elements below root (inclusive) matching
	// a CSS selector, in document order. A nil root searches the whole
	// document.
	QuerySelectorAll(root Element, selector string) ([]Element, error)
	// Closest returns the nearest ancestor of el (inclusive) matching the
	// selector, or nil.
	Closest(el Element, selector string) Element
	// Listen subscribes fn to events of typ on el. The returned function
	// cancels the subscription; calling it more than once is harmless.
	Listen(el Element, typ EventType, fn Listener) (cancel func())
	// ResetForm restores every control of form to its default state and
	// delivers a reset event to the form.
	ResetForm(form Element)
	// Defer runs fn once the event currently being dispatched has settled,
	// or immediately when no dispatch is in progress.
	Defer(fn func())
}

// Confirmer is implemented by documents able to ask the user a yes/no
// question synchronously.
type Confirmer interface {
	Confirm(message string) bool
}
