package tracker

import (
	"strconv"
	"strings"

	"github.com/mouse-blink/formtrack/pkg/dom"
)

// Kind is the closed set of control kinds the tracker distinguishes. The kind
// decides both which event is observed and how the canonical value is read.
type Kind int

// Available Kind values.
const (
	KindUnobserved Kind = iota
	KindText
	KindCheckbox
	KindRadio
	KindSelectOne
	KindSelectMultiple
	KindFile
)

var kindNames = map[Kind]string{
	KindUnobserved:     "unobserved",
	KindText:           "text",
	KindCheckbox:       "checkbox",
	KindRadio:          "radio",
	KindSelectOne:      "select-one",
	KindSelectMultiple: "select-multiple",
	KindFile:           "file",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Event returns the event type observed for controls of this kind.
func (k Kind) Event() dom.EventType {
	switch k {
	case KindText:
		return dom.EventInput
	case KindCheckbox, KindRadio:
		return dom.EventClick
	case KindSelectOne, KindSelectMultiple, KindFile:
		return dom.EventChange
	default:
		return dom.EventNone
	}
}

// Classify maps a control type to its kind. The second result is false for
// types the tracker does not know at all; deliberately ignored types such as
// "submit" or "hidden" are known but unobserved.
func Classify(controlType string) (Kind, bool) {
	switch strings.ToLower(controlType) {
	case "color", "date", "datetime-local", "email", "month", "number", "password",
		"range", "search", "tel", "text", "textarea", "time", "url", "week":
		return KindText, true
	case "checkbox":
		return KindCheckbox, true
	case "radio":
		return KindRadio, true
	case "select", "select-one":
		return KindSelectOne, true
	case "select-multiple":
		return KindSelectMultiple, true
	case "file":
		return KindFile, true
	case "submit", "hidden", "reset", "button", "image":
		return KindUnobserved, true
	default:
		return KindUnobserved, false
	}
}

// Observe returns the kind and event for a control type, and whether such a
// control is observed at all.
func Observe(controlType string) (Kind, dom.EventType, bool) {
	kind, _ := Classify(controlType)

	return kind, kind.Event(), kind != KindUnobserved
}
