package tracker

import (
	"strconv"
	"strings"

	"github.com/mouse-blink/formtrack/pkg/dom"
)

// Value is the canonical scalar form of a control's state. Two values compare
// equal iff the control is in the same state.
type Value string

// Checkbox and radio states.
const (
	Unchecked     Value = "0"
	Checked       Value = "1"
	Indeterminate Value = "2"
)

// ControlValue reads the canonical value of a single element of the given
// kind.
func ControlValue(el dom.Element, kind Kind) Value {
	switch kind {
	case KindRadio:
		if el.Checked() {
			return Checked
		}

		return Unchecked
	case KindCheckbox:
		if el.Indeterminate() {
			return Indeterminate
		}

		if el.Checked() {
			return Checked
		}

		return Unchecked
	case KindSelectOne, KindSelectMultiple:
		return joinIndexes(el.SelectedIndexes())
	default:
		return Value(el.Value())
	}
}

// GroupValue is the value of a radio group: the values of its members in
// document order.
func GroupValue(radios []dom.Element) Value {
	var b strings.Builder

	for _, radio := range radios {
		b.WriteString(string(ControlValue(radio, KindRadio)))
	}

	return Value(b.String())
}

func joinIndexes(indexes []int) Value {
	parts := make([]string, 0, len(indexes))
	for _, idx := range indexes {
		parts = append(parts, strconv.Itoa(idx))
	}

	return Value(strings.Join(parts, "-"))
}
