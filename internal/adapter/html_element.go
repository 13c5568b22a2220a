package adapter

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// htmlElement implements dom.Element for a node of an HTMLDocument.
type htmlElement struct {
	doc  *HTMLDocument
	node *html.Node
}

func (e *htmlElement) Tag() string {
	return e.node.Data
}

func (e *htmlElement) Type() string {
	a := attrs(e.node)

	switch e.node.DataAtom {
	case atom.Input:
		if typ := strings.ToLower(a.get("type")); typ != "" {
			return typ
		}

		return "text"
	case atom.Textarea:
		return "textarea"
	case atom.Select:
		if a.has("multiple") {
			return "select-multiple"
		}

		return "select-one"
	case atom.Button:
		if typ := strings.ToLower(a.get("type")); typ != "" {
			return typ
		}

		return "submit"
	default:
		return ""
	}
}

func (e *htmlElement) Name() string {
	return attrs(e.node).get("name")
}

func (e *htmlElement) ID() string {
	return attrs(e.node).get("id")
}

func (e *htmlElement) Value() string {
	a := attrs(e.node)

	switch e.node.DataAtom {
	case atom.Textarea:
		return textContent(e.node)
	case atom.Select:
		if selected := e.SelectedIndexes(); len(selected) > 0 {
			return optionValue(options(e.node)[selected[0]])
		}

		return ""
	default:
		value, ok := a.lookup("value")
		if !ok && (e.Type() == "checkbox" || e.Type() == "radio") {
			return "on"
		}

		return value
	}
}

func (e *htmlElement) SetValue(value string) {
	switch e.node.DataAtom {
	case atom.Textarea:
		setTextContent(e.node, value)
	case atom.Select:
		multiple := attrs(e.node).has("multiple")
		found := false

		for _, option := range options(e.node) {
			match := optionValue(option) == value && (multiple || !found)
			found = found || match
			setFlag(option, "selected", match)
		}
	default:
		attrs(e.node).set("value", value)
	}
}

func (e *htmlElement) Checked() bool {
	return attrs(e.node).has("checked")
}

func (e *htmlElement) SetChecked(checked bool) {
	if checked && e.Type() == "radio" {
		for _, radio := range e.doc.radioGroup(e.node) {
			setFlag(radio, "checked", false)
		}
	}

	setFlag(e.node, "checked", checked)
}

func (e *htmlElement) Indeterminate() bool {
	return e.doc.indeterminate[e.node]
}

func (e *htmlElement) SelectedIndexes() []int {
	if e.node.DataAtom != atom.Select {
		return nil
	}

	opts := options(e.node)
	multiple := attrs(e.node).has("multiple")

	var indexes []int

	for i, option := range opts {
		if !attrs(option).has("selected") {
			continue
		}

		if multiple {
			indexes = append(indexes, i)
		} else {
			indexes = []int{i}
		}
	}

	// A single select always shows one option.
	if !multiple && len(indexes) == 0 && len(opts) > 0 {
		indexes = []int{0}
	}

	return indexes
}

func (e *htmlElement) Attribute(name string) (string, bool) {
	return attrs(e.node).lookup(name)
}

func (e *htmlElement) SetAttribute(name, value string) {
	attrs(e.node).set(name, value)
}

func (e *htmlElement) RemoveAttribute(name string) {
	attrs(e.node).remove(name)
}

func (e *htmlElement) AddClass(name string) {
	attrs(e.node).addClass(name)
}

func (e *htmlElement) RemoveClass(name string) {
	attrs(e.node).removeClass(name)
}

func (e *htmlElement) HasClass(name string) bool {
	return attrs(e.node).hasClass(name)
}

func optionValue(option *html.Node) string {
	if value, ok := attrs(option).lookup("value"); ok {
		return value
	}

	return strings.Join(strings.Fields(textContent(option)), " ")
}
