package adapter

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/mouse-blink/formtrack/pkg/dom"
)

// ErrForeignElement is returned when an element handle from another document
// is passed to a document.
var ErrForeignElement = errors.New("element does not belong to this document")

// controlDefaults is the state a control returns to on form reset.
type controlDefaults struct {
	value    string
	hasValue bool
	checked  bool
	selected []bool
}

type listener struct {
	typ       dom.EventType
	fn        dom.Listener
	cancelled bool
}

// HTMLDocument is an in-memory dom.Document backed by an x/net/html node
// tree. Live control state is kept in the attributes of the tree, so
// rendering the document shows the current values and classes.
//
// HTMLDocument is not safe for concurrent use.
type HTMLDocument struct {
	// ConfirmFunc answers confirmation questions. A nil ConfirmFunc
	// denies every request.
	ConfirmFunc func(message string) bool

	root          *html.Node
	elements      map[*html.Node]*htmlElement
	listeners     map[*html.Node][]*listener
	defaults      map[*html.Node]controlDefaults
	indeterminate map[*html.Node]bool

	depth    int
	draining bool
	deferred []func()
}

// ParseHTML parses an HTML document and records the default state of each
// form control. The input is assumed to be UTF-8 encoded.
func ParseHTML(r io.Reader) (*HTMLDocument, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	d := &HTMLDocument{
		root:          root,
		elements:      make(map[*html.Node]*htmlElement),
		listeners:     make(map[*html.Node][]*listener),
		defaults:      make(map[*html.Node]controlDefaults),
		indeterminate: make(map[*html.Node]bool),
	}

	walk(root, func(n *html.Node) {
		if isControl(n) {
			d.defaults[n] = d.captureDefaults(n)
		}
	})

	return d, nil
}

// Render writes the document with its current state.
func (d *HTMLDocument) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the document into a string.
func (d *HTMLDocument) String() string {
	var b strings.Builder

	_ = d.Render(&b)

	return b.String()
}

// QuerySelectorAll implements dom.Document.
func (d *HTMLDocument) QuerySelectorAll(root dom.Element, selector string) ([]dom.Element, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, err
	}

	start := d.root

	if root != nil {
		n, ok := d.node(root)
		if !ok {
			return nil, ErrForeignElement
		}

		start = n
	}

	nodes := sel.MatchAll(start)
	elements := make([]dom.Element, 0, len(nodes))

	for _, n := range nodes {
		elements = append(elements, d.wrap(n))
	}

	return elements, nil
}

// First returns the first element matching selector, or nil.
func (d *HTMLDocument) First(selector string) (dom.Element, error) {
	matches, err := d.QuerySelectorAll(nil, selector)
	if err != nil || len(matches) == 0 {
		return nil, err
	}

	return matches[0], nil
}

// Closest implements dom.Document.
func (d *HTMLDocument) Closest(el dom.Element, selector string) dom.Element {
	n, ok := d.node(el)
	if !ok {
		return nil
	}

	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}

	for ; n != nil; n = n.Parent {
		if n.Type == html.ElementNode && sel.Match(n) {
			return d.wrap(n)
		}
	}

	return nil
}

// Listen implements dom.Document.
func (d *HTMLDocument) Listen(el dom.Element, typ dom.EventType, fn dom.Listener) func() {
	n, ok := d.node(el)
	if !ok || fn == nil {
		return func() {}
	}

	l := &listener{typ: typ, fn: fn}
	d.listeners[n] = append(d.listeners[n], l)

	return func() {
		if l.cancelled {
			return
		}

		l.cancelled = true

		kept := d.listeners[n][:0]

		for _, other := range d.listeners[n] {
			if other != l {
				kept = append(kept, other)
			}
		}

		d.listeners[n] = kept
	}
}

// Listeners returns the number of active listeners on el.
func (d *HTMLDocument) Listeners(el dom.Element) int {
	n, ok := d.node(el)
	if !ok {
		return 0
	}

	return len(d.listeners[n])
}

// ResetForm implements dom.Document. Every control below form returns to its
// default state, then a reset event is delivered to form.
func (d *HTMLDocument) ResetForm(form dom.Element) {
	n, ok := d.node(form)
	if !ok {
		return
	}

	d.depth++

	walk(n, func(c *html.Node) {
		if def, ok := d.defaults[c]; ok {
			d.restore(c, def)
		}
	})

	d.fire(n, dom.EventReset)

	d.depth--
	d.settle()
}

// Defer implements dom.Document.
func (d *HTMLDocument) Defer(fn func()) {
	if d.depth == 0 && !d.draining {
		fn()
		return
	}

	d.deferred = append(d.deferred, fn)
}

// Confirm implements dom.Confirmer.
func (d *HTMLDocument) Confirm(message string) bool {
	if d.ConfirmFunc == nil {
		return false
	}

	return d.ConfirmFunc(message)
}

// Dispatch delivers an event of typ to el without performing any default
// action. It returns nil if el does not belong to the document.
func (d *HTMLDocument) Dispatch(el dom.Element, typ dom.EventType) *dom.Event {
	n, ok := d.node(el)
	if !ok {
		return nil
	}

	d.depth++
	ev := d.fire(n, typ)
	d.depth--
	d.settle()

	return ev
}

// Input sets the value of a text-like control and delivers an input event,
// as typing does.
func (d *HTMLDocument) Input(el dom.Element, value string) *dom.Event {
	if isDisabled(el) {
		return nil
	}

	el.SetValue(value)

	return d.Dispatch(el, dom.EventInput)
}

// Click performs a user click on el: checkboxes toggle, radios get checked
// and reset controls reset their form. A prevented click on a checkbox or
// radio is undone. Disabled elements ignore clicks and nil is returned.
func (d *HTMLDocument) Click(el dom.Element) *dom.Event {
	if isDisabled(el) {
		return nil
	}

	n, ok := d.node(el)
	if !ok {
		return nil
	}

	switch el.Type() {
	case "checkbox":
		wasChecked, wasIndeterminate := el.Checked(), d.indeterminate[n]

		delete(d.indeterminate, n)
		el.SetChecked(!wasChecked)

		ev := d.Dispatch(el, dom.EventClick)
		if ev.DefaultPrevented() {
			el.SetChecked(wasChecked)
			d.indeterminate[n] = wasIndeterminate
		}

		return ev
	case "radio":
		previous := d.checkedRadio(n)
		el.SetChecked(true)

		ev := d.Dispatch(el, dom.EventClick)
		if ev.DefaultPrevented() {
			el.SetChecked(false)

			if previous != nil {
				previous.SetChecked(true)
			}
		}

		return ev
	case "reset":
		ev := d.Dispatch(el, dom.EventClick)
		if !ev.DefaultPrevented() {
			if form := d.Closest(el, "form"); form != nil {
				d.ResetForm(form)
			}
		}

		return ev
	default:
		return d.Dispatch(el, dom.EventClick)
	}
}

// Choose selects the options at indexes of a select element and delivers a
// change event. A single select keeps the last index only.
func (d *HTMLDocument) Choose(el dom.Element, indexes ...int) *dom.Event {
	if isDisabled(el) {
		return nil
	}

	n, ok := d.node(el)
	if !ok || !isElement(n, atom.Select) {
		return nil
	}

	if !attrs(n).has("multiple") && len(indexes) > 1 {
		indexes = indexes[len(indexes)-1:]
	}

	want := make(map[int]bool, len(indexes))
	for _, idx := range indexes {
		want[idx] = true
	}

	for i, option := range options(n) {
		setFlag(option, "selected", want[i])
	}

	return d.Dispatch(el, dom.EventChange)
}

// SetFile sets the value of a file input and delivers a change event.
func (d *HTMLDocument) SetFile(el dom.Element, value string) *dom.Event {
	if isDisabled(el) {
		return nil
	}

	el.SetValue(value)

	return d.Dispatch(el, dom.EventChange)
}

// SetIndeterminate sets the indeterminate flag of a checkbox. Like the
// property in browsers it fires no event.
func (d *HTMLDocument) SetIndeterminate(el dom.Element, indeterminate bool) {
	n, ok := d.node(el)
	if !ok {
		return
	}

	if indeterminate {
		d.indeterminate[n] = true
		return
	}

	delete(d.indeterminate, n)
}

// Options returns the option labels of a select element.
func (d *HTMLDocument) Options(el dom.Element) []string {
	n, ok := d.node(el)
	if !ok {
		return nil
	}

	opts := options(n)
	labels := make([]string, 0, len(opts))

	for _, option := range opts {
		labels = append(labels, strings.Join(strings.Fields(textContent(option)), " "))
	}

	return labels
}

func (d *HTMLDocument) fire(n *html.Node, typ dom.EventType) *dom.Event {
	ev := dom.NewEvent(typ, d.wrap(n))
	snapshot := append([]*listener(nil), d.listeners[n]...)

	for _, l := range snapshot {
		if !l.cancelled && l.typ == typ {
			l.fn(ev)
		}
	}

	return ev
}

// settle runs deferred callbacks once the outermost dispatch has finished.
func (d *HTMLDocument) settle() {
	if d.depth > 0 || d.draining {
		return
	}

	d.draining = true

	for len(d.deferred) > 0 {
		fn := d.deferred[0]
		d.deferred = d.deferred[1:]
		fn()
	}

	d.draining = false
}

func (d *HTMLDocument) wrap(n *html.Node) *htmlElement {
	if el, ok := d.elements[n]; ok {
		return el
	}

	el := &htmlElement{doc: d, node: n}
	d.elements[n] = el

	return el
}

func (d *HTMLDocument) node(el dom.Element) (*html.Node, bool) {
	he, ok := el.(*htmlElement)
	if !ok || he == nil || he.doc != d {
		return nil, false
	}

	return he.node, true
}

func (d *HTMLDocument) captureDefaults(n *html.Node) controlDefaults {
	a := attrs(n)

	switch n.DataAtom {
	case atom.Textarea:
		return controlDefaults{value: textContent(n), hasValue: true}
	case atom.Select:
		opts := options(n)
		selected := make([]bool, len(opts))

		for i, option := range opts {
			selected[i] = attrs(option).has("selected")
		}

		return controlDefaults{selected: selected}
	default:
		value, hasValue := a.lookup("value")

		return controlDefaults{value: value, hasValue: hasValue, checked: a.has("checked")}
	}
}

func (d *HTMLDocument) restore(n *html.Node, def controlDefaults) {
	delete(d.indeterminate, n)

	switch n.DataAtom {
	case atom.Textarea:
		setTextContent(n, def.value)
	case atom.Select:
		for i, option := range options(n) {
			setFlag(option, "selected", i < len(def.selected) && def.selected[i])
		}
	default:
		a := attrs(n)
		setFlag(n, "checked", def.checked)

		if def.hasValue {
			a.set("value", def.value)
		} else {
			a.remove("value")
		}
	}
}

// checkedRadio returns the checked radio of the group n belongs to.
func (d *HTMLDocument) checkedRadio(n *html.Node) dom.Element {
	for _, radio := range d.radioGroup(n) {
		if attrs(radio).has("checked") {
			return d.wrap(radio)
		}
	}

	return nil
}

// radioGroup returns the radios sharing n's name within n's form, or within
// the document if n has no form.
func (d *HTMLDocument) radioGroup(n *html.Node) []*html.Node {
	name := attrs(n).get("name")
	if name == "" {
		return []*html.Node{n}
	}

	scope := d.root
	for p := n.Parent; p != nil; p = p.Parent {
		if isElement(p, atom.Form) {
			scope = p
			break
		}
	}

	var group []*html.Node

	walk(scope, func(c *html.Node) {
		if isElement(c, atom.Input) && strings.EqualFold(attrs(c).get("type"), "radio") && attrs(c).get("name") == name {
			group = append(group, c)
		}
	})

	return group
}

func isControl(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}

	switch n.DataAtom {
	case atom.Input, atom.Textarea, atom.Select:
		return true
	default:
		return false
	}
}

func isDisabled(el dom.Element) bool {
	if el == nil {
		return true
	}

	_, disabled := el.Attribute("disabled")

	return disabled
}

// options returns the option elements of a select, including those inside
// optgroups.
func options(sel *html.Node) []*html.Node {
	var opts []*html.Node

	walk(sel, func(c *html.Node) {
		if isElement(c, atom.Option) {
			opts = append(opts, c)
		}
	})

	return opts
}

func setFlag(n *html.Node, name string, on bool) {
	if on {
		attrs(n).set(name, name)
		return
	}

	attrs(n).remove(name)
}
