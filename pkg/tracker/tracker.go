package tracker

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/mouse-blink/formtrack/pkg/dom"
)

const (
	controlSelector = "input, textarea, select"
	resetSelector   = `input[type="reset"], button[type="reset"]`
	radioSelector   = `input[type="radio"]`
	labelSelector   = "label"
)

// observedControl is one element the tracker listens to.
type observedControl struct {
	el     dom.Element
	kind   Kind
	event  dom.EventType
	cancel func()
}

// ControlState is a snapshot of one logical control (a radio group counts as
// one).
type ControlState struct {
	Name     string
	Type     string
	Kind     Kind
	Event    dom.EventType
	Baseline Value
	Current  Value
	Changed  bool
	Elements int
}

// Tracker tracks whether the controls of one form differ from the values
// they had when the tracker was attached.
//
// A Tracker is not safe for concurrent use; events are expected to arrive
// one at a time from the host's event loop.
type Tracker struct {
	doc       dom.Document
	form      dom.Element
	reset     dom.Element
	classname string
	onChange  ChangeFunc
	onConfirm ConfirmFunc
	policy    ConfirmPolicy
	log       *slog.Logger

	observed  []*observedControl
	byElement map[dom.Element]*observedControl
	cancels   []func()
	bound     bool

	baseline map[string]Value
	changed  map[string]bool
}

// New attaches a tracker to the form selected by the options, records the
// baseline of every observable control and marks the form clean.
//
// It fails only if the target cannot be resolved to exactly one form element.
func New(doc dom.Document, opts ...Option) (*Tracker, error) {
	cfg := newConfig(opts)

	form, err := resolveTarget(doc, cfg)
	if err != nil {
		return nil, err
	}

	t := &Tracker{
		doc:       doc,
		form:      form,
		classname: cfg.Classname,
		onChange:  cfg.OnChange,
		onConfirm: cfg.OnConfirmReset,
		policy:    cfg.Policy,
		log:       cfg.Logger,
		byElement: make(map[dom.Element]*observedControl),
		baseline:  make(map[string]Value),
		changed:   make(map[string]bool),
	}

	if t.onConfirm == nil {
		t.onConfirm = t.defaultConfirm
	}

	controls, err := doc.QuerySelectorAll(form, controlSelector)
	if err != nil {
		return nil, fmt.Errorf("failed to query form controls: %w", err)
	}

	for _, el := range controls {
		t.observe(el)
	}

	t.captureBaseline()
	t.bindReset()
	t.cancels = append(t.cancels, doc.Listen(form, dom.EventReset, t.handleFormReset))
	t.bound = true

	t.MarkFormAsDirty(false)

	return t, nil
}

func resolveTarget(doc dom.Document, cfg *Config) (dom.Element, error) {
	target := cfg.Target

	if target == nil {
		matches, err := doc.QuerySelectorAll(nil, cfg.Selector)
		if err != nil {
			return nil, fmt.Errorf("invalid selector %q: %w", cfg.Selector, err)
		}

		switch len(matches) {
		case 0:
			return nil, fmt.Errorf("%w: %s", ErrTargetNotFound, cfg.Selector)
		case 1:
			target = matches[0]
		default:
			return nil, fmt.Errorf("%w: %s matches %d elements", ErrAmbiguousTarget, cfg.Selector, len(matches))
		}
	}

	if target.Tag() != "form" {
		return nil, fmt.Errorf("%w: got <%s>", ErrNotAForm, target.Tag())
	}

	return target, nil
}

func (t *Tracker) observe(el dom.Element) {
	kind, known := Classify(el.Type())
	if !known {
		t.log.Warn("unsupported control type", "type", el.Type(), "name", el.Name())
		return
	}

	if kind == KindUnobserved || el.Name() == "" {
		return
	}

	oc := &observedControl{el: el, kind: kind, event: kind.Event()}
	oc.cancel = t.doc.Listen(el, oc.event, func(*dom.Event) {
		t.HandleEvent(el)
	})

	t.observed = append(t.observed, oc)
	t.byElement[el] = oc
}

func (t *Tracker) captureBaseline() {
	t.baseline = make(map[string]Value, len(t.observed))

	for _, oc := range t.observed {
		t.baseline[oc.el.Name()] = t.currentValue(oc.el, oc.kind)
	}
}

func (t *Tracker) bindReset() {
	resets := t.query(t.form, resetSelector)
	if len(resets) == 0 {
		return
	}

	t.reset = resets[0]
	t.cancels = append(t.cancels, t.doc.Listen(t.reset, dom.EventClick, t.handleResetClick))
}

// HandleEvent reconciles the state of control after it received its
// observed event. Elements the tracker does not observe are ignored, and
// nothing happens once the tracker is unbound.
func (t *Tracker) HandleEvent(control dom.Element) {
	if !t.bound || control == nil {
		return
	}

	oc, ok := t.byElement[control]
	if !ok {
		return
	}

	changed := t.reconcile(control, oc.kind)

	if t.onChange != nil {
		t.onChange(control, changed)
	}
}

func (t *Tracker) reconcile(control dom.Element, kind Kind) bool {
	name := control.Name()

	// A radio group carries one marker at most: whichever member fired.
	if kind == KindRadio {
		for _, radio := range t.radioGroup(name) {
			t.unmark(radio)
		}
	}

	label := t.Label(control)

	if base, ok := t.baseline[name]; ok && base == t.currentValue(control, kind) {
		delete(t.changed, name)
		t.MarkFormAsDirty(t.IsDirty())
		control.RemoveClass(t.classname)

		if label != nil {
			label.RemoveClass(t.classname)
		}

		return false
	}

	t.MarkControlAsChanged(control, label)

	return true
}

// MarkFormAsDirty enables the reset control when dirty is true. When false
// it disables the reset control, forgets every change and removes the
// changed class from all labels and controls of the form.
func (t *Tracker) MarkFormAsDirty(dirty bool) {
	if dirty {
		if t.reset != nil {
			t.reset.RemoveAttribute("disabled")
		}

		return
	}

	if t.reset != nil {
		t.reset.SetAttribute("disabled", "disabled")
	}

	t.changed = make(map[string]bool)

	for _, label := range t.query(t.form, labelSelector) {
		label.RemoveClass(t.classname)
	}

	for _, oc := range t.observed {
		t.unmark(oc.el)
	}
}

// IsDirty reports whether at least one control differs from its baseline.
func (t *Tracker) IsDirty() bool {
	for _, changed := range t.changed {
		if changed {
			return true
		}
	}

	return false
}

// MarkControlAsChanged flags control as changed and marks it and its label
// (which may be nil). Use it for widgets whose edits the tracker cannot
// observe itself, such as rich text editors.
func (t *Tracker) MarkControlAsChanged(control, label dom.Element) {
	if control == nil {
		return
	}

	t.MarkFormAsDirty(true)
	t.changed[control.Name()] = true

	control.AddClass(t.classname)

	if label != nil {
		label.AddClass(t.classname)
	}
}

// Unbind stops observing all events. The tracker keeps its state but
// reconciles nothing afterwards.
func (t *Tracker) Unbind() {
	for _, oc := range t.observed {
		oc.cancel()
	}

	for _, cancel := range t.cancels {
		cancel()
	}

	t.observed = nil
	t.byElement = make(map[dom.Element]*observedControl)
	t.cancels = nil
	t.bound = false
}

// Bound reports whether the tracker still observes events.
func (t *Tracker) Bound() bool {
	return t.bound
}

// Rebaseline takes the current control values as the new baseline and
// marks the form clean, e.g. after the form was saved.
func (t *Tracker) Rebaseline() {
	if !t.bound {
		return
	}

	t.captureBaseline()
	t.MarkFormAsDirty(false)
}

// Label returns the label of control: a label whose for attribute names the
// control's id, or else the label wrapping the control. It returns nil if
// there is none.
func (t *Tracker) Label(control dom.Element) dom.Element {
	if control == nil {
		return nil
	}

	if id := control.ID(); id != "" {
		if labels := t.query(nil, `label[for="`+escapeSelectorString(id)+`"]`); len(labels) > 0 {
			return labels[0]
		}
	}

	return t.doc.Closest(control, labelSelector)
}

// Form returns the tracked form element.
func (t *Tracker) Form() dom.Element {
	return t.form
}

// ResetControl returns the form's reset control, or nil.
func (t *Tracker) ResetControl() dom.Element {
	return t.reset
}

// Classname returns the class applied to changed controls.
func (t *Tracker) Classname() string {
	return t.classname
}

// Changed returns the sorted names of the changed controls.
func (t *Tracker) Changed() []string {
	names := make([]string, 0, len(t.changed))

	for name, changed := range t.changed {
		if changed {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return names
}

// Controls returns the state of every observed control in document order.
// Radio buttons sharing a name are reported once.
func (t *Tracker) Controls() []ControlState {
	states := make([]ControlState, 0, len(t.baseline))
	index := make(map[string]int, len(t.baseline))

	for _, oc := range t.observed {
		name := oc.el.Name()
		if i, ok := index[name]; ok {
			states[i].Elements++
			continue
		}

		index[name] = len(states)
		states = append(states, ControlState{
			Name:     name,
			Type:     oc.el.Type(),
			Kind:     oc.kind,
			Event:    oc.event,
			Baseline: t.baseline[name],
			Current:  t.currentValue(oc.el, oc.kind),
			Changed:  t.changed[name],
			Elements: 1,
		})
	}

	return states
}

func (t *Tracker) handleResetClick(ev *dom.Event) {
	if !t.needsConfirmation() {
		return
	}

	ev.PreventDefault()
	t.onConfirm(t.proceedFunc())
}

func (t *Tracker) needsConfirmation() bool {
	switch t.policy {
	case ConfirmAlways:
		return true
	case ConfirmNever:
		return false
	default:
		return t.IsDirty()
	}
}

// proceedFunc returns the continuation handed to the confirm hook. Only the
// first call resets the form.
func (t *Tracker) proceedFunc() func() {
	done := false

	return func() {
		if done {
			return
		}

		done = true

		t.doc.ResetForm(t.form)
		t.MarkFormAsDirty(false)
	}
}

func (t *Tracker) defaultConfirm(proceed func()) {
	confirmer, ok := t.doc.(dom.Confirmer)
	if !ok {
		t.log.Warn("no confirmation available, reset cancelled")
		return
	}

	if confirmer.Confirm(DefaultResetPrompt) {
		proceed()
	}
}

// handleFormReset re-reads every control once the reset has been applied.
func (t *Tracker) handleFormReset(*dom.Event) {
	t.doc.Defer(t.reconcileAll)
}

func (t *Tracker) reconcileAll() {
	if !t.bound {
		return
	}

	seen := make(map[string]bool, len(t.observed))

	for _, oc := range t.observed {
		name := oc.el.Name()
		if seen[name] {
			continue
		}

		seen[name] = true

		members := []dom.Element{oc.el}
		if oc.kind == KindRadio {
			members = t.radioGroup(name)
		}

		for _, el := range members {
			t.unmark(el)
		}

		if t.baseline[name] == t.currentValue(oc.el, oc.kind) {
			delete(t.changed, name)
			continue
		}

		t.changed[name] = true

		for _, el := range members {
			if oc.kind != KindRadio || el.Checked() {
				t.mark(el)
			}
		}
	}

	t.MarkFormAsDirty(t.IsDirty())
}

func (t *Tracker) currentValue(el dom.Element, kind Kind) Value {
	if kind == KindRadio {
		return GroupValue(t.radioGroup(el.Name()))
	}

	return ControlValue(el, kind)
}

func (t *Tracker) radioGroup(name string) []dom.Element {
	var group []dom.Element

	for _, radio := range t.query(t.form, radioSelector) {
		if radio.Name() == name {
			group = append(group, radio)
		}
	}

	return group
}

func (t *Tracker) mark(el dom.Element) {
	el.AddClass(t.classname)

	if label := t.Label(el); label != nil {
		label.AddClass(t.classname)
	}
}

func (t *Tracker) unmark(el dom.Element) {
	el.RemoveClass(t.classname)

	if label := t.Label(el); label != nil {
		label.RemoveClass(t.classname)
	}
}

func (t *Tracker) query(root dom.Element, selector string) []dom.Element {
	matches, err := t.doc.QuerySelectorAll(root, selector)
	if err != nil {
		t.log.Warn("query failed", "selector", selector, "error", err)
		return nil
	}

	return matches
}

func escapeSelectorString(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
