package tracker

import (
	"fmt"

	"github.com/mouse-blink/formtrack/pkg/dom"
)

// Action is what a Dependency does to its targets when the source's boolean
// value changes.
type Action string

// Available actions. The "!" variants also clear a target while it is
// disabled.
const (
	ActionEnable       Action = "enable"
	ActionEnableClear  Action = "enable!"
	ActionDisable      Action = "disable"
	ActionDisableClear Action = "disable!"
	ActionShow         Action = "show"
	ActionHide         Action = "hide"
	ActionCustom       Action = "custom"
)

// ParseAction validates an action name.
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionEnable, ActionEnableClear, ActionDisable, ActionDisableClear, ActionShow, ActionHide:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
}

// ActionFunc is a custom dependency action.
type ActionFunc func(targets []dom.Element, source dom.Element)

// Predicate decides whether the source counts as "on".
type Predicate func(source dom.Element) bool

type dependencyConfig struct {
	root      dom.Element
	fn        ActionFunc
	predicate Predicate
	tracker   *Tracker
}

// DependencyOption configures a Dependency.
type DependencyOption func(*dependencyConfig)

// WithRoot restricts target and source lookup to the subtree of root.
func WithRoot(root dom.Element) DependencyOption {
	return func(c *dependencyConfig) {
		c.root = root
	}
}

// WithActionFunc uses fn instead of a built-in action. Pass ActionCustom as
// the action.
func WithActionFunc(fn ActionFunc) DependencyOption {
	return func(c *dependencyConfig) {
		c.fn = fn
	}
}

// WithTracker reconciles cleared targets with tr, so a target emptied by an
// "!" action is compared with its baseline like a user edit.
func WithTracker(tr *Tracker) DependencyOption {
	return func(c *dependencyConfig) {
		c.tracker = tr
	}
}

// WithPredicate replaces BoolValue for deciding the source state.
func WithPredicate(p Predicate) DependencyOption {
	return func(c *dependencyConfig) {
		c.predicate = p
	}
}

// Dependency keeps the enabled, visible or cleared state of target elements
// in line with a source control.
type Dependency struct {
	doc       dom.Document
	targets   []dom.Element
	source    dom.Element
	action    Action
	fn        ActionFunc
	predicate Predicate
	tracker   *Tracker
	cancels   []func()
}

// Bind makes the elements matching target follow the control matching
// source (its first match). The action is applied right away, whenever the
// source fires its observed event, and after the source's form was reset.
func Bind(doc dom.Document, target, source string, action Action, opts ...DependencyOption) (*Dependency, error) {
	cfg := &dependencyConfig{predicate: BoolValue}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.predicate == nil {
		cfg.predicate = BoolValue
	}

	switch action {
	case ActionEnable, ActionEnableClear, ActionDisable, ActionDisableClear, ActionShow, ActionHide:
	case ActionCustom:
		if cfg.fn == nil {
			return nil, fmt.Errorf("%w: custom action without function", ErrUnknownAction)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	sources, err := doc.QuerySelectorAll(cfg.root, source)
	if err != nil {
		return nil, fmt.Errorf("invalid source selector %q: %w", source, err)
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, source)
	}

	targets, err := doc.QuerySelectorAll(cfg.root, target)
	if err != nil {
		return nil, fmt.Errorf("invalid target selector %q: %w", target, err)
	}

	d := &Dependency{
		doc:       doc,
		targets:   targets,
		source:    sources[0],
		action:    action,
		fn:        cfg.fn,
		predicate: cfg.predicate,
		tracker:   cfg.tracker,
	}

	_, event, ok := Observe(d.source.Type())
	if !ok {
		return nil, fmt.Errorf("%w: %s (%s)", ErrSourceNotObservable, source, d.source.Type())
	}

	d.cancels = append(d.cancels, doc.Listen(d.source, event, func(*dom.Event) {
		d.Apply()
	}))

	if form := doc.Closest(d.source, "form"); form != nil {
		d.cancels = append(d.cancels, doc.Listen(form, dom.EventReset, func(*dom.Event) {
			doc.Defer(d.Apply)
		}))
	}

	d.Apply()

	return d, nil
}

// Apply evaluates the source and updates the targets.
func (d *Dependency) Apply() {
	if d.action == ActionCustom {
		d.fn(d.targets, d.source)
		return
	}

	on := d.predicate(d.source)

	for _, target := range d.targets {
		switch d.action {
		case ActionEnable:
			setDisabled(target, !on)
		case ActionEnableClear:
			if !on {
				d.clear(target)
			}

			setDisabled(target, !on)
		case ActionDisable:
			setDisabled(target, on)
		case ActionDisableClear:
			if on {
				d.clear(target)
			}

			setDisabled(target, on)
		case ActionShow:
			setHidden(target, !on)
		case ActionHide:
			setHidden(target, on)
		}
	}
}

func (d *Dependency) clear(target dom.Element) {
	Clear(target)

	if d.tracker != nil {
		d.tracker.HandleEvent(target)
	}
}

// Unbind stops following the source.
func (d *Dependency) Unbind() {
	for _, cancel := range d.cancels {
		cancel()
	}

	d.cancels = nil
}

// Targets returns the controlled elements.
func (d *Dependency) Targets() []dom.Element {
	return d.targets
}

// BoolValue reports whether a control is "on": checked for checkboxes and
// radios, any selection for selects, a non-empty value otherwise.
func BoolValue(el dom.Element) bool {
	kind, _ := Classify(el.Type())

	switch kind {
	case KindCheckbox, KindRadio:
		return el.Checked()
	case KindSelectOne, KindSelectMultiple:
		return len(el.SelectedIndexes()) > 0
	default:
		return el.Value() != ""
	}
}

// Clear empties a control: checkboxes and radios are unchecked, everything
// else gets an empty value.
func Clear(el dom.Element) {
	kind, _ := Classify(el.Type())

	switch kind {
	case KindCheckbox, KindRadio:
		el.SetChecked(false)
	default:
		el.SetValue("")
	}
}

func setDisabled(el dom.Element, disabled bool) {
	if disabled {
		el.SetAttribute("disabled", "disabled")
		return
	}

	el.RemoveAttribute("disabled")
}

func setHidden(el dom.Element, hidden bool) {
	if hidden {
		el.SetAttribute("hidden", "hidden")
		return
	}

	el.RemoveAttribute("hidden")
}
