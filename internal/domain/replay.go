package domain

import (
	"fmt"
	"strconv"

	"github.com/mouse-blink/formtrack/internal/adapter"
	"github.com/mouse-blink/formtrack/internal/logger"
	m "github.com/mouse-blink/formtrack/internal/model"
	"github.com/mouse-blink/formtrack/pkg/dom"
	"github.com/mouse-blink/formtrack/pkg/tracker"
)

// replay is the state of one running script.
type replay struct {
	doc     *adapter.HTMLDocument
	tracker *tracker.Tracker
	deps    []*tracker.Dependency
	answer  bool
	notes   []string
}

// Replay runs a script of interactions against a document, displaying the
// tracker state after every step.
func (w *workflow) Replay(args ReplayArgs) error {
	script, err := w.scripts.LoadScript(args.Script)
	if err != nil {
		return fmt.Errorf("failed to load script: %w", err)
	}

	file, err := w.formFile(args.Path)
	if err != nil {
		return err
	}

	doc, err := w.fsAdapter.Load(file.Path)
	if err != nil {
		return err
	}

	trackerArgs := args.Tracker
	if script.Selector != "" {
		trackerArgs.Selector = script.Selector
	}

	r := &replay{doc: doc}

	opts := append(trackerOptions(trackerArgs, logger.L.With("path", file.ShortPath)),
		tracker.WithOnConfirmReset(r.confirm),
		tracker.WithOnChange(r.changed),
	)

	r.tracker, err = tracker.New(doc, opts...)
	if err != nil {
		return fmt.Errorf("failed to attach tracker: %w", err)
	}

	r.deps, err = bindAll(doc, r.tracker, script.Bindings)
	if err != nil {
		return err
	}

	for i, step := range script.Steps {
		r.notes = nil

		r.answer = script.ConfirmDefault()
		if step.Confirm != nil {
			r.answer = *step.Confirm
		}

		if err := r.run(step); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Action, err)
		}

		w.ui.DisplayReplayStep(m.StepReport{
			Index:        i,
			Action:       step.Action,
			Target:       step.Target,
			Dirty:        r.tracker.IsDirty(),
			ResetEnabled: resetEnabled(r.tracker),
			Changed:      r.tracker.Changed(),
			Notes:        r.notes,
		})
	}

	if args.Output != "" {
		if err := w.save(file, args.Output, []byte(doc.String())); err != nil {
			return fmt.Errorf("failed to save output: %w", err)
		}
	}

	return w.ui.DisplayReplaySummary(m.ReplaySummary{
		File:    file,
		Steps:   len(script.Steps),
		Dirty:   r.tracker.IsDirty(),
		Changed: r.tracker.Changed(),
		Output:  args.Output,
	})
}

func (r *replay) confirm(proceed func()) {
	if !r.answer {
		r.note("reset cancelled")
		return
	}

	r.note("reset confirmed")
	proceed()
}

func (r *replay) changed(control dom.Element, changed bool) {
	if changed {
		r.note("%s differs from baseline", control.Name())
		return
	}

	r.note("%s back at baseline", control.Name())
}

func (r *replay) note(format string, args ...any) {
	r.notes = append(r.notes, fmt.Sprintf(format, args...))
}

func (r *replay) run(step m.Step) error {
	switch step.Action {
	case m.StepReset:
		return r.reset(step)
	case m.StepRebaseline:
		r.tracker.Rebaseline()
		return nil
	case m.StepUnbind:
		r.tracker.Unbind()

		for _, dep := range r.deps {
			dep.Unbind()
		}

		return nil
	case m.StepInput, m.StepClick, m.StepSelect, m.StepFile, m.StepIndeterminate, m.StepMark:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStep, step.Action)
	}

	el, err := r.target(step.Target)
	if err != nil {
		return err
	}

	var ev *dom.Event

	switch step.Action {
	case m.StepInput:
		ev = r.doc.Input(el, step.Value)
	case m.StepClick:
		ev = r.doc.Click(el)
	case m.StepSelect:
		ev = r.doc.Choose(el, step.Indexes...)
	case m.StepFile:
		ev = r.doc.SetFile(el, step.Value)
	case m.StepIndeterminate:
		on := true
		if step.Value != "" {
			if on, err = strconv.ParseBool(step.Value); err != nil {
				return fmt.Errorf("invalid indeterminate value %q: %w", step.Value, err)
			}
		}

		r.doc.SetIndeterminate(el, on)
		r.tracker.HandleEvent(el)

		return nil
	case m.StepMark:
		r.tracker.MarkControlAsChanged(el, r.tracker.Label(el))
		return nil
	}

	if ev == nil {
		r.note("%s is disabled, ignored", step.Target)
	}

	return nil
}

func (r *replay) reset(step m.Step) error {
	control := r.tracker.ResetControl()

	if step.Target != "" {
		el, err := r.target(step.Target)
		if err != nil {
			return err
		}

		control = el
	}

	if control == nil {
		return fmt.Errorf("%w: form has no reset control", ErrTargetMissing)
	}

	if r.doc.Click(control) == nil {
		r.note("reset control is disabled")
	}

	return nil
}

// target returns the first element of the tracked form matching selector.
func (r *replay) target(selector string) (dom.Element, error) {
	if selector == "" {
		return nil, fmt.Errorf("%w: empty selector", ErrTargetMissing)
	}

	matches, err := r.doc.QuerySelectorAll(r.tracker.Form(), selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTargetMissing, selector)
	}

	return matches[0], nil
}

func resetEnabled(tr *tracker.Tracker) bool {
	control := tr.ResetControl()
	if control == nil {
		return false
	}

	_, disabled := control.Attribute("disabled")

	return !disabled
}
