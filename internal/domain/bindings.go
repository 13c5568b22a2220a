package domain

import (
	"fmt"
	"strings"

	"github.com/mouse-blink/formtrack/internal/adapter"
	m "github.com/mouse-blink/formtrack/internal/model"
	"github.com/mouse-blink/formtrack/pkg/tracker"
)

// ParseBinding parses "action:target=source", for example
// "enable:#frequency=#newsletter".
func ParseBinding(s string) (m.BindingSpec, error) {
	action, rest, ok := strings.Cut(s, ":")
	if !ok {
		return m.BindingSpec{}, fmt.Errorf("%w: %q (want action:target=source)", ErrInvalidBinding, s)
	}

	target, source, ok := strings.Cut(rest, "=")
	if !ok || strings.TrimSpace(target) == "" || strings.TrimSpace(source) == "" {
		return m.BindingSpec{}, fmt.Errorf("%w: %q (want action:target=source)", ErrInvalidBinding, s)
	}

	if _, err := tracker.ParseAction(action); err != nil {
		return m.BindingSpec{}, fmt.Errorf("%w: %w", ErrInvalidBinding, err)
	}

	return m.BindingSpec{
		Action: action,
		Target: strings.TrimSpace(target),
		Source: strings.TrimSpace(source),
	}, nil
}

// ParseBindings parses every value of a repeated --bind flag.
func ParseBindings(values []string) ([]m.BindingSpec, error) {
	specs := make([]m.BindingSpec, 0, len(values))

	for _, value := range values {
		spec, err := ParseBinding(value)
		if err != nil {
			return nil, err
		}

		specs = append(specs, spec)
	}

	return specs, nil
}

// bindAll attaches the dependencies within the tracked form.
func bindAll(doc *adapter.HTMLDocument, tr *tracker.Tracker, specs []m.BindingSpec) ([]*tracker.Dependency, error) {
	deps := make([]*tracker.Dependency, 0, len(specs))

	for _, spec := range specs {
		action, err := tracker.ParseAction(spec.Action)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBinding, err)
		}

		dep, err := tracker.Bind(doc, spec.Target, spec.Source, action,
			tracker.WithRoot(tr.Form()),
			tracker.WithTracker(tr),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to bind %s:%s=%s: %w", spec.Action, spec.Target, spec.Source, err)
		}

		deps = append(deps, dep)
	}

	return deps, nil
}
