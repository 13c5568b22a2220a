package tracker

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mouse-blink/formtrack/pkg/dom"
)

// DefaultClassname is the class added to changed controls and their labels.
const DefaultClassname = "control-changed"

// DefaultSelector selects the tracked form when no target is given.
const DefaultSelector = "form"

// DefaultResetPrompt is the question asked by the default confirmation hook.
const DefaultResetPrompt = "Are you sure you want to reset the form and lose unsaved changes?"

// ConfirmPolicy decides when a reset needs confirmation.
type ConfirmPolicy int

// Available ConfirmPolicy values.
const (
	// ConfirmWhenDirty asks only if the form has unsaved changes.
	ConfirmWhenDirty ConfirmPolicy = iota
	// ConfirmAlways asks on every reset.
	ConfirmAlways
	// ConfirmNever lets every reset through.
	ConfirmNever
)

var policyNames = []string{"when-dirty", "always", "never"}

func (p ConfirmPolicy) String() string {
	if p.valid() {
		return policyNames[p]
	}

	return fmt.Sprintf("ConfirmPolicy(%d)", int(p))
}

func (p ConfirmPolicy) valid() bool {
	return p >= ConfirmWhenDirty && p <= ConfirmNever
}

// ParseConfirmPolicy parses "when-dirty", "always" or "never".
func ParseConfirmPolicy(s string) (ConfirmPolicy, error) {
	for i, name := range policyNames {
		if strings.EqualFold(s, name) {
			return ConfirmPolicy(i), nil
		}
	}

	return ConfirmWhenDirty, fmt.Errorf("unknown confirm policy %q (want one of %s)", s, strings.Join(policyNames, ", "))
}

// ChangeFunc is notified after every reconciled event with the control and
// whether that control now differs from its baseline.
type ChangeFunc func(control dom.Element, changed bool)

// ConfirmFunc decides whether a reset may go ahead. It calls proceed, now or
// later, to reset the form; not calling it cancels the reset.
type ConfirmFunc func(proceed func())

// Config holds the tracker configuration. Use the With* options to fill it.
type Config struct {
	Target         dom.Element
	Selector       string
	Classname      string
	OnChange       ChangeFunc
	OnConfirmReset ConfirmFunc
	Policy         ConfirmPolicy
	Logger         *slog.Logger

	selectorSet bool
	warnings    []string
}

// Option configures a Tracker.
type Option func(*Config)

// WithTarget tracks the given form element.
func WithTarget(el dom.Element) Option {
	return func(c *Config) {
		if el == nil {
			c.warnings = append(c.warnings, "target must not be nil, falling back to selector")
			return
		}

		c.Target = el
	}
}

// WithSelector tracks the single element matching selector.
func WithSelector(selector string) Option {
	return func(c *Config) {
		if strings.TrimSpace(selector) == "" {
			c.warnings = append(c.warnings, "selector must not be empty, using "+DefaultSelector)
			return
		}

		c.Selector = selector
		c.selectorSet = true
	}
}

// WithClassname sets the class applied to changed controls and labels.
func WithClassname(name string) Option {
	return func(c *Config) {
		if name == "" || strings.ContainsAny(name, " \t\r\n\f") {
			c.warnings = append(c.warnings, fmt.Sprintf("invalid classname %q, using %s", name, DefaultClassname))
			return
		}

		c.Classname = name
	}
}

// WithOnChange registers fn to run after each reconciled event.
func WithOnChange(fn ChangeFunc) Option {
	return func(c *Config) {
		if fn == nil {
			c.warnings = append(c.warnings, "onChange must be a function, ignoring")
			return
		}

		c.OnChange = fn
	}
}

// WithOnConfirmReset replaces the reset confirmation hook.
func WithOnConfirmReset(fn ConfirmFunc) Option {
	return func(c *Config) {
		if fn == nil {
			c.warnings = append(c.warnings, "onConfirmReset must be a function, using default")
			return
		}

		c.OnConfirmReset = fn
	}
}

// WithConfirmPolicy sets when resets must be confirmed.
func WithConfirmPolicy(p ConfirmPolicy) Option {
	return func(c *Config) {
		if !p.valid() {
			c.warnings = append(c.warnings, fmt.Sprintf("invalid confirm policy %d, using %s", int(p), ConfirmWhenDirty))
			return
		}

		c.Policy = p
	}
}

// WithLogger sets the logger receiving warnings.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

func newConfig(opts []Option) *Config {
	cfg := &Config{
		Selector:  DefaultSelector,
		Classname: DefaultClassname,
		Policy:    ConfirmWhenDirty,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if cfg.Target != nil && cfg.selectorSet {
		cfg.warnings = append(cfg.warnings, "both target and selector given, using target")
	}

	for _, w := range cfg.warnings {
		cfg.Logger.Warn("invalid tracker option", "reason", w)
	}

	return cfg
}
