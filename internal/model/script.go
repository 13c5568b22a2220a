package model

// StepAction is the kind of interaction a replay step performs.
type StepAction string

// Available StepAction values.
const (
	StepInput         StepAction = "input"
	StepClick         StepAction = "click"
	StepSelect        StepAction = "select"
	StepFile          StepAction = "file"
	StepIndeterminate StepAction = "indeterminate"
	StepReset         StepAction = "reset"
	StepMark          StepAction = "mark"
	StepRebaseline    StepAction = "rebaseline"
	StepUnbind        StepAction = "unbind"
)

// Step is one scripted interaction with the form.
type Step struct {
	Action  StepAction `yaml:"action"`
	Target  string     `yaml:"target,omitempty"`
	Value   string     `yaml:"value,omitempty"`
	Indexes []int      `yaml:"indexes,omitempty"`
	// Confirm answers the reset confirmation for reset steps; when unset
	// the script default applies.
	Confirm *bool `yaml:"confirm,omitempty"`
}

// BindingSpec declares a dependency between a source control and targets.
type BindingSpec struct {
	Action string `yaml:"action"`
	Target string `yaml:"target"`
	Source string `yaml:"source"`
}

// Script is a replay script.
type Script struct {
	Selector string        `yaml:"selector,omitempty"`
	Confirm  *bool         `yaml:"confirm,omitempty"`
	Bindings []BindingSpec `yaml:"bindings,omitempty"`
	Steps    []Step        `yaml:"steps"`
}

// ConfirmDefault returns the answer used for reset confirmations.
func (s Script) ConfirmDefault() bool {
	if s.Confirm == nil {
		return true
	}

	return *s.Confirm
}
