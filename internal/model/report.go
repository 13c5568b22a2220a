package model

// ControlReport describes one observed control (radio groups count once).
type ControlReport struct {
	Name     string
	Type     string
	Kind     string
	Event    string
	Baseline string
	Current  string
	Changed  bool
	Elements int
}

// FormReport holds the inspection result for a single document.
type FormReport struct {
	File     FormFile
	Controls []ControlReport
	Warnings []string
	Reset    bool  // whether the form has a reset control
	Err      error // error attaching to the document
}

// StepReport holds the tracker state after one replayed step.
type StepReport struct {
	Index        int
	Action       StepAction
	Target       string
	Dirty        bool
	ResetEnabled bool
	Changed      []string
	Notes        []string
}

// ReplaySummary is displayed once all steps were replayed.
type ReplaySummary struct {
	File    FormFile
	Steps   int
	Dirty   bool
	Changed []string
	Output  Path
}
