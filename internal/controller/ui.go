// Package controller provides the output adapters of formtrack: plain tables
// for pipes and a Bubble Tea interface for terminals.
package controller

import (
	"errors"

	"github.com/mouse-blink/formtrack/internal/adapter"
	m "github.com/mouse-blink/formtrack/internal/model"
	"github.com/mouse-blink/formtrack/pkg/tracker"
)

// ErrNotInteractive is returned by UIs that cannot run the editor.
var ErrNotInteractive = errors.New("interactive editing requires a terminal")

// EditSession is everything the interactive editor works on.
type EditSession struct {
	File    m.FormFile
	Doc     *adapter.HTMLDocument
	Tracker *tracker.Tracker
	// Gate holds resets waiting for an answer; the tracker must have been
	// created with WithOnConfirmReset(Gate.Request).
	Gate   *ResetGate
	Prompt string
	// Save writes the rendered document to the output path. Nil disables
	// saving.
	Save func(content []byte) error
}

// UI defines how workflow results are presented.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayInspection(reports []m.FormReport) error
	DisplayReplayStep(step m.StepReport)
	DisplayReplaySummary(summary m.ReplaySummary) error
	Edit(session EditSession) error
}
