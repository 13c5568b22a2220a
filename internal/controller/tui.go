package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "github.com/mouse-blink/formtrack/internal/model"
)

// TUI implements UI using lipgloss styled output and a Bubble Tea editor.
type TUI struct {
	output io.Writer
	input  io.Reader
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, input io.Reader) *TUI {
	return &TUI{output: output, input: input}
}

// DisplayInspection prints a styled summary per document.
func (t *TUI) DisplayInspection(reports []m.FormReport) error {
	failed := 0

	for _, report := range reports {
		if report.Err != nil {
			failed++

			t.printf("%s %s\n", errorStyle.Render("✗"), report.File.ShortPath)
			t.printf("    %s\n", errorStyle.Render(report.Err.Error()))

			continue
		}

		reset := mutedStyle.Render("no reset control")
		if report.Reset {
			reset = cleanStyle.Render("reset control")
		}

		t.printf("%s %s  %s controls, %s\n",
			cleanStyle.Render("✓"),
			report.File.ShortPath,
			accentStyle.Render(fmt.Sprintf("%d", len(report.Controls))),
			reset,
		)

		for _, control := range report.Controls {
			t.printf("    %-20s %s\n", control.Name, mutedStyle.Render(control.Type+" on "+control.Event))
		}

		for _, warning := range report.Warnings {
			t.printf("    %s %s\n", changedStyle.Render("!"), warning)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d form(s) could not be inspected", failed, len(reports))
	}

	return nil
}

// DisplayReplayStep prints one styled line per step.
func (t *TUI) DisplayReplayStep(step m.StepReport) {
	state := cleanStyle.Render("clean")
	if step.Dirty {
		state = changedStyle.Render("dirty")
	}

	line := fmt.Sprintf("%s %s %s %s",
		mutedStyle.Render(fmt.Sprintf("%3d", step.Index+1)),
		accentStyle.Render(string(step.Action)),
		step.Target,
		state,
	)

	if len(step.Changed) > 0 {
		line += mutedStyle.Render(" [" + strings.Join(step.Changed, ", ") + "]")
	}

	t.printf("%s\n", line)

	for _, note := range step.Notes {
		t.printf("      %s\n", mutedStyle.Render(note))
	}
}

// DisplayReplaySummary prints the final state of a replay.
func (t *TUI) DisplayReplaySummary(summary m.ReplaySummary) error {
	state := cleanStyle.Render("clean")
	if summary.Dirty {
		state = changedStyle.Render(fmt.Sprintf("dirty: %s", strings.Join(summary.Changed, ", ")))
	}

	t.printf("\n%s replayed %s steps, form %s\n",
		summary.File.ShortPath,
		accentStyle.Render(fmt.Sprintf("%d", summary.Steps)),
		state,
	)

	if summary.Output != "" {
		t.printf("written to %s\n", accentStyle.Render(string(summary.Output)))
	}

	return nil
}

// Edit runs the interactive editor until the user quits.
func (t *TUI) Edit(session EditSession) error {
	in, ok := t.input.(*os.File)
	if !ok || !term.IsTerminal(int(in.Fd())) {
		return ErrNotInteractive
	}

	model := newEditorModel(session)

	if out, ok := t.output.(*os.File); ok {
		if width, height, err := term.GetSize(int(out.Fd())); err == nil {
			model.width, model.height = width, height
			model.help.Width = width
		}
	}

	program := tea.NewProgram(model, tea.WithInput(t.input), tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run editor: %w", err)
	}

	return nil
}

func (t *TUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.output, format, args...)
}
