package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/formtrack/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayInspection prints one control table per document.
func (s *SimpleUI) DisplayInspection(reports []m.FormReport) error {
	failed := 0

	for _, report := range reports {
		s.printf("\n%s\n", report.File.ShortPath)

		if report.Err != nil {
			failed++

			s.printf("  error: %v\n", report.Err)

			continue
		}

		var tableBuffer bytes.Buffer

		table := tablewriter.NewWriter(&tableBuffer)
		table.SetHeader([]string{"Name", "Type", "Event", "Baseline", "Elements"})
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetColumnAlignment([]int{
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_CENTER,
		})

		for _, control := range report.Controls {
			table.Append([]string{
				control.Name,
				control.Type,
				control.Event,
				fmt.Sprintf("%q", control.Baseline),
				fmt.Sprintf("%d", control.Elements),
			})
		}

		reset := "no reset control"
		if report.Reset {
			reset = "reset control"
		}

		table.SetFooter([]string{fmt.Sprintf("Controls %d", len(report.Controls)), "", "", reset, ""})
		table.Render()
		s.printf("%s", tableBuffer.String())

		for _, warning := range report.Warnings {
			s.printf("  warning: %s\n", warning)
		}
	}

	s.printf("\n%d form(s) inspected, %d failed\n", len(reports), failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d form(s) could not be inspected", failed, len(reports))
	}

	return nil
}

// DisplayReplayStep prints one line per step.
func (s *SimpleUI) DisplayReplayStep(step m.StepReport) {
	state := "clean"
	if step.Dirty {
		state = "dirty"
	}

	line := fmt.Sprintf("%3d %-13s %-24s %s", step.Index+1, step.Action, step.Target, state)
	if len(step.Changed) > 0 {
		line += " [" + strings.Join(step.Changed, ", ") + "]"
	}

	s.printf("%s\n", strings.TrimRight(line, " "))

	for _, note := range step.Notes {
		s.printf("    %s\n", note)
	}
}

// DisplayReplaySummary prints the final state of a replay.
func (s *SimpleUI) DisplayReplaySummary(summary m.ReplaySummary) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Changed Control"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, name := range summary.Changed {
		table.Append([]string{name})
	}

	state := "clean"
	if summary.Dirty {
		state = "dirty"
	}

	table.SetFooter([]string{fmt.Sprintf("%d steps, form %s", summary.Steps, state)})
	table.Render()
	s.printf("\n%s", tableBuffer.String())

	if summary.Output != "" {
		s.printf("written to %s\n", summary.Output)
	}

	return nil
}

// Edit is not available without a terminal.
func (s *SimpleUI) Edit(EditSession) error {
	return ErrNotInteractive
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
