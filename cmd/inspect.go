package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/formtrack/internal/domain"
)

var inspectParallelFlag int

// inspectCmd represents the inspect command.
var inspectCmd = newInspectCmd()

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [paths...]",
		Short: "List the controls a tracker observes in each form",
		Long: `Inspect attaches a tracker to the form of every HTML document found and
shows which controls it observes, their baseline values and any warnings.

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./site/...     recursively scan site directory
  - a.html b.html  individual documents`,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Inspect(domain.InspectArgs{
				Paths:   parsePaths(args),
				Threads: inspectParallelFlag,
				Tracker: trackerArgs(),
			})
		},
	}
	cmd.Flags().IntVarP(&inspectParallelFlag, "parallel", "p", 1, "number of documents processed in parallel")

	return cmd
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
