package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/formtrack/internal/domain"
	m "github.com/mouse-blink/formtrack/internal/model"
)

var replayOutputFlag string

// replayCmd represents the replay command.
var replayCmd = newReplayCmd()

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay FILE SCRIPT",
		Short: "Replay scripted edits against a form",
		Long: `Replay loads a YAML script of interactions (input, click, select, file,
indeterminate, reset, mark, rebaseline, unbind) and shows the tracker state
after every step.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Replay(domain.ReplayArgs{
				Path:    m.Path(args[0]),
				Script:  m.Path(args[1]),
				Output:  m.Path(replayOutputFlag),
				Tracker: trackerArgs(),
			})
		},
	}
	cmd.Flags().StringVarP(&replayOutputFlag, "out", "o", "", "write the resulting document to this path")

	return cmd
}

func init() {
	rootCmd.AddCommand(replayCmd)
}
