package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/formtrack/internal/domain"
	m "github.com/mouse-blink/formtrack/internal/model"
)

var editOutputFlag string
var editBindFlags []string

// editCmd represents the edit command.
var editCmd = newEditCmd()

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit FILE",
		Short: "Edit a form interactively",
		Long: `Edit opens a terminal editor on the form of FILE. Changed controls are
marked as you edit and resetting asks for confirmation while the form is dirty.

Dependencies make controls follow a source control:
  --bind enable:#frequency=#newsletter`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Edit(domain.EditArgs{
				Path:     m.Path(args[0]),
				Output:   m.Path(editOutputFlag),
				Bindings: editBindFlags,
				Tracker:  trackerArgs(),
			})
		},
	}
	cmd.Flags().StringVarP(&editOutputFlag, "out", "o", "", "path written by the w key")
	cmd.Flags().StringArrayVar(&editBindFlags, "bind", nil, "dependency as action:target=source (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(editCmd)
}
