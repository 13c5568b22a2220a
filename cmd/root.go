// Package cmd provides the root command and CLI setup for formtrack.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/formtrack/internal/adapter"
	"github.com/mouse-blink/formtrack/internal/controller"
	"github.com/mouse-blink/formtrack/internal/domain"
	"github.com/mouse-blink/formtrack/internal/logger"
	m "github.com/mouse-blink/formtrack/internal/model"
	"github.com/mouse-blink/formtrack/pkg/tracker"
)

var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	workflow = domain.NewWorkflow(
		adapter.NewLocalFormFSAdapter(),
		adapter.NewScriptStore(),
		ui,
	)
}

var selectorFlag string
var classnameFlag string
var confirmFlag string
var debugFlag bool
var logDirFlag string
var langFlag string

var confirmPolicy tracker.ConfirmPolicy

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formtrack",
		Short: "Track unsaved changes in HTML forms",
		Long: `Formtrack attaches a change tracker to the forms of HTML documents.

The tracker records the value of every control when it attaches, flags
controls that differ from that baseline with a CSS class and enables the
form's reset control only while something changed.

  formtrack inspect ./site/...          list the tracked controls of every form
  formtrack replay form.html steps.yaml replay scripted edits
  formtrack edit form.html              edit a form interactively`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			policy, err := tracker.ParseConfirmPolicy(confirmFlag)
			if err != nil {
				return err
			}

			confirmPolicy = policy

			return logger.Init(logger.Options{
				Enabled: debugFlag,
				LogDir:  logDirFlag,
				Level:   slog.LevelDebug,
			})
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&selectorFlag, "selector", "s", tracker.DefaultSelector, "CSS selector of the form to track")
	flags.StringVarP(&classnameFlag, "classname", "c", tracker.DefaultClassname, "class added to changed controls and their labels")
	flags.StringVar(&confirmFlag, "confirm", tracker.ConfirmWhenDirty.String(), "when resets need confirmation: when-dirty, always or never")
	flags.BoolVarP(&debugFlag, "debug", "d", false, "write debug logs")
	flags.StringVar(&logDirFlag, "log-dir", "", "directory for debug logs (default ~/.formtrack/logs)")
	flags.StringVar(&langFlag, "lang", "", "language of the reset prompt (default from LANG)")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()

	logger.Close()

	if err != nil {
		os.Exit(1)
	}
}

func trackerArgs() domain.TrackerArgs {
	return domain.TrackerArgs{
		Selector:  selectorFlag,
		Classname: classnameFlag,
		Policy:    confirmPolicy,
		Lang:      langFlag,
	}
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
