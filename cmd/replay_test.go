package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/formtrack/internal/domain"
	domainmocks "github.com/mouse-blink/formtrack/internal/domain/mocks"
	"github.com/mouse-blink/formtrack/pkg/tracker"
)

func TestReplayCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	swapWorkflow(t, mockWorkflow)

	mockWorkflow.On("Replay", mock.MatchedBy(func(args domain.ReplayArgs) bool {
		return args.Path == "signup.html" &&
			args.Script == "signup.yaml" &&
			args.Output == "out.html" &&
			args.Tracker.Policy == tracker.ConfirmNever
	})).Return(nil)

	cmd := newRootCmd()
	cmd.AddCommand(newReplayCmd())
	cmd.SetArgs([]string{"--confirm", "never", "replay", "signup.html", "signup.yaml", "-o", "out.html"})

	require.NoError(t, cmd.Execute())
}

func TestReplayCmd_RequiresTwoArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	swapWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newReplayCmd())
	cmd.SetArgs([]string{"replay", "signup.html"})

	require.Error(t, cmd.Execute())
	mockWorkflow.AssertNotCalled(t, "Replay", mock.Anything)
}
