package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/formtrack/internal/model"
)

func TestTUI_DisplayInspection(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf, strings.NewReader(""))

	err := tui.DisplayInspection([]m.FormReport{
		{
			File:     m.FormFile{ShortPath: "signup.html"},
			Controls: []m.ControlReport{{Name: "email", Type: "email", Event: "input"}},
			Warnings: []string{"invalid tracker option"},
		},
		{File: m.FormFile{ShortPath: "broken.html"}, Err: errors.New("no form")},
	})
	require.Error(t, err)

	output := buf.String()
	assert.Contains(t, output, "signup.html")
	assert.Contains(t, output, "email")
	assert.Contains(t, output, "invalid tracker option")
	assert.Contains(t, output, "no form")
}

func TestTUI_DisplayReplay(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf, strings.NewReader(""))

	tui.DisplayReplayStep(m.StepReport{Index: 2, Action: m.StepClick, Target: "#agree", Dirty: true, Changed: []string{"agree"}})
	require.NoError(t, tui.DisplayReplaySummary(m.ReplaySummary{
		File:    m.FormFile{ShortPath: "signup.html"},
		Steps:   3,
		Dirty:   true,
		Changed: []string{"agree"},
		Output:  "out.html",
	}))

	output := buf.String()
	assert.Contains(t, output, "click")
	assert.Contains(t, output, "#agree")
	assert.Contains(t, output, "dirty: agree")
	assert.Contains(t, output, "out.html")
}

func TestTUI_Edit_RequiresTerminal(t *testing.T) {
	tui := NewTUI(&bytes.Buffer{}, strings.NewReader(""))
	require.ErrorIs(t, tui.Edit(EditSession{}), ErrNotInteractive)
}
