package adapter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/formtrack/internal/model"
)

func TestDecodeScript(t *testing.T) {
	t.Run("full script", func(t *testing.T) {
		script, err := DecodeScript(strings.NewReader(`
selector: "#profile"
confirm: false
bindings:
  - action: enable
    target: "#email"
    source: "#subscribe"
steps:
  - action: input
    target: '[name="nick"]'
    value: bob
  - action: select
    target: '[name="tags"]'
    indexes: [2, 4]
  - action: reset
    confirm: true
`))
		require.NoError(t, err)

		assert.Equal(t, "#profile", script.Selector)
		assert.False(t, script.ConfirmDefault())
		require.Len(t, script.Bindings, 1)
		assert.Equal(t, "enable", script.Bindings[0].Action)
		require.Len(t, script.Steps, 3)
		assert.Equal(t, m.StepInput, script.Steps[0].Action)
		assert.Equal(t, "bob", script.Steps[0].Value)
		assert.Equal(t, []int{2, 4}, script.Steps[1].Indexes)
		require.NotNil(t, script.Steps[2].Confirm)
		assert.True(t, *script.Steps[2].Confirm)
	})

	t.Run("confirm defaults to true", func(t *testing.T) {
		script, err := DecodeScript(strings.NewReader("steps:\n  - action: reset\n"))
		require.NoError(t, err)
		assert.True(t, script.ConfirmDefault())
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := DecodeScript(strings.NewReader("steps:\n  - action: reset\n    when: later\n"))
		require.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := DecodeScript(strings.NewReader(""))
		require.ErrorIs(t, err, ErrEmptyScript)

		_, err = DecodeScript(strings.NewReader("selector: form\n"))
		require.ErrorIs(t, err, ErrEmptyScript)
	})
}

func TestScriptStore_LoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps:\n  - action: click\n    target: '#agree'\n"), 0o600))

	script, err := NewScriptStore().LoadScript(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, m.StepClick, script.Steps[0].Action)

	_, err = NewScriptStore().LoadScript(m.Path(path + ".missing"))
	require.Error(t, err)
}
