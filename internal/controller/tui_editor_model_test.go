package controller

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/formtrack/internal/adapter"
	m "github.com/mouse-blink/formtrack/internal/model"
	"github.com/mouse-blink/formtrack/pkg/dom"
	"github.com/mouse-blink/formtrack/pkg/tracker"
)

const editorForm = `<form id="profile">
  <label for="nick">Nick</label><input id="nick" name="nick" value="ann">
  <input type="checkbox" name="news">
  <input type="radio" name="plan" value="free" checked>
  <input type="radio" name="plan" value="pro">
  <select name="size"><option>S</option><option>M</option></select>
  <select name="tags" multiple><option>a</option><option>b</option></select>
  <input type="reset">
</form>`

const (
	rowNick = iota
	rowNews
	rowPlan
	rowSize
	rowTags
)

func newTestEditor(t *testing.T, opts ...tracker.Option) (editorModel, *adapter.HTMLDocument, *tracker.Tracker) {
	t.Helper()

	doc, err := adapter.ParseHTML(strings.NewReader(editorForm))
	require.NoError(t, err)

	gate := &ResetGate{}

	tr, err := tracker.New(doc, append([]tracker.Option{tracker.WithOnConfirmReset(gate.Request)}, opts...)...)
	require.NoError(t, err)

	model := newEditorModel(EditSession{
		File:    m.FormFile{ShortPath: "profile.html"},
		Doc:     doc,
		Tracker: tr,
		Gate:    gate,
		Prompt:  "Discard changes?",
	})

	return model, doc, tr
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, model editorModel, msgs ...tea.Msg) editorModel {
	t.Helper()

	for _, msg := range msgs {
		updated, _ := model.Update(msg)

		var ok bool

		model, ok = updated.(editorModel)
		require.True(t, ok)
	}

	return model
}

func focus(model editorModel, row int) editorModel {
	model.cursor = row
	return model
}

func element(t *testing.T, doc *adapter.HTMLDocument, selector string) dom.Element {
	t.Helper()

	el, err := doc.First(selector)
	require.NoError(t, err)
	require.NotNil(t, el)

	return el
}

func TestEditorModel_Rows(t *testing.T) {
	model, _, _ := newTestEditor(t)

	names := make([]string, 0, len(model.state.rows))
	for _, row := range model.state.rows {
		names = append(names, row.name)
	}

	assert.Equal(t, []string{"nick", "news", "plan", "size", "tags"}, names)
	assert.Len(t, model.state.rows[rowPlan].elements, 2)
}

func TestEditorModel_TextInput(t *testing.T) {
	model, doc, tr := newTestEditor(t)

	model = send(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, model.editing)

	model = send(t, model, runes("x"))
	assert.Equal(t, "annx", element(t, doc, "#nick").Value())
	assert.Equal(t, []string{"nick"}, tr.Changed())
	assert.Contains(t, model.View(), "dirty (1 changed)")

	model = send(t, model, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "ann", element(t, doc, "#nick").Value())
	assert.False(t, tr.IsDirty())

	model = send(t, model, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, model.editing)
}

func TestEditorModel_Checkbox(t *testing.T) {
	model, doc, tr := newTestEditor(t)
	news := element(t, doc, `[name="news"]`)

	model = send(t, model, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, rowNews, model.cursor)
	assert.True(t, news.Checked())
	assert.Equal(t, []string{"news"}, tr.Changed())
	assert.True(t, news.HasClass(tracker.DefaultClassname))

	model = send(t, model, tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, tr.IsDirty())

	send(t, model, runes("i"))
	assert.True(t, news.Indeterminate())
	assert.Equal(t, []string{"news"}, tr.Changed())
}

func TestEditorModel_Radio(t *testing.T) {
	model, doc, tr := newTestEditor(t)
	model = focus(model, rowPlan)

	model = send(t, model, tea.KeyMsg{Type: tea.KeyRight})
	assert.True(t, element(t, doc, `[value="pro"]`).Checked())
	assert.Equal(t, []string{"plan"}, tr.Changed())

	send(t, model, tea.KeyMsg{Type: tea.KeyLeft})
	assert.True(t, element(t, doc, `[value="free"]`).Checked())
	assert.False(t, tr.IsDirty())
}

func TestEditorModel_Selects(t *testing.T) {
	t.Run("single select steps within bounds", func(t *testing.T) {
		model, doc, tr := newTestEditor(t)
		size := element(t, doc, `[name="size"]`)
		model = focus(model, rowSize)

		model = send(t, model, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})
		assert.Equal(t, []int{1}, size.SelectedIndexes())
		assert.True(t, tr.IsDirty())

		send(t, model, tea.KeyMsg{Type: tea.KeyLeft})
		assert.Equal(t, []int{0}, size.SelectedIndexes())
		assert.False(t, tr.IsDirty())
	})

	t.Run("multiple select toggles the focused option", func(t *testing.T) {
		model, doc, tr := newTestEditor(t)
		tags := element(t, doc, `[name="tags"]`)
		model = focus(model, rowTags)

		model = send(t, model, tea.KeyMsg{Type: tea.KeySpace}, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeySpace})
		assert.Equal(t, []int{0, 1}, tags.SelectedIndexes())
		assert.Equal(t, []string{"tags"}, tr.Changed())

		send(t, model, tea.KeyMsg{Type: tea.KeySpace}, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeySpace})
		assert.Empty(t, tags.SelectedIndexes())
		assert.False(t, tr.IsDirty())
	})
}

func TestEditorModel_Reset(t *testing.T) {
	t.Run("clean form has nothing to reset", func(t *testing.T) {
		model, _, _ := newTestEditor(t)

		model = send(t, model, runes("r"))
		assert.Equal(t, "nothing to reset", model.status)
	})

	t.Run("dialog cancels and confirms", func(t *testing.T) {
		model, doc, tr := newTestEditor(t)
		model = focus(model, rowNews)
		model = send(t, model, tea.KeyMsg{Type: tea.KeySpace}, runes("r"))

		require.True(t, model.state.session.Gate.Pending())
		assert.Contains(t, model.View(), "Discard changes?")

		model = send(t, model, runes("n"))
		assert.Equal(t, "reset cancelled", model.status)
		assert.True(t, tr.IsDirty())

		model = send(t, model, runes("r"), runes("y"))
		assert.Equal(t, "form reset", model.status)
		assert.False(t, tr.IsDirty())
		assert.False(t, element(t, doc, `[name="news"]`).Checked())
		assert.NotContains(t, model.View(), "Discard changes?")
	})

	t.Run("never policy resets without dialog", func(t *testing.T) {
		model, _, tr := newTestEditor(t, tracker.WithConfirmPolicy(tracker.ConfirmNever))
		model = focus(model, rowNews)

		model = send(t, model, tea.KeyMsg{Type: tea.KeySpace}, runes("r"))
		assert.Equal(t, "form reset", model.status)
		assert.False(t, tr.IsDirty())
	})
}

func TestEditorModel_TrackerCommands(t *testing.T) {
	t.Run("rebaseline accepts the current values", func(t *testing.T) {
		model, doc, tr := newTestEditor(t)
		model = focus(model, rowNews)

		send(t, model, tea.KeyMsg{Type: tea.KeySpace}, runes("b"))
		assert.False(t, tr.IsDirty())
		assert.True(t, element(t, doc, `[name="news"]`).Checked())
	})

	t.Run("unbind stops tracking", func(t *testing.T) {
		model, _, tr := newTestEditor(t)
		model = focus(model, rowNews)

		model = send(t, model, runes("u"), tea.KeyMsg{Type: tea.KeySpace})
		assert.False(t, tr.Bound())
		assert.False(t, tr.IsDirty())
		assert.Contains(t, model.View(), "not tracking")
	})
}

func TestEditorModel_Commands(t *testing.T) {
	t.Run("copy", func(t *testing.T) {
		original := writeClipboard
		defer func() { writeClipboard = original }()

		var copied string
		writeClipboard = func(s string) error {
			copied = s
			return nil
		}

		model, _, _ := newTestEditor(t)

		_, cmd := model.Update(runes("y"))
		require.NotNil(t, cmd)

		model = send(t, model, cmd())
		assert.Equal(t, "html copied to clipboard", model.status)
		assert.Contains(t, copied, `id="profile"`)
	})

	t.Run("write without output", func(t *testing.T) {
		model, _, _ := newTestEditor(t)

		_, cmd := model.Update(runes("w"))
		require.NotNil(t, cmd)
		assert.Equal(t, statusMsg{text: "no output path given"}, cmd())
	})

	t.Run("write renders before returning", func(t *testing.T) {
		model, doc, _ := newTestEditor(t)

		var written []byte
		model.state.session.Save = func(content []byte) error {
			written = content
			return nil
		}

		_, cmd := model.Update(runes("w"))
		require.NotNil(t, cmd)

		// Edits made while the command is in flight are not part of the output.
		doc.Input(element(t, doc, `[name="nick"]`), "zed")

		model = send(t, model, cmd())
		assert.Equal(t, "output written", model.status)
		assert.Contains(t, string(written), `value="ann"`)
		assert.NotContains(t, string(written), `value="zed"`)
	})

	t.Run("write failure", func(t *testing.T) {
		msg := saveCmd(func([]byte) error { return errors.New("disk full") }, "<html>")()

		status, ok := msg.(statusMsg)
		require.True(t, ok)
		require.Error(t, status.err)
		assert.Contains(t, status.err.Error(), "disk full")
	})

	t.Run("quit", func(t *testing.T) {
		model, _, _ := newTestEditor(t)

		updated, cmd := model.Update(runes("q"))
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Empty(t, updated.View())
	})
}

func TestToggleIndex(t *testing.T) {
	assert.Equal(t, []int{1}, toggleIndex([]int{1, 3}, 3))
	assert.Equal(t, []int{1, 3}, toggleIndex([]int{1}, 3))
	assert.Equal(t, 1, wrap(-1, 2))
	assert.Equal(t, 0, wrap(2, 2))
}
