package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/formtrack/internal/adapter"
	adaptermocks "github.com/mouse-blink/formtrack/internal/adapter/mocks"
	"github.com/mouse-blink/formtrack/internal/controller"
	controllermocks "github.com/mouse-blink/formtrack/internal/controller/mocks"
	m "github.com/mouse-blink/formtrack/internal/model"
	"github.com/mouse-blink/formtrack/pkg/tracker"
)

const signupHTML = `<form id="signup">
  <label for="email">Email</label><input id="email" name="email" value="">
  <label><input type="checkbox" id="subscribe" name="subscribe"> Subscribe</label>
  <select name="topics" multiple>
    <option>go</option><option>html</option><option>css</option><option>js</option><option>ux</option>
  </select>
  <input type="reset" id="reset">
</form>`

func parseHTML(t *testing.T, src string) *adapter.HTMLDocument {
	t.Helper()

	doc, err := adapter.ParseHTML(strings.NewReader(src))
	require.NoError(t, err)

	return doc
}

func formFile(path string) m.FormFile {
	return m.FormFile{Path: m.Path(path), ShortPath: path}
}

type testDeps struct {
	fs      *adaptermocks.MockFormFSAdapter
	scripts *adaptermocks.MockScriptStore
	ui      *controllermocks.MockUI
	wf      Workflow
}

func newTestWorkflow(t *testing.T) testDeps {
	t.Helper()

	deps := testDeps{
		fs:      adaptermocks.NewMockFormFSAdapter(t),
		scripts: adaptermocks.NewMockScriptStore(t),
		ui:      controllermocks.NewMockUI(t),
	}
	deps.wf = NewWorkflow(deps.fs, deps.scripts, deps.ui)

	return deps
}

func TestWorkflow_Inspect(t *testing.T) {
	t.Run("reports every form sorted by path", func(t *testing.T) {
		d := newTestWorkflow(t)

		files := []m.FormFile{formFile("c.html"), formFile("a.html"), formFile("b.html")}
		d.fs.EXPECT().Get([]m.Path{"./..."}).Return(files, nil)
		d.fs.EXPECT().Load(m.Path("a.html")).Return(parseHTML(t, signupHTML), nil)
		d.fs.EXPECT().Load(m.Path("b.html")).Return(parseHTML(t, `<form><input type="wizard" name="w"><input name="n"></form>`), nil)
		d.fs.EXPECT().Load(m.Path("c.html")).Return(nil, errors.New("permission denied"))

		var got []m.FormReport
		d.ui.EXPECT().DisplayInspection(mock.Anything).Run(func(reports []m.FormReport) {
			got = reports
		}).Return(nil)

		err := d.wf.Inspect(InspectArgs{Paths: []m.Path{"./..."}, Threads: 2})
		require.NoError(t, err)

		require.Len(t, got, 3)
		assert.Equal(t, m.Path("a.html"), got[0].File.Path)
		assert.Equal(t, m.Path("b.html"), got[1].File.Path)
		assert.Equal(t, m.Path("c.html"), got[2].File.Path)

		signup := got[0]
		require.NoError(t, signup.Err)
		assert.True(t, signup.Reset)
		require.Len(t, signup.Controls, 3)
		assert.Equal(t, m.ControlReport{
			Name: "topics", Type: "select-multiple", Kind: "select-multiple", Event: "change", Elements: 1,
		}, signup.Controls[2])
		assert.Equal(t, "0", signup.Controls[1].Baseline)
		assert.Empty(t, signup.Warnings)

		wizard := got[1]
		require.NoError(t, wizard.Err)
		assert.False(t, wizard.Reset)
		require.Len(t, wizard.Controls, 1)
		require.Len(t, wizard.Warnings, 1)
		assert.Contains(t, wizard.Warnings[0], "unsupported control type")
		assert.Contains(t, wizard.Warnings[0], "type=wizard")

		assert.EqualError(t, got[2].Err, "permission denied")
	})

	t.Run("records option warnings and target errors", func(t *testing.T) {
		d := newTestWorkflow(t)

		d.fs.EXPECT().Get(mock.Anything).Return([]m.FormFile{formFile("a.html")}, nil)
		d.fs.EXPECT().Load(m.Path("a.html")).Return(parseHTML(t, signupHTML), nil)

		var got []m.FormReport
		d.ui.EXPECT().DisplayInspection(mock.Anything).Run(func(reports []m.FormReport) {
			got = reports
		}).Return(nil)

		err := d.wf.Inspect(InspectArgs{Tracker: TrackerArgs{Selector: "#missing", Classname: "two words"}})
		require.NoError(t, err)

		require.Len(t, got, 1)
		require.ErrorIs(t, got[0].Err, tracker.ErrTargetNotFound)
		require.Len(t, got[0].Warnings, 1)
		assert.Contains(t, got[0].Warnings[0], "invalid tracker option")
	})

	t.Run("fails when files cannot be listed", func(t *testing.T) {
		d := newTestWorkflow(t)

		d.fs.EXPECT().Get(mock.Anything).Return(nil, errors.New("no such directory"))

		err := d.wf.Inspect(InspectArgs{Paths: []m.Path{"missing"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "get forms")
	})
}

func TestWorkflow_Edit(t *testing.T) {
	t.Run("hands a wired session to the ui", func(t *testing.T) {
		d := newTestWorkflow(t)
		doc := parseHTML(t, signupHTML)

		d.fs.EXPECT().Get([]m.Path{"signup.html"}).Return([]m.FormFile{formFile("signup.html")}, nil)
		d.fs.EXPECT().Load(m.Path("signup.html")).Return(doc, nil)
		d.fs.EXPECT().Save(m.Path("out.html"), mock.MatchedBy(func(content []byte) bool {
			return strings.Contains(string(content), `id="signup"`)
		})).Return(nil)

		d.ui.EXPECT().Edit(mock.Anything).RunAndReturn(func(session controller.EditSession) error {
			assert.Same(t, doc, session.Doc)
			assert.Equal(t, controller.ResetPrompt("de"), session.Prompt)

			email, err := doc.First("#email")
			require.NoError(t, err)

			_, disabled := email.Attribute("disabled")
			assert.True(t, disabled, "binding applied")

			subscribe, err := doc.First("#subscribe")
			require.NoError(t, err)

			doc.Click(subscribe)
			assert.True(t, session.Tracker.IsDirty())

			reset := session.Tracker.ResetControl()
			doc.Click(reset)
			require.True(t, session.Gate.Pending())
			session.Gate.Confirm()
			assert.False(t, session.Tracker.IsDirty())

			require.NotNil(t, session.Save)

			return session.Save([]byte(doc.String()))
		})

		err := d.wf.Edit(EditArgs{
			Path:     "signup.html",
			Output:   "out.html",
			Bindings: []string{"enable:#email=#subscribe"},
			Tracker:  TrackerArgs{Lang: "de"},
		})
		require.NoError(t, err)
	})

	t.Run("overwrites the source only while it is unchanged on disk", func(t *testing.T) {
		d := newTestWorkflow(t)

		file := m.FormFile{Path: "signup.html", ShortPath: "signup.html", Hash: "a1"}
		d.fs.EXPECT().Get([]m.Path{"signup.html"}).Return([]m.FormFile{file}, nil)
		d.fs.EXPECT().Load(m.Path("signup.html")).Return(parseHTML(t, signupHTML), nil)
		d.fs.EXPECT().HashFile(m.Path("signup.html")).Return("a1", nil).Once()
		d.fs.EXPECT().HashFile(m.Path("signup.html")).Return("b2", nil).Once()
		d.fs.EXPECT().Save(m.Path("signup.html"), []byte("first")).Return(nil).Once()

		d.ui.EXPECT().Edit(mock.Anything).RunAndReturn(func(session controller.EditSession) error {
			require.NoError(t, session.Save([]byte("first")))

			return session.Save([]byte("second"))
		})

		err := d.wf.Edit(EditArgs{Path: "signup.html", Output: "signup.html"})
		require.ErrorIs(t, err, ErrSourceModified)
	})

	t.Run("rejects malformed bindings", func(t *testing.T) {
		d := newTestWorkflow(t)

		d.fs.EXPECT().Get(mock.Anything).Return([]m.FormFile{formFile("signup.html")}, nil)

		err := d.wf.Edit(EditArgs{Path: "signup.html", Bindings: []string{"toggle:#a=#b"}})
		require.ErrorIs(t, err, ErrInvalidBinding)
	})

	t.Run("requires an html document", func(t *testing.T) {
		d := newTestWorkflow(t)

		d.fs.EXPECT().Get(mock.Anything).Return(nil, nil)

		err := d.wf.Edit(EditArgs{Path: "notes.txt"})
		require.ErrorIs(t, err, ErrNoForm)
	})

	t.Run("passes ui errors through", func(t *testing.T) {
		d := newTestWorkflow(t)

		d.fs.EXPECT().Get(mock.Anything).Return([]m.FormFile{formFile("signup.html")}, nil)
		d.fs.EXPECT().Load(mock.Anything).Return(parseHTML(t, signupHTML), nil)
		d.ui.EXPECT().Edit(mock.Anything).Return(controller.ErrNotInteractive)

		err := d.wf.Edit(EditArgs{Path: "signup.html"})
		require.ErrorIs(t, err, controller.ErrNotInteractive)
	})
}
