package tracker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/formtrack/pkg/dom"
	"github.com/mouse-blink/formtrack/pkg/tracker"
)

const newsletterHTML = `<form id="prefs">
  <input type="checkbox" id="newsletter" name="newsletter">
  <select id="frequency" name="frequency"><option>weekly</option><option>daily</option></select>
  <input type="text" id="email" name="email" value="ada@example.com">
  <input type="text" id="code" name="code">
  <div id="panel">Extra settings</div>
  <button type="reset">Reset</button>
</form>`

func TestBind_Actions(t *testing.T) {
	tests := []struct {
		name   string
		action tracker.Action
		target string
		off    func(t *testing.T, el dom.Element)
		on     func(t *testing.T, el dom.Element)
	}{
		{
			name:   "enable",
			action: tracker.ActionEnable,
			target: "#email",
			off: func(t *testing.T, el dom.Element) {
				assert.True(t, disabled(el))
				assert.Equal(t, "ada@example.com", el.Value())
			},
			on: func(t *testing.T, el dom.Element) { assert.False(t, disabled(el)) },
		},
		{
			name:   "enable and clear",
			action: tracker.ActionEnableClear,
			target: "#email",
			off: func(t *testing.T, el dom.Element) {
				assert.True(t, disabled(el))
				assert.Empty(t, el.Value())
			},
			on: func(t *testing.T, el dom.Element) { assert.False(t, disabled(el)) },
		},
		{
			name:   "disable",
			action: tracker.ActionDisable,
			target: "#email",
			off:    func(t *testing.T, el dom.Element) { assert.False(t, disabled(el)) },
			on: func(t *testing.T, el dom.Element) {
				assert.True(t, disabled(el))
				assert.Equal(t, "ada@example.com", el.Value())
			},
		},
		{
			name:   "disable and clear",
			action: tracker.ActionDisableClear,
			target: "#email",
			off:    func(t *testing.T, el dom.Element) { assert.Equal(t, "ada@example.com", el.Value()) },
			on: func(t *testing.T, el dom.Element) {
				assert.True(t, disabled(el))
				assert.Empty(t, el.Value())
			},
		},
		{
			name:   "show",
			action: tracker.ActionShow,
			target: "#panel",
			off:    func(t *testing.T, el dom.Element) { assert.True(t, hidden(el)) },
			on:     func(t *testing.T, el dom.Element) { assert.False(t, hidden(el)) },
		},
		{
			name:   "hide",
			action: tracker.ActionHide,
			target: "#panel",
			off:    func(t *testing.T, el dom.Element) { assert.False(t, hidden(el)) },
			on:     func(t *testing.T, el dom.Element) { assert.True(t, hidden(el)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parse(t, newsletterHTML)

			dep, err := tracker.Bind(doc, tt.target, "#newsletter", tt.action)
			require.NoError(t, err)
			require.Len(t, dep.Targets(), 1)

			target := first(t, doc, tt.target)
			tt.off(t, target)

			doc.Click(first(t, doc, "#newsletter"))
			tt.on(t, target)
		})
	}
}

func TestBind_ReappliesAfterReset(t *testing.T) {
	doc := parse(t, newsletterHTML)

	_, err := tracker.Bind(doc, "#frequency", "#newsletter", tracker.ActionEnable)
	require.NoError(t, err)

	frequency := first(t, doc, "#frequency")
	newsletter := first(t, doc, "#newsletter")

	doc.Click(newsletter)
	require.False(t, disabled(frequency))

	doc.ResetForm(first(t, doc, "#prefs"))

	assert.False(t, newsletter.Checked())
	assert.True(t, disabled(frequency))
}

func TestBind_WithTracker(t *testing.T) {
	doc := parse(t, newsletterHTML)

	tr, err := tracker.New(doc, tracker.WithConfirmPolicy(tracker.ConfirmNever))
	require.NoError(t, err)

	_, err = tracker.Bind(doc, "#code", "#newsletter", tracker.ActionEnableClear, tracker.WithRoot(tr.Form()))
	require.NoError(t, err)

	newsletter := first(t, doc, "#newsletter")
	code := first(t, doc, "#code")

	doc.Click(newsletter)
	doc.Input(code, "X1")
	assert.Equal(t, []string{"code", "newsletter"}, tr.Changed())

	doc.Click(tr.ResetControl())

	assert.Empty(t, code.Value())
	assert.True(t, disabled(code))
	assert.False(t, tr.IsDirty())
}

func TestBind_ClearingReconcilesTracker(t *testing.T) {
	doc := parse(t, newsletterHTML)

	tr, err := tracker.New(doc)
	require.NoError(t, err)

	_, err = tracker.Bind(doc, "#code", "#newsletter", tracker.ActionEnableClear,
		tracker.WithRoot(tr.Form()),
		tracker.WithTracker(tr),
	)
	require.NoError(t, err)

	newsletter := first(t, doc, "#newsletter")
	code := first(t, doc, "#code")

	doc.Click(newsletter)
	doc.Input(code, "X1")
	require.Equal(t, []string{"code", "newsletter"}, tr.Changed())

	doc.Click(newsletter)

	assert.Empty(t, code.Value())
	assert.Empty(t, tr.Changed())
	assert.False(t, tr.IsDirty())
	assert.False(t, code.HasClass(tracker.DefaultClassname))

	for _, state := range tr.Controls() {
		assert.False(t, state.Changed, state.Name)
	}
}

func TestBind_ClearingMarksValueLoss(t *testing.T) {
	doc := parse(t, newsletterHTML)

	tr, err := tracker.New(doc)
	require.NoError(t, err)

	_, err = tracker.Bind(doc, "#email", "#newsletter", tracker.ActionDisableClear, tracker.WithTracker(tr))
	require.NoError(t, err)

	email := first(t, doc, "#email")

	doc.Click(first(t, doc, "#newsletter"))

	assert.Empty(t, email.Value())
	assert.Equal(t, []string{"email", "newsletter"}, tr.Changed())
	assert.True(t, email.HasClass(tracker.DefaultClassname))
}

func TestBind_Unbind(t *testing.T) {
	doc := parse(t, newsletterHTML)

	dep, err := tracker.Bind(doc, "#email", "#newsletter", tracker.ActionEnable)
	require.NoError(t, err)

	newsletter := first(t, doc, "#newsletter")
	email := first(t, doc, "#email")

	dep.Unbind()
	dep.Unbind()

	doc.Click(newsletter)

	assert.True(t, disabled(email))
	assert.Zero(t, doc.Listeners(newsletter))
}

func TestBind_Custom(t *testing.T) {
	doc := parse(t, newsletterHTML)

	var calls []string

	_, err := tracker.Bind(doc, "#email, #code", "#newsletter", tracker.ActionCustom,
		tracker.WithActionFunc(func(targets []dom.Element, source dom.Element) {
			calls = append(calls, source.ID())
			assert.Len(t, targets, 2)
		}),
	)
	require.NoError(t, err)

	doc.Click(first(t, doc, "#newsletter"))

	assert.Equal(t, []string{"newsletter", "newsletter"}, calls)
}

func TestBind_Predicate(t *testing.T) {
	doc := parse(t, newsletterHTML)

	_, err := tracker.Bind(doc, "#panel", "#code", tracker.ActionShow,
		tracker.WithPredicate(func(source dom.Element) bool {
			return source.Value() == "open"
		}),
	)
	require.NoError(t, err)

	code := first(t, doc, "#code")
	panel := first(t, doc, "#panel")

	doc.Input(code, "op")
	assert.True(t, hidden(panel))

	doc.Input(code, "open")
	assert.False(t, hidden(panel))
}

func TestBind_Errors(t *testing.T) {
	doc := parse(t, newsletterHTML)

	_, err := tracker.Bind(doc, "#email", "#missing", tracker.ActionEnable)
	require.ErrorIs(t, err, tracker.ErrSourceNotFound)

	_, err = tracker.Bind(doc, "#email", "#panel", tracker.ActionEnable)
	require.ErrorIs(t, err, tracker.ErrSourceNotObservable)

	_, err = tracker.Bind(doc, "#email", "#newsletter", tracker.Action("toggle"))
	require.ErrorIs(t, err, tracker.ErrUnknownAction)

	_, err = tracker.Bind(doc, "#email", "#newsletter", tracker.ActionCustom)
	require.ErrorIs(t, err, tracker.ErrUnknownAction)

	_, err = tracker.Bind(doc, "#email", "input[", tracker.ActionEnable)
	require.Error(t, err)

	_, err = tracker.Bind(doc, "#email", "#panel", tracker.ActionShow, tracker.WithRoot(first(t, doc, "#email")))
	require.ErrorIs(t, err, tracker.ErrSourceNotFound)
}

func TestParseAction(t *testing.T) {
	for _, name := range []string{"enable", "enable!", "disable", "disable!", "show", "hide"} {
		action, err := tracker.ParseAction(name)
		require.NoError(t, err)
		assert.Equal(t, tracker.Action(name), action)
	}

	_, err := tracker.ParseAction("custom")
	require.ErrorIs(t, err, tracker.ErrUnknownAction)

	_, err = tracker.ParseAction("")
	require.ErrorIs(t, err, tracker.ErrUnknownAction)
}

func TestBoolValueAndClear(t *testing.T) {
	doc := parse(t, `<form>
  <input type="checkbox" id="c" checked>
  <input type="text" id="t" value="x">
  <select id="m" multiple><option>a</option><option>b</option></select>
  <select id="s"><option>a</option></select>
</form>`)

	checkbox := first(t, doc, "#c")
	text := first(t, doc, "#t")

	assert.True(t, tracker.BoolValue(checkbox))
	assert.True(t, tracker.BoolValue(text))
	assert.False(t, tracker.BoolValue(first(t, doc, "#m")))
	assert.True(t, tracker.BoolValue(first(t, doc, "#s")))

	tracker.Clear(checkbox)
	tracker.Clear(text)

	assert.False(t, tracker.BoolValue(checkbox))
	assert.False(t, tracker.BoolValue(text))
}
