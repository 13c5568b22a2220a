package controller

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/mouse-blink/formtrack/pkg/dom"
	"github.com/mouse-blink/formtrack/pkg/tracker"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// editorRow is one logical control. Radio groups have several elements.
type editorRow struct {
	name     string
	kind     tracker.Kind
	elements []dom.Element
	option   int // focused radio or option of a multiple select
}

// editorState is shared by all copies of the model; the document and the
// tracker are mutable anyway.
type editorState struct {
	session EditSession
	rows    []*editorRow
}

type editorModel struct {
	state    *editorState
	keys     keyMap
	help     help.Model
	input    textinput.Model
	cursor   int
	editing  bool
	status   string
	width    int
	height   int
	quitting bool
}

func newEditorModel(session EditSession) editorModel {
	if session.Gate == nil {
		session.Gate = &ResetGate{}
	}

	input := textinput.New()
	input.Prompt = "› "

	return editorModel{
		state: &editorState{session: session, rows: buildRows(session)},
		keys:  defaultKeyMap(),
		help:  help.New(),
		input: input,
		width: 80,
	}
}

func buildRows(session EditSession) []*editorRow {
	form := session.Tracker.Form()

	var rows []*editorRow

	for _, control := range session.Tracker.Controls() {
		selector := `[name="` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(control.Name) + `"]`

		elements, err := session.Doc.QuerySelectorAll(form, selector)
		if err != nil {
			continue
		}

		if control.Kind == tracker.KindRadio {
			elements = filterType(elements, "radio")
		} else if len(elements) > 1 {
			elements = elements[:1]
		}

		if len(elements) == 0 {
			continue
		}

		row := &editorRow{name: control.Name, kind: control.Kind, elements: elements}

		for i, el := range elements {
			if control.Kind == tracker.KindRadio && el.Checked() {
				row.option = i
			}
		}

		rows = append(rows, row)
	}

	return rows
}

func filterType(elements []dom.Element, typ string) []dom.Element {
	kept := elements[:0]

	for _, el := range elements {
		if el.Type() == typ {
			kept = append(kept, el)
		}
	}

	return kept
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		return m, nil

	case statusMsg:
		m.status = msg.text
		if msg.err != nil {
			m.status = errorStyle.Render(msg.err.Error())
		}

		return m, nil

	case tea.KeyMsg:
		switch {
		case m.state.session.Gate.Pending():
			return m.updateDialog(msg), nil
		case m.editing:
			return m.updateInput(msg)
		default:
			return m.updateKeys(msg)
		}
	}

	return m, nil
}

func (m editorModel) updateDialog(msg tea.KeyMsg) editorModel {
	gate := m.state.session.Gate

	switch {
	case key.Matches(msg, m.keys.Yes):
		gate.Confirm()
		m.status = "form reset"
	case key.Matches(msg, m.keys.No):
		gate.Cancel()
		m.status = "reset cancelled"
	}

	return m
}

func (m editorModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	row := m.row()
	doc := m.state.session.Doc

	if key.Matches(msg, m.keys.Commit) {
		m.editing = false
		m.input.Blur()

		if row != nil && row.kind == tracker.KindFile && msg.String() == "enter" {
			doc.SetFile(row.elements[0], m.input.Value())
		}

		return m, nil
	}

	before := m.input.Value()

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	if row != nil && row.kind == tracker.KindText && m.input.Value() != before {
		doc.Input(row.elements[0], m.input.Value())
	}

	return m, cmd
}

func (m editorModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	session := m.state.session

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.state.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		return m.toggle()
	case key.Matches(msg, m.keys.Left):
		m.step(-1)
	case key.Matches(msg, m.keys.Right):
		m.step(1)
	case key.Matches(msg, m.keys.Indeterminate):
		if row := m.row(); row != nil && row.kind == tracker.KindCheckbox {
			session.Doc.SetIndeterminate(row.elements[0], true)
			session.Tracker.HandleEvent(row.elements[0])
		}
	case key.Matches(msg, m.keys.Reset):
		m.status = m.reset()
	case key.Matches(msg, m.keys.Unbind):
		session.Tracker.Unbind()
		m.status = "tracking stopped"
	case key.Matches(msg, m.keys.Rebaseline):
		session.Tracker.Rebaseline()
		m.status = "current values accepted as baseline"
	case key.Matches(msg, m.keys.Copy):
		return m, copyCmd(session.Doc.String())
	case key.Matches(msg, m.keys.Write):
		return m, saveCmd(session.Save, session.Doc.String())
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m editorModel) toggle() (tea.Model, tea.Cmd) {
	row := m.row()
	if row == nil {
		return m, nil
	}

	doc := m.state.session.Doc
	el := row.elements[row.option%len(row.elements)]

	switch row.kind {
	case tracker.KindText, tracker.KindFile:
		if _, disabled := el.Attribute("disabled"); disabled {
			m.status = row.name + " is disabled"
			return m, nil
		}

		m.editing = true
		m.input.SetValue(el.Value())
		m.input.CursorEnd()

		return m, m.input.Focus()
	case tracker.KindCheckbox, tracker.KindRadio:
		doc.Click(el)
	case tracker.KindSelectMultiple:
		doc.Choose(el, toggleIndex(el.SelectedIndexes(), row.option)...)
	}

	return m, nil
}

// step moves through the options of radios and selects.
func (m editorModel) step(delta int) {
	row := m.row()
	if row == nil {
		return
	}

	doc := m.state.session.Doc

	switch row.kind {
	case tracker.KindRadio:
		row.option = wrap(row.option+delta, len(row.elements))
		doc.Click(row.elements[row.option])
	case tracker.KindSelectOne:
		el := row.elements[0]

		current := 0
		if selected := el.SelectedIndexes(); len(selected) > 0 {
			current = selected[0]
		}

		if next := current + delta; next >= 0 && next < len(doc.Options(el)) {
			doc.Choose(el, next)
		}
	case tracker.KindSelectMultiple:
		if n := len(doc.Options(row.elements[0])); n > 0 {
			row.option = wrap(row.option+delta, n)
		}
	}
}

func (m editorModel) reset() string {
	session := m.state.session

	control := session.Tracker.ResetControl()
	if control == nil {
		return "the form has no reset control"
	}

	if session.Doc.Click(control) == nil {
		return "nothing to reset"
	}

	if session.Gate.Pending() {
		return ""
	}

	return "form reset"
}

func (m editorModel) row() *editorRow {
	if m.cursor < 0 || m.cursor >= len(m.state.rows) {
		return nil
	}

	return m.state.rows[m.cursor]
}

func copyCmd(content string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(content); err != nil {
			return statusMsg{err: fmt.Errorf("failed to copy: %w", err)}
		}

		return statusMsg{text: "html copied to clipboard"}
	}
}

// saveCmd writes content, which must be rendered before the command is
// returned: the command runs off the update loop.
func saveCmd(save func([]byte) error, content string) tea.Cmd {
	return func() tea.Msg {
		if save == nil {
			return statusMsg{text: "no output path given"}
		}

		if err := save([]byte(content)); err != nil {
			return statusMsg{err: fmt.Errorf("failed to write output: %w", err)}
		}

		return statusMsg{text: "output written"}
	}
}

func (m editorModel) View() string {
	if m.quitting {
		return ""
	}

	main := m.mainView()

	if m.state.session.Gate.Pending() {
		dialog := dialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			m.state.session.Prompt,
			"",
			mutedStyle.Render("y reset • n keep editing"),
		))

		return overlay.New(staticModel(dialog), staticModel(main), overlay.Center, overlay.Center, 0, 0).View()
	}

	return main
}

func (m editorModel) mainView() string {
	session := m.state.session

	title := titleStyle.Render("Form Editor " + accentStyle.Render(session.File.ShortPath))

	state := cleanStyle.Render("clean")
	if session.Tracker.IsDirty() {
		state = changedStyle.Render(fmt.Sprintf("dirty (%d changed)", len(session.Tracker.Changed())))
	}

	if !session.Tracker.Bound() {
		state += mutedStyle.Render("  not tracking")
	}

	summary := summaryStyle.Render("State: " + state)

	changed := make(map[string]bool)
	for _, name := range session.Tracker.Changed() {
		changed[name] = true
	}

	nameWidth := 0
	for _, row := range m.state.rows {
		nameWidth = max(nameWidth, lipgloss.Width(row.name))
	}

	lines := make([]string, 0, len(m.state.rows))

	for i, row := range m.state.rows {
		marker := "  "
		if changed[row.name] {
			marker = changedStyle.Render("● ")
		}

		name := fmt.Sprintf("%-*s", nameWidth, row.name)
		if i == m.cursor {
			name = cursorStyle.Render(name)
		}

		value := m.renderValue(row)
		if i == m.cursor && m.editing {
			value = m.input.View()
		}

		lines = append(lines, fmt.Sprintf("%s%s  %s", marker, name, value))
	}

	if len(lines) == 0 {
		lines = append(lines, mutedStyle.Render("no observable controls"))
	}

	body := lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(lines, "\n"))

	footer := []string{"", lipgloss.NewStyle().Padding(0, 2).Render(m.help.View(m.keys))}
	if m.status != "" {
		footer = append([]string{"", lipgloss.NewStyle().Padding(0, 2).Render(m.status)}, footer...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, append([]string{title, summary, body}, footer...)...)
}

func (m editorModel) renderValue(row *editorRow) string {
	doc := m.state.session.Doc
	el := row.elements[0]
	width := max(m.width-20, 10)

	switch row.kind {
	case tracker.KindCheckbox:
		switch {
		case el.Indeterminate():
			return "[-]"
		case el.Checked():
			return "[x]"
		default:
			return "[ ]"
		}
	case tracker.KindRadio:
		parts := make([]string, 0, len(row.elements))

		for _, radio := range row.elements {
			mark := "( )"
			if radio.Checked() {
				mark = "(•)"
			}

			parts = append(parts, mark+" "+radio.Value())
		}

		return truncateToWidth(strings.Join(parts, "  "), width)
	case tracker.KindSelectOne:
		labels := doc.Options(el)
		if selected := el.SelectedIndexes(); len(selected) > 0 && selected[0] < len(labels) {
			return "‹ " + labels[selected[0]] + " ›"
		}

		return mutedStyle.Render("(empty)")
	case tracker.KindSelectMultiple:
		selected := make(map[int]bool)
		for _, idx := range el.SelectedIndexes() {
			selected[idx] = true
		}

		parts := make([]string, 0)

		for i, label := range doc.Options(el) {
			mark := "[ ]"
			if selected[i] {
				mark = "[x]"
			}

			part := mark + " " + label
			if i == row.option && row == m.row() {
				part = accentStyle.Underline(true).Render(part)
			}

			parts = append(parts, part)
		}

		return strings.Join(parts, "  ")
	default:
		if el.Value() == "" {
			return mutedStyle.Render("(empty)")
		}

		return truncateToWidth(fmt.Sprintf("%q", el.Value()), width)
	}
}

// staticModel renders a fixed string, for composing overlays.
type staticModel string

func (s staticModel) Init() tea.Cmd                       { return nil }
func (s staticModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return s, nil }
func (s staticModel) View() string                        { return string(s) }

func toggleIndex(indexes []int, idx int) []int {
	toggled := make([]int, 0, len(indexes)+1)
	found := false

	for _, i := range indexes {
		if i == idx {
			found = true
			continue
		}

		toggled = append(toggled, i)
	}

	if !found {
		toggled = append(toggled, idx)
	}

	return toggled
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}

	return ((i % n) + n) % n
}
