// Package domain contains the use cases of formtrack: inspecting documents,
// replaying scripted interactions and interactive editing.
package domain

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/formtrack/internal/adapter"
	"github.com/mouse-blink/formtrack/internal/controller"
	"github.com/mouse-blink/formtrack/internal/logger"
	m "github.com/mouse-blink/formtrack/internal/model"
	"github.com/mouse-blink/formtrack/pkg/tracker"
)

// TrackerArgs holds the tracker settings shared by all commands.
type TrackerArgs struct {
	Selector  string
	Classname string
	Policy    tracker.ConfirmPolicy
	Lang      string
}

// InspectArgs contains the arguments for inspecting documents.
type InspectArgs struct {
	Paths   []m.Path
	Threads int
	Tracker TrackerArgs
}

// ReplayArgs contains the arguments for replaying a script.
type ReplayArgs struct {
	Path    m.Path
	Script  m.Path
	Output  m.Path
	Tracker TrackerArgs
}

// EditArgs contains the arguments for the interactive editor.
type EditArgs struct {
	Path     m.Path
	Output   m.Path
	Bindings []string // action:target=source
	Tracker  TrackerArgs
}

// Workflow defines the formtrack use cases.
type Workflow interface {
	Inspect(args InspectArgs) error
	Replay(args ReplayArgs) error
	Edit(args EditArgs) error
}

type workflow struct {
	fsAdapter adapter.FormFSAdapter
	scripts   adapter.ScriptStore
	ui        controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(fsAdapter adapter.FormFSAdapter, scripts adapter.ScriptStore, ui controller.UI) Workflow {
	return &workflow{
		fsAdapter: fsAdapter,
		scripts:   scripts,
		ui:        ui,
	}
}

// Inspect attaches a tracker to every document under the given paths and
// displays what it observes. Documents are processed concurrently; a
// failing document is reported without stopping the others.
func (w *workflow) Inspect(args InspectArgs) error {
	files, err := w.fsAdapter.Get(args.Paths)
	if err != nil {
		return fmt.Errorf("failed to get forms: %w", err)
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	reports := make([]m.FormReport, len(files))

	var g errgroup.Group

	g.SetLimit(threads)

	for i, file := range files {
		g.Go(func() error {
			reports[i] = w.inspectFile(file, args.Tracker)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].File.Path < reports[j].File.Path
	})

	return w.ui.DisplayInspection(reports)
}

func (w *workflow) inspectFile(file m.FormFile, args TrackerArgs) m.FormReport {
	report := m.FormReport{File: file}

	doc, err := w.fsAdapter.Load(file.Path)
	if err != nil {
		report.Err = err
		return report
	}

	recorder := logger.NewRecorder(logger.L.Handler())
	log := recorder.Logger().With("path", file.ShortPath)

	tr, err := tracker.New(doc, trackerOptions(args, log)...)
	report.Warnings = recorder.Messages()

	if err != nil {
		report.Err = err
		return report
	}

	for _, control := range tr.Controls() {
		report.Controls = append(report.Controls, controlReport(control))
	}

	report.Reset = tr.ResetControl() != nil

	logger.Debug("form inspected", "path", file.Path, "controls", len(report.Controls), "warnings", len(report.Warnings))

	return report
}

// Edit opens the interactive editor on a document.
func (w *workflow) Edit(args EditArgs) error {
	file, err := w.formFile(args.Path)
	if err != nil {
		return err
	}

	specs, err := ParseBindings(args.Bindings)
	if err != nil {
		return err
	}

	doc, err := w.fsAdapter.Load(file.Path)
	if err != nil {
		return err
	}

	gate := &controller.ResetGate{}

	opts := append(trackerOptions(args.Tracker, logger.L.With("path", file.ShortPath)), tracker.WithOnConfirmReset(gate.Request))

	tr, err := tracker.New(doc, opts...)
	if err != nil {
		return fmt.Errorf("failed to attach tracker: %w", err)
	}

	if _, err := bindAll(doc, tr, specs); err != nil {
		return err
	}

	session := controller.EditSession{
		File:    file,
		Doc:     doc,
		Tracker: tr,
		Gate:    gate,
		Prompt:  controller.ResetPrompt(args.Tracker.Lang),
	}

	if args.Output != "" {
		session.Save = func(content []byte) error {
			return w.save(file, args.Output, content)
		}
	}

	return w.ui.Edit(session)
}

// save writes content to output. Overwriting the loaded document itself is
// refused once its hash no longer matches the one taken when it was found.
func (w *workflow) save(file m.FormFile, output m.Path, content []byte) error {
	if samePath(file.Path, output) {
		hash, err := w.fsAdapter.HashFile(file.Path)
		if err != nil {
			return fmt.Errorf("failed to hash %s: %w", file.ShortPath, err)
		}

		if hash != file.Hash {
			return fmt.Errorf("%w: %s", ErrSourceModified, file.ShortPath)
		}
	}

	return w.fsAdapter.Save(output, content)
}

func samePath(a, b m.Path) bool {
	absA, errA := filepath.Abs(string(a))
	absB, errB := filepath.Abs(string(b))

	return errA == nil && errB == nil && absA == absB
}

// formFile resolves a single document path.
func (w *workflow) formFile(path m.Path) (m.FormFile, error) {
	files, err := w.fsAdapter.Get([]m.Path{path})
	if err != nil {
		return m.FormFile{}, fmt.Errorf("failed to get form: %w", err)
	}

	if len(files) == 0 {
		return m.FormFile{}, fmt.Errorf("%w: %s", ErrNoForm, path)
	}

	return files[0], nil
}

func trackerOptions(args TrackerArgs, log *slog.Logger) []tracker.Option {
	opts := []tracker.Option{
		tracker.WithConfirmPolicy(args.Policy),
		tracker.WithLogger(log),
	}

	if args.Selector != "" {
		opts = append(opts, tracker.WithSelector(args.Selector))
	}

	if args.Classname != "" {
		opts = append(opts, tracker.WithClassname(args.Classname))
	}

	return opts
}

func controlReport(state tracker.ControlState) m.ControlReport {
	return m.ControlReport{
		Name:     state.Name,
		Type:     state.Type,
		Kind:     state.Kind.String(),
		Event:    string(state.Event),
		Baseline: string(state.Baseline),
		Current:  string(state.Current),
		Changed:  state.Changed,
		Elements: state.Elements,
	}
}
