package domain

import "errors"

var (
	// ErrUnknownStep is returned for replay steps with an unknown action.
	ErrUnknownStep = errors.New("unknown step action")
	// ErrTargetMissing is returned when a step's target matches nothing.
	ErrTargetMissing = errors.New("step target not found")
	// ErrInvalidBinding is returned for malformed --bind values.
	ErrInvalidBinding = errors.New("invalid binding")
	// ErrNoForm is returned when a path does not name an HTML file.
	ErrNoForm = errors.New("no html document")
	// ErrSourceModified is returned when the output would overwrite a
	// document that changed on disk after it was loaded.
	ErrSourceModified = errors.New("document changed on disk since it was loaded")
)
