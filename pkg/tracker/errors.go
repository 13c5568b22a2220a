package tracker

import "errors"

// Errors returned when attaching a tracker or binding a dependency.
var (
	ErrTargetNotFound      = errors.New("target does not match any element")
	ErrAmbiguousTarget     = errors.New("target matches more than one element")
	ErrNotAForm            = errors.New("target is not a form element")
	ErrSourceNotFound      = errors.New("source does not match any element")
	ErrSourceNotObservable = errors.New("source is not an observable control")
	ErrUnknownAction       = errors.New("unknown dependency action")
)
