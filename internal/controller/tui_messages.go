package controller

// Message types.
type statusMsg struct {
	text string
	err  error
}
