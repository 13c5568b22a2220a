package controller

// ResetGate parks a reset continuation until the user answers the
// confirmation dialog.
type ResetGate struct {
	proceed func()
}

// Request stores proceed. It has the shape of tracker.ConfirmFunc.
func (g *ResetGate) Request(proceed func()) {
	g.proceed = proceed
}

// Pending reports whether a reset waits for an answer.
func (g *ResetGate) Pending() bool {
	return g.proceed != nil
}

// Confirm performs the pending reset.
func (g *ResetGate) Confirm() {
	proceed := g.proceed
	g.proceed = nil

	if proceed != nil {
		proceed()
	}
}

// Cancel drops the pending reset.
func (g *ResetGate) Cancel() {
	g.proceed = nil
}
