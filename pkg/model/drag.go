package model

// Begin picks up f. A pending drag is replaced.
func (d DragSession) Begin(f Fragment) DragSession {
	return DragSession{Fragment: f, Active: true}
}

// Complete drops the held fragment into target and ends the session. With no
// active drag the board is returned untouched.
func (d DragSession) Complete(b Board, target Category) (Board, DragSession, bool) {
	if !d.Active {
		return b, d, false
	}
	next, moved := b.MoveToBin(d.Fragment.ID, target)
	return next, DragSession{}, moved
}

// Abandon discards the drag; the fragment stays where it was.
func (d DragSession) Abandon() DragSession {
	return DragSession{}
}
