package components

// WinCounter tracks rounds won by a real player
type WinCounter struct {
	count int
}

// Count returns the current number of wins
func (w *WinCounter) Count() int {
	return w.count
}

// Inc records one round win
func (w *WinCounter) Inc() {
	w.count++
}

// Reset clears the counter, returns true if any wins were dropped
func (w *WinCounter) Reset() bool {
	had := w.count > 0
	w.count = 0
	return had
}
