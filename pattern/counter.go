package pattern

// PassCounter is an observable count of full corpus reads performed
// during a run. Grounded on Scripts/freqsubseq.py's Counter/increment
// pair: a nil *PassCounter is legal and Increment must be cheap to call
// unconditionally rather than guarded at every call site.
type PassCounter struct {
	Count int
}

// Increment records one full traversal of the sequence provider. Safe to
// call on a nil receiver so callers never need a nil check.
func (c *PassCounter) Increment() {
	if c == nil {
		return
	}
	c.Count++
}
