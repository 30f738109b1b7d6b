package animate

// Latch reports the rising edges of a boolean which is sampled once a frame.
type Latch struct {
	val bool
}

// Run returns true if v is true, and was false the last time.
func (l *Latch) Run(v bool) bool {
	r := v && !l.val
	l.val = v
	return r
}
