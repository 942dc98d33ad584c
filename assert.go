package squircle

// debugAssert panics when cond is false in builds with the debug tag.
// Release builds see a constant-false debugChecks and the compiler
// removes the call entirely, keeping precondition checks out of the
// per-frame path construction cost.
func debugAssert(cond bool, msg string) {
	if debugChecks && !cond {
		panic("squircle: " + msg)
	}
}
