//go:build echofast

package debugassert

// Check is a no-op in echofast builds: the invariant is trusted rather
// than re-verified on every call.
func Check(cond bool, msg string) {}
