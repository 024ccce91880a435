package assert

import "github.com/oomph-ac/webxr/oerror"

// IsTrue panics with an OomphError if ok is false. It guards invariants that only a
// programming error can break, never input validation.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
