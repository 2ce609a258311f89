// Package debug gates internal consistency checks behind the debug build tag.
//
// Release builds compile Assert down to nothing; builds with -tags=debug
// panic on a failed assertion. The solver uses this for contract checks on
// its internal bookkeeping, never for conditions a caller can trigger.
package debug

// Assert panics if condition is false and the debug build tag is set.
func Assert(condition bool, message ...string) {
	if !Debug {
		return
	}
	if !condition {
		if len(message) > 0 {
			panic(message[0])
		}
		panic("assertion failed")
	}
}
