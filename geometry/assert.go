package geometry

import "fmt"

// assertf panics with a formatted message when cond is false. It is the
// package's precondition-failure signal (spec §7): misuse by the caller,
// not a recoverable error.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
