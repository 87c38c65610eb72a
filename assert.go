package sweephash

import "fmt"

// assertf panics with a formatted message when cond is false. The library
// signals misuse this way (spec §7: precondition failure, not a recoverable
// error) rather than returning an error a caller might ignore.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
