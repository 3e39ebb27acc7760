package hull

import "fmt"

// assertf halts on a violated geometric invariant. The engines have no
// recoverable failure modes: once an invariant breaks, continuing would
// silently produce a non-convex result.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
