//go:build debug

package core

import "fmt"

// assertf panics when an invariant is violated. Enabled with -tags debug.
func assertf(ok bool, format string, args ...any) {
	if !ok {
		panic(fmt.Sprintf("planetwars: invariant violated: "+format, args...))
	}
}
