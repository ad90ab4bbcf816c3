package engine

import (
	"fmt"
	"os"
)

// DebugAssertions gates assertf. It defaults to off (matching an NDEBUG
// release build of the original) and is turned on by setting
// CHESSPLUSPLUS_DEBUG=1; the chessplusplus command also sets it from its
// loaded config. This mirrors the original's assert() calls, which only
// fire in non-NDEBUG builds.
var DebugAssertions = os.Getenv("CHESSPLUSPLUS_DEBUG") == "1"

// assertf panics with a formatted message when DebugAssertions is enabled
// and cond is false. Invariant violations it guards (corrupt hash,
// unmake-does-not-restore, missing king) are undefined behavior, not
// reported errors, when assertions are off.
func assertf(cond bool, format string, args ...any) {
	if !cond && DebugAssertions {
		panic(fmt.Sprintf("engine: assertion failed: "+format, args...))
	}
}
