//go:build !debug

// Package debug provides assertions that are enabled with the debug build tag
// and compile to no-ops otherwise.
//
// They check invariants of this module's own code, e.g. that a register offset
// is word aligned or that the hardware model stays consistent. They never
// replace checks of caller input.
package debug

// Enabled reports whether assertions are compiled in. Guard expensive checks
// with `if debug.Enabled {...}` so release builds drop them.
const Enabled = false

// Assert panics with message if b is false.
func Assert(b bool, message string) {}

// Assertf is like Assert with a formatted message.
func Assertf(b bool, format string, args ...any) {}

// AssertErrNil panics if err is not nil.
func AssertErrNil(err error) {}
