//go:build !runroar_debug

package roaring

// debugAssert is a no-op outside debug builds; production builds pay
// nothing for the precondition checks scattered through the core.
func debugAssert(cond bool, format string, args ...any) {}
