//go:build !debug

package debug

// Debug reports whether assertions are compiled in.
const Debug = false
