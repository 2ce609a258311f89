//go:build debug

package debug

import "fmt"

// Debug reports whether assertions are compiled in.
const Debug = true

func init() {
	fmt.Println("WARNING -- DEBUG FLAG IS ON")
}
