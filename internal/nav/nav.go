// Package nav provides the pure selection-index primitives shared by every
// menu: wrapping up/down movement and re-clamping after a menu shrinks. All
// functions are total over size > 0; calling any of them with an empty menu
// violates the non-empty menu invariant and panics.
package nav

import "fmt"

// Up moves the index one step towards the first item, wrapping to the last.
func Up(index, size int) int {
	mustBeSized(size)
	if index <= 0 {
		return size - 1
	}
	return index - 1
}

// Down moves the index one step towards the last item, wrapping to the first.
func Down(index, size int) int {
	mustBeSized(size)
	return (index + 1) % size
}

// Clamp forces the index back into [0, size). It is used whenever the active
// menu may have shrunk since the index was last validated, such as after a
// state transition to a smaller menu.
func Clamp(index, size int) int {
	mustBeSized(size)
	if index < 0 {
		return 0
	}
	if index >= size {
		return size - 1
	}
	return index
}

func mustBeSized(size int) {
	if size <= 0 {
		panic(fmt.Sprintf("nav: menu size %d violates the non-empty menu invariant", size))
	}
}
