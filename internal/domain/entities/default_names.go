package entities

import "strconv"

// DefaultNames is the pool people are named from.
var DefaultNames = []string{
	"Alex", "Sam", "Jordan", "Taylor", "Casey", "Riley", "Avery", "Morgan", "Quinn", "Reese",
	"Chris", "Jamie", "Cameron", "Drew", "Logan", "Devon", "Shawn", "Dana", "Frankie", "Jesse",
	"Robin", "Kelly", "Leslie", "Skyler", "Rowan", "Sawyer", "Parker", "Elliot", "Harley", "Remy",
}

// FallbackName returns the synthetic name used for the i-th person beyond
// the pool, starting at 1.
func FallbackName(i int) string {
	return "Name" + strconv.Itoa(i)
}
