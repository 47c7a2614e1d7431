// Package defaults carries the stock jester art and quips, embedded so the
// tool works out of the box before anything is installed under the user's
// data directory.
package defaults

import _ "embed"

//go:embed jester.ans
var jester []byte

//go:embed quips.txt
var quips []byte

// Jester returns the embedded stock jester art.
func Jester() []byte {
	return jester
}

// Quips returns the embedded stock quips file.
func Quips() []byte {
	return quips
}
