// Package orderkey generates string keys that sort lexicographically in the
// same relative order as the indices they were generated from.
//
// The scheme partitions the index space into blocks of 100 per letter of the
// latin alphabet: index 0 maps to "a00", index 99 to "a99", index 100 to
// "b00", and so on. The numeric suffix is zero-padded to the block width so
// that keys within one letter compare correctly as strings. Indices at or
// beyond 2600 clamp to the last letter, so ordering is only guaranteed for
// the first 26*100 = 2600 items. This is a deliberate limitation; keys
// persisted in a document are reused as-is and never regenerated, so the
// boundary only matters for items that carry no key yet.
package orderkey

import "fmt"

const (
	alphabet  = "abcdefghijklmnopqrstuvwxyz"
	blockSize = 100
)

// Generate returns the ordering key for the item at the given index.
// It panics if index is negative, which indicates a caller bug rather
// than a data condition.
func Generate(index int) string {
	if index < 0 {
		panic("orderkey: negative index")
	}

	letter := index / blockSize
	if letter >= len(alphabet) {
		letter = len(alphabet) - 1
	}

	return fmt.Sprintf("%c%02d", alphabet[letter], index%blockSize)
}
