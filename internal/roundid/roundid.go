// Package roundid generates sortable identifiers used to correlate the log
// lines of a single round.
package roundid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Crockford's base32
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded identifier
const Length = 26

// New returns a UUIDv7 encoded as 26 base32 characters. IDs created later
// sort after earlier ones.
func New() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate round id: %w", err)
	}
	return encode(id), nil
}

// encode writes the 128 bits as 26 five-bit groups, with two zero pad bits
// leading so the first character is always 0-7.
func encode(id uuid.UUID) string {
	var out [Length]byte
	var acc uint32
	bits := 2
	pos := 0
	for _, b := range id {
		acc = acc<<8 | uint32(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			out[pos] = alphabet[(acc>>uint(bits))&0x1f]
			pos++
		}
	}
	return string(out[:])
}

// Validate checks that id looks like an identifier produced by New.
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("round id must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("round id first character must be 0-7, got %c", id[0])
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	return nil
}
