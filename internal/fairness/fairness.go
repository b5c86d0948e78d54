// Package fairness implements the commit-reveal protocol that proves the
// computer chose its move before seeing the player's.
//
// A round starts by drawing a secret key and publishing
// HMAC-SHA256(key, move) as the commitment digest. Once the player has moved
// the key is revealed, and anyone can recompute the digest to check that the
// computer's move was not changed. The HMAC key is the hex text of the secret,
// so the digest can be reproduced with standard tools:
//
//	printf '%s' Rock | openssl dgst -sha256 -hmac <key>
package fairness

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// KeyBytes is the amount of entropy in a secret key.
const KeyBytes = 32

// ErrRandomUnavailable wraps failures of the secure random source.
var ErrRandomUnavailable = errors.New("secure random source unavailable")

// GenerateKey reads KeyBytes from r and returns them hex encoded. A nil r
// uses crypto/rand.
func GenerateKey(r io.Reader) (string, error) {
	if r == nil {
		r = rand.Reader
	}
	buf := make([]byte, KeyBytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRandomUnavailable, err)
	}
	return hex.EncodeToString(buf), nil
}

// Pick returns a uniformly distributed index in [0, n) read from r. A nil r
// uses crypto/rand.
func Pick(r io.Reader, n int) (int, error) {
	if r == nil {
		r = rand.Reader
	}
	v, err := rand.Int(r, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRandomUnavailable, err)
	}
	return int(v.Int64()), nil
}

// Sign returns the lowercase hex HMAC-SHA256 of move keyed by key.
func Sign(key, move string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(move))
	return hex.EncodeToString(mac.Sum(nil))
}

// Check reports whether digest is the commitment to move under key. The
// comparison is constant time and ignores hex case.
func Check(key, move, digest string) bool {
	want, err := hex.DecodeString(digest)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(move))
	return hmac.Equal(mac.Sum(nil), want)
}

// Commitment binds a secret key to a move. The digest may be published
// straight away; the key stays hidden until Reveal.
type Commitment struct {
	key    string
	move   string
	digest string
}

// Commit draws a fresh key from r and commits to move.
func Commit(r io.Reader, move string) (*Commitment, error) {
	key, err := GenerateKey(r)
	if err != nil {
		return nil, err
	}
	return &Commitment{key: key, move: move, digest: Sign(key, move)}, nil
}

// Digest returns the published commitment
func (c *Commitment) Digest() string {
	return c.digest
}

// Reveal returns the secret key and the committed move.
func (c *Commitment) Reveal() (key, move string) {
	return c.key, c.move
}
