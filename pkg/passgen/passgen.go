// Package passgen generates class-balanced random credentials.
//
// A generated credential always contains at least one lowercase letter, one
// uppercase letter, one digit and one special symbol. The remaining positions
// are drawn uniformly from the union of all four classes, and the final
// ordering is itself uniformly shuffled so the mandatory characters are not
// grouped at the front.
package passgen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// Character classes. They are disjoint; the union forms the full alphabet.
const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	Specials  = "!@#$%^&*"
)

// MinLength is the shortest credential that can hold one character from each
// class.
const MinLength = 4

// ErrInvalidLength is returned when the requested length cannot satisfy the
// one-character-per-class minimum.
var ErrInvalidLength = errors.New("passgen: length must be at least 4")

var classes = [...]string{Lowercase, Uppercase, Digits, Specials}

const alphabet = Lowercase + Uppercase + Digits + Specials

// Generate produces a credential of the given length using crypto/rand.
func Generate(length int) (string, error) {
	return GenerateFrom(rand.Reader, length)
}

// GenerateFrom is like Generate but draws randomness from src. Passing a
// deterministic reader makes the output reproducible, which is useful in
// tests; production callers should use Generate.
func GenerateFrom(src io.Reader, length int) (string, error) {
	if length < MinLength {
		return "", ErrInvalidLength
	}

	buf := make([]byte, 0, length)

	// One mandatory character per class.
	for _, class := range classes {
		idx, err := randInt(src, len(class))
		if err != nil {
			return "", err
		}
		buf = append(buf, class[idx])
	}

	// Fill the rest from the full alphabet.
	for len(buf) < length {
		idx, err := randInt(src, len(alphabet))
		if err != nil {
			return "", err
		}
		buf = append(buf, alphabet[idx])
	}

	// Fisher-Yates shuffle so the mandatory characters are not class-grouped.
	for i := len(buf) - 1; i > 0; i-- {
		j, err := randInt(src, i+1)
		if err != nil {
			return "", err
		}
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf), nil
}

// randInt returns a uniform random int in [0, max) read from src.
func randInt(src io.Reader, max int) (int, error) {
	n, err := rand.Int(src, big.NewInt(int64(max)))
	if err != nil {
		return 0, fmt.Errorf("passgen: failed to read random source: %w", err)
	}
	return int(n.Int64()), nil
}
