package passgen_test

import (
	"errors"
	"io"
	mrand "math/rand"
	"strings"
	"testing"

	"github.com/okitolabs/demopass/pkg/passgen"
	"github.com/stretchr/testify/require"
)

func TestGenerateLength(t *testing.T) {
	t.Parallel()

	for _, length := range []int{4, 5, 8, 12, 16, 32, 64, 128} {
		pw, err := passgen.Generate(length)
		require.NoError(t, err)
		require.Len(t, pw, length)
	}
}

func TestGenerateContainsAllClasses(t *testing.T) {
	t.Parallel()

	// Run many iterations so a class only probabilistically included would
	// be caught.
	for range 100 {
		pw, err := passgen.Generate(16)
		require.NoError(t, err)

		require.True(t, strings.ContainsAny(pw, passgen.Lowercase), "missing lowercase: %q", pw)
		require.True(t, strings.ContainsAny(pw, passgen.Uppercase), "missing uppercase: %q", pw)
		require.True(t, strings.ContainsAny(pw, passgen.Digits), "missing digit: %q", pw)
		require.True(t, strings.ContainsAny(pw, passgen.Specials), "missing special: %q", pw)
	}
}

func TestGenerateMinimumLengthExact(t *testing.T) {
	t.Parallel()

	// At the minimum length every position is a mandatory character, one
	// from each class.
	pw, err := passgen.Generate(passgen.MinLength)
	require.NoError(t, err)
	require.Len(t, pw, 4)
	require.True(t, strings.ContainsAny(pw, passgen.Lowercase))
	require.True(t, strings.ContainsAny(pw, passgen.Uppercase))
	require.True(t, strings.ContainsAny(pw, passgen.Digits))
	require.True(t, strings.ContainsAny(pw, passgen.Specials))
}

func TestGenerateInvalidLength(t *testing.T) {
	t.Parallel()

	for _, length := range []int{-1, 0, 1, 2, 3} {
		_, err := passgen.Generate(length)
		require.ErrorIs(t, err, passgen.ErrInvalidLength)
	}
}

func TestGenerateOutputIsShuffled(t *testing.T) {
	t.Parallel()

	// A non-shuffled implementation would always emit the mandatory
	// lowercase character first. Across enough calls, the class of the first
	// character must vary.
	seen := map[string]bool{}
	for range 200 {
		pw, err := passgen.Generate(12)
		require.NoError(t, err)

		switch {
		case strings.ContainsRune(passgen.Lowercase, rune(pw[0])):
			seen["lowercase"] = true
		case strings.ContainsRune(passgen.Uppercase, rune(pw[0])):
			seen["uppercase"] = true
		case strings.ContainsRune(passgen.Digits, rune(pw[0])):
			seen["digit"] = true
		default:
			seen["special"] = true
		}
	}
	require.Greater(t, len(seen), 1, "first character class never varied")
}

func TestGenerateNonRepeating(t *testing.T) {
	t.Parallel()

	a, err := passgen.Generate(16)
	require.NoError(t, err)
	b, err := passgen.Generate(16)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestGenerateFromDeterministicSource(t *testing.T) {
	t.Parallel()

	// Identical sources must yield identical credentials.
	a, err := passgen.GenerateFrom(mrand.New(mrand.NewSource(42)), 20)
	require.NoError(t, err)
	b, err := passgen.GenerateFrom(mrand.New(mrand.NewSource(42)), 20)
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := passgen.GenerateFrom(mrand.New(mrand.NewSource(43)), 20)
	require.NoError(t, err)
	require.NotEqual(t, a, c)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestGenerateFromFailingSource(t *testing.T) {
	t.Parallel()

	_, err := passgen.GenerateFrom(failingReader{}, 16)
	require.Error(t, err)
	require.NotErrorIs(t, err, io.EOF)
}
