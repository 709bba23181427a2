package web_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/okitolabs/demopass/pkg/demosdk"
	"github.com/okitolabs/demopass/pkg/passgen"
)

// TestGenerateCredential verifies a generated credential has the requested
// length and contains every character class.
func TestGenerateCredential(t *testing.T) {
	baseURL, cleanup := setupWebContainer(t)
	defer cleanup()

	client := demosdk.NewClient(baseURL)

	resp, err := client.Generate(t.Context(), demosdk.GenerateRequest{Length: 16})
	require.NoError(t, err)
	require.NotNil(t, resp)
	require.Len(t, resp.Credentials, 1)
	require.Equal(t, 16, resp.Length)

	cred := resp.Credentials[0].Value
	require.Len(t, cred, 16)
	require.True(t, strings.ContainsAny(cred, passgen.Lowercase), "missing lowercase: %q", cred)
	require.True(t, strings.ContainsAny(cred, passgen.Uppercase), "missing uppercase: %q", cred)
	require.True(t, strings.ContainsAny(cred, passgen.Digits), "missing digit: %q", cred)
	require.True(t, strings.ContainsAny(cred, passgen.Specials), "missing special: %q", cred)
	require.Empty(t, resp.Credentials[0].Hash, "hash should not be returned unless requested")
}

// TestGenerateBatch verifies batch generation returns distinct credentials.
func TestGenerateBatch(t *testing.T) {
	baseURL, cleanup := setupWebContainer(t)
	defer cleanup()

	client := demosdk.NewClient(baseURL)

	resp, err := client.Generate(t.Context(), demosdk.GenerateRequest{Length: 24, Count: 10})
	require.NoError(t, err)
	require.Len(t, resp.Credentials, 10)

	seen := make(map[string]bool)
	for _, c := range resp.Credentials {
		require.Len(t, c.Value, 24)
		require.False(t, seen[c.Value], "duplicate credential in batch")
		seen[c.Value] = true
	}
}

// TestGenerateWithHash verifies the optional Argon2id hash is a PHC string.
func TestGenerateWithHash(t *testing.T) {
	baseURL, cleanup := setupWebContainer(t)
	defer cleanup()

	client := demosdk.NewClient(baseURL)

	resp, err := client.Generate(t.Context(), demosdk.GenerateRequest{Length: 16, Hash: true})
	require.NoError(t, err)
	require.Len(t, resp.Credentials, 1)
	require.True(t, strings.HasPrefix(resp.Credentials[0].Hash, "$argon2id$"),
		"expected PHC hash, got %q", resp.Credentials[0].Hash)
}

// TestGenerateInvalidLength verifies lengths below the minimum are rejected.
func TestGenerateInvalidLength(t *testing.T) {
	baseURL, cleanup := setupWebContainer(t)
	defer cleanup()

	client := demosdk.NewClient(baseURL)

	for _, length := range []int{0, 1, 3} {
		_, err := client.Generate(t.Context(), demosdk.GenerateRequest{Length: length})
		require.Error(t, err)

		var apiErr *demosdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, demosdk.ErrorCodeInvalidLength, apiErr.Code)
	}
}

// TestGenerateStats verifies the stats document reflects prior generations.
func TestGenerateStats(t *testing.T) {
	baseURL, cleanup := setupWebContainer(t)
	defer cleanup()

	client := demosdk.NewClient(baseURL)

	_, err := client.Generate(t.Context(), demosdk.GenerateRequest{Length: 12, Count: 3})
	require.NoError(t, err)
	_, err = client.Generate(t.Context(), demosdk.GenerateRequest{Length: 20, Hash: true})
	require.NoError(t, err)

	stats, err := client.GetStats(t.Context())
	require.NoError(t, err)
	require.Equal(t, int64(4), stats.Total)
	require.Equal(t, int64(1), stats.Hashed)
	require.InDelta(t, 14.0, stats.AverageLength, 0.01)
	require.Equal(t, int64(4), stats.BySource["api"])
}
