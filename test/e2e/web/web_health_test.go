package web_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/okitolabs/demopass/pkg/demosdk"
)

// TestLivezEndpoint verifies the liveness check endpoint.
func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupWebContainer(t)
	defer cleanup()

	client := demosdk.NewClient(baseURL)

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)

	t.Logf("Livez endpoint is healthy")
}

// TestReadyzEndpoint verifies the readiness check includes the database check.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupWebContainer(t)
	defer cleanup()

	client := demosdk.NewClient(baseURL)

	health, err := client.GetReadiness(t.Context())
	assertHealthy(t, health, err)

	require.NotNil(t, health.Checks, "readiness response should include checks")
	require.Equal(t, "ok", health.Checks.Database)

	t.Logf("Readyz endpoint is healthy")
}

// TestLegacyHealthEndpoint verifies the pipeline-compatible /health document.
func TestLegacyHealthEndpoint(t *testing.T) {
	baseURL, cleanup := setupWebContainer(t)
	defer cleanup()

	client := demosdk.NewClient(baseURL)

	health, err := client.GetHealth(t.Context())
	require.NoError(t, err)
	require.NotNil(t, health)

	require.Equal(t, "healthy", health.Status)
	require.Equal(t, "demopass", health.Service)
	require.Equal(t, "test", health.Environment)
	require.NotEmpty(t, health.Timestamp)
}
