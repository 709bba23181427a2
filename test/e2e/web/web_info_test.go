package web_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/okitolabs/demopass/pkg/demosdk"
)

// TestInfoEndpoint verifies the demo metadata document.
func TestInfoEndpoint(t *testing.T) {
	baseURL, cleanup := setupWebContainer(t)
	defer cleanup()

	client := demosdk.NewClient(baseURL)

	info, err := client.GetInfo(t.Context())
	require.NoError(t, err)
	require.NotNil(t, info)

	require.Contains(t, info.Message, "Hello World")
	require.NotEmpty(t, info.Features)
	require.Equal(t, "GitHub", info.Pipeline.Source)
	require.Equal(t, "GitHub Actions", info.Pipeline.CICD)
}

// TestDeploymentEndpoint verifies the deployment chain document.
func TestDeploymentEndpoint(t *testing.T) {
	baseURL, cleanup := setupWebContainer(t)
	defer cleanup()

	client := demosdk.NewClient(baseURL)

	deployment, err := client.GetDeployment(t.Context())
	require.NoError(t, err)
	require.NotNil(t, deployment)

	require.NotEmpty(t, deployment.DeploymentMethod)
	require.NotEmpty(t, deployment.TriggerChain)
	require.Equal(t, "test", deployment.Environment)
}

// TestIndexPage verifies the landing page renders with the service version.
func TestIndexPage(t *testing.T) {
	baseURL, cleanup := setupWebContainer(t)
	defer cleanup()

	resp, err := http.Get(baseURL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(body), "Hello World"),
		"landing page should contain the hello message")
}

// TestSwaggerDocs verifies the API documentation is served.
func TestSwaggerDocs(t *testing.T) {
	baseURL, cleanup := setupWebContainer(t)
	defer cleanup()

	resp, err := http.Get(baseURL + "/swagger/doc.json")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
}
