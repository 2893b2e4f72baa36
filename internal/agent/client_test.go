package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandlens-cli/internal/config"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Cleanup(viper.Reset)

	viper.Set(config.BaseURL, srv.URL)
	viper.Set(config.APIKey, "test-key")
	viper.Set(config.AgentID, "agent-123")
	viper.Set(config.UserID, "tester")
	return NewClient(nil)
}

func TestCallAgent(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-api-key")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"success":true,"response":{"result":{"brands":[{"brand_name":"Nike"}]}}}`))
	})

	resp, err := client.CallAgent(context.Background(), "Research: Nike")
	require.NoError(t, err)

	assert.Equal(t, "/v3/inference/chat/", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "agent-123", gotBody["agent_id"])
	assert.Equal(t, "tester", gotBody["user_id"])
	assert.Equal(t, "Research: Nike", gotBody["message"])
	assert.NotEmpty(t, gotBody["session_id"])

	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Body)
}

func TestCallAgentSurfacesAgentError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"agent is busy"}`))
	})

	resp, err := client.CallAgent(context.Background(), "hello")
	require.Error(t, err)

	var apiErr *APICallError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Error(), "agent is busy")
	// The envelope is still returned for inspection.
	require.NotNil(t, resp)
	assert.False(t, resp.Success)
}

func TestCallAgentFallsBackToResponseMessage(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"response":{"message":"rate limited"}}`))
	})

	_, err := client.CallAgent(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestCallAgentAuthFailure(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.CallAgent(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is invalid or expired")
}

func TestCallAgentRequiresAgentID(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be sent without an agent id")
	})
	viper.Set(config.AgentID, "")

	_, err := client.CallAgent(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no agent id configured")
}

func TestUploadFiles(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/assets/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "brands.csv", header.Filename)
		w.Write([]byte(`{"success":true,"asset_ids":["asset-1"]}`))
	})

	path := filepath.Join(t.TempDir(), "brands.csv")
	require.NoError(t, os.WriteFile(path, []byte("brand\nNike\n"), 0644))

	result, err := client.UploadFiles(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"asset-1"}, result.AssetIDs)
}

func TestUploadFilesRejected(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false}`))
	})

	path := filepath.Join(t.TempDir(), "brands.txt")
	require.NoError(t, os.WriteFile(path, []byte("Nike"), 0644))

	_, err := client.UploadFiles(context.Background(), path)
	require.Error(t, err)

	var upErr *UploadError
	assert.ErrorAs(t, err, &upErr)
}

func TestDownloadFile(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("col_a,col_b\n1,2\n"))
	})

	dest := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, client.DownloadFile(viper.GetString(config.BaseURL)+"/files/report.csv", dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "col_a,col_b\n1,2\n", string(data))
}
