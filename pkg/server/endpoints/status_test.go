package endpoints

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleStatus(t *testing.T) {
	s, _ := newTestServer(t)

	w := doRequest(s, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "API Consultas Vehiculares", resp.Message)
	assert.Equal(t, "1.0.0", resp.Version)
	assert.Equal(t, "/docs", resp.Docs)
	assert.Equal(t, "running", resp.Status)
}

func TestHandleStatusVersionOverride(t *testing.T) {
	t.Setenv("TRANSITO_VERSION_DISPLAY", "2.3.1")

	s, _ := newTestServer(t)

	w := doRequest(s, "/")

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2.3.1", resp.Version)
}
