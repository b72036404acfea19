// Package e2e exercises a running backend over HTTP. The tests are
// skipped unless PLANMATE_E2E_BASE_URL points at a live instance.
package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseURL(t *testing.T) string {
	t.Helper()
	url := os.Getenv("PLANMATE_E2E_BASE_URL")
	if url == "" {
		t.Skip("PLANMATE_E2E_BASE_URL not set, skipping e2e tests")
	}
	return url
}

func httpClient() *http.Client {
	return &http.Client{Timeout: 3 * time.Minute}
}

func TestHealthAndTemplates(t *testing.T) {
	base := baseURL(t)
	client := httpClient()

	resp, err := client.Get(base + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = client.Get(base + "/api/templates")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Templates []struct {
			ID        string `json:"id"`
			Questions []struct {
				ID int `json:"id"`
			} `json:"questions"`
		} `json:"templates"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Templates)
	assert.Equal(t, "preliminary-startup", body.Templates[0].ID)
	assert.Len(t, body.Templates[0].Questions, 10)
}

func TestInterviewLifecycle(t *testing.T) {
	base := baseURL(t)
	client := httpClient()

	resp, err := client.Post(base+"/api/interviews", "application/json",
		bytes.NewReader([]byte(`{"templateId":"preliminary-startup"}`)))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotEmpty(t, created.ID)

	answer, err := json.Marshal(map[string]string{"answer": "엔드투엔드 테스트 답변"})
	require.NoError(t, err)
	resp, err = client.Post(base+"/api/interviews/"+created.ID+"/answers", "application/json",
		bytes.NewReader(answer))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var submitted struct {
		Complete      bool `json:"complete"`
		AnsweredCount int  `json:"answered_count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&submitted))
	assert.False(t, submitted.Complete)
	assert.Equal(t, 1, submitted.AnsweredCount)
}

func TestGenerateRejectsEmptyAnswers(t *testing.T) {
	base := baseURL(t)
	client := httpClient()

	resp, err := client.Post(base+"/api/generate", "application/json",
		bytes.NewReader([]byte(`{"answers":{}}`)))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
