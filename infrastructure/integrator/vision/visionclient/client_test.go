package visionclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	visiondomain "github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/infrastructure/integrator/vision/domain"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.Extractor{URL: srv.URL + "/extractor", Token: "tok"})
}

func TestVisionClient_DetectLabels(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/extractor/v1/labels", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		raw, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"bucket":"uploads","key":"a.png","maxLabels":5,"minConfidence":80}`, string(raw))

		w.Write([]byte(`{"labels":[{"name":"Dog","confidence":98.2}]}`))
	})

	resp, err := client.DetectLabels(context.Background(), visiondomain.LabelsRequest{
		ObjectRef:     visiondomain.ObjectRef{Bucket: "uploads", Key: "a.png"},
		MaxLabels:     5,
		MinConfidence: 80,
	})
	require.NoError(t, err)
	assert.Equal(t, []visiondomain.Label{{Name: "Dog", Confidence: 98.2}}, resp.Labels)
}

func TestVisionClient_GetJob(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/extractor/v1/jobs/job-1", r.URL.Path)
		w.Write([]byte(`{"jobId":"job-1","status":"succeeded","text":"hello"}`))
	})

	resp, err := client.GetJob(context.Background(), "job-1")
	require.NoError(t, err)
	assert.Equal(t, "succeeded", resp.Status)
	assert.Equal(t, "hello", resp.Text)
}

func TestVisionClient_ErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("busy"))
	})

	_, err := client.ReadText(context.Background(), visiondomain.ObjectRef{Bucket: "b", Key: "k"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "busy")
}

func TestVisionClient_InvalidBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	_, err := client.StartJob(context.Background(), visiondomain.StartJobRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decodificar")
}
