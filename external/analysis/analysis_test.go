package analysis_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/foodwatch/foodwatch-api/external/analysis"
)

func TestAnalyzeSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","alerts_generated":3,"costs":{"total_cost":0.125}}`))
	}))
	defer ts.Close()

	result, err := analysis.New(ts.URL, time.Second).Analyze(context.Background())
	assert.Nil(t, err, "wrong Analyze")
	assert.True(t, result.Succeeded())
	assert.Equal(t, 3, result.AlertsGenerated)
	assert.Equal(t, 0.125, result.Costs.TotalCost)
}

func TestAnalyzeFailedStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status":"error","error":"model unavailable"}`))
	}))
	defer ts.Close()

	result, err := analysis.New(ts.URL, time.Second).Analyze(context.Background())

	var failed *analysis.FailedError
	assert.True(t, errors.As(err, &failed))
	assert.Equal(t, "model unavailable", failed.Message)
	assert.Equal(t, "error", result.Status)
	assert.False(t, errors.Is(err, analysis.ErrConnectivity))
}

func TestAnalyzeConnectivity(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := ts.URL
	ts.Close()

	result, err := analysis.New(url, time.Second).Analyze(context.Background())
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, analysis.ErrConnectivity))
}

func TestAnalyzeMalformedResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer ts.Close()

	_, err := analysis.New(ts.URL, time.Second).Analyze(context.Background())
	assert.True(t, errors.Is(err, analysis.ErrConnectivity))
}
