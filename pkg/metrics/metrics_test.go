package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveMerge(t *testing.T) {
	m := New(prometheus.NewRegistry())
	savedAt := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	m.ObserveMerge(9, 0, 1, 10, savedAt)
	m.ObserveMerge(0, 9, 1, 10, savedAt)

	assert.Equal(t, 9.0, testutil.ToFloat64(m.MergeRecords.WithLabelValues("added")))
	assert.Equal(t, 9.0, testutil.ToFloat64(m.MergeRecords.WithLabelValues("replaced")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.MergeRecords.WithLabelValues("retained")))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.Sources))
	assert.Equal(t, float64(savedAt.Unix()), testutil.ToFloat64(m.LastUpdate))
}

func TestIncSinkErrors(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.IncSinkErrors("postgres")
	m.IncSinkErrors("postgres")
	m.IncSinkErrors("redis")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SinkErrors.WithLabelValues("postgres")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SinkErrors.WithLabelValues("redis")))
}

func TestExportTextfile(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.Sources.Set(9)

	path := filepath.Join(t.TempDir(), "esg_catalog.prom")
	require.NoError(t, m.Export(context.Background(), path, ""))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "esg_catalog_sources 9")
}

func TestExportPushgateway(t *testing.T) {
	var gotPath string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	m := New(prometheus.NewRegistry())
	m.Sources.Set(9)

	require.NoError(t, m.Export(context.Background(), "", server.URL))
	assert.Equal(t, "/metrics/job/esg_catalog", gotPath)
	assert.NotEmpty(t, gotBody)
}

func TestExportErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	m := New(prometheus.NewRegistry())
	missingDir := filepath.Join(t.TempDir(), "missing", "esg_catalog.prom")

	err := m.Export(context.Background(), missingDir, server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "textfile")
	assert.Contains(t, err.Error(), "push")
}

func TestExportNoTargets(t *testing.T) {
	m := New(prometheus.NewRegistry())
	assert.NoError(t, m.Export(context.Background(), "", ""))
}
