package handlers

import (
	"compress/gzip"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogsHandler(t *testing.T) *LogsHandler {
	t.Helper()
	dir := t.TempDir()
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.Local)

	live := `{"level":"INFO","time":"2025-03-10T09:01:02.000+0000","message":"http request"}
{"level":"ERROR","time":"2025-03-10T10:00:00.000+0000","message":"request failed"}
not json
{"level":"WARN","time":"2025-03-10T10:30:00.000+0000","message":"admin api: no valid session"}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.log"), []byte(live), 0o644))

	f, err := os.Create(filepath.Join(dir, "app-2025-03-09T23-59-59.000.log.gz"))
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(`{"level":"INFO","time":"2025-03-09T08:00:00.000+0000","message":"storage ready"}` + "\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	h := NewLogsHandler(dir)
	h.now = func() time.Time { return now }
	return h
}

type logsEnvelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func getJSON(t *testing.T, fn http.HandlerFunc, target string, v any) int {
	t.Helper()
	rec := httptest.NewRecorder()
	fn(rec, httptest.NewRequest(http.MethodGet, target, nil))
	var env logsEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	if v != nil && env.Data != nil {
		require.NoError(t, json.Unmarshal(env.Data, v))
	}
	return rec.Code
}

func TestLogs_ListDays(t *testing.T) {
	h := newLogsHandler(t)
	var days []string
	require.Equal(t, http.StatusOK, getJSON(t, h.ListDays, "/api/admin/logs/days", &days))
	assert.Equal(t, []string{"2025-03-09", "2025-03-10"}, days)
}

func TestLogs_GetLogs(t *testing.T) {
	h := newLogsHandler(t)

	var page logsPage
	require.Equal(t, http.StatusOK, getJSON(t, h.GetLogs, "/api/admin/logs?day=2025-03-10", &page))
	assert.Len(t, page.Items, 3)
	assert.Equal(t, 4, page.NextCursor)

	require.Equal(t, http.StatusOK, getJSON(t, h.GetLogs, "/api/admin/logs?day=2025-03-10&level=warn,error", &page))
	assert.Len(t, page.Items, 2)

	require.Equal(t, http.StatusOK, getJSON(t, h.GetLogs, "/api/admin/logs?day=2025-03-10&q=SESSION", &page))
	require.Len(t, page.Items, 1)
	assert.Contains(t, string(page.Items[0]), "no valid session")

	require.Equal(t, http.StatusOK, getJSON(t, h.GetLogs, "/api/admin/logs?day=2025-03-10&limit=1", &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.NextCursor)
	require.Equal(t, http.StatusOK, getJSON(t, h.GetLogs, "/api/admin/logs?day=2025-03-10&limit=1&cursor=1", &page))
	require.Len(t, page.Items, 1)
	assert.Contains(t, string(page.Items[0]), "request failed")

	require.Equal(t, http.StatusOK, getJSON(t, h.GetLogs, "/api/admin/logs?day=2025-03-09", &page))
	require.Len(t, page.Items, 1)
	assert.Contains(t, string(page.Items[0]), "storage ready")

	assert.Equal(t, http.StatusBadRequest, getJSON(t, h.GetLogs, "/api/admin/logs?day=yesterday", nil))
	assert.Equal(t, http.StatusNotFound, getJSON(t, h.GetLogs, "/api/admin/logs?day=2024-01-01", nil))
}

func TestLogs_Stats(t *testing.T) {
	h := newLogsHandler(t)

	var out struct {
		Day   string                    `json:"day"`
		Stats map[string]map[string]int `json:"stats"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, h.Stats, "/api/admin/logs/stats?day=2025-03-10", &out))
	assert.Equal(t, "2025-03-10", out.Day)
	assert.Len(t, out.Stats, 24)
	assert.Equal(t, 1, out.Stats["9"]["INFO"])
	assert.Equal(t, 1, out.Stats["10"]["ERROR"])
	assert.Equal(t, 1, out.Stats["10"]["WARN"])
}
