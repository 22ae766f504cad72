package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lunadocs/internal/config"
	"lunadocs/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Port:          "0",
		SiteTitle:     "Lunaby API Docs",
		DbDriver:      config.DriverSQLite,
		DbPath:        filepath.Join(dir, "data", "docs.db"),
		FallbackPath:  filepath.Join(dir, "Fallback.json"),
		AdminUsername: "admin",
		AdminPassword: "secret",
		SessionSecret: "test-secret",
		SessionTTL:    "1h",
		LogDir:        filepath.Join(dir, "logs"),
		Env:           "dev",
		CORSOrigins:   []string{"*"},
	}
}

func newTestApp(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	a, err := InitApp(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a.Handler(cfg)
}

func do(t *testing.T, h http.Handler, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, h http.Handler) *http.Cookie {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/admin/login", `{"username":"admin","password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	for _, c := range rec.Result().Cookies() {
		if c.Name == "admin_session" {
			return c
		}
	}
	t.Fatal("no session cookie")
	return nil
}

type envelope struct {
	Data     json.RawMessage `json:"data"`
	Error    string          `json:"error"`
	ReadOnly bool            `json:"readOnly"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func TestPublicAPI(t *testing.T) {
	h := newTestApp(t, testConfig(t))

	rec := do(t, h, http.MethodGet, "/api/docs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	var list struct {
		Sections []models.Section `json:"sections"`
	}
	decode(t, rec, &list)
	require.Len(t, list.Sections, 8)
	assert.Equal(t, "introduction", list.Sections[0].Slug)

	rec = do(t, h, http.MethodGet, "/api/docs/introduction/blocks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var env envelope
	decode(t, rec, &env)
	var blocks struct {
		Slug   string `json:"slug"`
		Blocks []struct {
			Kind  string `json:"kind"`
			Level int    `json:"level"`
			Text  string `json:"text"`
		} `json:"blocks"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &blocks))
	require.NotEmpty(t, blocks.Blocks)
	assert.Equal(t, "heading", blocks.Blocks[0].Kind)
	assert.Equal(t, "Introduction", blocks.Blocks[0].Text)

	rec = do(t, h, http.MethodGet, "/api/docs/nope/blocks", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/docs/navigation", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &env)
	var groups []models.NavGroup
	require.NoError(t, json.Unmarshal(env.Data, &groups))
	require.Len(t, groups, 2)
	assert.Equal(t, "General", groups[0].Title)

	rec = do(t, h, http.MethodGet, "/api/docs/search?query=stream", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "chat-streaming")

	rec = do(t, h, http.MethodGet, "/api/models", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "lunaby-vision")

	rec = do(t, h, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), `id="quickstart"`)
}

func TestAdminGuard(t *testing.T) {
	h := newTestApp(t, testConfig(t))

	rec := do(t, h, http.MethodGet, "/api/admin/sections", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/admin/unknown", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodGet, "/admin/dashboard", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))

	forged := &http.Cookie{Name: "admin_session", Value: "not-a-token"}
	rec = do(t, h, http.MethodGet, "/api/admin/sections", "", forged)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/admin/login", `{"username":"admin","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/admin/session", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	cookie := login(t, h)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 3600, cookie.MaxAge)

	rec = do(t, h, http.MethodGet, "/api/admin/session", "", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/admin/dashboard", "", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin")

	rec = do(t, h, http.MethodGet, "/api/admin/unknown", "", cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/admin/logout", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	cleared := rec.Result().Cookies()
	require.NotEmpty(t, cleared)
	assert.Equal(t, "", cleared[0].Value)
	assert.Less(t, cleared[0].MaxAge, 0)
}

func TestAdminSectionLifecycle(t *testing.T) {
	h := newTestApp(t, testConfig(t))
	cookie := login(t, h)

	rec := do(t, h, http.MethodPost, "/api/admin/sections",
		`{"title":"Rate Limits","slug":"rate-limits","content":"# Rate Limits\n\nBe nice.","group_name":"API"}`, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var env envelope
	decode(t, rec, &env)
	var created models.Section
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.True(t, created.IsPublished)
	assert.Equal(t, "API", created.GroupName)

	rec = do(t, h, http.MethodPost, "/api/admin/sections", `{"title":"Dup","slug":"rate-limits"}`, cookie)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/admin/sections", `{"title":"Bad","slug":"Bad Slug"}`, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	id := jsonID(created.ID)
	rec = do(t, h, http.MethodPut, "/api/admin/sections/"+id, `{"is_published":false}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/docs/rate-limits/blocks", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/admin/sections/rate-limits", "", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/admin/sections/"+id+"/move", `{"direction":"up"}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, h, http.MethodPost, "/api/admin/sections/"+id+"/move", `{"direction":"sideways"}`, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var all struct {
		Sections []models.Section `json:"sections"`
	}
	decode(t, do(t, h, http.MethodGet, "/api/admin/sections", "", cookie), &all)
	require.Len(t, all.Sections, 9)
	assert.Equal(t, "rate-limits", all.Sections[7].Slug)

	rec = do(t, h, http.MethodPost, "/api/admin/preview", `{"content":"## Hi\n<script>x</script>"}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hi")
	assert.NotContains(t, rec.Body.String(), "<script>")

	rec = do(t, h, http.MethodDelete, "/api/admin/sections/"+id, "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, h, http.MethodDelete, "/api/admin/sections/"+id, "", cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminTransfer(t *testing.T) {
	h := newTestApp(t, testConfig(t))
	cookie := login(t, h)

	rec := do(t, h, http.MethodGet, "/api/admin/export", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Regexp(t, `attachment; filename="lunaby-docs-export-\d+\.json"`, rec.Header().Get("Content-Disposition"))
	var doc models.ExportDocument
	decode(t, rec, &doc)
	assert.Len(t, doc.Sections, 8)

	rec = do(t, h, http.MethodPost, "/api/admin/import", `{"sections":"nope"}`, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid data format")

	rec = do(t, h, http.MethodPost, "/api/admin/import",
		`{"replaceAll":true,"sections":[{"title":"Only","slug":"only"},{"title":""}]}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var res models.ImportResult
	decode(t, rec, &res)
	assert.Equal(t, models.ImportResult{Success: true, Imported: 1, Failed: 1, Deleted: 8, Message: "Successfully imported 1 sections"}, res)
}

func TestFallbackMode(t *testing.T) {
	cfg := testConfig(t)
	dir := filepath.Dir(cfg.FallbackPath)

	// a regular file where the database directory should be
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	cfg.DbPath = filepath.Join(blocker, "docs.db")

	snapshot := `{"version":"1.0","sections":[
		{"title":"Intro","slug":"intro","content":"# Intro","group_name":"General","order_index":1,"is_published":true},
		{"title":"Draft","slug":"draft","group_name":"Guides","order_index":2,"is_published":false}
	]}`
	require.NoError(t, os.WriteFile(cfg.FallbackPath, []byte(snapshot), 0o644))

	h := newTestApp(t, cfg)

	var list struct {
		Sections []models.Section `json:"sections"`
	}
	decode(t, do(t, h, http.MethodGet, "/api/docs", ""), &list)
	require.Len(t, list.Sections, 1)
	assert.Equal(t, "intro", list.Sections[0].Slug)

	cookie := login(t, h)

	rec := do(t, h, http.MethodPost, "/api/admin/sections", `{"title":"New","slug":"new"}`, cookie)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var env envelope
	decode(t, rec, &env)
	assert.True(t, env.ReadOnly)

	rec = do(t, h, http.MethodPost, "/api/admin/import", `{"sections":[]}`, cookie)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/admin/status", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"readOnly":true`)

	rec = do(t, h, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "static snapshot")
}

func jsonID(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
