package handlers

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	helpers "lunadocs/internal/utils/helpers"
)

// LogsHandler reads the JSON log files written by the logger: the live
// app.log and lumberjack backups named app-<timestamp>.log[.gz].
type LogsHandler struct {
	dir       string
	retention int
	now       func() time.Time
}

func NewLogsHandler(dir string) *LogsHandler {
	return &LogsHandler{dir: dir, retention: 14, now: time.Now}
}

// ListDays
// @Summary      Days with logs
// @Description  Dates (YYYY-MM-DD) within the retention window that have log files.
// @Tags         admin-logs
// @Security     CookieAuth
// @Produce      json
// @Success      200 {object} helpers.Response{data=[]string}
// @Failure      401 {object} helpers.Response
// @Router       /api/admin/logs/days [get]
func (h *LogsHandler) ListDays(w http.ResponseWriter, r *http.Request) {
	today := h.now().Local()
	days := []string{}
	for i := 0; i < h.retention; i++ {
		d := today.AddDate(0, 0, -i).Format(time.DateOnly)
		if files, err := h.filesForDay(d); err == nil && len(files) > 0 {
			days = append(days, d)
		}
	}
	sort.Strings(days)
	helpers.JSON(w, http.StatusOK, days)
}

type logsPage struct {
	Day        string            `json:"day"`
	Items      []json.RawMessage `json:"items" swaggertype:"array,object"`
	NextCursor int               `json:"nextCursor"`
}

// GetLogs
// @Summary      Log entries of one day
// @Description  Filters by level, hour and substring; paginates with a line cursor.
// @Tags         admin-logs
// @Security     CookieAuth
// @Produce      json
// @Param        day     query  string true  "Date (YYYY-MM-DD)"
// @Param        level   query  string false "CSV of levels: debug,info,warn,error"
// @Param        hour    query  int    false "Hour (0-23)"
// @Param        q       query  string false "Substring"
// @Param        limit   query  int    false "Page size (default 200, max 1000)"
// @Param        cursor  query  int    false "Lines to skip"
// @Success      200 {object} helpers.Response{data=logsPage}
// @Failure      400 {object} helpers.Response
// @Failure      404 {object} helpers.Response
// @Router       /api/admin/logs [get]
func (h *LogsHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	day := q.Get("day")
	if !reDay.MatchString(day) {
		helpers.Error(w, http.StatusBadRequest, "bad day")
		return
	}

	levels := levelSet(q.Get("level"))
	var needle *regexp.Regexp
	if s := strings.TrimSpace(q.Get("q")); s != "" {
		needle = regexp.MustCompile("(?i)" + regexp.QuoteMeta(s))
	}
	hour := -1
	if hv, err := strconv.Atoi(q.Get("hour")); err == nil && hv >= 0 && hv <= 23 {
		hour = hv
	}
	limit := clampAtoi(q.Get("limit"), 200, 1, 1000)
	cursor := clampAtoi(q.Get("cursor"), 0, 0, 10_000_000)

	page := logsPage{Day: day, Items: []json.RawMessage{}}
	lineNo := 0
	err := h.eachLine(day, func(raw []byte) bool {
		lineNo++
		if lineNo <= cursor {
			return true
		}
		if needle != nil && !needle.Match(raw) {
			return true
		}
		entry, ok := parseEntry(raw)
		if !ok {
			return true
		}
		if len(levels) > 0 && !levels[entry.level] {
			return true
		}
		if hour >= 0 && !entry.at.IsZero() && entry.at.Hour() != hour {
			return true
		}
		page.Items = append(page.Items, append(json.RawMessage{}, raw...))
		return len(page.Items) < limit
	})
	if err != nil {
		helpers.Error(w, http.StatusNotFound, "day not found")
		return
	}
	page.NextCursor = lineNo
	helpers.JSON(w, http.StatusOK, page)
}

// Stats
// @Summary      Hourly log counts
// @Description  Number of entries per level for every hour of the day.
// @Tags         admin-logs
// @Security     CookieAuth
// @Produce      json
// @Param        day query string true "Date (YYYY-MM-DD)"
// @Success      200 {object} helpers.Response
// @Failure      400 {object} helpers.Response
// @Router       /api/admin/logs/stats [get]
func (h *LogsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("day")
	if !reDay.MatchString(day) {
		helpers.Error(w, http.StatusBadRequest, "bad day")
		return
	}

	stats := make(map[int]map[string]int, 24)
	for hr := 0; hr < 24; hr++ {
		stats[hr] = map[string]int{}
	}
	_ = h.eachLine(day, func(raw []byte) bool {
		if e, ok := parseEntry(raw); ok && !e.at.IsZero() && e.level != "" {
			stats[e.at.Hour()][e.level]++
		}
		return true
	})
	helpers.JSON(w, http.StatusOK, map[string]any{"day": day, "stats": stats})
}

var reDay = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func (h *LogsHandler) filesForDay(day string) ([]string, error) {
	entries, err := os.ReadDir(h.dir)
	if err != nil {
		return nil, err
	}
	today := h.now().Local().Format(time.DateOnly)

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		switch {
		case name == "app.log":
			if day == today {
				files = append(files, filepath.Join(h.dir, name))
			}
		case strings.HasPrefix(name, "app-") && strings.Contains(name, day) &&
			(strings.HasSuffix(name, ".log") || strings.HasSuffix(name, ".gz")):
			files = append(files, filepath.Join(h.dir, name))
		}
	}
	// backups first, the live file last
	sort.Slice(files, func(i, j int) bool {
		li, lj := filepath.Base(files[i]) == "app.log", filepath.Base(files[j]) == "app.log"
		if li != lj {
			return lj
		}
		return files[i] < files[j]
	})
	return files, nil
}

func (h *LogsHandler) eachLine(day string, handle func([]byte) bool) error {
	files, err := h.filesForDay(day)
	if err != nil || len(files) == 0 {
		return os.ErrNotExist
	}
	for _, path := range files {
		if !scanFile(path, handle) {
			break
		}
	}
	return nil
}

// scanFile feeds every line of path to handle and reports whether to go on.
func scanFile(path string, handle func([]byte) bool) bool {
	f, err := os.Open(path)
	if err != nil {
		return true
	}
	defer f.Close()

	var reader io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return true
		}
		defer gz.Close()
		reader = gz
	}

	sc := bufio.NewScanner(reader)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if !handle(sc.Bytes()) {
			return false
		}
	}
	return true
}

type logEntry struct {
	level string
	at    time.Time
}

// zap's ISO8601 encoder writes a numeric zone without a colon.
var logTimeLayouts = []string{"2006-01-02T15:04:05.000Z0700", time.RFC3339Nano}

func parseEntry(raw []byte) (logEntry, bool) {
	var obj struct {
		Level string `json:"level"`
		Time  string `json:"time"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return logEntry{}, false
	}
	e := logEntry{level: strings.ToUpper(obj.Level)}
	for _, layout := range logTimeLayouts {
		if t, err := time.Parse(layout, obj.Time); err == nil {
			e.at = t
			break
		}
	}
	return e, true
}

func levelSet(csv string) map[string]bool {
	m := map[string]bool{}
	for _, p := range strings.Split(csv, ",") {
		if p = strings.TrimSpace(p); p != "" {
			m[strings.ToUpper(p)] = true
		}
	}
	return m
}

func clampAtoi(s string, def, min, max int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
