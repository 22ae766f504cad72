package routes

import (
	"net/http"

	"lunadocs/internal/handlers"
	"lunadocs/internal/middleware"

	"github.com/gorilla/mux"
)

type Handlers struct {
	Pages    *handlers.PageHandler
	Docs     *handlers.DocsHandler
	Search   *handlers.SearchHandler
	Auth     *handlers.AuthHandler
	Sections *handlers.SectionHandler
	Transfer *handlers.TransferHandler
	Logs     *handlers.LogsHandler
}

func InitRoutes(router *mux.Router, h Handlers, sessions middleware.SessionVerifier) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.Recoverer)

	// --- Pages ---
	router.HandleFunc("/", h.Pages.Docs).Methods(http.MethodGet)
	router.HandleFunc("/admin", h.Pages.Login).Methods(http.MethodGet)

	dashboard := router.PathPrefix("/admin/dashboard").Subrouter()
	dashboard.Use(middleware.AdminPage(sessions, "/admin"))
	dashboard.HandleFunc("", h.Pages.Dashboard).Methods(http.MethodGet)
	dashboard.PathPrefix("/").HandlerFunc(h.Pages.Dashboard).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	// --- Public ---
	api.HandleFunc("/docs", h.Docs.List).Methods(http.MethodGet)
	api.HandleFunc("/docs/navigation", h.Docs.Navigation).Methods(http.MethodGet)
	api.HandleFunc("/docs/search", h.Search.Search).Methods(http.MethodGet)
	api.HandleFunc("/docs/{slug}/blocks", h.Docs.Blocks).Methods(http.MethodGet)
	api.HandleFunc("/models", h.Docs.Models).Methods(http.MethodGet)

	api.HandleFunc("/admin/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/admin/logout", h.Auth.Logout).Methods(http.MethodPost)
	api.HandleFunc("/admin/session", h.Auth.Session).Methods(http.MethodGet)

	// --- Admin session required ---
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAPI(sessions))

	admin.HandleFunc("/sections", h.Sections.List).Methods(http.MethodGet)
	admin.HandleFunc("/sections", h.Sections.Create).Methods(http.MethodPost)
	admin.HandleFunc("/sections/{id}", h.Sections.Get).Methods(http.MethodGet)
	admin.HandleFunc("/sections/{id:[0-9]+}", h.Sections.Update).Methods(http.MethodPut)
	admin.HandleFunc("/sections/{id:[0-9]+}", h.Sections.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/sections/{id:[0-9]+}/move", h.Sections.Move).Methods(http.MethodPost)
	admin.HandleFunc("/preview", h.Sections.Preview).Methods(http.MethodPost)
	admin.HandleFunc("/status", h.Sections.Status).Methods(http.MethodGet)

	admin.HandleFunc("/export", h.Transfer.Export).Methods(http.MethodGet)
	admin.HandleFunc("/import", h.Transfer.Import).Methods(http.MethodPost)

	admin.HandleFunc("/logs/days", h.Logs.ListDays).Methods(http.MethodGet)
	admin.HandleFunc("/logs/stats", h.Logs.Stats).Methods(http.MethodGet)
	admin.HandleFunc("/logs", h.Logs.GetLogs).Methods(http.MethodGet)

	// unknown admin API paths still require a session before they 404
	admin.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
}
