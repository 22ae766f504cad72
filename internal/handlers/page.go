package handlers

import (
	"bytes"
	"net/http"

	"lunadocs/internal/logger"
	"lunadocs/internal/reqctx"
	"lunadocs/internal/services"
	"lunadocs/internal/web"

	"go.uber.org/zap"
)

// PageHandler serves the server-rendered HTML pages.
type PageHandler struct {
	title    string
	sections services.SectionService
	nav      *services.NavigationService
	render   *services.RenderService
}

func NewPageHandler(title string, sections services.SectionService, nav *services.NavigationService, render *services.RenderService) *PageHandler {
	return &PageHandler{title: title, sections: sections, nav: nav, render: render}
}

// Docs renders the public documentation page.
func (h *PageHandler) Docs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	list, err := h.sections.ListPublished(ctx)
	if err != nil {
		list = nil
	}

	page := web.DocsPage{
		Title:    h.title,
		Nav:      h.nav.Build(list),
		Sections: h.render.Page(ctx, list),
		Status:   h.sections.Status(ctx),
	}
	var buf bytes.Buffer
	if err := web.RenderDocs(&buf, page); err != nil {
		logger.WithCtx(ctx).Error("render docs page", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, buf.Bytes())
}

// Login renders the admin sign-in page.
func (h *PageHandler) Login(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := web.RenderLogin(&buf, web.AdminPage{Title: h.title}); err != nil {
		logger.WithCtx(r.Context()).Error("render login page", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, buf.Bytes())
}

// Dashboard renders the admin editor. It sits behind middleware.AdminPage.
func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	admin, _ := reqctx.GetAdmin(r.Context())
	page := web.AdminPage{Title: h.title, Status: h.sections.Status(r.Context()), Username: admin}

	var buf bytes.Buffer
	if err := web.RenderDashboard(&buf, page); err != nil {
		logger.WithCtx(r.Context()).Error("render dashboard", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, buf.Bytes())
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
