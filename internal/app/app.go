package app

import (
	"lunadocs/internal/config"
	"lunadocs/internal/handlers"
	"lunadocs/internal/repository"
	"lunadocs/internal/routes"
	"lunadocs/internal/services"

	"github.com/gorilla/mux"
)

// App is the wired HTTP application. Storage is resolved lazily by the
// accessor on the first request that needs it.
type App struct {
	Router   *mux.Router
	Storage  *repository.Accessor
	Sections services.SectionService
	Transfer services.TransferService
	Render   *services.RenderService
}

func InitApp(cfg *config.Config) (*App, error) {
	// Storage
	storage := repository.NewAccessor(repository.OpenerFor(cfg), cfg.FallbackPath)

	// Services
	sectionSvc := services.NewSectionService(storage)
	navSvc := services.NewNavigationService()
	renderSvc := services.NewRenderService()
	transferSvc := services.NewTransferService(sectionSvc)
	authSvc, err := services.NewAuthService(cfg)
	if err != nil {
		return nil, err
	}

	// Handlers
	h := routes.Handlers{
		Pages:    handlers.NewPageHandler(cfg.SiteTitle, sectionSvc, navSvc, renderSvc),
		Docs:     handlers.NewDocsHandler(sectionSvc, navSvc, renderSvc),
		Search:   handlers.NewSearchHandler(sectionSvc),
		Auth:     handlers.NewAuthHandler(authSvc, cfg.IsProd()),
		Sections: handlers.NewSectionHandler(sectionSvc, renderSvc),
		Transfer: handlers.NewTransferHandler(transferSvc),
		Logs:     handlers.NewLogsHandler(cfg.LogDir),
	}

	// Routes
	router := mux.NewRouter()
	routes.InitRoutes(router, h, authSvc)

	return &App{
		Router:   router,
		Storage:  storage,
		Sections: sectionSvc,
		Transfer: transferSvc,
		Render:   renderSvc,
	}, nil
}

// Close releases the storage backend.
func (a *App) Close() error {
	return a.Storage.Close()
}
