package app

import (
	"net/http"
	"time"

	"lunadocs/internal/config"

	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Handler mounts the swagger UI and wraps the router with CORS.
func (a *App) Handler(cfg *config.Config) http.Handler {
	a.Router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
	})
	return corsMiddleware.Handler(a.Router)
}

// Server is the HTTP server for cfg.Port.
func (a *App) Server(cfg *config.Config) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           a.Handler(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
