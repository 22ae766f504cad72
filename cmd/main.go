package main

import (
	_ "lunadocs/docs"
	"lunadocs/internal/app"
	"lunadocs/internal/config"
	"lunadocs/internal/logger"

	"go.uber.org/zap"
)

// @title Lunaby Docs API
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name admin_session
// @version 1.0
// @description Public documentation API and admin content management.
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	warnings, err := cfg.Validate()
	for _, w := range warnings {
		logger.Log.Warn("config", zap.String("warning", w))
	}
	if err != nil {
		logger.Log.Fatal("invalid config", zap.Error(err))
	}

	a, err := app.InitApp(cfg)
	if err != nil {
		logger.Log.Fatal("app init failed", zap.Error(err))
	}
	defer a.Close()

	logger.Log.Info("server started",
		zap.String("port", cfg.Port),
		zap.String("db", cfg.GetDSNSafe()),
	)

	if err := a.Server(cfg).ListenAndServe(); err != nil {
		logger.Log.Fatal("server stopped", zap.Error(err))
	}
}
