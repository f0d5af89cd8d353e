package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/web"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/email"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/spa"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel, cfg.IsProduction())
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port, "env", cfg.Environment)

	// 3. Validate the static asset root. Starting without an index would
	// turn every page load into an error, so fail here instead.
	indexPath := filepath.Join(cfg.StaticDir, "index.html")
	if _, err := os.Stat(indexPath); err != nil {
		logger.Log.Error("Static assets not found", "path", indexPath, "error", err)
		os.Exit(1)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 4. Setup Mail Relay
	mailClient := email.NewResendClient(cfg.MailAPIKey)

	// 5. Setup UseCases
	validate := validator.New()
	contactUC := usecase.NewContactUsecase(mailClient, validate, cfg)

	// 6. Setup Router
	router := web.NewRouter(web.RouterDeps{
		ContactUC: contactUC,
		Config:    cfg,
		SPA:       spa.NewHandler(os.DirFS(cfg.StaticDir), "index.html"),
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
