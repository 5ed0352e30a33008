package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/leadfoundry/directory-api/internal/config"
	"github.com/leadfoundry/directory-api/internal/database"
	"github.com/leadfoundry/directory-api/internal/handler"
	middlewarepkg "github.com/leadfoundry/directory-api/internal/middleware"
	"github.com/leadfoundry/directory-api/internal/repository"
	"github.com/leadfoundry/directory-api/internal/router"
	"github.com/leadfoundry/directory-api/internal/scraper"
	"github.com/leadfoundry/directory-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer pool.Close()

	companiesRepo := repository.NewPGXCompaniesRepository(pool)

	browserFactory := scraper.NewRodFactory(scraper.Options{
		Bin:        cfg.BrowserBin,
		Headless:   cfg.BrowserHeadless,
		NoSandbox:  cfg.BrowserNoSandbox,
		NavTimeout: cfg.NavTimeout,
	})
	siteScraper := scraper.New(browserFactory, cfg.NavMaxRetries)

	directoryService := service.NewDirectoryService(companiesRepo, siteScraper)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, router.Handlers{
		Ingest:    handler.NewIngestHandler(directoryService),
		Companies: handler.NewCompaniesHandler(directoryService),
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
