// Package main boots the ECOmida recipe-sharing API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ecomida/ecomida/config"
	"github.com/ecomida/ecomida/data"
	"github.com/ecomida/ecomida/handler"
	"github.com/ecomida/ecomida/logging/logger"
	"github.com/ecomida/ecomida/messaging/email"
	"github.com/ecomida/ecomida/middleware"
	"github.com/ecomida/ecomida/security/jwt"
	"github.com/ecomida/ecomida/service"
	"github.com/ecomida/ecomida/version"
)

// App represents the main application.
type App struct {
	config  *config.Config
	logger  *logger.Logger
	data    *data.Data
	handler *handler.Handler
	server  *http.Server
}

// NewApp creates a new application instance with manual dependency injection.
func NewApp(configPath string) (*App, func(), error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	loggerCleanup, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	log := logger.StdLogger()
	log.SetVersion(version.Version)

	dataLayer, err := data.New(cfg.Data.MongoDB.URI, cfg.Data.MongoDB.Database, log)
	if err != nil {
		loggerCleanup()
		return nil, nil, fmt.Errorf("failed to create data layer: %w", err)
	}

	sender, err := email.SenderFromConfig(cfg.Email)
	if err != nil {
		loggerCleanup()
		return nil, nil, fmt.Errorf("failed to configure email sender: %w", err)
	}
	if sender == nil {
		log.Warn(context.Background(), "no email provider configured, reset emails disabled")
	}

	tm := jwt.NewTokenManager(cfg.Auth.JWT.Secret)
	sessionTTL := time.Duration(cfg.Auth.JWT.Expire) * time.Hour

	authService := service.NewAuthService(dataLayer.UserRepo, dataLayer.ResetTokenRepo, tm, sender, sessionTTL, log)
	recipeService := service.NewRecipeService(dataLayer.RecipeRepo, log)

	h := handler.New(authService, recipeService, log)

	app := &App{
		config:  cfg,
		logger:  log,
		data:    dataLayer,
		handler: h,
	}

	cleanup := func() {
		if err := dataLayer.Close(); err != nil {
			log.Error(context.Background(), "failed to close data layer", "error", err)
		}
		loggerCleanup()
	}

	return app, cleanup, nil
}

// Run starts the application server.
func (a *App) Run() error {
	if a.config.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	ctx := context.Background()
	if err := a.data.Seed(ctx); err != nil {
		a.logger.Warn(ctx, "failed to seed example recipes", "error", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(a.logger))
	router.Use(cors.New(corsConfig()))

	a.handler.RegisterRoutes(router)

	addr := fmt.Sprintf("%s:%d", a.config.Host, a.config.Port)
	a.server = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		a.logger.Info(ctx, "Starting server", "addr", addr, "version", version.Version)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error(ctx, "Server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info(ctx, "Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error(shutdownCtx, "Server forced to shutdown", "error", err)
		return err
	}

	a.logger.Info(ctx, "Server exited")
	return nil
}

// corsConfig allows the web frontend to call the API from another
// origin, including the Authorization header used for sessions.
func corsConfig() cors.Config {
	c := cors.DefaultConfig()
	c.AllowAllOrigins = true
	c.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	c.ExposeHeaders = []string{"X-Request-ID"}
	return c
}

func main() {
	configPath := flag.String("config", "", "path to config file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetVersionInfo().String())
		return
	}

	app, cleanup, err := NewApp(*configPath)
	if err != nil {
		fmt.Printf("Failed to initialize app: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := app.Run(); err != nil {
		fmt.Printf("Failed to run app: %v\n", err)
		os.Exit(1)
	}
}
