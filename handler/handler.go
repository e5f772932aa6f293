// Package handler wires the HTTP routes to the services.
package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecomida/ecomida/logging/logger"
	"github.com/ecomida/ecomida/middleware"
	"github.com/ecomida/ecomida/net/resp"
	"github.com/ecomida/ecomida/service"
	"github.com/ecomida/ecomida/version"
)

// Handler aggregates the HTTP handlers.
type Handler struct {
	Auth   *AuthHandler
	Recipe *RecipeHandler

	authService *service.AuthService
	logger      *logger.Logger
}

// New creates a new Handler instance.
func New(authService *service.AuthService, recipeService *service.RecipeService, logger *logger.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(authService, logger),
		Recipe:      NewRecipeHandler(recipeService, logger),
		authService: authService,
		logger:      logger,
	}
}

// RegisterRoutes registers all API routes on the engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		resp.Fail(c.Writer, resp.NotFound("Rota não encontrada"))
	})
	r.NoMethod(func(c *gin.Context) {
		resp.Fail(c.Writer, resp.NotAllowed("Método não permitido"))
	})

	r.GET("/health", h.Health)

	r.POST("/cadastro", h.Auth.Register)
	r.POST("/login", h.Auth.Login)
	r.POST("/esqueci-senha", h.Auth.ForgotPassword)
	r.POST("/redefinir-senha", h.Auth.ResetPassword)

	guard := middleware.AuthRequired(h.authService, h.logger)
	r.GET("/perfil", guard, h.Auth.GetProfile)
	r.PUT("/perfil", guard, h.Auth.UpdateProfile)
	r.POST("/alterar-senha", guard, h.Auth.ChangePassword)

	r.GET("/receitas", h.Recipe.List)
	r.GET("/receitas/:id", h.Recipe.Get)
	r.POST("/receitas", guard, h.Recipe.Create)
}

// Health reports service liveness.
func (h *Handler) Health(c *gin.Context) {
	resp.Success(c.Writer, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   version.Version,
	})
}
