package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecomida/ecomida/logging/logger"
	"github.com/ecomida/ecomida/middleware"
	"github.com/ecomida/ecomida/net/resp"
	"github.com/ecomida/ecomida/service"
	"github.com/ecomida/ecomida/validation/validator"
)

// RecipeHandler handles recipe routes.
type RecipeHandler struct {
	recipes *service.RecipeService
	logger  *logger.Logger
}

// NewRecipeHandler creates a new RecipeHandler instance.
func NewRecipeHandler(recipes *service.RecipeService, logger *logger.Logger) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, logger: logger}
}

// List handles GET /receitas with optional categoria and busca filters.
func (h *RecipeHandler) List(c *gin.Context) {
	categoria := c.Query("categoria")
	busca := c.Query("busca")

	recipes, err := h.recipes.List(c.Request.Context(), categoria, busca)
	if err != nil {
		resp.Fail(c.Writer, failureFor(err))
		return
	}

	resp.Success(c.Writer, gin.H{"receitas": recipes})
}

// Get handles GET /receitas/:id.
func (h *RecipeHandler) Get(c *gin.Context) {
	recipe, err := h.recipes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.Fail(c.Writer, failureFor(err))
		return
	}

	resp.Success(c.Writer, gin.H{"receita": recipe})
}

// Create handles POST /receitas. Required fields are enforced by the
// binding tags; the validator message names the offending field.
func (h *RecipeHandler) Create(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		resp.Fail(c.Writer, resp.UnAuthorized("Token não fornecido"))
		return
	}

	var req service.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest(validator.TranslateBindingError(err)))
		return
	}

	id, err := h.recipes.Create(c.Request.Context(), user, &req)
	if err != nil {
		resp.Fail(c.Writer, failureFor(err))
		return
	}

	resp.WithStatusCode(c.Writer, http.StatusCreated, gin.H{
		"mensagem":   "Receita criada com sucesso!",
		"receita_id": id,
	})
}
