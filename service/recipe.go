package service

import (
	"context"
	"strings"
	"time"

	"github.com/ecomida/ecomida/data/repository"
	"github.com/ecomida/ecomida/logging/logger"
	"github.com/ecomida/ecomida/structs"
)

// DefaultDifficulty is stamped on recipes submitted without one.
const DefaultDifficulty = "média"

// CreateRecipeRequest carries the fields of a new recipe submission.
type CreateRecipeRequest struct {
	Titulo       string   `json:"titulo" binding:"required"`
	Descricao    string   `json:"descricao"`
	Ingredientes []string `json:"ingredientes" binding:"required,min=1"`
	ModoPreparo  []string `json:"modo_preparo" binding:"required,min=1"`
	Categoria    string   `json:"categoria" binding:"required"`
	TempoPreparo string   `json:"tempo_preparo"`
	Porcoes      int      `json:"porcoes"`
	Dificuldade  string   `json:"dificuldade"`
}

// RecipeService handles recipe listing, lookup and creation.
type RecipeService struct {
	recipes repository.RecipeRepository
	logger  *logger.Logger
}

// NewRecipeService creates a new RecipeService instance.
func NewRecipeService(recipes repository.RecipeRepository, logger *logger.Logger) *RecipeService {
	return &RecipeService{recipes: recipes, logger: logger}
}

// List returns recipes filtered by category and free-text search,
// ordered by title. Empty filters match everything.
func (s *RecipeService) List(ctx context.Context, categoria, busca string) ([]*structs.Recipe, error) {
	recipes, err := s.recipes.List(ctx, categoria, busca)
	if err != nil {
		return nil, err
	}
	if recipes == nil {
		recipes = []*structs.Recipe{}
	}
	return recipes, nil
}

// Get returns a single recipe by ID.
func (s *RecipeService) Get(ctx context.Context, id string) (*structs.Recipe, error) {
	return s.recipes.FindByID(ctx, id)
}

// Create persists a new recipe stamped with its author.
func (s *RecipeService) Create(ctx context.Context, author *structs.User, req *CreateRecipeRequest) (string, error) {
	dificuldade := req.Dificuldade
	if dificuldade == "" {
		dificuldade = DefaultDifficulty
	}

	recipe := &structs.Recipe{
		Titulo:       strings.TrimSpace(req.Titulo),
		Descricao:    strings.TrimSpace(req.Descricao),
		Ingredientes: req.Ingredientes,
		ModoPreparo:  req.ModoPreparo,
		Categoria:    req.Categoria,
		TempoPreparo: req.TempoPreparo,
		Porcoes:      req.Porcoes,
		Dificuldade:  dificuldade,
		AutorID:      author.ID.Hex(),
		AutorNome:    author.Nome,
		DataCriacao:  time.Now().UTC(),
		Ativa:        true,
	}

	created, err := s.recipes.Create(ctx, recipe)
	if err != nil {
		return "", err
	}

	s.logger.Info(ctx, "recipe created", "titulo", recipe.Titulo, "autor", author.Email)
	return created.ID.Hex(), nil
}
