package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ecomida/ecomida/logging/logger"
	"github.com/ecomida/ecomida/structs"
)

// RecipeRepository defines the interface for recipe data operations.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *structs.Recipe) (*structs.Recipe, error)
	FindByID(ctx context.Context, id string) (*structs.Recipe, error)
	List(ctx context.Context, categoria, busca string) ([]*structs.Recipe, error)
	Count(ctx context.Context) (int64, error)
}

type recipeRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewRecipeRepository creates a new recipe repository instance.
func NewRecipeRepository(db *mongo.Database, logger *logger.Logger) RecipeRepository {
	collection := db.Collection("receitas")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "categoria", Value: 1}}},
		{Keys: bson.D{{Key: "titulo", Value: 1}}},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Warn(ctx, "failed to create recipe indexes", "error", err)
	}

	return &recipeRepository{
		collection: collection,
		logger:     logger,
	}
}

// Create inserts a new recipe document.
func (r *recipeRepository) Create(ctx context.Context, recipe *structs.Recipe) (*structs.Recipe, error) {
	recipe.ID = primitive.NewObjectID()

	if _, err := r.collection.InsertOne(ctx, recipe); err != nil {
		r.logger.Error(ctx, "failed to create recipe", "error", err)
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	r.logger.Info(ctx, "recipe created", "id", recipe.ID.Hex(), "titulo", recipe.Titulo)
	return recipe, nil
}

// FindByID retrieves a recipe by its hex object ID.
func (r *recipeRepository) FindByID(ctx context.Context, id string) (*structs.Recipe, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, structs.ErrRecipeNotFound
	}

	var recipe structs.Recipe
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&recipe)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, structs.ErrRecipeNotFound
		}
		r.logger.Error(ctx, "failed to find recipe", "id", id, "error", err)
		return nil, fmt.Errorf("failed to find recipe: %w", err)
	}

	return &recipe, nil
}

// BuildListFilter builds the Mongo filter for the list operation. An
// exact categoria match and a case-insensitive literal substring search
// over titulo, ingredientes, and descricao combine with AND semantics.
func BuildListFilter(categoria, busca string) bson.M {
	filter := bson.M{}

	if categoria != "" {
		filter["categoria"] = categoria
	}

	if busca != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(busca), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"titulo": pattern},
			bson.M{"ingredientes": pattern},
			bson.M{"descricao": pattern},
		}
	}

	return filter
}

// List retrieves recipes matching the optional filters, ordered by
// titulo ascending.
func (r *recipeRepository) List(ctx context.Context, categoria, busca string) ([]*structs.Recipe, error) {
	opts := options.Find().SetSort(bson.D{{Key: "titulo", Value: 1}})

	cursor, err := r.collection.Find(ctx, BuildListFilter(categoria, busca), opts)
	if err != nil {
		r.logger.Error(ctx, "failed to list recipes", "error", err)
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer cursor.Close(ctx)

	recipes := []*structs.Recipe{}
	if err := cursor.All(ctx, &recipes); err != nil {
		r.logger.Error(ctx, "failed to decode recipes", "error", err)
		return nil, fmt.Errorf("failed to decode recipes: %w", err)
	}

	return recipes, nil
}

// Count returns the total number of recipe documents.
func (r *recipeRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		r.logger.Error(ctx, "failed to count recipes", "error", err)
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return count, nil
}
