// Package data manages the MongoDB connection and repository wiring.
package data

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ecomida/ecomida/data/repository"
	"github.com/ecomida/ecomida/logging/logger"
	"github.com/ecomida/ecomida/structs"
)

// Data encapsulates all data layer dependencies.
type Data struct {
	client *mongo.Client
	db     *mongo.Database

	UserRepo       repository.UserRepository
	RecipeRepo     repository.RecipeRepository
	ResetTokenRepo repository.ResetTokenRepository
}

// New creates a new Data instance with a MongoDB connection.
func New(mongoURI, dbName string, logger *logger.Logger) (*Data, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.Info(ctx, "Connected to MongoDB", "database", dbName)

	db := client.Database(dbName)

	return &Data{
		client:         client,
		db:             db,
		UserRepo:       repository.NewUserRepository(db, logger),
		RecipeRepo:     repository.NewRecipeRepository(db, logger),
		ResetTokenRepo: repository.NewResetTokenRepository(db, logger),
	}, nil
}

// Close closes the MongoDB connection.
func (d *Data) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return d.client.Disconnect(ctx)
}

// DB returns the MongoDB database instance.
func (d *Data) DB() *mongo.Database {
	return d.db
}

// Ping verifies the MongoDB connection is alive.
func (d *Data) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, nil)
}

// Seed inserts the example recipes when the receitas collection is empty.
func (d *Data) Seed(ctx context.Context) error {
	count, err := d.RecipeRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, recipe := range seedRecipes() {
		if _, err := d.RecipeRepo.Create(ctx, recipe); err != nil {
			return err
		}
	}
	return nil
}

func seedRecipes() []*structs.Recipe {
	now := time.Now().UTC()
	return []*structs.Recipe{
		{
			Titulo:       "Panqueca de Banana com Sobras de Pão",
			Descricao:    "Deliciosa panqueca aproveitando pães que iriam fora",
			Ingredientes: []string{"2 bananas maduras", "2 fatias de pão amanhecido", "2 ovos", "1 xícara de leite", "Canela a gosto"},
			ModoPreparo:  []string{"Bata todos os ingredientes no liquidificador", "Despeje na frigideira quente", "Cozinhe até dourar dos dois lados"},
			Categoria:    "sobremesas",
			TempoPreparo: "15 minutos",
			Porcoes:      4,
			Dificuldade:  "fácil",
			AutorNome:    "Sistema",
			DataCriacao:  now,
			Ativa:        true,
		},
		{
			Titulo:       "Sopa de Legumes com Sobras",
			Descricao:    "Sopa nutritiva usando legumes que sobrariam",
			Ingredientes: []string{"Sobras de legumes cozidos", "1 litro de água", "Sal e temperos a gosto", "1 cubo de caldo"},
			ModoPreparo:  []string{"Refogue os legumes", "Adicione água e temperos", "Cozinhe por 20 minutos"},
			Categoria:    "carnes",
			TempoPreparo: "30 minutos",
			Porcoes:      6,
			Dificuldade:  "fácil",
			AutorNome:    "Sistema",
			DataCriacao:  now,
			Ativa:        true,
		},
	}
}
