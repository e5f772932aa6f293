package service

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ecomida/ecomida/logging/logger"
	"github.com/ecomida/ecomida/structs"
)

func newTestRecipeService() (*RecipeService, *memRecipeRepo) {
	recipes := newMemRecipeRepo()
	return NewRecipeService(recipes, logger.StdLogger()), recipes
}

func testAuthor() *structs.User {
	return &structs.User{
		ID:    primitive.NewObjectID(),
		Nome:  "Maria",
		Email: "maria@example.com",
		Ativo: true,
	}
}

func createRecipe(t *testing.T, s *RecipeService, author *structs.User, req *CreateRecipeRequest) string {
	t.Helper()
	id, err := s.Create(context.Background(), author, req)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return id
}

// TestCreateRecipe verifies the author stamp and the difficulty default.
func TestCreateRecipe(t *testing.T) {
	s, _ := newTestRecipeService()
	author := testAuthor()

	id := createRecipe(t, s, author, &CreateRecipeRequest{
		Titulo:       "  Bolo de Cenoura  ",
		Ingredientes: []string{"3 cenouras", "2 ovos"},
		ModoPreparo:  []string{"Bata tudo", "Asse"},
		Categoria:    "sobremesas",
	})

	rec, err := s.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if rec.Titulo != "Bolo de Cenoura" {
		t.Errorf("Titulo = %q, want trimmed title", rec.Titulo)
	}
	if rec.Dificuldade != DefaultDifficulty {
		t.Errorf("Dificuldade = %q, want %q", rec.Dificuldade, DefaultDifficulty)
	}
	if rec.AutorID != author.ID.Hex() || rec.AutorNome != "Maria" {
		t.Errorf("author stamp = %q/%q", rec.AutorID, rec.AutorNome)
	}
	if !rec.Ativa {
		t.Error("new recipe should be active")
	}
	if rec.DataCriacao.IsZero() {
		t.Error("DataCriacao not stamped")
	}
}

// TestGetRecipeNotFound verifies a missing ID maps to the sentinel.
func TestGetRecipeNotFound(t *testing.T) {
	s, _ := newTestRecipeService()
	if _, err := s.Get(context.Background(), primitive.NewObjectID().Hex()); !errors.Is(err, structs.ErrRecipeNotFound) {
		t.Errorf("Get() error = %v, want ErrRecipeNotFound", err)
	}
}

// TestListRecipes verifies category and text filters plus title order.
func TestListRecipes(t *testing.T) {
	s, _ := newTestRecipeService()
	author := testAuthor()

	createRecipe(t, s, author, &CreateRecipeRequest{
		Titulo: "Sopa de Legumes", Ingredientes: []string{"legumes", "água"},
		ModoPreparo: []string{"Cozinhe"}, Categoria: "carnes",
	})
	createRecipe(t, s, author, &CreateRecipeRequest{
		Titulo: "Panqueca de Banana", Ingredientes: []string{"banana", "ovo"},
		ModoPreparo: []string{"Bata"}, Categoria: "sobremesas",
	})
	createRecipe(t, s, author, &CreateRecipeRequest{
		Titulo: "Bolo de Banana", Ingredientes: []string{"banana", "farinha"},
		ModoPreparo: []string{"Asse"}, Categoria: "sobremesas",
	})

	all, err := s.List(context.Background(), "", "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len(all) = %d, want 3", len(all))
	}
	if all[0].Titulo != "Bolo de Banana" || all[2].Titulo != "Sopa de Legumes" {
		t.Errorf("list not ordered by title: %q .. %q", all[0].Titulo, all[2].Titulo)
	}

	sobremesas, err := s.List(context.Background(), "sobremesas", "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(sobremesas) != 2 {
		t.Errorf("len(sobremesas) = %d, want 2", len(sobremesas))
	}

	banana, err := s.List(context.Background(), "", "banana")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(banana) != 2 {
		t.Errorf("len(banana) = %d, want 2", len(banana))
	}

	both, err := s.List(context.Background(), "carnes", "legumes")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(both) != 1 || both[0].Titulo != "Sopa de Legumes" {
		t.Errorf("combined filter = %v", both)
	}
}

// TestListRecipesEmpty verifies an empty store yields an empty slice,
// not nil.
func TestListRecipesEmpty(t *testing.T) {
	s, _ := newTestRecipeService()
	got, err := s.List(context.Background(), "", "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if got == nil {
		t.Error("List() returned nil slice")
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
