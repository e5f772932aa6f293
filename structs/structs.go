// Package structs defines the domain models persisted in MongoDB and the
// projections exposed over the API.
package structs

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a credential record in the usuarios collection. The password
// hash never leaves the server.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Nome         string             `bson:"nome" json:"nome"`
	Email        string             `bson:"email" json:"email"`
	SenhaHash    string             `bson:"senha" json:"-"`
	DataCadastro time.Time          `bson:"data_cadastro" json:"data_cadastro"`
	Ativo        bool               `bson:"ativo" json:"-"`
}

// UserSummary is the minimal user projection returned by auth operations.
type UserSummary struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

// Summary returns the API projection of the user.
func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:    u.ID.Hex(),
		Nome:  u.Nome,
		Email: u.Email,
	}
}

// ResetToken is a single-use password-reset token in the tokens_reset
// collection. Expirado only ever transitions false to true.
type ResetToken struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Token    string             `bson:"token" json:"-"`
	Email    string             `bson:"email" json:"-"`
	CriadoEm time.Time          `bson:"criado_em" json:"-"`
	Expirado bool               `bson:"expirado" json:"-"`
}

// Recipe is a recipe document in the receitas collection.
type Recipe struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Titulo       string             `bson:"titulo" json:"titulo"`
	Descricao    string             `bson:"descricao" json:"descricao"`
	Ingredientes []string           `bson:"ingredientes" json:"ingredientes"`
	ModoPreparo  []string           `bson:"modo_preparo" json:"modo_preparo"`
	Categoria    string             `bson:"categoria" json:"categoria"`
	TempoPreparo string             `bson:"tempo_preparo,omitempty" json:"tempo_preparo,omitempty"`
	Porcoes      int                `bson:"porcoes,omitempty" json:"porcoes,omitempty"`
	Dificuldade  string             `bson:"dificuldade" json:"dificuldade"`
	AutorID      string             `bson:"autor_id,omitempty" json:"autor_id,omitempty"`
	AutorNome    string             `bson:"autor_nome" json:"autor_nome"`
	DataCriacao  time.Time          `bson:"data_criacao" json:"data_criacao"`
	Ativa        bool               `bson:"ativa" json:"-"`
}
