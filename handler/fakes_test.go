package handler

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ecomida/ecomida/structs"
)

// In-memory repository doubles backing the router tests.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*structs.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*structs.User{}}
}

func (r *memUserRepo) Create(_ context.Context, user *structs.User) (*structs.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(user.Email)
	if _, ok := r.users[key]; ok {
		return nil, structs.ErrEmailAlreadyRegistered
	}
	clone := *user
	clone.ID = primitive.NewObjectID()
	r.users[key] = &clone
	out := clone
	return &out, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*structs.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[strings.ToLower(email)]; ok {
		out := *u
		return &out, nil
	}
	return nil, structs.ErrUserNotFound
}

func (r *memUserRepo) FindActiveByEmail(ctx context.Context, email string) (*structs.User, error) {
	u, err := r.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !u.Ativo {
		return nil, structs.ErrUserNotFound
	}
	return u, nil
}

func (r *memUserRepo) FindActiveByID(_ context.Context, id string) (*structs.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID.Hex() == id && u.Ativo {
			out := *u
			return &out, nil
		}
	}
	return nil, structs.ErrUserNotFound
}

func (r *memUserRepo) UpdateName(_ context.Context, id, nome string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID.Hex() == id {
			u.Nome = nome
			return nil
		}
	}
	return structs.ErrUserNotFound
}

func (r *memUserRepo) UpdatePasswordHash(_ context.Context, id, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID.Hex() == id {
			u.SenhaHash = hash
			return nil
		}
	}
	return structs.ErrUserNotFound
}

func (r *memUserRepo) UpdatePasswordHashByEmail(_ context.Context, email, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[strings.ToLower(email)]; ok {
		u.SenhaHash = hash
		return nil
	}
	return structs.ErrUserNotFound
}

type memResetTokenRepo struct {
	mu     sync.Mutex
	tokens []*structs.ResetToken
}

func newMemResetTokenRepo() *memResetTokenRepo {
	return &memResetTokenRepo{}
}

func (r *memResetTokenRepo) Create(_ context.Context, token *structs.ResetToken) (*structs.ResetToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *token
	clone.ID = primitive.NewObjectID()
	r.tokens = append(r.tokens, &clone)
	out := clone
	return &out, nil
}

func (r *memResetTokenRepo) DeleteByEmail(_ context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.tokens[:0]
	for _, t := range r.tokens {
		if t.Email != email {
			kept = append(kept, t)
		}
	}
	r.tokens = kept
	return nil
}

func (r *memResetTokenRepo) FindLiveByToken(_ context.Context, token string) (*structs.ResetToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tokens {
		if t.Token == token && !t.Expirado {
			out := *t
			return &out, nil
		}
	}
	return nil, structs.ErrResetTokenInvalid
}

func (r *memResetTokenRepo) MarkExpired(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tokens {
		if t.ID == id {
			t.Expirado = true
			return nil
		}
	}
	return structs.ErrResetTokenInvalid
}

func (r *memResetTokenRepo) liveToken(email string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tokens {
		if t.Email == email && !t.Expirado {
			return t.Token
		}
	}
	return ""
}

type memRecipeRepo struct {
	mu      sync.Mutex
	recipes []*structs.Recipe
}

func newMemRecipeRepo() *memRecipeRepo {
	return &memRecipeRepo{}
}

func (r *memRecipeRepo) Create(_ context.Context, recipe *structs.Recipe) (*structs.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *recipe
	clone.ID = primitive.NewObjectID()
	r.recipes = append(r.recipes, &clone)
	out := clone
	return &out, nil
}

func (r *memRecipeRepo) FindByID(_ context.Context, id string) (*structs.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.recipes {
		if rec.ID.Hex() == id {
			out := *rec
			return &out, nil
		}
	}
	return nil, structs.ErrRecipeNotFound
}

func (r *memRecipeRepo) List(_ context.Context, categoria, busca string) ([]*structs.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*structs.Recipe
	for _, rec := range r.recipes {
		if categoria != "" && rec.Categoria != categoria {
			continue
		}
		if busca != "" && !strings.Contains(strings.ToLower(rec.Titulo), strings.ToLower(busca)) {
			continue
		}
		clone := *rec
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memRecipeRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.recipes)), nil
}
