// Package repository provides MongoDB-backed persistence for users,
// recipes, and password-reset tokens.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ecomida/ecomida/logging/logger"
	"github.com/ecomida/ecomida/structs"
)

// UserRepository defines the interface for credential-store operations.
type UserRepository interface {
	Create(ctx context.Context, user *structs.User) (*structs.User, error)
	FindByEmail(ctx context.Context, email string) (*structs.User, error)
	FindActiveByEmail(ctx context.Context, email string) (*structs.User, error)
	FindActiveByID(ctx context.Context, id string) (*structs.User, error)
	UpdateName(ctx context.Context, id, nome string) error
	UpdatePasswordHash(ctx context.Context, id, hash string) error
	UpdatePasswordHashByEmail(ctx context.Context, email, hash string) error
}

type userRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *mongo.Database, logger *logger.Logger) UserRepository {
	collection := db.Collection("usuarios")

	// Unique index on email backs the duplicate-registration check.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		logger.Warn(ctx, "failed to create index on email", "error", err)
	}

	return &userRepository{
		collection: collection,
		logger:     logger,
	}
}

// Create inserts a new user record.
func (r *userRepository) Create(ctx context.Context, user *structs.User) (*structs.User, error) {
	user.ID = primitive.NewObjectID()

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, structs.ErrEmailAlreadyRegistered
		}
		r.logger.Error(ctx, "failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Info(ctx, "user created", "id", user.ID.Hex())
	return user, nil
}

// FindByEmail retrieves a user by email regardless of the active flag.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*structs.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// FindActiveByEmail retrieves an active user by email.
func (r *userRepository) FindActiveByEmail(ctx context.Context, email string) (*structs.User, error) {
	return r.findOne(ctx, bson.M{"email": email, "ativo": true})
}

// FindActiveByID retrieves an active user by its hex object ID.
func (r *userRepository) FindActiveByID(ctx context.Context, id string) (*structs.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, structs.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": objectID, "ativo": true})
}

func (r *userRepository) findOne(ctx context.Context, filter bson.M) (*structs.User, error) {
	var user structs.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, structs.ErrUserNotFound
		}
		r.logger.Error(ctx, "failed to find user", "error", err)
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// UpdateName updates the display name of the user.
func (r *userRepository) UpdateName(ctx context.Context, id, nome string) error {
	return r.updateByID(ctx, id, bson.M{"nome": nome})
}

// UpdatePasswordHash replaces the password hash of the user.
func (r *userRepository) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	return r.updateByID(ctx, id, bson.M{"senha": hash})
}

func (r *userRepository) updateByID(ctx context.Context, id string, set bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return structs.ErrUserNotFound
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": set})
	if err != nil {
		r.logger.Error(ctx, "failed to update user", "id", id, "error", err)
		return fmt.Errorf("failed to update user: %w", err)
	}
	if result.MatchedCount == 0 {
		return structs.ErrUserNotFound
	}
	return nil
}

// UpdatePasswordHashByEmail replaces the password hash of the user
// matching the email. Used by the reset flow, which resolves users by
// the email stored on the token.
func (r *userRepository) UpdatePasswordHashByEmail(ctx context.Context, email, hash string) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"senha": hash}})
	if err != nil {
		r.logger.Error(ctx, "failed to update user password", "email", email, "error", err)
		return fmt.Errorf("failed to update user password: %w", err)
	}
	if result.MatchedCount == 0 {
		return structs.ErrUserNotFound
	}
	return nil
}
