package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ecomida/ecomida/logging/logger"
	"github.com/ecomida/ecomida/structs"
)

// ResetTokenRepository defines the interface for password-reset token
// persistence. "At most one live token per email" is enforced by the
// caller through DeleteByEmail followed by Create; the two operations
// are deliberately not atomic (see DESIGN.md).
type ResetTokenRepository interface {
	Create(ctx context.Context, token *structs.ResetToken) (*structs.ResetToken, error)
	DeleteByEmail(ctx context.Context, email string) error
	FindLiveByToken(ctx context.Context, token string) (*structs.ResetToken, error)
	MarkExpired(ctx context.Context, id primitive.ObjectID) error
}

type resetTokenRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewResetTokenRepository creates a new reset token repository instance.
func NewResetTokenRepository(db *mongo.Database, logger *logger.Logger) ResetTokenRepository {
	collection := db.Collection("tokens_reset")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "token", Value: 1}},
	}
	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		logger.Warn(ctx, "failed to create index on token", "error", err)
	}

	return &resetTokenRepository{
		collection: collection,
		logger:     logger,
	}
}

// Create persists a new live reset token.
func (r *resetTokenRepository) Create(ctx context.Context, token *structs.ResetToken) (*structs.ResetToken, error) {
	token.ID = primitive.NewObjectID()

	if _, err := r.collection.InsertOne(ctx, token); err != nil {
		r.logger.Error(ctx, "failed to create reset token", "error", err)
		return nil, fmt.Errorf("failed to create reset token: %w", err)
	}

	return token, nil
}

// DeleteByEmail removes every reset token recorded for the email.
func (r *resetTokenRepository) DeleteByEmail(ctx context.Context, email string) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"email": email}); err != nil {
		r.logger.Error(ctx, "failed to delete reset tokens", "error", err)
		return fmt.Errorf("failed to delete reset tokens: %w", err)
	}
	return nil
}

// FindLiveByToken retrieves the token record iff it has not been
// redeemed or expired.
func (r *resetTokenRepository) FindLiveByToken(ctx context.Context, token string) (*structs.ResetToken, error) {
	var record structs.ResetToken
	err := r.collection.FindOne(ctx, bson.M{"token": token, "expirado": false}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, structs.ErrResetTokenInvalid
		}
		r.logger.Error(ctx, "failed to find reset token", "error", err)
		return nil, fmt.Errorf("failed to find reset token: %w", err)
	}
	return &record, nil
}

// MarkExpired flips the expirado flag. The transition is permanent;
// nothing ever resets it to false.
func (r *resetTokenRepository) MarkExpired(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"expirado": true}})
	if err != nil {
		r.logger.Error(ctx, "failed to expire reset token", "error", err)
		return fmt.Errorf("failed to expire reset token: %w", err)
	}
	return nil
}
