// File: database/repository/lawyer/lawyerMongoCrud.go
package lawyerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"justnest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new lawyer document. Unique indexes back the duplicate check.
func (r *MongoLawyerRepo) Create(ctx context.Context, lawyer *models.Lawyer) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, lawyer); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateLawyer
		}
		return fmt.Errorf("failed to create lawyer: %w", err)
	}
	return nil
}

// SetVerified updates the verification flag.
func (r *MongoLawyerRepo) SetVerified(ctx context.Context, id string, verified bool, at time.Time) (*models.Lawyer, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"isVerified": verified, "updatedAt": at}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var lawyer models.Lawyer
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&lawyer); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrLawyerNotFound
		}
		return nil, fmt.Errorf("failed to verify lawyer %s: %w", id, err)
	}
	return &lawyer, nil
}
