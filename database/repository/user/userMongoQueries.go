// File: database/repository/user/userMongoQueries.go
package userRepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"justnest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetByID retrieves a user by its ID.
func (r *MongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

// GetByLogin retrieves a user by email or phone.
func (r *MongoUserRepo) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"email": strings.ToLower(login)},
			{"phone": login},
		},
	}
	return r.findOne(ctx, filter)
}

// IsUserAvailable checks whether a user with the given email or phone already exists.
func (r *MongoUserRepo) IsUserAvailable(ctx context.Context, email, phone string) (bool, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"$or": []bson.M{
			{"email": strings.ToLower(email)},
			{"phone": phone},
		},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check user availability: %w", err)
	}
	return count == 0, nil
}

func (r *MongoUserRepo) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}
