// File: database/repository/lawyer/lawyerMongoQueries.go
package lawyerRepo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"justnest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID retrieves a lawyer by id.
func (r *MongoLawyerRepo) GetByID(ctx context.Context, id string) (*models.Lawyer, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var lawyer models.Lawyer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&lawyer); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrLawyerNotFound
		}
		return nil, fmt.Errorf("failed to fetch lawyer with id %s: %w", id, err)
	}
	return &lawyer, nil
}

// Find lists lawyers in registration order.
func (r *MongoLawyerRepo) Find(ctx context.Context, q models.LawyerQuery) ([]models.Lawyer, int64, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	filter := buildFilter(q.Filter)
	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count lawyers: %w", err)
	}

	if models.PageOutOfRange(q.Page, q.Limit, total) {
		return []models.Lawyer{}, total, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "id", Value: 1}}).
		SetSkip(models.PageSkip(q.Page, q.Limit)).
		SetLimit(int64(q.Limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query lawyers: %w", err)
	}
	defer cursor.Close(ctx)

	lawyers := []models.Lawyer{}
	for cursor.Next(ctx) {
		var l models.Lawyer
		if err := cursor.Decode(&l); err != nil {
			return nil, 0, fmt.Errorf("failed to decode lawyer: %w", err)
		}
		lawyers = append(lawyers, l)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("lawyer cursor failed: %w", err)
	}
	return lawyers, total, nil
}

// ExistsDuplicate checks the unique registration fields in a single query.
func (r *MongoLawyerRepo) ExistsDuplicate(ctx context.Context, email, phone, barCouncilNumber string) (bool, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"$or": []bson.M{
		{"email": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(email) + "$", Options: "i"}},
		{"phone": phone},
		{"barCouncilNumber": barCouncilNumber},
	}}
	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check lawyer availability: %w", err)
	}
	return count > 0, nil
}

// IsVerifiedEmail looks for a verified lawyer with email, ignoring case.
func (r *MongoLawyerRepo) IsVerifiedEmail(ctx context.Context, email string) (bool, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"email":      primitive.Regex{Pattern: "^" + regexp.QuoteMeta(email) + "$", Options: "i"},
		"isVerified": true,
	}
	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check lawyer verification: %w", err)
	}
	return count > 0, nil
}

func buildFilter(f models.LawyerFilter) bson.M {
	filter := bson.M{}
	if f.Specialization != "" {
		filter["specializations"] = f.Specialization
	}
	if f.Language != "" {
		filter["languages"] = f.Language
	}
	if f.Location != "" {
		filter["location"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Location), Options: "i"}
	}
	if f.Verified != nil {
		filter["isVerified"] = *f.Verified
	}
	if f.Availability != "" {
		filter["availability"] = f.Availability
	}
	return filter
}
