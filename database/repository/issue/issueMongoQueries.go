// File: database/repository/issue/issueMongoQueries.go
package issueRepo

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

// GetByID retrieves an issue by its id.
func (r *MongoIssueRepo) GetByID(ctx context.Context, id string) (*models.LegalIssue, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var issue models.LegalIssue
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&issue); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrIssueNotFound
		}
		return nil, fmt.Errorf("failed to fetch legal issue with id %s: %w", id, err)
	}
	return normalize(&issue), nil
}

// GetAll retrieves every issue in insertion order.
func (r *MongoIssueRepo) GetAll(ctx context.Context) ([]models.LegalIssue, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve legal issues: %w", err)
	}
	return decodeAll(ctx, cursor)
}

// Find applies the exact-match filters, sorts with an id tie-break and pages with skip/limit.
func (r *MongoIssueRepo) Find(ctx context.Context, q models.IssueQuery) ([]models.LegalIssue, int64, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	filter := buildFilter(q.Filter)
	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count legal issues: %w", err)
	}

	if models.PageOutOfRange(q.Page, q.Limit, total) {
		return []models.LegalIssue{}, total, nil
	}

	dir := -1
	if q.SortOrder == models.SortAsc {
		dir = 1
	}
	sort := bson.D{{Key: q.SortBy, Value: dir}}
	if q.SortBy != "id" {
		sort = append(sort, bson.E{Key: "id", Value: dir})
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip(models.PageSkip(q.Page, q.Limit)).
		SetLimit(int64(q.Limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query legal issues: %w", err)
	}
	issues, err := decodeAll(ctx, cursor)
	if err != nil {
		return nil, 0, err
	}
	return issues, total, nil
}

func buildFilter(f models.IssueFilter) bson.M {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Urgency != "" {
		filter["urgency"] = f.Urgency
	}
	if f.Language != "" {
		filter["language"] = f.Language
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return filter
}

func decodeAll(ctx context.Context, cursor *mongo.Cursor) ([]models.LegalIssue, error) {
	defer cursor.Close(ctx)

	issues := []models.LegalIssue{}
	for cursor.Next(ctx) {
		var issue models.LegalIssue
		if err := cursor.Decode(&issue); err != nil {
			return nil, fmt.Errorf("failed to decode legal issue: %w", err)
		}
		issues = append(issues, *normalize(&issue))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("legal issue cursor failed: %w", err)
	}
	return issues, nil
}
