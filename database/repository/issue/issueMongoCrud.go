// File: database/repository/issue/issueMongoCrud.go
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

// Create inserts a new issue document.
func (r *MongoIssueRepo) Create(ctx context.Context, issue *models.LegalIssue) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, issue); err != nil {
		return fmt.Errorf("failed to create legal issue: %w", err)
	}
	return nil
}

// IncrementViews bumps the view counter with $inc so concurrent reads never lose a view.
func (r *MongoIssueRepo) IncrementViews(ctx context.Context, id string, at time.Time) (*models.LegalIssue, error) {
	update := bson.M{
		"$inc": bson.M{"views": 1},
		"$set": bson.M{"updatedAt": at},
	}
	return r.findOneAndUpdate(ctx, id, update)
}

// AppendResponse pushes a response onto the thread.
func (r *MongoIssueRepo) AppendResponse(ctx context.Context, id string, resp models.Response, at time.Time) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"responses": resp},
		"$set":  bson.M{"updatedAt": at},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to add response to legal issue %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrIssueNotFound
	}
	return nil
}

// UpdateStatus sets the status and, when given, the notes.
func (r *MongoIssueRepo) UpdateStatus(ctx context.Context, id, status, notes string, at time.Time) (*models.LegalIssue, error) {
	set := bson.M{"status": status, "updatedAt": at}
	if notes != "" {
		set["notes"] = notes
	}
	return r.findOneAndUpdate(ctx, id, bson.M{"$set": set})
}

// AssignLawyer stores the assignment and moves the issue to in-progress in one update.
func (r *MongoIssueRepo) AssignLawyer(ctx context.Context, id string, assignment models.LawyerAssignment, at time.Time) (*models.LegalIssue, error) {
	update := bson.M{"$set": bson.M{
		"assignedLawyer": assignment,
		"status":         models.StatusInProgress,
		"updatedAt":      at,
	}}
	return r.findOneAndUpdate(ctx, id, update)
}

func (r *MongoIssueRepo) findOneAndUpdate(ctx context.Context, id string, update bson.M) (*models.LegalIssue, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var issue models.LegalIssue
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&issue)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrIssueNotFound
		}
		return nil, fmt.Errorf("failed to update legal issue %s: %w", id, err)
	}
	return normalize(&issue), nil
}

// normalize replaces nil slices decoded from documents with empty ones.
func normalize(issue *models.LegalIssue) *models.LegalIssue {
	if issue.Responses == nil {
		issue.Responses = []models.Response{}
	}
	if issue.Tags == nil {
		issue.Tags = []string{}
	}
	if issue.Files == nil {
		issue.Files = []string{}
	}
	return issue
}
