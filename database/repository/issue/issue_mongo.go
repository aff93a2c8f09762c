package issueRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MongoIssueRepo implements IssueRepository using MongoDB.
type MongoIssueRepo struct {
	coll *mongo.Collection
}

// NewMongoIssueRepo creates a MongoDB-backed IssueRepository on coll.
func NewMongoIssueRepo(coll *mongo.Collection, logger *zap.Logger) *MongoIssueRepo {
	repo := &MongoIssueRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		logger.Warn("failed to create legal issue indexes", zap.Error(err))
	}
	return repo
}

// newContext derives a context with the given timeout from parent.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
