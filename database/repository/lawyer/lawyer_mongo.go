package lawyerRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MongoLawyerRepo implements LawyerRepository using MongoDB.
type MongoLawyerRepo struct {
	coll *mongo.Collection
}

// NewMongoLawyerRepo creates a MongoDB-backed LawyerRepository on coll.
func NewMongoLawyerRepo(coll *mongo.Collection, logger *zap.Logger) *MongoLawyerRepo {
	repo := &MongoLawyerRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		logger.Warn("failed to create lawyer indexes", zap.Error(err))
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
