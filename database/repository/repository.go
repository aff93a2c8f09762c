package repository

import (
	issueRepo "justnest/database/repository/issue"
	lawyerRepo "justnest/database/repository/lawyer"
	tokenRepo "justnest/database/repository/token"
	userRepo "justnest/database/repository/user"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Re-export the repository interfaces.
type (
	IssueRepository  = issueRepo.IssueRepository
	LawyerRepository = lawyerRepo.LawyerRepository
	UserRepository   = userRepo.UserRepository
	RevocationStore  = tokenRepo.RevocationStore
)

// Collection names in the application database.
const (
	IssuesCollection  = "legal_issues"
	LawyersCollection = "lawyers"
	UsersCollection   = "users"
)

// Set groups every repository the services need.
type Set struct {
	Issues  IssueRepository
	Lawyers LawyerRepository
	Users   UserRepository
	Tokens  RevocationStore
}

// NewMemorySet builds process-local repositories.
func NewMemorySet(authCache *redis.Client) Set {
	return Set{
		Issues:  issueRepo.NewMemoryIssueRepo(),
		Lawyers: lawyerRepo.NewMemoryLawyerRepo(),
		Users:   userRepo.NewMemoryUserRepo(),
		Tokens:  newRevocationStore(authCache),
	}
}

// NewMongoSet builds MongoDB repositories on db.
func NewMongoSet(db *mongo.Database, authCache *redis.Client, logger *zap.Logger) Set {
	return Set{
		Issues:  issueRepo.NewMongoIssueRepo(db.Collection(IssuesCollection), logger),
		Lawyers: lawyerRepo.NewMongoLawyerRepo(db.Collection(LawyersCollection), logger),
		Users:   userRepo.NewMongoUserRepo(db.Collection(UsersCollection), logger),
		Tokens:  newRevocationStore(authCache),
	}
}

// newRevocationStore keeps revoked tokens in Redis when it is configured so
// that every instance sees a logout.
func newRevocationStore(authCache *redis.Client) RevocationStore {
	if authCache != nil {
		return tokenRepo.NewRedisRevocationStore(authCache)
	}
	return tokenRepo.NewMemoryRevocationStore()
}
