package userRepo

import (
	"context"
	"strings"
	"sync"

	"justnest/models"
)

// MemoryUserRepo keeps accounts in process memory.
type MemoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

// NewMemoryUserRepo creates an empty in-memory UserRepository.
func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: make(map[string]*models.User)}
}

func (r *MemoryUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.ID]; exists || r.takenLocked(user.Email, user.Phone, "") {
		return ErrDuplicateUser
	}
	r.users[user.ID] = user.Clone()
	return nil
}

func (r *MemoryUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user.Clone(), nil
}

func (r *MemoryUserRepo) GetByLogin(_ context.Context, login string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Email, login) || user.Phone == login {
			return user.Clone(), nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *MemoryUserRepo) IsUserAvailable(_ context.Context, email, phone string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return !r.takenLocked(email, phone, ""), nil
}

func (r *MemoryUserRepo) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return ErrUserNotFound
	}
	if r.takenLocked(user.Email, user.Phone, user.ID) {
		return ErrDuplicateUser
	}
	r.users[user.ID] = user.Clone()
	return nil
}

// takenLocked checks email and phone against every account except skipID.
func (r *MemoryUserRepo) takenLocked(email, phone, skipID string) bool {
	for id, u := range r.users {
		if id == skipID {
			continue
		}
		if strings.EqualFold(u.Email, email) || u.Phone == phone {
			return true
		}
	}
	return false
}
