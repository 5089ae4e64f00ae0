package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/mantis/internal/common"
	"github.com/dmitrijs2005/mantis/internal/server/models"
)

// MemoryRepository keeps accounts in process memory. It backs the dev
// server when no database DSN is configured.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	users  []*models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

func (r *MemoryRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username || u.UID == user.UID {
			return nil, common.ErrorAlreadyExists
		}
	}

	stored := *user
	stored.ID = r.nextID
	stored.CreatedAt = time.Now().UTC()
	r.nextID++
	r.users = append(r.users, &stored)

	out := stored
	return &out, nil
}

func (r *MemoryRepository) find(match func(*models.User) bool) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if match(u) {
			out := *u
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) GetByID(_ context.Context, id int64) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.ID == id })
}

func (r *MemoryRepository) GetByUID(_ context.Context, uid string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.UID == uid })
}

func (r *MemoryRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Email == email })
}

func (r *MemoryRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Username == username })
}

func (r *MemoryRepository) List(_ context.Context, skip, limit int) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.User, 0)
	for i := skip; i < len(r.users) && len(out) < limit; i++ {
		u := *r.users[i]
		out = append(out, &u)
	}
	return out, nil
}
