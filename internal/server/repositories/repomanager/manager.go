package repomanager

import (
	"context"

	"github.com/dmitrijs2005/mantis/internal/server/repositories/users"
)

// RepositoryManager vends the backend's repositories and prepares the
// storage they live in.
type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users() users.Repository
}

// MemoryRepositoryManager keeps everything in process memory. Migrations
// are a no-op.
type MemoryRepositoryManager struct {
	users *users.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{users: users.NewMemoryRepository()}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

func (m *MemoryRepositoryManager) Users() users.Repository { return m.users }
