package users

import (
	"context"

	"github.com/dmitrijs2005/mantis/internal/server/models"
)

// Repository stores accounts. Lookups that match nothing return
// common.ErrorNotFound; Create returns common.ErrorAlreadyExists when the
// email, username or uid is taken.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUID(ctx context.Context, uid string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context, skip, limit int) ([]*models.User, error)
}
