package users

import (
	"context"

	"github.com/dmitrijs2005/inkwell/internal/server/models"
)

// Repository stores user accounts. Email is unique across all users;
// violations are reported as common.ErrorConflict.
type Repository interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Replace overwrites every field except ID. An empty PasswordHash keeps
	// the stored one.
	Replace(ctx context.Context, id string, user *models.User) (*models.User, error)
	Patch(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id string) error
}
