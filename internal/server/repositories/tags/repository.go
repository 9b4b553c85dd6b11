package tags

import (
	"context"

	"github.com/dmitrijs2005/inkwell/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) (*models.Tag, error)
	Get(ctx context.Context, id string) (*models.Tag, error)
	// GetMany returns the tags that exist among ids, in repository
	// order. Unknown and repeated ids are skipped.
	GetMany(ctx context.Context, ids []string) ([]models.Tag, error)
	Replace(ctx context.Context, id string, tag *models.Tag) (*models.Tag, error)
	Patch(ctx context.Context, id string, upd models.TagUpdate) (*models.Tag, error)
	Delete(ctx context.Context, id string) error
}
