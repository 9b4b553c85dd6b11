package articles

import (
	"context"

	"github.com/dmitrijs2005/inkwell/internal/server/models"
)

// Repository stores articles together with their embedded tag snapshots.
type Repository interface {
	List(ctx context.Context) ([]models.Article, error)
	// Create assigns ID and CreatedAt. Duplicate tag ids in article.Tags are collapsed.
	Create(ctx context.Context, article *models.Article) (*models.Article, error)
	Get(ctx context.Context, id string) (*models.Article, error)
	// Replace overwrites every field except ID and CreatedAt.
	Replace(ctx context.Context, id string, article *models.Article) (*models.Article, error)
	Patch(ctx context.Context, id string, upd models.ArticleUpdate) (*models.Article, error)
	Delete(ctx context.Context, id string) error

	GetTags(ctx context.Context, id string) ([]models.Tag, error)
	// AddTags appends snapshots of tags that are not attached yet.
	AddTags(ctx context.Context, id string, tags []models.Tag) ([]models.Tag, error)
	// RemoveTags detaches the given tag ids; ids not attached are ignored.
	RemoveTags(ctx context.Context, id string, tagIDs []string) ([]models.Tag, error)
}
