package articles

import (
	"context"
	"time"

	"github.com/dmitrijs2005/inkwell/internal/server/models"
	"github.com/dmitrijs2005/inkwell/internal/server/store"
)

type InMemoryRepository struct {
	articles *store.Collection[models.Article]
	now      func() time.Time
}

func NewInMemoryRepository(c *store.Collection[models.Article]) *InMemoryRepository {
	return &InMemoryRepository{
		articles: c,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]models.Article, error) {
	return r.articles.List(), nil
}

func (r *InMemoryRepository) Create(ctx context.Context, article *models.Article) (*models.Article, error) {
	a := article.Clone()
	a.ID = store.NewID()
	a.CreatedAt = r.now()
	a.Tags = models.UniqueTags(a.Tags)

	created, err := r.articles.Insert(a.ID, a, nil)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*models.Article, error) {
	a, err := r.articles.Get(id)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *InMemoryRepository) Replace(ctx context.Context, id string, article *models.Article) (*models.Article, error) {
	a, err := r.articles.Update(id, func(current *models.Article) error {
		createdAt := current.CreatedAt
		*current = article.Clone()
		current.ID = id
		current.CreatedAt = createdAt
		current.Tags = models.UniqueTags(current.Tags)
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *InMemoryRepository) Patch(ctx context.Context, id string, upd models.ArticleUpdate) (*models.Article, error) {
	a, err := r.articles.Update(id, func(current *models.Article) error {
		upd.Apply(current)
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	return r.articles.Delete(id)
}
