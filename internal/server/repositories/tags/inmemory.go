package tags

import (
	"context"

	"github.com/dmitrijs2005/inkwell/internal/server/models"
	"github.com/dmitrijs2005/inkwell/internal/server/store"
)

type InMemoryRepository struct {
	tags *store.Collection[models.Tag]
}

func NewInMemoryRepository(c *store.Collection[models.Tag]) *InMemoryRepository {
	return &InMemoryRepository{tags: c}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]models.Tag, error) {
	return r.tags.List(), nil
}

func (r *InMemoryRepository) Create(ctx context.Context, tag *models.Tag) (*models.Tag, error) {
	t := *tag
	t.ID = store.NewID()

	created, err := r.tags.Insert(t.ID, t, nil)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*models.Tag, error) {
	t, err := r.tags.Get(id)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *InMemoryRepository) GetMany(ctx context.Context, ids []string) ([]models.Tag, error) {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	out := make([]models.Tag, 0, len(want))
	for _, t := range r.tags.List() {
		if _, ok := want[t.ID]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Replace(ctx context.Context, id string, tag *models.Tag) (*models.Tag, error) {
	t, err := r.tags.Update(id, func(current *models.Tag) error {
		*current = *tag
		current.ID = id
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *InMemoryRepository) Patch(ctx context.Context, id string, upd models.TagUpdate) (*models.Tag, error) {
	t, err := r.tags.Update(id, func(current *models.Tag) error {
		upd.Apply(current)
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	return r.tags.Delete(id)
}
