package articles

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/inkwell/internal/server/models"
)

func (r *InMemoryRepository) GetTags(ctx context.Context, id string) ([]models.Tag, error) {
	a, err := r.articles.Get(id)
	if err != nil {
		return nil, err
	}
	return a.Tags, nil
}

func (r *InMemoryRepository) AddTags(ctx context.Context, id string, tags []models.Tag) ([]models.Tag, error) {
	a, err := r.articles.Update(id, func(current *models.Article) error {
		for _, t := range tags {
			if current.HasTag(t.ID) {
				continue
			}
			current.Tags = append(current.Tags, t)
		}
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return a.Tags, nil
}

func (r *InMemoryRepository) RemoveTags(ctx context.Context, id string, tagIDs []string) ([]models.Tag, error) {
	a, err := r.articles.Update(id, func(current *models.Article) error {
		current.Tags = slices.DeleteFunc(current.Tags, func(t models.Tag) bool {
			return slices.Contains(tagIDs, t.ID)
		})
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return a.Tags, nil
}
