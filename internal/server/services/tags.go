package services

import (
	"context"

	"github.com/dmitrijs2005/inkwell/internal/logging"
	"github.com/dmitrijs2005/inkwell/internal/server/models"
	"github.com/dmitrijs2005/inkwell/internal/server/repositories/tags"
)

type TagInput struct {
	Name        string
	Description string
}

// TagService manages the tag catalogue. Changes here never reach the
// snapshots already embedded in articles.
type TagService struct {
	repo   tags.Repository
	logger logging.Logger
}

func NewTagService(r tags.Repository, l logging.Logger) *TagService {
	return &TagService{repo: r, logger: l}
}

func (s *TagService) List(ctx context.Context) ([]models.Tag, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, translateError(ctx, s.logger, "list tags", err)
	}
	return list, nil
}

func (s *TagService) Create(ctx context.Context, in TagInput) (*models.Tag, error) {
	if err := required(field{"name", in.Name}); err != nil {
		return nil, err
	}

	t, err := s.repo.Create(ctx, &models.Tag{Name: in.Name, Description: in.Description})
	if err != nil {
		return nil, translateError(ctx, s.logger, "create tag", err)
	}
	return t, nil
}

func (s *TagService) Get(ctx context.Context, id string) (*models.Tag, error) {
	if err := required(field{"id", id}); err != nil {
		return nil, err
	}

	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, translateError(ctx, s.logger, "get tag", err)
	}
	return t, nil
}

func (s *TagService) Replace(ctx context.Context, id string, in TagInput) (*models.Tag, error) {
	if err := required(field{"id", id}, field{"name", in.Name}); err != nil {
		return nil, err
	}

	t, err := s.repo.Replace(ctx, id, &models.Tag{Name: in.Name, Description: in.Description})
	if err != nil {
		return nil, translateError(ctx, s.logger, "replace tag", err)
	}
	return t, nil
}

func (s *TagService) Patch(ctx context.Context, id string, upd models.TagUpdate) (*models.Tag, error) {
	if err := firstError(required(field{"id", id}), requiredIfPresent("name", upd.Name)); err != nil {
		return nil, err
	}

	t, err := s.repo.Patch(ctx, id, upd)
	if err != nil {
		return nil, translateError(ctx, s.logger, "patch tag", err)
	}
	return t, nil
}

func (s *TagService) Delete(ctx context.Context, id string) (*Confirmation, error) {
	if err := required(field{"id", id}); err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, translateError(ctx, s.logger, "delete tag", err)
	}
	return confirm("Tag deleted successfully"), nil
}
