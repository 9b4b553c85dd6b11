package services

import (
	"context"

	"github.com/dmitrijs2005/inkwell/internal/logging"
	"github.com/dmitrijs2005/inkwell/internal/server/models"
	"github.com/dmitrijs2005/inkwell/internal/server/repositories/articles"
	"github.com/dmitrijs2005/inkwell/internal/server/repositories/tags"
)

// ArticleInput carries the fields of a create or full replace. Tags are
// stored as given (deduplicated by id); they are not looked up.
type ArticleInput struct {
	Title    string
	Content  string
	AuthorID string
	Tags     []models.Tag
}

// ArticleService manages articles and their tag associations. AuthorID is
// not checked against the user repository.
type ArticleService struct {
	repo   articles.Repository
	tags   tags.Repository
	logger logging.Logger
}

func NewArticleService(r articles.Repository, t tags.Repository, l logging.Logger) *ArticleService {
	return &ArticleService{repo: r, tags: t, logger: l}
}

func (in ArticleInput) validate() error {
	return required(
		field{"title", in.Title},
		field{"content", in.Content},
		field{"authorId", in.AuthorID},
	)
}

func (in ArticleInput) article() *models.Article {
	return &models.Article{
		Title:    in.Title,
		Content:  in.Content,
		AuthorID: in.AuthorID,
		Tags:     in.Tags,
	}
}

func (s *ArticleService) List(ctx context.Context) ([]models.Article, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, translateError(ctx, s.logger, "list articles", err)
	}
	return list, nil
}

func (s *ArticleService) Create(ctx context.Context, in ArticleInput) (*models.Article, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.Create(ctx, in.article())
	if err != nil {
		return nil, translateError(ctx, s.logger, "create article", err)
	}

	s.logger.Info(ctx, "article created", "article_id", a.ID, "author_id", a.AuthorID)
	return a, nil
}

func (s *ArticleService) Get(ctx context.Context, id string) (*models.Article, error) {
	if err := required(field{"id", id}); err != nil {
		return nil, err
	}

	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, translateError(ctx, s.logger, "get article", err)
	}
	return a, nil
}

func (s *ArticleService) Replace(ctx context.Context, id string, in ArticleInput) (*models.Article, error) {
	if err := firstError(required(field{"id", id}), in.validate()); err != nil {
		return nil, err
	}

	a, err := s.repo.Replace(ctx, id, in.article())
	if err != nil {
		return nil, translateError(ctx, s.logger, "replace article", err)
	}
	return a, nil
}

func (s *ArticleService) Patch(ctx context.Context, id string, upd models.ArticleUpdate) (*models.Article, error) {
	if err := firstError(
		required(field{"id", id}),
		requiredIfPresent("title", upd.Title),
		requiredIfPresent("content", upd.Content),
		requiredIfPresent("authorId", upd.AuthorID),
	); err != nil {
		return nil, err
	}

	a, err := s.repo.Patch(ctx, id, upd)
	if err != nil {
		return nil, translateError(ctx, s.logger, "patch article", err)
	}
	return a, nil
}

func (s *ArticleService) Delete(ctx context.Context, id string) (*Confirmation, error) {
	if err := required(field{"id", id}); err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, translateError(ctx, s.logger, "delete article", err)
	}
	return confirm("Article deleted successfully"), nil
}

// GetTags returns the tag snapshots embedded in the article.
func (s *ArticleService) GetTags(ctx context.Context, articleID string) ([]models.Tag, error) {
	if err := required(field{"articleId", articleID}); err != nil {
		return nil, err
	}

	list, err := s.repo.GetTags(ctx, articleID)
	if err != nil {
		return nil, translateError(ctx, s.logger, "get article tags", err)
	}
	return list, nil
}

// AddTags attaches snapshots of the existing tags among tagIDs. Unknown
// ids and tags already attached are skipped.
func (s *ArticleService) AddTags(ctx context.Context, articleID string, tagIDs []string) (*Confirmation, error) {
	if err := required(field{"articleId", articleID}); err != nil {
		return nil, err
	}

	found, err := s.tags.GetMany(ctx, tagIDs)
	if err != nil {
		return nil, translateError(ctx, s.logger, "add article tags", err)
	}

	if _, err := s.repo.AddTags(ctx, articleID, found); err != nil {
		return nil, translateError(ctx, s.logger, "add article tags", err)
	}
	return confirm("Tags added successfully"), nil
}

// RemoveTags detaches tagIDs from the article; ids not attached are ignored.
func (s *ArticleService) RemoveTags(ctx context.Context, articleID string, tagIDs []string) (*Confirmation, error) {
	if err := required(field{"articleId", articleID}); err != nil {
		return nil, err
	}

	if _, err := s.repo.RemoveTags(ctx, articleID, tagIDs); err != nil {
		return nil, translateError(ctx, s.logger, "remove article tags", err)
	}
	return confirm("Tags removed successfully"), nil
}
