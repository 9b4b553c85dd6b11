package repomanager

import (
	"github.com/dmitrijs2005/inkwell/internal/server/repositories/articles"
	"github.com/dmitrijs2005/inkwell/internal/server/repositories/tags"
	"github.com/dmitrijs2005/inkwell/internal/server/repositories/users"
	"github.com/dmitrijs2005/inkwell/internal/server/store"
)

type InMemoryRepositoryManager struct {
	store    *store.Store
	users    *users.InMemoryRepository
	articles *articles.InMemoryRepository
	tags     *tags.InMemoryRepository
}

func NewInMemoryRepositoryManager(s *store.Store) *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		store:    s,
		users:    users.NewInMemoryRepository(s.Users),
		articles: articles.NewInMemoryRepository(s.Articles),
		tags:     tags.NewInMemoryRepository(s.Tags),
	}
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Articles() articles.Repository {
	return m.articles
}

func (m *InMemoryRepositoryManager) Tags() tags.Repository {
	return m.tags
}

func (m *InMemoryRepositoryManager) Close() error {
	return m.store.Close()
}
