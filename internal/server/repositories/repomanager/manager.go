package repomanager

import (
	"github.com/dmitrijs2005/inkwell/internal/server/repositories/articles"
	"github.com/dmitrijs2005/inkwell/internal/server/repositories/tags"
	"github.com/dmitrijs2005/inkwell/internal/server/repositories/users"
)

// RepositoryManager hands out the repositories of one backing store and
// releases it on Close.
type RepositoryManager interface {
	Users() users.Repository
	Articles() articles.Repository
	Tags() tags.Repository
	Close() error
}
