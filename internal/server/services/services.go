// Package services is the façade in front of the repositories and the
// session manager. Every exported method validates its required inputs
// before touching storage and returns only the error kinds declared in
// internal/common; unexpected failures are logged and reported as
// common.ErrorInternal.
package services

import (
	"github.com/dmitrijs2005/inkwell/internal/logging"
	"github.com/dmitrijs2005/inkwell/internal/server/auth"
	"github.com/dmitrijs2005/inkwell/internal/server/config"
	"github.com/dmitrijs2005/inkwell/internal/server/repositories/repomanager"
)

// Services bundles the per-resource façades.
type Services struct {
	Users    *UserService
	Articles *ArticleService
	Tags     *TagService
}

func New(m repomanager.RepositoryManager, sessions *auth.SessionManager, cfg *config.Config, l logging.Logger) *Services {
	return &Services{
		Users:    NewUserService(m.Users(), sessions, cfg, l.With("module", "users")),
		Articles: NewArticleService(m.Articles(), m.Tags(), l.With("module", "articles")),
		Tags:     NewTagService(m.Tags(), l.With("module", "tags")),
	}
}

// Confirmation is returned by operations that have no record to return.
type Confirmation struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func confirm(msg string) *Confirmation {
	return &Confirmation{Success: true, Message: msg}
}
