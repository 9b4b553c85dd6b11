package store

import (
	"github.com/dmitrijs2005/inkwell/internal/server/models"
	"github.com/google/uuid"
)

// Store owns one collection per resource kind.
type Store struct {
	Users    *Collection[models.User]
	Articles *Collection[models.Article]
	Tags     *Collection[models.Tag]
}

func New() *Store {
	return &Store{
		Users:    NewCollection[models.User](),
		Articles: NewCollection[models.Article](),
		Tags:     NewCollection[models.Tag](),
	}
}

// Close discards all data. The Store must not be used afterwards.
func (s *Store) Close() error {
	s.Users.Clear()
	s.Articles.Clear()
	s.Tags.Clear()
	return nil
}

// NewID returns a fresh random identifier for a record.
func NewID() string {
	return uuid.NewString()
}
