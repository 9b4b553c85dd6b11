package users

import (
	"context"

	"github.com/dmitrijs2005/inkwell/internal/server/models"
	"github.com/dmitrijs2005/inkwell/internal/server/store"
)

type InMemoryRepository struct {
	users *store.Collection[models.User]
}

func NewInMemoryRepository(c *store.Collection[models.User]) *InMemoryRepository {
	return &InMemoryRepository{users: c}
}

func emailTaken(candidate, existing models.User) bool {
	return candidate.Email == existing.Email
}

func (r *InMemoryRepository) List(ctx context.Context) ([]models.User, error) {
	return r.users.List(), nil
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	u := *user
	u.ID = store.NewID()

	created, err := r.users.Insert(u.ID, u, emailTaken)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*models.User, error) {
	u, err := r.users.Get(id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := r.users.Find(func(u models.User) bool { return u.Email == email })
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *InMemoryRepository) Replace(ctx context.Context, id string, user *models.User) (*models.User, error) {
	u, err := r.users.Update(id, func(current *models.User) error {
		hash := current.PasswordHash
		*current = *user
		current.ID = id
		if current.PasswordHash == "" {
			current.PasswordHash = hash
		}
		return nil
	}, emailTaken)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *InMemoryRepository) Patch(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	u, err := r.users.Update(id, func(current *models.User) error {
		upd.Apply(current)
		return nil
	}, emailTaken)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	return r.users.Delete(id)
}
