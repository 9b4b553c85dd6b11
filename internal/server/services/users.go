package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/inkwell/internal/common"
	"github.com/dmitrijs2005/inkwell/internal/logging"
	"github.com/dmitrijs2005/inkwell/internal/server/auth"
	"github.com/dmitrijs2005/inkwell/internal/server/config"
	"github.com/dmitrijs2005/inkwell/internal/server/models"
	"github.com/dmitrijs2005/inkwell/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

// UserInput carries the fields of a create or full replace.
type UserInput struct {
	Username string
	Email    string
	Password string
	Bio      string
	Avatar   string
}

// UserPatch is a partial update; nil fields are left untouched. A new
// Password is hashed before it is stored.
type UserPatch struct {
	Username *string
	Email    *string
	Password *string
	Bio      *string
	Avatar   *string
}

// LoginResult is a fresh session token and the account it belongs to.
type LoginResult struct {
	Token string             `json:"token"`
	User  *models.PublicUser `json:"user"`
}

// UserService handles accounts and sessions. It never returns password
// hashes; every user leaves as a models.PublicUser.
type UserService struct {
	repo       users.Repository
	sessions   *auth.SessionManager
	bcryptCost int
	logger     logging.Logger
}

func NewUserService(r users.Repository, sm *auth.SessionManager, cfg *config.Config, l logging.Logger) *UserService {
	return &UserService{
		repo:       r,
		sessions:   sm,
		bcryptCost: cfg.BcryptCost,
		logger:     l,
	}
}

// Login checks the credentials and opens a new session. An unknown email
// and a wrong password fail the same way.
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if err := required(field{"email", email}, field{"password", password}); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", common.ErrorUnauthorized)
		}
		return nil, translateError(ctx, s.logger, "login", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", common.ErrorUnauthorized)
	}

	token, err := s.sessions.Issue(user.ID)
	if err != nil {
		return nil, translateError(ctx, s.logger, "login", err)
	}

	// Delete may have revoked this user's sessions between the lookup and
	// Issue.
	if _, err := s.repo.Get(ctx, user.ID); err != nil {
		s.sessions.Revoke(token)
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", common.ErrorUnauthorized)
		}
		return nil, translateError(ctx, s.logger, "login", err)
	}

	s.logger.Info(ctx, "user logged in", "user_id", user.ID)
	return &LoginResult{Token: token, User: user.Public()}, nil
}

// Logout revokes token. Revoking an unknown or already revoked token is
// not an error.
func (s *UserService) Logout(ctx context.Context, token string) (*Confirmation, error) {
	if err := required(field{"token", token}); err != nil {
		return nil, err
	}
	s.sessions.Revoke(token)
	return confirm("Logged out successfully"), nil
}

// Authenticate returns the user id bound to a live token.
func (s *UserService) Authenticate(ctx context.Context, token string) (string, error) {
	return s.sessions.Validate(token)
}

func (s *UserService) List(ctx context.Context) ([]*models.PublicUser, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, translateError(ctx, s.logger, "list users", err)
	}

	out := make([]*models.PublicUser, 0, len(list))
	for i := range list {
		out = append(out, list[i].Public())
	}
	return out, nil
}

func (s *UserService) Create(ctx context.Context, in UserInput) (*models.PublicUser, error) {
	if err := required(
		field{"username", in.Username},
		field{"email", in.Email},
		field{"password", in.Password},
	); err != nil {
		return nil, err
	}

	hash, err := s.hashPassword(ctx, "create user", in.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Create(ctx, &models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Bio:          in.Bio,
		Avatar:       in.Avatar,
	})
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, fmt.Errorf("%w: email already registered", common.ErrorConflict)
		}
		return nil, translateError(ctx, s.logger, "create user", err)
	}

	s.logger.Info(ctx, "user created", "user_id", user.ID)
	return user.Public(), nil
}

func (s *UserService) Get(ctx context.Context, id string) (*models.PublicUser, error) {
	if err := required(field{"id", id}); err != nil {
		return nil, err
	}

	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, translateError(ctx, s.logger, "get user", err)
	}
	return user.Public(), nil
}

// Replace overwrites the account. Password may be left empty to keep the
// current one.
func (s *UserService) Replace(ctx context.Context, id string, in UserInput) (*models.PublicUser, error) {
	if err := required(
		field{"id", id},
		field{"username", in.Username},
		field{"email", in.Email},
	); err != nil {
		return nil, err
	}

	user := &models.User{
		Username: in.Username,
		Email:    in.Email,
		Bio:      in.Bio,
		Avatar:   in.Avatar,
	}
	if in.Password != "" {
		hash, err := s.hashPassword(ctx, "replace user", in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	updated, err := s.repo.Replace(ctx, id, user)
	if err != nil {
		return nil, translateError(ctx, s.logger, "replace user", err)
	}
	return updated.Public(), nil
}

func (s *UserService) Patch(ctx context.Context, id string, p UserPatch) (*models.PublicUser, error) {
	if err := firstError(
		required(field{"id", id}),
		requiredIfPresent("username", p.Username),
		requiredIfPresent("email", p.Email),
		requiredIfPresent("password", p.Password),
	); err != nil {
		return nil, err
	}

	upd := models.UserUpdate{
		Username: p.Username,
		Email:    p.Email,
		Bio:      p.Bio,
		Avatar:   p.Avatar,
	}
	if p.Password != nil {
		hash, err := s.hashPassword(ctx, "patch user", *p.Password)
		if err != nil {
			return nil, err
		}
		upd.PasswordHash = &hash
	}

	updated, err := s.repo.Patch(ctx, id, upd)
	if err != nil {
		return nil, translateError(ctx, s.logger, "patch user", err)
	}
	return updated.Public(), nil
}

// Delete removes the account and closes its open sessions.
func (s *UserService) Delete(ctx context.Context, id string) (*Confirmation, error) {
	if err := required(field{"id", id}); err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, translateError(ctx, s.logger, "delete user", err)
	}

	if n := s.sessions.RevokeUser(id); n > 0 {
		s.logger.Info(ctx, "sessions revoked", "user_id", id, "count", n)
	}
	return confirm("User deleted successfully"), nil
}

// hashPassword rejects passwords bcrypt cannot hash (over 72 bytes) as a
// validation error.
func (s *UserService) hashPassword(ctx context.Context, op, password string) (string, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: password longer than 72 bytes", common.ErrorValidation)
	}
	if err != nil {
		return "", translateError(ctx, s.logger, op, err)
	}
	return hash, nil
}
