package users

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/inkwell/internal/common"
	"github.com/dmitrijs2005/inkwell/internal/server/models"
	"github.com/dmitrijs2005/inkwell/internal/server/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newRepo(t *testing.T) *InMemoryRepository {
	t.Helper()
	return NewInMemoryRepository(store.NewCollection[models.User]())
}

func mustCreate(t *testing.T, r *InMemoryRepository, u models.User) *models.User {
	t.Helper()
	created, err := r.Create(context.Background(), &u)
	require.NoError(t, err)
	return created
}

func TestCreate_AssignsIDAndGetReturnsSame(t *testing.T) {
	r := newRepo(t)
	in := &models.User{ID: "ignored", Username: "alice", Email: "a@x.com", PasswordHash: "h"}

	created, err := r.Create(context.Background(), in)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "ignored", created.ID)
	assert.Equal(t, "ignored", in.ID, "input must not be mutated")

	got, err := r.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	r := newRepo(t)
	mustCreate(t, r, models.User{Username: "a", Email: "a@x.com"})

	_, err := r.Create(context.Background(), &models.User{Username: "b", Email: "a@x.com"})
	assert.ErrorIs(t, err, common.ErrorConflict)

	list, _ := r.List(context.Background())
	assert.Len(t, list, 1)
}

func TestGetByEmail(t *testing.T) {
	r := newRepo(t)
	u := mustCreate(t, r, models.User{Username: "a", Email: "a@x.com"})

	got, err := r.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = r.GetByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestReplace(t *testing.T) {
	r := newRepo(t)
	u := mustCreate(t, r, models.User{Username: "a", Email: "a@x.com", PasswordHash: "h1", Bio: "bio", Avatar: "av"})
	other := mustCreate(t, r, models.User{Username: "b", Email: "b@x.com"})

	t.Run("overwrites all fields and keeps hash when empty", func(t *testing.T) {
		got, err := r.Replace(context.Background(), u.ID, &models.User{ID: "x", Username: "a2", Email: "a2@x.com"})
		require.NoError(t, err)
		assert.Equal(t, &models.User{ID: u.ID, Username: "a2", Email: "a2@x.com", PasswordHash: "h1"}, got)
	})

	t.Run("new hash stored", func(t *testing.T) {
		got, err := r.Replace(context.Background(), u.ID, &models.User{Username: "a2", Email: "a2@x.com", PasswordHash: "h2"})
		require.NoError(t, err)
		assert.Equal(t, "h2", got.PasswordHash)
	})

	t.Run("email of another user", func(t *testing.T) {
		_, err := r.Replace(context.Background(), u.ID, &models.User{Username: "a2", Email: other.Email})
		assert.ErrorIs(t, err, common.ErrorConflict)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := r.Replace(context.Background(), "nope", &models.User{})
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})
}

func TestPatch_OnlyGivenFieldAndIdempotent(t *testing.T) {
	r := newRepo(t)
	u := mustCreate(t, r, models.User{Username: "a", Email: "a@x.com", PasswordHash: "h", Bio: "old", Avatar: "av"})

	upd := models.UserUpdate{Bio: ptr("new")}
	once, err := r.Patch(context.Background(), u.ID, upd)
	require.NoError(t, err)
	twice, err := r.Patch(context.Background(), u.ID, upd)
	require.NoError(t, err)

	want := *u
	want.Bio = "new"
	assert.Equal(t, &want, once)
	assert.Equal(t, once, twice)
}

func TestPatch_EmailConflictAndNotFound(t *testing.T) {
	r := newRepo(t)
	u := mustCreate(t, r, models.User{Email: "a@x.com"})
	mustCreate(t, r, models.User{Email: "b@x.com"})

	_, err := r.Patch(context.Background(), u.ID, models.UserUpdate{Email: ptr("b@x.com")})
	assert.ErrorIs(t, err, common.ErrorConflict)

	_, err = r.Patch(context.Background(), u.ID, models.UserUpdate{Email: ptr("a@x.com")})
	assert.NoError(t, err, "keeping own email is not a conflict")

	_, err = r.Patch(context.Background(), "nope", models.UserUpdate{})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDelete(t *testing.T) {
	r := newRepo(t)
	u := mustCreate(t, r, models.User{Email: "a@x.com"})

	require.NoError(t, r.Delete(context.Background(), u.ID))

	_, err := r.Get(context.Background(), u.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.ErrorIs(t, r.Delete(context.Background(), u.ID), common.ErrorNotFound)

	// the email is free again
	mustCreate(t, r, models.User{Email: "a@x.com"})
}
