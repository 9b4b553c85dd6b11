package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedSampleData(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestServices(t)

	require.NoError(t, s.SeedSampleData(ctx))

	users, err := s.Users.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "johndoe", users[0].Username)
	assert.Equal(t, "janedoe", users[1].Username)

	res, err := s.Users.Login(ctx, "jane@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, users[1].ID, res.User.ID)

	tags, err := s.Tags.List(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 2)

	articles, err := s.Articles.List(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, users[0].ID, articles[0].AuthorID)
	require.Len(t, articles[0].Tags, 1)
	assert.Equal(t, "javascript", articles[0].Tags[0].Name)

	assert.Error(t, s.SeedSampleData(ctx), "emails are already taken")
}
