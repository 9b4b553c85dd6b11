package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/inkwell/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_LoginTagArticleLogout(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestServices(t)

	u, err := s.Users.Create(ctx, UserInput{Username: "a", Email: "a@x.com", Password: "p"})
	require.NoError(t, err)

	res, err := s.Users.Login(ctx, "a@x.com", "p")
	require.NoError(t, err)

	tag, err := s.Tags.Create(ctx, TagInput{Name: "go"})
	require.NoError(t, err)

	a, err := s.Articles.Create(ctx, ArticleInput{Title: "T", Content: "C", AuthorID: u.ID})
	require.NoError(t, err)

	for range 2 {
		_, err = s.Articles.AddTags(ctx, a.ID, []string{tag.ID})
		require.NoError(t, err)
	}

	list, err := s.Articles.GetTags(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, *tag, list[0])

	_, err = s.Users.Logout(ctx, res.Token)
	require.NoError(t, err)
	_, err = s.Users.Authenticate(ctx, res.Token)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}
