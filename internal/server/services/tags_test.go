package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/inkwell/internal/common"
	"github.com/dmitrijs2005/inkwell/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagService_CRUD(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestServices(t)

	_, err := s.Tags.Create(ctx, TagInput{Description: "no name"})
	assert.ErrorIs(t, err, common.ErrorValidation)

	tag, err := s.Tags.Create(ctx, TagInput{Name: "go", Description: "Go"})
	require.NoError(t, err)

	got, err := s.Tags.Get(ctx, tag.ID)
	require.NoError(t, err)
	assert.Equal(t, tag, got)

	replaced, err := s.Tags.Replace(ctx, tag.ID, TagInput{Name: "golang"})
	require.NoError(t, err)
	assert.Equal(t, &models.Tag{ID: tag.ID, Name: "golang"}, replaced)

	patched, err := s.Tags.Patch(ctx, tag.ID, models.TagUpdate{Description: ptr("The Go language")})
	require.NoError(t, err)
	assert.Equal(t, &models.Tag{ID: tag.ID, Name: "golang", Description: "The Go language"}, patched)

	_, err = s.Tags.Patch(ctx, tag.ID, models.TagUpdate{Name: ptr("")})
	assert.ErrorIs(t, err, common.ErrorValidation)

	list, err := s.Tags.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Tag{*patched}, list)

	conf, err := s.Tags.Delete(ctx, tag.ID)
	require.NoError(t, err)
	assert.Equal(t, &Confirmation{Success: true, Message: "Tag deleted successfully"}, conf)

	_, err = s.Tags.Delete(ctx, tag.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = s.Tags.Replace(ctx, tag.ID, TagInput{Name: "x"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
