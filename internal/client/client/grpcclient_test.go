package client

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/inkwell/internal/client/models"
	"github.com/dmitrijs2005/inkwell/internal/logging"
	"github.com/dmitrijs2005/inkwell/internal/server/auth"
	"github.com/dmitrijs2005/inkwell/internal/server/config"
	sgrpc "github.com/dmitrijs2005/inkwell/internal/server/grpc"
	"github.com/dmitrijs2005/inkwell/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/inkwell/internal/server/services"
	"github.com/dmitrijs2005/inkwell/internal/server/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func startServer(t *testing.T) *GRPCClient {
	t.Helper()

	cfg := &config.Config{SecretKey: "k", TokenValidityDuration: time.Hour, BcryptCost: bcrypt.MinCost}
	rm := repomanager.NewInMemoryRepositoryManager(store.New())
	sm := auth.NewSessionManager([]byte(cfg.SecretKey), cfg.TokenValidityDuration)
	svc := services.New(rm, sm, cfg, logging.NewNopLogger())
	srv := sgrpc.NewGRPCServer("bufnet", logging.NewNopLogger(), svc)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	c, err := NewGRPCClient("passthrough:///bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
		cancel()
		<-done
	})
	return c
}

func TestGRPCClient_Flow(t *testing.T) {
	ctx := context.Background()
	c := startServer(t)

	require.NoError(t, c.Ping(ctx))

	_, err := c.CreateTag(ctx, "go", "")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = c.CreateArticle(ctx, "T", "C")
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	reg, err := c.Register(ctx, "a", "a@x.com", []byte("p"))
	require.NoError(t, err)

	_, err = c.Register(ctx, "b", "a@x.com", []byte("p"))
	assert.ErrorIs(t, err, ErrConflict)

	_, err = c.Login(ctx, "a@x.com", []byte("wrong"))
	assert.ErrorIs(t, err, ErrUnauthorized)

	u, err := c.Login(ctx, "a@x.com", []byte("p"))
	require.NoError(t, err)
	assert.Equal(t, reg, u)
	assert.Equal(t, reg, c.CurrentUser())

	tag, err := c.CreateTag(ctx, "go", "Go language")
	require.NoError(t, err)
	article, err := c.CreateArticle(ctx, "T", "C")
	require.NoError(t, err)
	assert.Equal(t, u.ID, article.AuthorID)

	msg, err := c.AddTagsToArticle(ctx, article.ID, []string{tag.ID, tag.ID})
	require.NoError(t, err)
	assert.Equal(t, "Tags added successfully", msg)

	tags, err := c.GetArticleTags(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.Tag{*tag}, tags)

	articles, err := c.ListArticles(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "go", articles[0].TagNames())

	_, err = c.RemoveTagsFromArticle(ctx, article.ID, []string{tag.ID})
	require.NoError(t, err)
	tags, err = c.GetArticleTags(ctx, article.ID)
	require.NoError(t, err)
	assert.Empty(t, tags)

	_, err = c.GetArticleTags(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	users, err := c.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	require.NoError(t, c.Logout(ctx))
	assert.Nil(t, c.CurrentUser())
	assert.ErrorIs(t, c.Logout(ctx), ErrNotLoggedIn)

	_, err = c.CreateTag(ctx, "rust", "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	tests := []struct {
		code codes.Code
		want error
	}{
		{codes.Unavailable, ErrUnavailable},
		{codes.DeadlineExceeded, ErrUnavailable},
		{codes.Unauthenticated, ErrUnauthorized},
		{codes.InvalidArgument, ErrInvalidInput},
		{codes.NotFound, ErrNotFound},
		{codes.AlreadyExists, ErrConflict},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.ErrorIs(t, c.mapError(status.Error(tt.code, "x")), tt.want)
		})
	}

	plain := errors.New("plain")
	assert.Equal(t, plain, c.mapError(plain))
	assert.EqualError(t, c.mapError(status.Error(codes.Internal, "internal error")), "server error: internal error")
}
