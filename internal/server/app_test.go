package server

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/inkwell/internal/logging"
	"github.com/dmitrijs2005/inkwell/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig(seed bool) *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.BcryptCost = bcrypt.MinCost
	c.SeedSampleData = seed
	return c
}

func TestNewApp_SeedsSampleData(t *testing.T) {
	app, err := newApp(testConfig(true), logging.NewNopLogger())
	require.NoError(t, err)

	users, err := app.services.Users.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestNewApp_WithoutSeed(t *testing.T) {
	app, err := newApp(testConfig(false), logging.NewNopLogger())
	require.NoError(t, err)

	articles, err := app.services.Articles.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestRun_StopsOnCancel(t *testing.T) {
	app, err := newApp(testConfig(false), logging.NewNopLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}
