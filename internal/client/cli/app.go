package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/inkwell/internal/client/client"
	"github.com/dmitrijs2005/inkwell/internal/client/config"
	"github.com/dmitrijs2005/inkwell/internal/client/models"
)

// apiClient is the slice of client.GRPCClient the CLI uses.
type apiClient interface {
	Close() error
	Ping(ctx context.Context) error
	Register(ctx context.Context, username, email string, password []byte) (*models.User, error)
	Login(ctx context.Context, email string, password []byte) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser() *models.User
	ListUsers(ctx context.Context) ([]models.User, error)
	ListArticles(ctx context.Context) ([]models.Article, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
	CreateTag(ctx context.Context, name, description string) (*models.Tag, error)
	CreateArticle(ctx context.Context, title, content string) (*models.Article, error)
	GetArticleTags(ctx context.Context, articleID string) ([]models.Tag, error)
	AddTagsToArticle(ctx context.Context, articleID string, tagIDs []string) (string, error)
	RemoveTagsFromArticle(ctx context.Context, articleID string, tagIDs []string) (string, error)
}

type App struct {
	config *config.Config
	api    apiClient
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	api, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return &App{config: c, api: api, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

// Run checks the server and starts the REPL. It returns when the user exits
// or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.api.Close()

	a.println("Welcome to Inkwell CLI (type 'help' for commands)")

	pingCtx, cancel := a.withTimeout(ctx)
	if err := a.api.Ping(pingCtx); err != nil {
		a.println("warning: server not reachable at", a.config.ServerEndpointAddr)
	}
	cancel()

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) isLoggedIn() bool {
	return a.api.CurrentUser() != nil
}

func (a *App) getStatus() string {
	if u := a.api.CurrentUser(); u != nil {
		return fmt.Sprintf("(%s)", u.Username)
	}
	return ""
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
