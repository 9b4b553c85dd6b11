package client

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/inkwell/internal/client/models"
	"github.com/dmitrijs2005/inkwell/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn

	mu          sync.RWMutex
	accessToken string
	user        *models.User
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient prepares a connection to endpointURL. Extra dial options
// are appended after the defaults.
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	return c, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// CurrentUser returns the logged in account, or nil.
func (s *GRPCClient) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *GRPCClient) mapError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	var kind error
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.Unauthenticated:
		kind = ErrUnauthorized
	case codes.InvalidArgument:
		kind = ErrInvalidInput
	case codes.NotFound:
		kind = ErrNotFound
	case codes.AlreadyExists:
		kind = ErrConflict
	default:
		return fmt.Errorf("server error: %s", st.Message())
	}
	return fmt.Errorf("%w: %s", kind, st.Message())
}

// invoke sends req as a Struct and decodes the reply into resp, which may be nil.
func (s *GRPCClient) invoke(ctx context.Context, method string, req any, resp any) error {
	b, err := json.Marshal(req)
	if err != nil {
		return err
	}
	in := &structpb.Struct{}
	if err := protojson.Unmarshal(b, in); err != nil {
		return err
	}

	out := &structpb.Struct{}
	if err := s.conn.Invoke(ctx, "/"+common.ContentServiceName+"/"+method, in, out); err != nil {
		return s.mapError(err)
	}

	if resp == nil {
		return nil
	}
	b, err = protojson.Marshal(out)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, resp)
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	var resp struct {
		Status string `json:"status"`
	}
	if err := s.invoke(ctx, "Ping", struct{}{}, &resp); err != nil {
		return err
	}
	if resp.Status != "healthy" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, username, email string, password []byte) (*models.User, error) {
	req := map[string]string{"username": username, "email": email, "password": string(password)}

	var u models.User
	if err := s.invoke(ctx, "CreateUser", req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GRPCClient) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	req := map[string]string{"email": email, "password": string(password)}

	var resp struct {
		Token string       `json:"token"`
		User  *models.User `json:"user"`
	}
	if err := s.invoke(ctx, "Login", req, &resp); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.accessToken = resp.Token
	s.user = resp.User
	s.mu.Unlock()

	return resp.User, nil
}

// Logout revokes the current session. The local token is dropped even
// when the server cannot be reached.
func (s *GRPCClient) Logout(ctx context.Context) error {
	token := s.token()
	if token == "" {
		return ErrNotLoggedIn
	}

	err := s.invoke(ctx, "Logout", map[string]string{"token": token}, nil)

	s.mu.Lock()
	s.accessToken = ""
	s.user = nil
	s.mu.Unlock()

	return err
}

func (s *GRPCClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var resp struct {
		Users []models.User `json:"users"`
	}
	if err := s.invoke(ctx, "GetAllUsers", struct{}{}, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

func (s *GRPCClient) ListArticles(ctx context.Context) ([]models.Article, error) {
	var resp struct {
		Articles []models.Article `json:"articles"`
	}
	if err := s.invoke(ctx, "GetAllArticles", struct{}{}, &resp); err != nil {
		return nil, err
	}
	return resp.Articles, nil
}

func (s *GRPCClient) ListTags(ctx context.Context) ([]models.Tag, error) {
	var resp struct {
		Tags []models.Tag `json:"tags"`
	}
	if err := s.invoke(ctx, "GetAllTags", struct{}{}, &resp); err != nil {
		return nil, err
	}
	return resp.Tags, nil
}

func (s *GRPCClient) CreateTag(ctx context.Context, name, description string) (*models.Tag, error) {
	var t models.Tag
	if err := s.invoke(ctx, "CreateTag", map[string]string{"name": name, "description": description}, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateArticle publishes an article authored by the logged in user.
func (s *GRPCClient) CreateArticle(ctx context.Context, title, content string) (*models.Article, error) {
	u := s.CurrentUser()
	if u == nil {
		return nil, ErrNotLoggedIn
	}

	req := map[string]string{"title": title, "content": content, "authorId": u.ID}

	var a models.Article
	if err := s.invoke(ctx, "CreateArticle", req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *GRPCClient) GetArticleTags(ctx context.Context, articleID string) ([]models.Tag, error) {
	var resp struct {
		Tags []models.Tag `json:"tags"`
	}
	if err := s.invoke(ctx, "GetArticleTags", map[string]string{"articleId": articleID}, &resp); err != nil {
		return nil, err
	}
	return resp.Tags, nil
}

type articleTagsRequest struct {
	ArticleID string   `json:"articleId"`
	TagIDs    []string `json:"tagIds"`
}

func (s *GRPCClient) AddTagsToArticle(ctx context.Context, articleID string, tagIDs []string) (string, error) {
	var c models.Confirmation
	if err := s.invoke(ctx, "AddTagsToArticle", articleTagsRequest{articleID, tagIDs}, &c); err != nil {
		return "", err
	}
	return c.Message, nil
}

func (s *GRPCClient) RemoveTagsFromArticle(ctx context.Context, articleID string, tagIDs []string) (string, error) {
	var c models.Confirmation
	if err := s.invoke(ctx, "RemoveTagsFromArticle", articleTagsRequest{articleID, tagIDs}, &c); err != nil {
		return "", err
	}
	return c.Message, nil
}
