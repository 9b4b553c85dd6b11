package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/inkwell/internal/server/models"
	"github.com/dmitrijs2005/inkwell/internal/server/services"
	"google.golang.org/protobuf/types/known/structpb"
)

type idRequest struct {
	ID string `json:"id"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type logoutRequest struct {
	Token string `json:"token"`
}

type userRequest struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`
}

func (r userRequest) input() services.UserInput {
	return services.UserInput{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
		Bio:      r.Bio,
		Avatar:   r.Avatar,
	}
}

type userPatchRequest struct {
	ID       string  `json:"id"`
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Bio      *string `json:"bio"`
	Avatar   *string `json:"avatar"`
}

type articleRequest struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Content  string       `json:"content"`
	AuthorID string       `json:"authorId"`
	Tags     []models.Tag `json:"tags"`
}

func (r articleRequest) input() services.ArticleInput {
	return services.ArticleInput{
		Title:    r.Title,
		Content:  r.Content,
		AuthorID: r.AuthorID,
		Tags:     r.Tags,
	}
}

type articlePatchRequest struct {
	ID       string        `json:"id"`
	Title    *string       `json:"title"`
	Content  *string       `json:"content"`
	AuthorID *string       `json:"authorId"`
	Tags     *[]models.Tag `json:"tags"`
}

type tagRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type tagPatchRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type articleTagsRequest struct {
	ArticleID string   `json:"articleId"`
	TagIDs    []string `json:"tagIds"`
}

// list wraps a collection result in a single-key object.
func list[T any](key string, items []T, err error) (*structpb.Struct, error) {
	if err != nil {
		return respond(nil, err)
	}
	return respond(map[string]any{key: items}, nil)
}

func (s *GRPCServer) Ping(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return respond(map[string]string{
		"status":    "healthy",
		"service":   "inkwell content service",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	}, nil)
}

func (s *GRPCServer) Login(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var r loginRequest
	if err := decode(req, &r); err != nil {
		return nil, toStatus(err)
	}
	return respond(s.services.Users.Login(ctx, r.Email, r.Password))
}

// Logout revokes the token from the request body, or the one the call
// was made with when the body has none.
func (s *GRPCServer) Logout(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var r logoutRequest
	if err := decode(req, &r); err != nil {
		return nil, toStatus(err)
	}
	if r.Token == "" {
		r.Token = tokenFromContext(ctx)
	}
	return respond(s.services.Users.Logout(ctx, r.Token))
}

func (s *GRPCServer) GetAllUsers(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	users, err := s.services.Users.List(ctx)
	return list("users", users, err)
}

func (s *GRPCServer) CreateUser(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var r userRequest
	if err := decode(req, &r); err != nil {
		return nil, toStatus(err)
	}
	return respond(s.services.Users.Create(ctx, r.input()))
}

func (s *GRPCServer) GetUser(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var r idRequest
	if err := decode(req, &r); err != nil {
		return nil, toStatus(err)
	}
	return respond(s.services.Users.Get(ctx, r.ID))
}

func (s *GRPCServer) UpdateUser(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var r userRequest
	if err := decode(req, &r); err != nil {
		return nil, toStatus(err)
	}
	return respond(s.services.Users.Replace(ctx, r.ID, r.input()))
}

func (s *GRPCServer) PartialUpdateUser(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var r userPatchRequest
	if err := decode(req, &r); err != nil {
		return nil, toStatus(err)
	}
	return respond(s.services.Users.Patch(ctx, r.ID, services.UserPatch{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
		Bio:      r.Bio,
		Avatar:   r.Avatar,
	}))
}

func (s *GRPCServer) DeleteUser(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var r idRequest
	if err := decode(req, &r); err != nil {
		return nil, toStatus(err)
	}
	return respond(s.services.Users.Delete(ctx, r.ID))
}

func (s *GRPCServer) GetAllArticles(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	articles, err := s.services.Articles.List(ctx)
	return list("articles", articles, err)
}

func (s *GRPCServer) CreateArticle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var r articleRequest
	if err := decode(req, &r); err != nil {
		return nil, toStatus(err)
	}
	return respond(s.services.Articles.Create(ctx, r.input()))
}

func (s *GRPCServer) GetArticle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var r idRequest
	if err := decode(req, &r); err != nil {
		return nil, toStatus(err)
	}
	return respond(s.services.Articles.Get(ctx, r.ID))
}

func (s *GRPCServer) UpdateArticle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var r articleRequest
	if err := decode(req, &r); err != nil {
		return nil, toStatus(err)
	}
	return respond(s.services.Articles.Replace(ctx, r.ID, r.input()))
}

func (s *GRPCServer) PartialUpdateArticle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var r articlePatchRequest
	if err := decode(req, &r); err != nil {
		return nil, toStatus(err)
	}
	return respond(s.services.Articles.Patch(ctx, r.ID, models.ArticleUpdate{
		Title:    r.Title,
		Content:  r.Content,
		AuthorID: r.AuthorID,
		Tags:     r.Tags,
	}))
}

func (s *GRPCServer) DeleteArticle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var r idRequest
	if err := decode(req, &r); err != nil {
		return nil, toStatus(err)
	}
	return respond(s.services.Articles.Delete(ctx, r.ID))
}

func (s *GRPCServer) GetAllTags(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	tags, err := s.services.Tags.List(ctx)
	return list("tags", tags, err)
}

func (s *GRPCServer) CreateTag(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var r tagRequest
	if err := decode(req, &r); err != nil {
		return nil, toStatus(err)
	}
	return respond(s.services.Tags.Create(ctx, services.TagInput{Name: r.Name, Description: r.Description}))
}

func (s *GRPCServer) GetTag(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var r idRequest
	if err := decode(req, &r); err != nil {
		return nil, toStatus(err)
	}
	return respond(s.services.Tags.Get(ctx, r.ID))
}

func (s *GRPCServer) UpdateTag(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var r tagRequest
	if err := decode(req, &r); err != nil {
		return nil, toStatus(err)
	}
	return respond(s.services.Tags.Replace(ctx, r.ID, services.TagInput{Name: r.Name, Description: r.Description}))
}

func (s *GRPCServer) PartialUpdateTag(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var r tagPatchRequest
	if err := decode(req, &r); err != nil {
		return nil, toStatus(err)
	}
	return respond(s.services.Tags.Patch(ctx, r.ID, models.TagUpdate{Name: r.Name, Description: r.Description}))
}

func (s *GRPCServer) DeleteTag(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var r idRequest
	if err := decode(req, &r); err != nil {
		return nil, toStatus(err)
	}
	return respond(s.services.Tags.Delete(ctx, r.ID))
}

func (s *GRPCServer) GetArticleTags(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var r articleTagsRequest
	if err := decode(req, &r); err != nil {
		return nil, toStatus(err)
	}
	tags, err := s.services.Articles.GetTags(ctx, r.ArticleID)
	return list("tags", tags, err)
}

func (s *GRPCServer) AddTagsToArticle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var r articleTagsRequest
	if err := decode(req, &r); err != nil {
		return nil, toStatus(err)
	}
	return respond(s.services.Articles.AddTags(ctx, r.ArticleID, r.TagIDs))
}

func (s *GRPCServer) RemoveTagsFromArticle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var r articleTagsRequest
	if err := decode(req, &r); err != nil {
		return nil, toStatus(err)
	}
	return respond(s.services.Articles.RemoveTags(ctx, r.ArticleID, r.TagIDs))
}
