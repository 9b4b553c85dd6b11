package services

import (
	"context"
	"fmt"
)

// SeedSampleData loads the demo data set: two users sharing the password
// "password123", the javascript and nodejs tags, and one article by the
// first user tagged javascript.
func (s *Services) SeedSampleData(ctx context.Context) error {
	john, err := s.Users.Create(ctx, UserInput{
		Username: "johndoe",
		Email:    "john@example.com",
		Password: "password123",
		Bio:      "Software developer",
		Avatar:   "https://example.com/avatar.jpg",
	})
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	if _, err := s.Users.Create(ctx, UserInput{
		Username: "janedoe",
		Email:    "jane@example.com",
		Password: "password123",
		Bio:      "Technical writer",
		Avatar:   "https://example.com/avatar2.jpg",
	}); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	js, err := s.Tags.Create(ctx, TagInput{Name: "javascript", Description: "JavaScript programming language"})
	if err != nil {
		return fmt.Errorf("seed tags: %w", err)
	}
	if _, err := s.Tags.Create(ctx, TagInput{Name: "nodejs", Description: "Node.js runtime environment"}); err != nil {
		return fmt.Errorf("seed tags: %w", err)
	}

	article, err := s.Articles.Create(ctx, ArticleInput{
		Title:    "How to Build APIs",
		Content:  "This article explains how to build RESTful APIs...",
		AuthorID: john.ID,
	})
	if err != nil {
		return fmt.Errorf("seed articles: %w", err)
	}

	if _, err := s.Articles.AddTags(ctx, article.ID, []string{js.ID}); err != nil {
		return fmt.Errorf("seed articles: %w", err)
	}
	return nil
}
