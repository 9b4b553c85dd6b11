package cli

import (
	"context"
	"errors"
)

var errUsage = errors.New("usage")

func (a *App) Users(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	users, err := a.api.ListUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		a.println("No users")
	}
	for _, u := range users {
		a.println(u)
	}
	return nil
}

func (a *App) Articles(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	articles, err := a.api.ListArticles(ctx)
	if err != nil {
		return err
	}
	if len(articles) == 0 {
		a.println("No articles")
	}
	for _, art := range articles {
		a.println(art)
	}
	return nil
}

func (a *App) Tags(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	tags, err := a.api.ListTags(ctx)
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		a.println("No tags")
	}
	for _, t := range tags {
		a.println(t)
	}
	return nil
}

// ArticleTags prints the tags attached to the article named by args[0].
func (a *App) ArticleTags(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("usage: articletags <articleId>")
		return errUsage
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	tags, err := a.api.GetArticleTags(ctx, args[0])
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		a.println("No tags")
	}
	for _, t := range tags {
		a.println(t)
	}
	return nil
}
