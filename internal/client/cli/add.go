package cli

import (
	"context"
)

var getMultiline = GetMultiline

func (a *App) NewTag(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter tag name", a.out)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Enter description (optional)", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	t, err := a.api.CreateTag(ctx, name, description)
	if err != nil {
		return err
	}
	a.println("Created tag", t)
	return nil
}

func (a *App) NewArticle(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Enter content", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	art, err := a.api.CreateArticle(ctx, title, content)
	if err != nil {
		return err
	}
	a.println("Created article", art)
	return nil
}

// AddTags attaches tags to an article: addtags <articleId> <tagId>...
func (a *App) AddTags(ctx context.Context, args []string) error {
	if len(args) < 2 {
		a.println("usage: addtags <articleId> <tagId> [tagId...]")
		return errUsage
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	msg, err := a.api.AddTagsToArticle(ctx, args[0], args[1:])
	if err != nil {
		return err
	}
	a.println(msg)
	return nil
}

// RemoveTags detaches tags from an article: removetags <articleId> <tagId>...
func (a *App) RemoveTags(ctx context.Context, args []string) error {
	if len(args) < 2 {
		a.println("usage: removetags <articleId> <tagId> [tagId...]")
		return errUsage
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	msg, err := a.api.RemoveTagsFromArticle(ctx, args[0], args[1:])
	if err != nil {
		return err
	}
	a.println(msg)
	return nil
}
