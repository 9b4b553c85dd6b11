package models

import (
	"slices"
	"time"
)

// Article embeds full Tag snapshots taken when the tag was attached. Later
// edits to the Tag record are not reflected here.
type Article struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	Tags      []Tag     `json:"tags"`
}

// Clone returns a copy that shares no memory with a.
func (a Article) Clone() Article {
	a.Tags = slices.Clone(a.Tags)
	if a.Tags == nil {
		a.Tags = []Tag{}
	}
	return a
}

// HasTag reports whether a tag with the given id is already embedded.
func (a *Article) HasTag(id string) bool {
	return slices.ContainsFunc(a.Tags, func(t Tag) bool { return t.ID == id })
}

// ArticleUpdate is a shallow partial update. A non-nil Tags replaces the
// whole tag list.
type ArticleUpdate struct {
	Title    *string
	Content  *string
	AuthorID *string
	Tags     *[]Tag
}

func (upd ArticleUpdate) Apply(a *Article) {
	if upd.Title != nil {
		a.Title = *upd.Title
	}
	if upd.Content != nil {
		a.Content = *upd.Content
	}
	if upd.AuthorID != nil {
		a.AuthorID = *upd.AuthorID
	}
	if upd.Tags != nil {
		a.Tags = UniqueTags(*upd.Tags)
	}
}

// UniqueTags copies tags, keeping the first occurrence of every id.
func UniqueTags(tags []Tag) []Tag {
	out := make([]Tag, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	return out
}
