package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestArticleString(t *testing.T) {
	a := Article{
		ID:        "a1",
		Title:     "Go",
		AuthorID:  "u1",
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, `a1  "Go" by u1, 2024-05-01 10:00:00`, a.String())

	a.Tags = []Tag{{ID: "t1", Name: "go"}, {ID: "t2", Name: "api"}}
	assert.Equal(t, "go, api", a.TagNames())
	assert.Equal(t, `a1  "Go" by u1, 2024-05-01 10:00:00 [go, api]`, a.String())
}

func TestTagString(t *testing.T) {
	assert.Equal(t, "t1  go", Tag{ID: "t1", Name: "go"}.String())
	assert.Equal(t, "t1  go (Go language)", Tag{ID: "t1", Name: "go", Description: "Go language"}.String())
}

func TestUserString(t *testing.T) {
	assert.Equal(t, "u1  a <a@x.com>", User{ID: "u1", Username: "a", Email: "a@x.com"}.String())
}
