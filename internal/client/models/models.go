// Package models defines the records the CLI receives from the server.
package models

import (
	"fmt"
	"strings"
	"time"
)

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`
}

type Tag struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Article struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	Tags      []Tag     `json:"tags"`
}

// Confirmation is the reply to operations that return no record.
type Confirmation struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (u User) String() string {
	return fmt.Sprintf("%s  %s <%s>", u.ID, u.Username, u.Email)
}

func (t Tag) String() string {
	if t.Description == "" {
		return fmt.Sprintf("%s  %s", t.ID, t.Name)
	}
	return fmt.Sprintf("%s  %s (%s)", t.ID, t.Name, t.Description)
}

// TagNames returns the names of the embedded tags, comma separated.
func (a Article) TagNames() string {
	names := make([]string, 0, len(a.Tags))
	for _, t := range a.Tags {
		names = append(names, t.Name)
	}
	return strings.Join(names, ", ")
}

func (a Article) String() string {
	s := fmt.Sprintf("%s  %q by %s, %s", a.ID, a.Title, a.AuthorID, a.CreatedAt.Format(time.DateTime))
	if len(a.Tags) > 0 {
		s += " [" + a.TagNames() + "]"
	}
	return s
}
