package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Users(ctx context.Context) error
	Articles(ctx context.Context) error
	Tags(ctx context.Context) error
	ArticleTags(ctx context.Context, args []string) error
	NewTag(ctx context.Context) error
	NewArticle(ctx context.Context) error
	AddTags(ctx context.Context, args []string) error
	RemoveTags(ctx context.Context, args []string) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on EOF or when the user types "exit" or "quit".
//
//	Always:
//	  - help                          — show available commands
//	  - users | articles | tags       — list records
//	  - articletags <articleId>       — tags attached to an article
//	  - exit | quit                   — leave the program
//
//	Not logged in:
//	  - register                      — create an account
//	  - login                         — authenticate
//
//	Logged in:
//	  - newtag                        — create a tag
//	  - newarticle                    — publish an article
//	  - addtags <articleId> <tagId>…  — attach tags
//	  - removetags <articleId> <tagId>… — detach tags
//	  - logout                        — end the session
//
// Command errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("inkwell%s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: users, articles, tags, articletags, newtag, newarticle, addtags, removetags, logout, exit")
			} else {
				printlnFn("Available commands: register, login, users, articles, tags, articletags, exit")
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "users":
			cmdErr = a.Users(ctx)

		case "articles":
			cmdErr = a.Articles(ctx)

		case "tags":
			cmdErr = a.Tags(ctx)

		case "articletags":
			cmdErr = a.ArticleTags(ctx, args)

		case "newtag":
			cmdErr = a.NewTag(ctx)

		case "newarticle":
			cmdErr = a.NewArticle(ctx)

		case "addtags":
			cmdErr = a.AddTags(ctx, args)

		case "removetags":
			cmdErr = a.RemoveTags(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil && !errors.Is(cmdErr, errUsage) {
			printlnFn("error:", cmdErr)
		}
		if err != nil {
			return
		}
	}
}
