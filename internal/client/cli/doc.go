// Package cli provides the interactive Inkwell command-line client.
//
// It wires configuration and the gRPC API client into a small REPL: log in
// with an email and a password read without echo, browse users, articles
// and tags, publish articles and manage the tags attached to them.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
