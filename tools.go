//go:build tools

package tools

// Tracks CLI tool dependencies so `go mod tidy` keeps their versions pinned.
// Never compiled into the binary.
import (
	_ "github.com/pressly/goose/v3/cmd/goose"
)
