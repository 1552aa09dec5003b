// Package main provides the entry point for the uuidgen command.
package main

import (
	"context"
	"os"

	"github.com/Lzww0608/uuidgen/internal/command"
	"github.com/Lzww0608/uuidgen/internal/config"
)

func main() {
	cfg := config.Load()
	os.Exit(command.Run(context.Background(), os.Args, os.Stdout, os.Stderr, command.WithConfig(cfg)))
}
