// Package command implements the uuidgen command line.
package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Lzww0608/uuidgen"
	"github.com/Lzww0608/uuidgen/internal/clipboard"
	"github.com/Lzww0608/uuidgen/internal/config"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
)

// Option overrides a collaborator of Run.
type Option func(*app)

// WithConfig supplies an already loaded configuration instead of reading the environment.
func WithConfig(cfg *config.Config) Option {
	return func(a *app) {
		a.cfg = cfg
	}
}

// WithClipboard replaces the host clipboard.
func WithClipboard(w clipboard.Writer) Option {
	return func(a *app) {
		a.clipboard = w
	}
}

// WithGenerator replaces the generator built from configuration.
func WithGenerator(g *uuidgen.Generator) Option {
	return func(a *app) {
		a.generator = g
	}
}

// WithLogger replaces the stderr logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *app) {
		a.logger = l
	}
}

// app carries the collaborators shared by the command action.
type app struct {
	cfg       *config.Config
	clipboard clipboard.Writer
	generator *uuidgen.Generator
	logger    *slog.Logger
	stdout    io.Writer
	stderr    io.Writer
}

// Run parses args (args[0] is the program name), prints the generated UUIDs
// to stdout and returns the process exit code. Errors and warnings go to stderr.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, opts ...Option) int {
	a := &app{stdout: stdout, stderr: stderr}
	for _, opt := range opts {
		opt(a)
	}

	if err := a.init(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}

	if err := newCommand(a).Run(ctx, args); err != nil {
		a.logger.Debug("command failed", slog.Any("error", err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitOK
}

// init fills in every collaborator the options left unset.
func (a *app) init() error {
	if a.cfg == nil {
		a.cfg = config.Load()
	}
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if a.logger == nil {
		a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{
			Level: a.cfg.SlogLevel(),
		}))
	}
	if a.generator == nil {
		node, err := a.cfg.Node()
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		a.generator = uuidgen.NewGenerator(
			uuidgen.WithNode(node),
			uuidgen.WithClockSequence(uint16(a.cfg.ClockSequence)),
		)
	}
	if a.clipboard == nil {
		a.clipboard = clipboard.System()
	}
	return nil
}
