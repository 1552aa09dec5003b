package command

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/Lzww0608/uuidgen"
	"github.com/Lzww0608/uuidgen/internal/clipboard"
)

func versionNames() string {
	names := make([]string, len(uuidgen.Versions))
	for i, v := range uuidgen.Versions {
		names[i] = v.String()
	}
	return strings.Join(names, ", ")
}

func encodingNames() string {
	names := make([]string, len(uuidgen.Encodings))
	for i, e := range uuidgen.Encodings {
		names[i] = string(e)
	}
	return strings.Join(names, ", ")
}

func newCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:                   "uuidgen",
		Usage:                  "A CLI tool to generate UUIDs",
		Writer:                 a.stdout,
		ErrWriter:              a.stderr,
		UseShortOptionHandling: true,
		OnUsageError: func(ctx context.Context, cmd *cli.Command, err error, isSubcommand bool) error {
			return err
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Value:   a.cfg.DefaultType,
				Usage:   "UUID version to generate (" + versionNames() + ")",
			},
			&cli.BoolFlag{
				Name:    "uppercase",
				Aliases: []string{"u"},
				Usage:   "Convert UUID to uppercase",
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"c"},
				Value:   1,
				Usage:   "Number of UUIDs to generate",
			},
			&cli.BoolFlag{
				Name:    "copy",
				Aliases: []string{"p"},
				Usage:   "Copy the generated UUIDs to the clipboard",
			},
			&cli.StringFlag{
				Name:    "namespace",
				Aliases: []string{"n"},
				Usage:   "Namespace for v3 and v5 UUIDs: a UUID or one of dns, url, oid, x500",
			},
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"a"},
				Usage:   "Name for v3 and v5 UUIDs",
			},
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "User-defined data for v8 UUIDs (first 16 bytes are used)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   string(uuidgen.EncodingCanonical),
				Usage:   "Output format (" + encodingNames() + ")",
			},
		},
		Action: a.generate,
	}
}

// requestFromFlags assembles a generation request. Optional inputs are only
// set when the flag was given, so an explicit empty value still counts.
func requestFromFlags(cmd *cli.Command) (uuidgen.Request, error) {
	version, err := uuidgen.ParseVersion(cmd.String("type"))
	if err != nil {
		return uuidgen.Request{}, fmt.Errorf("invalid --type %q (valid options: %s)", cmd.String("type"), versionNames())
	}

	req := uuidgen.Request{
		Version:   version,
		Count:     cmd.Int("count"),
		Uppercase: cmd.Bool("uppercase"),
	}
	if cmd.IsSet("namespace") {
		ns := cmd.String("namespace")
		req.Namespace = &ns
	}
	if cmd.IsSet("name") {
		name := cmd.String("name")
		req.Name = &name
	}
	if cmd.IsSet("data") {
		data := cmd.String("data")
		req.Data = &data
	}
	return req, nil
}

func (a *app) generate(ctx context.Context, cmd *cli.Command) error {
	req, err := requestFromFlags(cmd)
	if err != nil {
		return err
	}
	encoding, err := uuidgen.ParseEncoding(cmd.String("format"))
	if err != nil {
		return fmt.Errorf("invalid --format %q (valid options: %s)", cmd.String("format"), encodingNames())
	}

	a.logger.Debug("generating uuids",
		slog.String("version", req.Version.String()),
		slog.Int("count", req.Count),
		slog.String("format", string(encoding)),
		slog.Bool("uppercase", req.Uppercase),
		slog.Bool("copy", cmd.Bool("copy")),
	)

	// GenerateEach validates before the first UUID is built. Lines are only
	// kept when they have to reach the clipboard.
	copying := cmd.Bool("copy")
	var lines []string
	err = a.generator.GenerateEach(req, func(id uuidgen.UUID) error {
		line := id.Encode(encoding, req.Uppercase)
		if _, err := fmt.Fprintln(a.stdout, line); err != nil {
			return fmt.Errorf("failed to write UUID: %w", err)
		}
		if copying {
			lines = append(lines, line)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if copying {
		a.copyToClipboard(lines)
	}
	return nil
}

// copyToClipboard copies the printed output. Failures only warn: the UUIDs
// have already been written to stdout.
func (a *app) copyToClipboard(lines []string) {
	if len(lines) > 1 {
		fmt.Fprintf(a.stderr, "Warning: copying %d UUIDs to the clipboard, newline separated\n", len(lines))
	}

	payload := clipboardPayload(lines)
	a.logger.Debug("copying to clipboard", slog.Int("bytes", len(payload)))
	if err := clipboard.Copy(a.clipboard, payload); err != nil {
		fmt.Fprintf(a.stderr, "Warning: failed to copy to clipboard: %v\n", err)
	}
}

// clipboardPayload is the single UUID itself, or every UUID followed by a
// newline when there are several.
func clipboardPayload(lines []string) string {
	if len(lines) == 1 {
		return lines[0]
	}
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
