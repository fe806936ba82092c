package bfformatter

import (
	"fmt"
	"os"
	"strings"
)

// DefaultCommands is the character whitelist kept by comment stripping:
// the eight brainfuck commands.
const DefaultCommands = "[]<>.,+-"

// Config describes how to build a Formatter.
type Config struct {
	// Source is the literal token source. When set it takes precedence
	// over SourceFile, which is then never opened.
	Source string
	// SourceFile names a file whose contents become the token source.
	// Newlines are removed, not replaced: the characters before and after
	// a line break become adjacent.
	SourceFile string
	// StripComments drops every character outside the Commands whitelist.
	StripComments bool
	// Commands overrides the whitelist used by StripComments. Empty means
	// DefaultCommands.
	Commands string
}

// Formatter holds an immutable token stream and lays it out over images.
// A Formatter is never mutated after New, so Format and Render may be
// called repeatedly, with different images and options each time.
type Formatter struct {
	source string
}

// New builds a Formatter from cfg. One of cfg.Source and cfg.SourceFile
// is required; with neither set New fails with ErrNoSource. An empty
// token stream (for example a file holding only comments, stripped) is
// legal and renders to an empty output.
func New(cfg Config) (*Formatter, error) {
	var src string
	switch {
	case cfg.Source != "":
		src = cfg.Source
	case cfg.SourceFile != "":
		raw, err := os.ReadFile(cfg.SourceFile)
		if err != nil {
			return nil, fmt.Errorf("bfformatter: read source: %w", err)
		}
		src = stripNewlines(string(raw))
	default:
		return nil, ErrNoSource
	}
	if cfg.StripComments {
		commands := cfg.Commands
		if commands == "" {
			commands = DefaultCommands
		}
		src = keepOnly(src, commands)
	}
	return &Formatter{source: src}, nil
}

// Source returns the token stream the Formatter will conserve in every
// rendering, after newline removal and optional comment stripping.
func (f *Formatter) Source() string {
	return f.source
}

// Format decodes the image at imageFile, renders the token stream against
// it and writes the result to outputFile. The produced string is also
// returned. The output file is written only after the full string has been
// assembled; a failed decode or render leaves outputFile untouched.
func (f *Formatter) Format(imageFile, outputFile string, opts RenderOptions) (string, error) {
	img, err := DecodeFile(imageFile)
	if err != nil {
		return "", err
	}
	out, err := f.Render(img, opts)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(outputFile, []byte(out), 0o644); err != nil {
		return "", fmt.Errorf("bfformatter: write output: %w", err)
	}
	return out, nil
}

func stripNewlines(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, s)
}

func keepOnly(s, set string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(set, r) {
			return r
		}
		return -1
	}, s)
}
