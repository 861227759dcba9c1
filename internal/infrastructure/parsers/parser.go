// Package parsers provides parsers for reading generated puzzles back from disk.
package parsers

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/ersonp/kinpuzzle/internal/domain/entities"
)

// Parser defines the interface for parsing puzzles from various formats.
type Parser interface {
	Parse(r io.Reader) (*entities.Puzzle, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "yaml".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "yaml", "yml":
		return &YAMLParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return &JSONParser{}
	case ".yaml", ".yml":
		return &YAMLParser{}
	default:
		return nil
	}
}
