package parsers

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ersonp/kinpuzzle/internal/domain/entities"
)

// YAMLParser parses puzzles from YAML format.
type YAMLParser struct{}

// Parse reads a single YAML puzzle document from the reader.
func (p *YAMLParser) Parse(r io.Reader) (*entities.Puzzle, error) {
	var puzzle entities.Puzzle

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&puzzle); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("parsing YAML: empty document")
		}
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	return &puzzle, nil
}
