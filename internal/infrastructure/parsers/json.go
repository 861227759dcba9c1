package parsers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ersonp/kinpuzzle/internal/domain/entities"
)

// JSONParser parses puzzles from JSON format.
type JSONParser struct{}

// Parse reads a single JSON puzzle document from the reader.
func (p *JSONParser) Parse(r io.Reader) (*entities.Puzzle, error) {
	var puzzle entities.Puzzle

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&puzzle); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	return &puzzle, nil
}
