package handlers

import (
	"fmt"
	"os"

	"github.com/ersonp/kinpuzzle/internal/domain/entities"
	"github.com/ersonp/kinpuzzle/internal/domain/ports"
	"github.com/ersonp/kinpuzzle/internal/domain/services"
	"github.com/ersonp/kinpuzzle/internal/infrastructure/parsers"
)

// VerifyHandler re-checks previously rendered puzzles.
type VerifyHandler struct {
	logger ports.Logger
}

// NewVerifyHandler creates a new verify handler.
func NewVerifyHandler(logger ports.Logger) *VerifyHandler {
	return &VerifyHandler{logger: logger}
}

// VerifyResult contains the outcome of a verification.
type VerifyResult struct {
	Path       string
	Puzzle     *entities.Puzzle
	Violations []services.Violation
}

// Valid reports whether the puzzle passed every check.
func (r *VerifyResult) Valid() bool {
	return len(r.Violations) == 0
}

// Handle decodes the puzzle at filePath and checks its invariants.
// format may be "", "auto", "json" or "yaml".
func (h *VerifyHandler) Handle(filePath, format string) (*VerifyResult, error) {
	var parser parsers.Parser
	if format == "" || format == "auto" {
		parser = parsers.ForFile(filePath)
	} else {
		parser = parsers.ForFormat(format)
	}

	if parser == nil {
		return nil, fmt.Errorf("unsupported format for file: %s", filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	puzzle, err := parser.Parse(file)
	if err != nil {
		h.logger.Error("puzzle decode failed", "path", filePath, "error", err)
		return nil, fmt.Errorf("parsing file: %w", err)
	}

	result := &VerifyResult{
		Path:       filePath,
		Puzzle:     puzzle,
		Violations: services.VerifyPuzzle(puzzle),
	}

	for _, v := range result.Violations {
		h.logger.Debug("invariant violated", "check", v.Check, "message", v.Message)
	}
	h.logger.Info("puzzle verified", "path", filePath, "violations", len(result.Violations))

	return result, nil
}
