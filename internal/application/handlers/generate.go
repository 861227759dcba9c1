// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/ersonp/kinpuzzle/internal/domain/entities"
	"github.com/ersonp/kinpuzzle/internal/domain/ports"
	"github.com/ersonp/kinpuzzle/internal/domain/services"
)

// GenerateHandler handles puzzle generation requests.
type GenerateHandler struct {
	service *services.GeneratorService
	logger  ports.Logger
}

// NewGenerateHandler creates a new generate handler.
func NewGenerateHandler(service *services.GeneratorService, logger ports.Logger) *GenerateHandler {
	return &GenerateHandler{
		service: service,
		logger:  logger,
	}
}

// GenerateRequest holds generation options as the user typed them.
type GenerateRequest struct {
	People     int
	Length     int
	Seed       *int64 // nil picks a clock seed
	Seating    string // "" picks a layout at random
	Relations  string
	Difficulty string
	Dense      bool
}

// Handle normalises the request and generates a puzzle.
func (h *GenerateHandler) Handle(ctx context.Context, req GenerateRequest) (*entities.Puzzle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts := req.options()
	h.logger.Debug("generating puzzle",
		"people", opts.People,
		"min_length", opts.MinPathLength,
		"seating", string(opts.Seating),
		"relations", string(opts.Profile),
		"difficulty", string(opts.Difficulty),
	)

	puzzle, err := h.service.Generate(opts)
	if err != nil {
		h.logger.Warn("generation failed", "error", err)
		return nil, fmt.Errorf("generating puzzle: %w", err)
	}

	h.logger.Info("puzzle generated",
		"seed", puzzle.Seed,
		"seating", string(puzzle.Seating.Kind),
		"facts", len(puzzle.Facts),
		"path_length", len(puzzle.SolutionPath),
	)

	return puzzle, nil
}

// options maps the request onto typed generation options. Labels are
// case-insensitive; validation is left to the generator.
func (r GenerateRequest) options() services.GenerateOptions {
	return services.GenerateOptions{
		People:        r.People,
		MinPathLength: r.Length,
		Seed:          r.Seed,
		Seating:       entities.SeatingKind(normalize(r.Seating)),
		Profile:       entities.RelationProfile(normalize(r.Relations)),
		Difficulty:    entities.Difficulty(normalize(r.Difficulty)),
		Dense:         r.Dense,
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
