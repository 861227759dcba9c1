package handlers

import (
	"fmt"

	"github.com/ersonp/kinpuzzle/internal/domain/entities"
	"github.com/ersonp/kinpuzzle/internal/domain/ports"
	"github.com/ersonp/kinpuzzle/internal/domain/services"
)

// RelationsHandler previews the relation pool for a configuration.
type RelationsHandler struct {
	logger ports.Logger
}

// NewRelationsHandler creates a new relations handler.
func NewRelationsHandler(logger ports.Logger) *RelationsHandler {
	return &RelationsHandler{logger: logger}
}

// RelationsRequest names the configuration to preview.
type RelationsRequest struct {
	Seating    string
	Relations  string
	Difficulty string
	People     int
}

// RelationInfo describes one label of the pool.
type RelationInfo struct {
	Relation entities.Relation       `json:"relation"`
	Category entities.Category       `json:"category"`
	Inverse  entities.Relation       `json:"inverse"`
	Family   entities.FamilyCategory `json:"family,omitempty"`
}

// Handle returns the pool in selection order.
func (h *RelationsHandler) Handle(req RelationsRequest) ([]RelationInfo, error) {
	req.Relations = normalize(req.Relations)
	if req.Relations == "" {
		req.Relations = string(entities.ProfileAuto)
	}
	req.Difficulty = normalize(req.Difficulty)
	if req.Difficulty == "" {
		req.Difficulty = string(entities.DifficultyLow)
	}

	pool, err := services.SelectPool(
		entities.SeatingKind(normalize(req.Seating)),
		entities.RelationProfile(req.Relations),
		entities.Difficulty(req.Difficulty),
		req.People,
	)
	if err != nil {
		return nil, fmt.Errorf("selecting relations: %w", err)
	}

	infos := make([]RelationInfo, 0, len(pool))
	for _, rel := range pool {
		inv, _ := rel.Inverse()
		infos = append(infos, RelationInfo{
			Relation: rel,
			Category: rel.Category(),
			Inverse:  inv,
			Family:   rel.Family(),
		})
	}

	h.logger.Debug("relation pool selected", "seating", req.Seating, "size", len(infos))

	return infos, nil
}
