package services

import (
	"fmt"

	"github.com/ersonp/kinpuzzle/internal/domain/entities"
)

var (
	commonSocial = []entities.Relation{
		entities.RelationParentOf, entities.RelationChildOf, entities.RelationSiblingOf,
		entities.RelationCousinOf, entities.RelationSpouseOf, entities.RelationFriendOf,
		entities.RelationCoworkerOf, entities.RelationNeighborOf,
	}

	nativeSpatial = map[entities.SeatingKind][]entities.Relation{
		entities.SeatingLinear: {
			entities.RelationLeftOf, entities.RelationRightOf, entities.RelationNextTo,
		},
		entities.SeatingCircular: {
			entities.RelationLeftOf, entities.RelationRightOf, entities.RelationNextTo,
			entities.RelationAcrossFrom,
		},
	}

	mediumSocial = []entities.Relation{
		entities.RelationClassmateOf, entities.RelationTeammateOf,
		entities.RelationMentorOf, entities.RelationMenteeOf,
	}

	highSocial = []entities.Relation{
		entities.RelationManagerOf, entities.RelationReportsTo, entities.RelationRivalOf,
	}

	highSpatial = []entities.Relation{
		entities.RelationTwoLeftOf, entities.RelationTwoRightOf,
	}

	highCircular = []entities.Relation{
		entities.RelationClockwiseOf, entities.RelationCounterclockwiseOf,
	}
)

// SelectPool returns the ordered, deduplicated candidate relations for a
// puzzle. Difficulty extras only extend categories the profile includes.
func SelectPool(
	kind entities.SeatingKind,
	profile entities.RelationProfile,
	difficulty entities.Difficulty,
	people int,
) ([]entities.Relation, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unsupported seating kind %q", ErrInvalidConfig, kind)
	}
	if !profile.IsValid() {
		return nil, fmt.Errorf("%w: unsupported relation profile %q", ErrInvalidConfig, profile)
	}
	if !difficulty.IsValid() {
		return nil, fmt.Errorf("%w: unsupported difficulty %q", ErrInvalidConfig, difficulty)
	}

	var groups [][]entities.Relation
	social, spatial := false, false
	switch profile {
	case entities.ProfileAuto:
		groups = append(groups, commonSocial, nativeSpatial[kind])
		social, spatial = true, true
	case entities.ProfileSocial:
		groups = append(groups, commonSocial)
		social = true
	case entities.ProfileSpatial:
		groups = append(groups, nativeSpatial[kind])
		spatial = true
	case entities.ProfileAll:
		groups = append(groups, commonSocial,
			nativeSpatial[entities.SeatingLinear], nativeSpatial[entities.SeatingCircular])
		social, spatial = true, true
	}

	if social && difficulty != entities.DifficultyLow {
		groups = append(groups, mediumSocial)
	}
	if difficulty == entities.DifficultyHigh {
		if social {
			groups = append(groups, highSocial)
		}
		if spatial {
			groups = append(groups, highSpatial)
			if kind == entities.SeatingCircular {
				groups = append(groups, highCircular)
			}
		}
	}

	pool := make([]entities.Relation, 0, 24)
	seen := make(map[entities.Relation]bool)
	for _, group := range groups {
		for _, rel := range group {
			if seen[rel] {
				continue
			}
			seen[rel] = true
			pool = append(pool, rel)
		}
	}

	if !social && people < 2 {
		return nil, fmt.Errorf("%w (got %d)", ErrInfeasibleSpatial, people)
	}

	return pool, nil
}
