package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/kinpuzzle/internal/domain/entities"
)

func TestSelectPool(t *testing.T) {
	common := []entities.Relation{
		"parent_of", "child_of", "sibling_of", "cousin_of", "spouse_of",
		"friend_of", "coworker_of", "neighbor_of",
	}
	withCommon := func(rels ...entities.Relation) []entities.Relation {
		return append(append([]entities.Relation{}, common...), rels...)
	}

	tests := []struct {
		name       string
		kind       entities.SeatingKind
		profile    entities.RelationProfile
		difficulty entities.Difficulty
		expected   []entities.Relation
	}{
		{
			name:       "auto linear low",
			kind:       entities.SeatingLinear,
			profile:    entities.ProfileAuto,
			difficulty: entities.DifficultyLow,
			expected:   withCommon("left_of", "right_of", "next_to"),
		},
		{
			name:       "auto circular low",
			kind:       entities.SeatingCircular,
			profile:    entities.ProfileAuto,
			difficulty: entities.DifficultyLow,
			expected:   withCommon("left_of", "right_of", "next_to", "across_from"),
		},
		{
			name:       "social only",
			kind:       entities.SeatingCircular,
			profile:    entities.ProfileSocial,
			difficulty: entities.DifficultyLow,
			expected:   common,
		},
		{
			name:       "spatial linear",
			kind:       entities.SeatingLinear,
			profile:    entities.ProfileSpatial,
			difficulty: entities.DifficultyLow,
			expected:   []entities.Relation{"left_of", "right_of", "next_to"},
		},
		{
			name:       "all merges both spatial groups",
			kind:       entities.SeatingLinear,
			profile:    entities.ProfileAll,
			difficulty: entities.DifficultyLow,
			expected:   withCommon("left_of", "right_of", "next_to", "across_from"),
		},
		{
			name:       "medium adds extra social",
			kind:       entities.SeatingLinear,
			profile:    entities.ProfileAuto,
			difficulty: entities.DifficultyMedium,
			expected: withCommon("left_of", "right_of", "next_to",
				"classmate_of", "teammate_of", "mentor_of", "mentee_of"),
		},
		{
			name:       "high social stays social",
			kind:       entities.SeatingCircular,
			profile:    entities.ProfileSocial,
			difficulty: entities.DifficultyHigh,
			expected: withCommon("classmate_of", "teammate_of", "mentor_of", "mentee_of",
				"manager_of", "reports_to", "rival_of"),
		},
		{
			name:       "high spatial circular stays spatial",
			kind:       entities.SeatingCircular,
			profile:    entities.ProfileSpatial,
			difficulty: entities.DifficultyHigh,
			expected: []entities.Relation{"left_of", "right_of", "next_to", "across_from",
				"two_left_of", "two_right_of", "clockwise_of", "counterclockwise_of"},
		},
		{
			name:       "high all linear has no rotation",
			kind:       entities.SeatingLinear,
			profile:    entities.ProfileAll,
			difficulty: entities.DifficultyHigh,
			expected: withCommon("left_of", "right_of", "next_to", "across_from",
				"classmate_of", "teammate_of", "mentor_of", "mentee_of",
				"manager_of", "reports_to", "rival_of",
				"two_left_of", "two_right_of"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, err := SelectPool(tt.kind, tt.profile, tt.difficulty, 4)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, pool)
		})
	}
}

func TestSelectPool_InvalidConfig(t *testing.T) {
	tests := []struct {
		name       string
		kind       entities.SeatingKind
		profile    entities.RelationProfile
		difficulty entities.Difficulty
	}{
		{"unknown kind", "triangle", entities.ProfileAuto, entities.DifficultyLow},
		{"empty kind", "", entities.ProfileAuto, entities.DifficultyLow},
		{"unknown profile", entities.SeatingLinear, "mixed", entities.DifficultyLow},
		{"unknown difficulty", entities.SeatingLinear, entities.ProfileAuto, "extreme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SelectPool(tt.kind, tt.profile, tt.difficulty, 4)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestSelectPool_SpatialNeedsTwoPeople(t *testing.T) {
	_, err := SelectPool(entities.SeatingLinear, entities.ProfileSpatial, entities.DifficultyHigh, 1)
	assert.ErrorIs(t, err, ErrInfeasibleSpatial)

	pool, err := SelectPool(entities.SeatingLinear, entities.ProfileAuto, entities.DifficultyLow, 1)
	require.NoError(t, err)
	assert.NotEmpty(t, pool)
}
