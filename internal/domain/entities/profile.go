package entities

// RelationProfile selects which relation groups a puzzle draws from.
type RelationProfile string

const (
	ProfileAuto    RelationProfile = "auto"
	ProfileSocial  RelationProfile = "social"
	ProfileSpatial RelationProfile = "spatial"
	ProfileAll     RelationProfile = "all"
)

// RelationProfiles lists the supported profiles in a stable order.
var RelationProfiles = []RelationProfile{ProfileAuto, ProfileSocial, ProfileSpatial, ProfileAll}

// IsValid reports whether p is a supported profile.
func (p RelationProfile) IsValid() bool {
	switch p {
	case ProfileAuto, ProfileSocial, ProfileSpatial, ProfileAll:
		return true
	}
	return false
}

// Difficulty is a tier that unlocks supplementary relations.
type Difficulty string

const (
	DifficultyLow    Difficulty = "low"
	DifficultyMedium Difficulty = "medium"
	DifficultyHigh   Difficulty = "high"
)

// Difficulties lists the supported tiers in a stable order.
var Difficulties = []Difficulty{DifficultyLow, DifficultyMedium, DifficultyHigh}

// IsValid reports whether d is a supported tier.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyLow, DifficultyMedium, DifficultyHigh:
		return true
	}
	return false
}
