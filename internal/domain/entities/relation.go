package entities

// Relation is a relation label that can hold between two people.
type Relation string

// Common social relations.
const (
	RelationParentOf   Relation = "parent_of"
	RelationChildOf    Relation = "child_of"
	RelationSiblingOf  Relation = "sibling_of"
	RelationCousinOf   Relation = "cousin_of"
	RelationSpouseOf   Relation = "spouse_of"
	RelationFriendOf   Relation = "friend_of"
	RelationCoworkerOf Relation = "coworker_of"
	RelationNeighborOf Relation = "neighbor_of"
)

// Social relations unlocked by higher difficulty tiers.
const (
	RelationClassmateOf Relation = "classmate_of"
	RelationTeammateOf  Relation = "teammate_of"
	RelationMentorOf    Relation = "mentor_of"
	RelationMenteeOf    Relation = "mentee_of"
	RelationManagerOf   Relation = "manager_of"
	RelationReportsTo   Relation = "reports_to"
	RelationRivalOf     Relation = "rival_of"
)

// Spatial relations derived from seating.
const (
	RelationLeftOf             Relation = "left_of"
	RelationRightOf            Relation = "right_of"
	RelationNextTo             Relation = "next_to"
	RelationAcrossFrom         Relation = "across_from"
	RelationTwoLeftOf          Relation = "two_left_of"
	RelationTwoRightOf         Relation = "two_right_of"
	RelationClockwiseOf        Relation = "clockwise_of"
	RelationCounterclockwiseOf Relation = "counterclockwise_of"
)

// Category partitions relations into social and spatial labels.
type Category string

const (
	CategorySocial  Category = "social"
	CategorySpatial Category = "spatial"
)

// FamilyCategory is a mutually exclusive family bond. At most one may hold
// per pair of people.
type FamilyCategory string

const (
	FamilyNone        FamilyCategory = ""
	FamilyParentChild FamilyCategory = "parent_child"
	FamilySibling     FamilyCategory = "sibling"
	FamilyCousin      FamilyCategory = "cousin"
	FamilySpouse      FamilyCategory = "spouse"
)

type relationInfo struct {
	category Category
	inverse  Relation
	family   FamilyCategory
}

var catalog = map[Relation]relationInfo{
	RelationParentOf:   {CategorySocial, RelationChildOf, FamilyParentChild},
	RelationChildOf:    {CategorySocial, RelationParentOf, FamilyParentChild},
	RelationSiblingOf:  {CategorySocial, RelationSiblingOf, FamilySibling},
	RelationCousinOf:   {CategorySocial, RelationCousinOf, FamilyCousin},
	RelationSpouseOf:   {CategorySocial, RelationSpouseOf, FamilySpouse},
	RelationFriendOf:   {CategorySocial, RelationFriendOf, FamilyNone},
	RelationCoworkerOf: {CategorySocial, RelationCoworkerOf, FamilyNone},
	RelationNeighborOf: {CategorySocial, RelationNeighborOf, FamilyNone},

	RelationClassmateOf: {CategorySocial, RelationClassmateOf, FamilyNone},
	RelationTeammateOf:  {CategorySocial, RelationTeammateOf, FamilyNone},
	RelationMentorOf:    {CategorySocial, RelationMenteeOf, FamilyNone},
	RelationMenteeOf:    {CategorySocial, RelationMentorOf, FamilyNone},
	RelationManagerOf:   {CategorySocial, RelationReportsTo, FamilyNone},
	RelationReportsTo:   {CategorySocial, RelationManagerOf, FamilyNone},
	RelationRivalOf:     {CategorySocial, RelationRivalOf, FamilyNone},

	RelationLeftOf:             {CategorySpatial, RelationRightOf, FamilyNone},
	RelationRightOf:            {CategorySpatial, RelationLeftOf, FamilyNone},
	RelationNextTo:             {CategorySpatial, RelationNextTo, FamilyNone},
	RelationAcrossFrom:         {CategorySpatial, RelationAcrossFrom, FamilyNone},
	RelationTwoLeftOf:          {CategorySpatial, RelationTwoRightOf, FamilyNone},
	RelationTwoRightOf:         {CategorySpatial, RelationTwoLeftOf, FamilyNone},
	RelationClockwiseOf:        {CategorySpatial, RelationCounterclockwiseOf, FamilyNone},
	RelationCounterclockwiseOf: {CategorySpatial, RelationClockwiseOf, FamilyNone},
}

// canonicalForms maps the "backward" half of each directed inverse pair to
// the label used when rendering the graph, with subject and object swapped.
var canonicalForms = map[Relation]Relation{
	RelationChildOf:            RelationParentOf,
	RelationMenteeOf:           RelationMentorOf,
	RelationReportsTo:          RelationManagerOf,
	RelationRightOf:            RelationLeftOf,
	RelationTwoRightOf:         RelationTwoLeftOf,
	RelationCounterclockwiseOf: RelationClockwiseOf,
}

// IsValid reports whether r is part of the relation catalog.
func (r Relation) IsValid() bool {
	_, ok := catalog[r]
	return ok
}

// Category returns the relation's category. Unknown relations are social.
func (r Relation) Category() Category {
	if info, ok := catalog[r]; ok {
		return info.category
	}
	return CategorySocial
}

// IsSpatial reports whether r is derived from seating geometry.
func (r Relation) IsSpatial() bool {
	return r.Category() == CategorySpatial
}

// Inverse returns the label that mirrors r, and false for unknown labels.
func (r Relation) Inverse() (Relation, bool) {
	info, ok := catalog[r]
	if !ok {
		return "", false
	}
	return info.inverse, true
}

// IsSymmetric reports whether r is its own inverse.
func (r Relation) IsSymmetric() bool {
	inv, ok := r.Inverse()
	return ok && inv == r
}

// Family returns the family category r commits, or FamilyNone.
func (r Relation) Family() FamilyCategory {
	return catalog[r].family
}

// Canonical returns the rendering direction for r and whether the subject and
// object have to be swapped to express the same fact.
func (r Relation) Canonical() (Relation, bool) {
	if c, ok := canonicalForms[r]; ok {
		return c, true
	}
	return r, false
}
