package services

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/ersonp/kinpuzzle/internal/domain/entities"
)

// GenerateOptions configures a single puzzle generation.
type GenerateOptions struct {
	People        int
	MinPathLength int
	// Seed makes generation reproducible. When nil a clock-derived seed is
	// used and recorded on the puzzle.
	Seed *int64
	// Seating is picked at random when empty.
	Seating    entities.SeatingKind
	Profile    entities.RelationProfile
	Difficulty entities.Difficulty
	Dense      bool
}

// GeneratorService builds puzzles. It holds no state between calls.
type GeneratorService struct {
	seedSource func() int64
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{
		seedSource: func() int64 { return time.Now().UnixNano() },
	}
}

// generation is the state owned by one Generate call.
type generation struct {
	rng      *rand.Rand
	names    []string
	pool     []entities.Relation
	geometry SpatialMap
	state    *PairState
}

// Generate builds a puzzle. The same options and seed always produce the same
// puzzle, fact IDs included.
func (s *GeneratorService) Generate(opts GenerateOptions) (*entities.Puzzle, error) {
	opts = withDefaults(opts)
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	seed := s.seedSource()
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	names := pickNames(rng, opts.People)

	kind := opts.Seating
	if kind == "" {
		kind = entities.SeatingKinds[rng.Intn(len(entities.SeatingKinds))]
	}
	seating := arrangeSeating(rng, kind, names, opts.Difficulty)

	pool, err := SelectPool(kind, opts.Profile, opts.Difficulty, len(names))
	if err != nil {
		return nil, err
	}

	g := &generation{
		rng:      rng,
		names:    names,
		pool:     pool,
		geometry: ResolveGeometry(seating),
		state:    NewPairState(),
	}

	puzzle, err := g.run(opts.MinPathLength)
	if err != nil {
		return nil, err
	}
	puzzle.Seed = seed
	puzzle.Profile = opts.Profile
	puzzle.Difficulty = opts.Difficulty
	puzzle.Seating = seating
	puzzle.Dense = opts.Dense
	return puzzle, nil
}

func withDefaults(opts GenerateOptions) GenerateOptions {
	if opts.Profile == "" {
		opts.Profile = entities.ProfileAuto
	}
	if opts.Difficulty == "" {
		opts.Difficulty = entities.DifficultyLow
	}
	return opts
}

func validateOptions(opts GenerateOptions) error {
	if opts.People < 1 {
		return fmt.Errorf("%w: people must be at least 1 (got %d)", ErrInvalidConfig, opts.People)
	}
	if opts.MinPathLength < 0 {
		return fmt.Errorf("%w: minimum path length must not be negative (got %d)", ErrInvalidConfig, opts.MinPathLength)
	}
	if opts.Seating != "" && !opts.Seating.IsValid() {
		return fmt.Errorf("%w: unsupported seating kind %q", ErrInvalidConfig, opts.Seating)
	}
	if !opts.Profile.IsValid() {
		return fmt.Errorf("%w: unsupported relation profile %q", ErrInvalidConfig, opts.Profile)
	}
	if !opts.Difficulty.IsValid() {
		return fmt.Errorf("%w: unsupported difficulty %q", ErrInvalidConfig, opts.Difficulty)
	}
	return nil
}

// run checks feasibility, then builds the path, the padding and the rendered
// views.
func (g *generation) run(minLength int) (*entities.Puzzle, error) {
	available := countLegalTriples(g.names, g.pool, g.geometry)
	if available == 0 {
		return nil, ErrUnsatisfiable
	}
	if minLength > available {
		return nil, fmt.Errorf("%w: requested %d, available %d", ErrPathTooLong, minLength, available)
	}

	pathFacts, pathIDs, err := g.buildPath(minLength)
	if err != nil {
		return nil, err
	}
	extra := g.sampleExtras()

	facts, alias := DedupeFacts(append(pathFacts, extra...))
	path := make([]string, len(pathIDs))
	for i, id := range pathIDs {
		path[i] = alias[id]
	}

	return &entities.Puzzle{
		Relations:       g.pool,
		Names:           g.names,
		Facts:           facts,
		SolutionPath:    path,
		Graph:           CanonicalGraph(facts),
		SolutionSummary: solutionSummary(facts, path),
	}, nil
}

// emitPair creates the fact (subject, rel, object) and its mirror.
func (g *generation) emitPair(subject string, rel entities.Relation, object string) []entities.Fact {
	fwd := entities.Fact{ID: g.newID(), Subject: subject, Relation: rel, Object: object}
	inv, ok := rel.Inverse()
	if !ok {
		return []entities.Fact{fwd}
	}
	back := entities.Fact{ID: g.newID(), Subject: object, Relation: inv, Object: subject}
	return []entities.Fact{fwd, back}
}

// newID draws a UUID from the generation's random stream so IDs are
// reproducible from the seed. Reads from a rand.Rand never fail.
func (g *generation) newID() string {
	return uuid.Must(uuid.NewRandomFromReader(g.rng)).String()
}

// pickNames samples n distinct names from the default pool, appending
// synthetic names once the pool is exhausted.
func pickNames(rng *rand.Rand, n int) []string {
	pool := entities.DefaultNames
	names := make([]string, 0, n)
	for _, idx := range rng.Perm(len(pool)) {
		if len(names) == n {
			break
		}
		names = append(names, pool[idx])
	}
	for i := 1; len(names) < n; i++ {
		names = append(names, entities.FallbackName(i))
	}
	return names
}

// arrangeSeating seats names in random order. High difficulty pads the layout
// with empty seats to weaken spatial inference.
func arrangeSeating(rng *rand.Rand, kind entities.SeatingKind, names []string, difficulty entities.Difficulty) entities.Seating {
	slots := make([]string, len(names))
	copy(slots, names)
	rng.Shuffle(len(slots), func(i, j int) { slots[i], slots[j] = slots[j], slots[i] })

	if difficulty == entities.DifficultyHigh && len(names) >= 2 {
		empties := 1 + rng.Intn(len(names)/2)
		for i := 0; i < empties; i++ {
			at := rng.Intn(len(slots) + 1)
			slots = append(slots, "")
			copy(slots[at+1:], slots[at:])
			slots[at] = entities.EmptySeat
		}
	}

	seats := make(map[int]string, len(slots))
	for i, name := range slots {
		seats[i+1] = name
	}
	return entities.Seating{Kind: kind, Seats: seats}
}
