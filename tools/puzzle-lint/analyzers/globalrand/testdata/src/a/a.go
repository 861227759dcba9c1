package a

import (
	"math/rand"
	mrand "math/rand"
)

func bad(names []string) string {
	return names[rand.Intn(len(names))] // want "rand.Intn uses the global random source"
}

func badShuffle(names []string) {
	rand.Shuffle(len(names), func(i, j int) { // want "rand.Shuffle uses the global random source"
		names[i], names[j] = names[j], names[i]
	})
}

func badAlias() int {
	return mrand.Int() // want "mrand.Int uses the global random source"
}

func good(seed int64, names []string) string {
	rng := rand.New(rand.NewSource(seed))
	return names[rng.Intn(len(names))]
}

type picker struct {
	rand *rand.Rand
}

func (p *picker) goodField(n int) int {
	return p.rand.Intn(n)
}
