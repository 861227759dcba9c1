package a

import (
	"slices"
	"sort"
)

type seats map[int]string

func bad(m map[string]int) []string {
	var out []string
	for k := range m { // want "range over map without a following sort"
		out = append(out, k)
	}
	return out
}

func badNamedType(s seats) []string {
	var out []string
	for _, name := range s { // want "range over map without a following sort"
		out = append(out, name)
	}
	return out
}

func badSortBefore(m map[string]int) []string {
	keys := []string{"b", "a"}
	sort.Strings(keys)
	for k := range m { // want "range over map without a following sort"
		keys = append(keys, k)
	}
	return keys
}

func goodSort(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func goodSlices(s seats) []int {
	positions := make([]int, 0, len(s))
	for pos := range s {
		positions = append(positions, pos)
	}
	slices.Sort(positions)
	return positions
}

func goodSlice(names []string) int {
	n := 0
	for range names {
		n++
	}
	return n
}

func nestedLiteral(m map[string]int) func() []string {
	return func() []string {
		var out []string
		for k := range m { // want "range over map without a following sort"
			out = append(out, k)
		}
		return out
	}
}
