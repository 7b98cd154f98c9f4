package sort

import (
	"github.com/pkg/errors"
)

var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm is a named in-place sort with counters.
type Algorithm struct {
	Name string
	Run  func(data []int, st *Stats)
}

var algorithms = []Algorithm{
	{Name: "bubble", Run: BubbleSortStats},
	{Name: "insertion", Run: InsertionSortStats},
	{Name: "adjacent", Run: adjacentStats},
}

// Algorithms returns every registered algorithm.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

func Names() []string {
	names := make([]string, 0, len(algorithms))
	for _, a := range algorithms {
		names = append(names, a.Name)
	}
	return names
}

func Lookup(name string) (Algorithm, error) {
	for _, a := range algorithms {
		if a.Name == name {
			return a, nil
		}
	}
	return Algorithm{}, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}
