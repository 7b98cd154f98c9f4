package cmd

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	bsort "basicsort/src/sort"
	"basicsort/src/store"
)

func CmdBench() *cli.Command {
	return &cli.Command{
		Name:     "bench",
		Action:   bench,
		Category: "TOOL",
		Usage:    "run the algorithms on random input and verify the results",
		Description: `
Every round generates one random input and feeds a copy to each algorithm. The
output must be non-decreasing and hold the same values as the input.

Examples:
$ basicsort bench --size 1000 --rounds 5
$ basicsort bench -a insertion --seed 42 -m "mysql://root:@(127.0.0.1:3306)/basicsort"`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "size",
				Value: 100,
				Usage: "number of integers per round",
			},
			&cli.IntFlag{
				Name:  "rounds",
				Value: 10,
				Usage: "number of rounds",
			},
			&cli.IntFlag{
				Name:  "max",
				Value: 1000,
				Usage: "values are drawn from [-max, max], max <= (MaxInt-1)/2",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "random seed (default: current time)",
			},
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Usage:   "only run this algorithm",
			},
			metaFlag(),
		},
	}
}

type benchResult struct {
	name  string
	stats bsort.Stats
	used  time.Duration
}

func bench(ctx *cli.Context) error {
	setup(ctx)
	size, rounds, maxValue := ctx.Int("size"), ctx.Int("rounds"), ctx.Int("max")
	if size < 0 || rounds <= 0 || maxValue < 0 || maxValue > (math.MaxInt-1)/2 {
		return errors.Errorf("invalid bench arguments: size=%d rounds=%d max=%d", size, rounds, maxValue)
	}

	algs := bsort.Algorithms()
	if name := ctx.String("algorithm"); name != "" {
		alg, err := bsort.Lookup(name)
		if err != nil {
			return err
		}
		algs = []bsort.Algorithm{alg}
	}

	seed := ctx.Int64("seed")
	if !ctx.IsSet("seed") {
		seed = time.Now().UnixNano()
	}
	logger.Infof("bench: size %d, rounds %d, seed %d", size, rounds, seed)
	rnd := rand.New(rand.NewSource(seed))

	var s *store.Store
	if url := ctx.String("meta-url"); url != "" {
		var err error
		if s, err = store.Open(url); err != nil {
			return err
		}
		defer s.Close()
	}

	results := make([]benchResult, len(algs))
	for i, alg := range algs {
		results[i].name = alg.Name
	}
	data := make([]int, size)
	for round := 0; round < rounds; round++ {
		input := randomInts(rnd, size, maxValue)
		for i, alg := range algs {
			copy(data, input)
			var st bsort.Stats
			start := time.Now()
			alg.Run(data, &st)
			used := time.Since(start)
			if err := verify(input, data); err != nil {
				return errors.Wrapf(err, "%s round %d (seed %d)", alg.Name, round, seed)
			}
			logger.Tracef("%s round %d: %+v in %s", alg.Name, round, st, used)

			r := &results[i]
			r.stats.Comparisons += st.Comparisons
			r.stats.Swaps += st.Swaps
			r.stats.Shifts += st.Shifts
			r.used += used
			if s != nil {
				if err := s.Record(newRun(alg.Name, size, st, used)); err != nil {
					return err
				}
			}
		}
	}

	for _, r := range results {
		fmt.Fprintf(ctx.App.Writer, "%-10s rounds=%d comparisons=%d swaps=%d shifts=%d used=%s\n",
			r.name, rounds, r.stats.Comparisons, r.stats.Swaps, r.stats.Shifts, r.used)
	}
	return nil
}

func randomInts(rnd *rand.Rand, n, maxValue int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = rnd.Intn(2*maxValue+1) - maxValue
	}
	return values
}

// verify checks that sorted is non-decreasing and a permutation of input.
func verify(input, sorted []int) error {
	if len(input) != len(sorted) {
		return errors.Errorf("length changed from %d to %d", len(input), len(sorted))
	}
	if !bsort.IsSorted(sorted) {
		return errors.New("output is not sorted")
	}
	counts := make(map[int]int, len(input))
	for _, v := range input {
		counts[v]++
	}
	for _, v := range sorted {
		if counts[v] == 0 {
			return errors.Errorf("value %d not in input", v)
		}
		counts[v]--
	}
	return nil
}
