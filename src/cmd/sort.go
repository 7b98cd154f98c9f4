package cmd

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	bsort "basicsort/src/sort"
	"basicsort/src/store"
)

func CmdSort() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Action:    sortValues,
		Category:  "TOOL",
		Usage:     "sort a list of integers in place",
		ArgsUsage: "[INTEGER...]",
		Description: `
Integers come from the arguments, from --input, or from stdin. Use "--" before
negative numbers so they are not taken as flags.

Examples:
$ basicsort sort 5 3 8 1
$ basicsort sort -a bubble --stats -- 4 -3 2 1
$ seq 100 -1 1 | basicsort sort -m "sqlite3:///tmp/basicsort.db"`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Value:   "insertion",
				Usage:   "sort algorithm (bubble, insertion, adjacent)",
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "read integers from this file",
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "print comparison, swap and shift counters",
			},
			metaFlag(),
		},
	}
}

func sortValues(ctx *cli.Context) error {
	setup(ctx)
	alg, err := bsort.Lookup(ctx.String("algorithm"))
	if err != nil {
		return err
	}
	values, err := readInts(ctx)
	if err != nil {
		return err
	}

	var st bsort.Stats
	start := time.Now()
	alg.Run(values, &st)
	used := time.Since(start)
	logger.Debugf("%s sorted %d values in %s", alg.Name, len(values), used)

	fmt.Fprintln(ctx.App.Writer, formatInts(values))
	if ctx.Bool("stats") {
		fmt.Fprintf(ctx.App.Writer, "comparisons=%d swaps=%d shifts=%d\n", st.Comparisons, st.Swaps, st.Shifts)
	}

	if ctx.String("meta-url") == "" {
		return nil
	}
	s, err := store.Open(ctx.String("meta-url"))
	if err != nil {
		return err
	}
	defer s.Close()
	return s.Record(newRun(alg.Name, len(values), st, used))
}

func newRun(name string, n int, st bsort.Stats, used time.Duration) *store.Run {
	return &store.Run{
		Algorithm:   name,
		Length:      n,
		Comparisons: int64(st.Comparisons),
		Swaps:       int64(st.Swaps),
		Shifts:      int64(st.Shifts),
		Duration:    int64(used),
	}
}
