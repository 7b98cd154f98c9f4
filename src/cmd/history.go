package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	bsort "basicsort/src/sort"
	"basicsort/src/store"
	"basicsort/src/utils"
)

func CmdHistory() *cli.Command {
	return &cli.Command{
		Name:     "history",
		Action:   history,
		Category: "INSPECTOR",
		Usage:    "show recorded sort runs",
		Description: `
It lists the runs recorded by "sort" and "bench" with --meta-url, newest first.

Examples:
$ basicsort history -m "sqlite3:///tmp/basicsort.db"
$ basicsort history --tree -a bubble -m "mysql://root:@(127.0.0.1:3306)/basicsort"`,
		Flags: []cli.Flag{
			metaFlag(),
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Usage:   "only show runs of this algorithm",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Value:   20,
				Usage:   "number of runs to show (0 for all)",
			},
			&cli.BoolFlag{
				Name:    "tree",
				Aliases: []string{"t"},
				Usage:   "group runs by algorithm and length",
			},
		},
	}
}

func history(ctx *cli.Context) error {
	setup(ctx)
	url := ctx.String("meta-url")
	if url == "" {
		return errors.New("--meta-url is required")
	}
	name := ctx.String("algorithm")
	if name != "" {
		if _, err := bsort.Lookup(name); err != nil {
			return err
		}
	}

	s, err := store.Open(url)
	if err != nil {
		return err
	}
	defer s.Close()
	runs, err := s.Recent(name, ctx.Int("limit"))
	if err != nil {
		return err
	}

	if ctx.Bool("tree") {
		paths := make([]string, 0, len(runs))
		for _, r := range runs {
			paths = append(paths, fmt.Sprintf("%s/n=%d/%s", r.Algorithm, r.Length, r))
		}
		utils.BuildTree(paths).ShowTree(ctx.App.Writer, "")
		return nil
	}
	for _, r := range runs {
		fmt.Fprintln(ctx.App.Writer, r)
	}
	return nil
}
