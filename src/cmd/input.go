package cmd

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// readInts collects the integers to sort from the arguments, the --input
// file or the app reader. Arguments and --input are mutually exclusive.
func readInts(ctx *cli.Context) ([]int, error) {
	path := ctx.String("input")
	if ctx.NArg() > 0 {
		if path != "" {
			return nil, errors.Errorf("--input %q conflicts with %d positional integers", path, ctx.NArg())
		}
		return parseInts(strings.NewReader(strings.Join(ctx.Args().Slice(), " ")))
	}
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "open input %s", path)
		}
		defer f.Close()
		return parseInts(f)
	}
	return parseInts(ctx.App.Reader)
}

// parseInts reads whitespace or comma separated integers.
func parseInts(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var values []int
	for sc.Scan() {
		for _, field := range strings.Split(sc.Text(), ",") {
			if field == "" {
				continue
			}
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.Errorf("invalid integer %q", field)
			}
			values = append(values, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read input")
	}
	return values, nil
}

func formatInts(values []int) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
