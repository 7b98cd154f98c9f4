package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bsort "basicsort/src/sort"
)

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	app := NewApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &out
	app.Reader = strings.NewReader(stdin)
	err := app.Run(append([]string{"basicsort", "--no-agent", "--no-color", "--quiet"}, args...))
	return out.String(), err
}

func TestSortArgs(t *testing.T) {
	out, err := runApp(t, "", "sort", "5", "3", "8", "1")
	require.NoError(t, err)
	assert.Equal(t, "1 3 5 8\n", out)

	out, err = runApp(t, "", "sort", "-a", "bubble", "--stats", "--", "4", "-3", "2", "1")
	require.NoError(t, err)
	assert.Equal(t, "-3 1 2 4\ncomparisons=10 swaps=4 shifts=0\n", out)
}

func TestSortStdinAndFile(t *testing.T) {
	out, err := runApp(t, "2 2\n1\n", "sort", "--stats")
	require.NoError(t, err)
	assert.Equal(t, "1 2 2\ncomparisons=3 swaps=0 shifts=2\n", out)

	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("9,7,8\n"), 0644))
	out, err = runApp(t, "", "sort", "-a", "adjacent", "-i", path)
	require.NoError(t, err)
	assert.Equal(t, "7 8 9\n", out)

	out, err = runApp(t, "", "sort")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}

func TestSortErrors(t *testing.T) {
	_, err := runApp(t, "", "sort", "-a", "quick", "1")
	require.True(t, errors.Is(err, bsort.ErrUnknownAlgorithm), "%v", err)

	_, err = runApp(t, "", "sort", "1", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid integer "x"`)

	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("2 1\n"), 0644))
	_, err = runApp(t, "", "sort", "-i", path, "3", "4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conflicts with 2 positional integers")

	missing := filepath.Join(t.TempDir(), "missing.txt")
	_, err = runApp(t, "", "sort", "-i", missing)
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)), "%v", err)
	assert.Contains(t, err.Error(), "open input "+missing)
}

func TestBench(t *testing.T) {
	out, err := runApp(t, "", "bench", "--size", "50", "--rounds", "3", "--seed", "7")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "bubble     rounds=3 comparisons=3825 "), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "insertion"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "adjacent   rounds=3 comparisons=3675 "), lines[2])

	for _, args := range [][]string{
		{"--rounds", "0"},
		{"--size", "-1"},
		{"--max", "-1"},
		{"--max", "4611686018427387904"},
	} {
		_, err = runApp(t, "", append([]string{"bench", "--size", "3"}, args...)...)
		require.Error(t, err, "%v", args)
		assert.Contains(t, err.Error(), "invalid bench arguments", "%v", args)
	}
}

func TestHistory(t *testing.T) {
	meta := "sqlite3://" + filepath.Join(t.TempDir(), "history.db")
	_, err := runApp(t, "", "sort", "-a", "bubble", "-m", meta, "4", "3", "2", "1")
	require.NoError(t, err)
	_, err = runApp(t, "", "bench", "-a", "insertion", "--size", "5", "--rounds", "2", "-m", meta)
	require.NoError(t, err)

	out, err := runApp(t, "", "history", "-m", meta)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "#3 insertion n=5")
	assert.Contains(t, lines[2], "#1 bubble n=4 cmp=10 swap=6 shift=0")

	out, err = runApp(t, "", "history", "-m", meta, "-a", "bubble", "--tree")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, ".\n└── bubble\n    └── n=4\n        └── #1 bubble n=4"), out)

	_, err = runApp(t, "", "history")
	require.Error(t, err)
}

func TestParseInts(t *testing.T) {
	values, err := parseInts(strings.NewReader(" 1, -2\n3,,4 "))
	require.NoError(t, err)
	assert.Equal(t, []int{1, -2, 3, 4}, values)
	assert.Equal(t, "1 -2 3 4", formatInts(values))
}

func TestVerify(t *testing.T) {
	require.NoError(t, verify([]int{3, 1, 2}, []int{1, 2, 3}))
	require.Error(t, verify([]int{3, 1, 2}, []int{1, 3, 2}))
	require.Error(t, verify([]int{3, 1, 2}, []int{1, 1, 3}))
	require.Error(t, verify([]int{3, 1}, []int{1, 2, 3}))
}
