package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShowTree(t *testing.T) {
	root := BuildTree([]string{
		"bubble/4/1",
		"insertion/4/2",
		"bubble/8/3",
		"bubble/4/4",
	})
	require.Len(t, root.Children, 2)

	var buf bytes.Buffer
	root.ShowTree(&buf, "")
	want := `.
├── bubble
│   ├── 4
│   │   ├── 1
│   │   └── 4
│   └── 8
│       └── 3
└── insertion
    └── 4
        └── 2
`
	require.Equal(t, want, buf.String())
}

func TestShowTreeEmpty(t *testing.T) {
	var buf bytes.Buffer
	BuildTree(nil).ShowTree(&buf, "")
	require.Equal(t, ".\n", buf.String())
}

func TestTreeLeavesAndDirs(t *testing.T) {
	root := BuildTree([]string{"bubble/4", "bubble/4/1", "insertion"})
	require.True(t, root.IsDir)

	bubble, insertion := root.Children[0], root.Children[1]
	require.True(t, bubble.IsDir)
	require.False(t, insertion.IsDir)
	require.True(t, bubble.Children[0].IsDir, "a path that later gains children becomes a directory")
	require.False(t, bubble.Children[0].Children[0].IsDir)
	require.True(t, bubble.Right == insertion)
	require.Nil(t, insertion.Right)

	var buf bytes.Buffer
	root.ShowTree(&buf, "")
	want := `.
├── bubble
│   └── 4
│       └── 1
└── insertion
`
	require.Equal(t, want, buf.String())
}
