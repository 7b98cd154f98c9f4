package utils

import (
	"fmt"
	"io"
	"strings"
)

const (
	pipe     = "│   "
	tee      = "├── "
	lasttee  = "└── "
	rootName = "."
)

// TreeNode is one element of a slash separated path listing.
type TreeNode struct {
	Level    int
	Name     string
	IsDir    bool
	Children []*TreeNode
	Right    *TreeNode
}

// BuildTree groups slash separated paths into a tree, keeping first-seen order.
func BuildTree(paths []string) *TreeNode {
	root := &TreeNode{IsDir: true}
	for _, path := range paths {
		names := strings.Split(path, "/")
		current := root
		for index, name := range names {
			current = current.child(name, index != len(names)-1)
		}
	}
	return root
}

func (node *TreeNode) child(name string, isDir bool) *TreeNode {
	for _, c := range node.Children {
		if c.Name == name {
			c.IsDir = c.IsDir || isDir
			return c
		}
	}

	var pre *TreeNode
	if len(node.Children) > 0 {
		pre = node.Children[len(node.Children)-1]
	}
	c := &TreeNode{
		Level: node.Level + 1,
		Name:  name,
		IsDir: isDir,
	}
	if pre != nil {
		pre.Right = c
	}
	node.Children = append(node.Children, c)
	return c
}

// ShowTree writes the tree to w. The prefix decides the indentation and the
// tee/lasttee choice marks whether a branch continues below.
func (node *TreeNode) ShowTree(w io.Writer, prefix string) {
	if node.Level == 0 {
		fmt.Fprintln(w, rootName)
	} else {
		subFix := lasttee
		if node.Right != nil {
			subFix = tee
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, subFix, node.Name)
		if !node.IsDir {
			return
		}
		if node.Right != nil {
			prefix += pipe
		} else {
			prefix += "    "
		}
	}

	for _, c := range node.Children {
		c.ShowTree(w, prefix)
	}
}
