package output

import (
	"path"
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn is where file descriptions start.
	descriptionColumn = 34
)

// TreeNode is a node in a rendered file tree.
type TreeNode struct {
	Name        string
	Description string
	IsDir       bool
	Children    []*TreeNode
}

// RenderFileTree renders files as a tree rooted at rootName.
// files maps slash-separated relative paths to a description; directories are
// inferred from the paths.
func RenderFileTree(rootName string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	root := &TreeNode{Name: rootName, IsDir: true}

	for p, desc := range files {
		parts := strings.Split(path.Clean(p), "/")
		current := root

		for i, part := range parts {
			isLast := i == len(parts)-1

			var child *TreeNode
			for _, c := range current.Children {
				if c.Name == part {
					child = c
					break
				}
			}
			if child == nil {
				child = &TreeNode{Name: part, IsDir: !isLast}
				current.Children = append(current.Children, child)
			}
			if isLast {
				child.Description = desc
			}
			current = child
		}
	}

	sortTree(root)

	var sb strings.Builder
	renderNode(&sb, root, "", true, true)
	return sb.String()
}

// sortTree sorts children recursively, directories first, then by name.
func sortTree(node *TreeNode) {
	sort.Slice(node.Children, func(i, j int) bool {
		if node.Children[i].IsDir != node.Children[j].IsDir {
			return node.Children[i].IsDir
		}
		return node.Children[i].Name < node.Children[j].Name
	})
	for _, child := range node.Children {
		sortTree(child)
	}
}

func renderNode(sb *strings.Builder, node *TreeNode, prefix string, isRoot, isLast bool) {
	if isRoot {
		sb.WriteString(StyleBold.Render(node.Name + "/"))
		sb.WriteString("\n")
	} else {
		connector := treeEdge
		if isLast {
			connector = treeLast
		}

		name := node.Name
		if node.IsDir {
			name += "/"
		}
		line := prefix + connector + name

		if node.Description != "" {
			padding := descriptionColumn - len([]rune(line))
			if padding < 2 {
				padding = 2
			}
			line += strings.Repeat(" ", padding) + StyleDim.Render(node.Description)
		}

		sb.WriteString(line)
		sb.WriteString("\n")
	}

	for i, child := range node.Children {
		childPrefix := ""
		if !isRoot {
			if isLast {
				childPrefix = prefix + treeSpace
			} else {
				childPrefix = prefix + treeVert
			}
		}
		renderNode(sb, child, childPrefix, false, i == len(node.Children)-1)
	}
}
