package composite

import (
	"fmt"
	"strings"
)

// Render draws item and its descendants as a tree, one line per node.
func Render(item Item) string {
	if item == nil {
		return ""
	}
	lines := []string{label(item)}
	children := childrenOf(item)
	for i, child := range children {
		last := i == len(children)-1
		lines = append(lines, formatNode(child, "", last)...)
	}
	return strings.Join(lines, "\n")
}

func formatNode(item Item, prefix string, last bool) []string {
	connector := "├── "
	nextPrefix := prefix + "│   "
	if last {
		connector = "└── "
		nextPrefix = prefix + "    "
	}
	lines := []string{fmt.Sprintf("%s%s%s", prefix, connector, label(item))}
	children := childrenOf(item)
	for i, child := range children {
		childLast := i == len(children)-1
		lines = append(lines, formatNode(child, nextPrefix, childLast)...)
	}
	return lines
}

func label(item Item) string {
	return fmt.Sprintf("%s ($%s)", item.Name(), FormatPrice(item.Price()))
}

func childrenOf(item Item) []Item {
	group, ok := item.(interface{ Children() []Item })
	if !ok {
		return nil
	}
	return group.Children()
}
