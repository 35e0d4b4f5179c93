package usbdesc

import (
	"strings"
	"testing"
)

func TestNodeStringIsDepthFirstIndented(t *testing.T) {
	leaf := &Node{Parsed: Interface{InterfaceNumber: 1}}
	parent := &Node{Parsed: Config{NumInterfaces: 1}, Children: []*Node{leaf}}
	root := newRoot()
	root.Children = []*Node{parent}

	dump := root.String()
	lines := strings.Split(strings.TrimRight(dump, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("String() produced %d lines, want 3 (root, config, interface)", len(lines))
	}
	if strings.HasPrefix(lines[1], "\t") {
		t.Fatalf("config line should be at depth 1 (no leading tab on the root's own line), got %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "\t") {
		t.Fatalf("interface line should be indented one tab deeper than its parent, got %q", lines[2])
	}
}

func TestNodeWalkVisitsEveryNode(t *testing.T) {
	leaf1 := &Node{Parsed: Interface{InterfaceNumber: 1}}
	leaf2 := &Node{Parsed: Interface{InterfaceNumber: 2}}
	root := &Node{Parsed: Config{}, Children: []*Node{leaf1, leaf2}}

	var visited int
	root.walk(func(*Node) { visited++ })
	if visited != 3 {
		t.Fatalf("walk visited %d nodes, want 3", visited)
	}
}
