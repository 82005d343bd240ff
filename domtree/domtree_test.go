// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domtree

import (
	"sort"
	"testing"

	"github.com/aclements/go-ircfg/internal/irfixtures"
	"github.com/aclements/go-ircfg/ir"
)

func childNames(t *Tree, blocks map[byte]*ir.BasicBlock, b byte) []string {
	var got []string
	for _, c := range t.ImmediateChildren(blocks[b]) {
		for name, bb := range blocks {
			if bb == c {
				got = append(got, string(name))
			}
		}
	}
	sort.Strings(got)
	return got
}

func checkChildren(t *testing.T, tree *Tree, blocks map[byte]*ir.BasicBlock, want map[byte]string) {
	t.Helper()
	for b, wantChildren := range want {
		got := childNames(tree, blocks, b)
		gotStr := ""
		for i, c := range got {
			if i > 0 {
				gotStr += ","
			}
			gotStr += c
		}
		if gotStr != wantChildren {
			t.Errorf("imm-children(%c) = {%s}, want {%s}", b, gotStr, wantChildren)
		}
	}
}

// TestD1Diamond is Scenario D1: diamond with tail.
func TestD1Diamond(t *testing.T) {
	g, blocks := irfixtures.Graph("ABCDEFG", [][2]byte{
		{'A', 'B'}, {'B', 'C'}, {'B', 'F'}, {'C', 'D'},
		{'F', 'E'}, {'F', 'G'}, {'G', 'D'}, {'E', 'D'},
	})
	tree := Build(g)
	checkChildren(t, tree, blocks, map[byte]string{
		'A': "B",
		'B': "C,D,F",
		'C': "",
		'D': "",
		'F': "E,G",
		'E': "",
		'G': "",
	})
}

// TestD2ManyMerges is Scenario D2.
func TestD2ManyMerges(t *testing.T) {
	g, blocks := irfixtures.Graph("ABCDEFGHIJK", [][2]byte{
		{'A', 'B'}, {'B', 'C'}, {'B', 'J'}, {'J', 'C'}, {'C', 'D'},
		{'D', 'C'}, {'D', 'E'}, {'E', 'F'}, {'F', 'E'}, {'F', 'G'},
		{'G', 'I'}, {'G', 'H'}, {'H', 'B'}, {'I', 'K'},
	})
	tree := Build(g)
	checkChildren(t, tree, blocks, map[byte]string{
		'A': "B",
		'B': "C,J",
		'J': "",
		'C': "D",
		'D': "E",
		'E': "F",
		'F': "G",
		'G': "H,I",
		'I': "K",
		'K': "",
		'H': "",
	})
}

// TestD3Irreducible is Scenario D3.
func TestD3Irreducible(t *testing.T) {
	g, blocks := irfixtures.Graph("ABCDEFGHI", [][2]byte{
		{'A', 'B'}, {'B', 'C'}, {'B', 'E'}, {'C', 'D'}, {'E', 'D'},
		{'E', 'F'}, {'D', 'G'}, {'F', 'B'}, {'F', 'H'}, {'H', 'I'},
		{'H', 'G'}, {'G', 'I'}, {'G', 'C'},
	})
	tree := Build(g)
	checkChildren(t, tree, blocks, map[byte]string{
		'A': "B",
		'B': "C,D,E,G,I",
		'E': "F",
		'F': "H",
	})
	for _, b := range "CDGHI" {
		if got := childNames(tree, blocks, byte(b)); len(got) != 0 {
			t.Errorf("imm-children(%c) = %v, want empty", b, got)
		}
	}
}

// TestDominatesReflexiveAndEntryDominatesAll checks property 4
// (reflexivity) and the
// entry-dominates-all-reachable property 5.
func TestDominatesReflexiveAndEntryDominatesAll(t *testing.T) {
	g, blocks := irfixtures.Graph("ABCDEFG", [][2]byte{
		{'A', 'B'}, {'B', 'C'}, {'B', 'F'}, {'C', 'D'},
		{'F', 'E'}, {'F', 'G'}, {'G', 'D'}, {'E', 'D'},
	})
	tree := Build(g)
	for _, b := range "ABCDEFG" {
		bb := blocks[byte(b)]
		if !tree.Dominates(bb, bb) {
			t.Errorf("Dominates(%c, %c) = false, want true", b, b)
		}
		if !tree.Dominates(blocks['A'], bb) {
			t.Errorf("Dominates(A, %c) = false, want true", b)
		}
	}
}

// TestDominatesTransitive checks property 4 (transitivity) on D2,
// where A dominates B dominates C dominates D dominates E.
func TestDominatesTransitive(t *testing.T) {
	g, blocks := irfixtures.Graph("ABCDEFGHIJK", [][2]byte{
		{'A', 'B'}, {'B', 'C'}, {'B', 'J'}, {'J', 'C'}, {'C', 'D'},
		{'D', 'C'}, {'D', 'E'}, {'E', 'F'}, {'F', 'E'}, {'F', 'G'},
		{'G', 'I'}, {'G', 'H'}, {'H', 'B'}, {'I', 'K'},
	})
	tree := Build(g)
	if !tree.Dominates(blocks['A'], blocks['B']) || !tree.Dominates(blocks['B'], blocks['C']) {
		t.Fatal("precondition failed")
	}
	if !tree.Dominates(blocks['A'], blocks['C']) {
		t.Error("want Dominates(A, C) via transitivity")
	}
	if !tree.Dominates(blocks['A'], blocks['K']) {
		t.Error("want Dominates(A, K) via transitivity through the whole chain")
	}
}

// TestIdempotence checks property 9: running Build twice on
// equivalent graphs gives equal children sets.
func TestIdempotence(t *testing.T) {
	edges := [][2]byte{
		{'A', 'B'}, {'B', 'C'}, {'B', 'F'}, {'C', 'D'},
		{'F', 'E'}, {'F', 'G'}, {'G', 'D'}, {'E', 'D'},
	}
	g1, b1 := irfixtures.Graph("ABCDEFG", edges)
	g2, b2 := irfixtures.Graph("ABCDEFG", edges)
	t1, t2 := Build(g1), Build(g2)
	for _, b := range "ABCDEFG" {
		if childNames(t1, b1, byte(b)) == nil && childNames(t2, b2, byte(b)) == nil {
			continue
		}
		c1 := childNames(t1, b1, byte(b))
		c2 := childNames(t2, b2, byte(b))
		if len(c1) != len(c2) {
			t.Fatalf("imm-children(%c) differ across runs: %v vs %v", b, c1, c2)
		}
		for i := range c1 {
			if c1[i] != c2[i] {
				t.Fatalf("imm-children(%c) differ across runs: %v vs %v", b, c1, c2)
			}
		}
	}
}

func TestEmptyGraph(t *testing.T) {
	g := ir.NewGraph()
	tree := Build(g)
	if tree.Dominators(nil) != nil {
		t.Fatal("want nil dominators for nil block on empty graph")
	}
}
