// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package domtree computes the dominator tree of an *ir.Graph: for
// each reachable block, which blocks dominate it, which blocks it
// dominates, and its immediate children in the dominator tree.
package domtree

import "github.com/aclements/go-ircfg/ir"

// Tree is the dominator relation over the blocks of one ir.Graph,
// computed by Build. It becomes stale if the Graph is mutated after
// Build runs.
type Tree struct {
	dominators map[*ir.BasicBlock][]*ir.BasicBlock
	dominatorSet map[*ir.BasicBlock]map[*ir.BasicBlock]bool

	dominated map[*ir.BasicBlock][]*ir.BasicBlock

	children map[*ir.BasicBlock][]*ir.BasicBlock
}

// Build computes the dominator tree of g. The reference algorithm
// (see spec §4.5) is brute force but simple: for every candidate
// dominator d, it asks "what becomes unreachable if d didn't exist?"
// via ir.DFSExcluding, and everything that becomes unreachable is
// dominated by d. An empty Graph yields an empty Tree, on which
// Dominates is false for every pair of distinct blocks.
func Build(g *ir.Graph) *Tree {
	t := &Tree{
		dominators:   make(map[*ir.BasicBlock][]*ir.BasicBlock),
		dominatorSet: make(map[*ir.BasicBlock]map[*ir.BasicBlock]bool),
		dominated:    make(map[*ir.BasicBlock][]*ir.BasicBlock),
		children:     make(map[*ir.BasicBlock][]*ir.BasicBlock),
	}

	entry := g.Entry()
	if entry == nil {
		return t
	}

	r := ir.RPO(g)

	// Step 2: entry dominates every reachable block (itself
	// included); every block's dominator list starts as {entry}.
	t.dominated[entry] = append([]*ir.BasicBlock(nil), r...)
	for _, b := range r {
		t.dominators[b] = []*ir.BasicBlock{entry}
		t.dominatorSet[b] = map[*ir.BasicBlock]bool{entry: true}
	}

	// Step 3: for each candidate dominator, find what it alone is
	// responsible for keeping reachable.
	for _, d := range r {
		reached := make(map[*ir.BasicBlock]bool)
		for _, b := range ir.DFSExcluding(g, d) {
			reached[b] = true
		}

		for _, b := range r {
			if b == d || reached[b] {
				continue
			}
			if !dominatedContains(t, d, b) {
				t.dominated[d] = append(t.dominated[d], b)
			}
			if !t.dominatorSet[b][d] {
				t.dominatorSet[b][d] = true
				t.dominators[b] = append(t.dominators[b], d)
			}
		}
	}

	// Step 4: a dominated block x is an immediate child of b iff
	// every dominator of x other than b also dominates b —
	// equivalently, no other dominator of x sits strictly between
	// b and x.
	for _, b := range r {
		for _, x := range t.dominated[b] {
			if x == b {
				continue // the entry's dominated list includes itself
			}
			isChild := true
			for _, y := range t.dominators[x] {
				if y == b {
					continue
				}
				if !t.Dominates(y, b) {
					isChild = false
					break
				}
			}
			if isChild {
				t.children[b] = append(t.children[b], x)
			}
		}
	}

	return t
}

func dominatedContains(t *Tree, d, b *ir.BasicBlock) bool {
	for _, x := range t.dominated[d] {
		if x == b {
			return true
		}
	}
	return false
}

// Dominates reports whether a dominates b: every path from the entry
// to b passes through a. Every block dominates itself.
func (t *Tree) Dominates(a, b *ir.BasicBlock) bool {
	if a == b {
		return true
	}
	return t.dominatorSet[b][a]
}

// Dominators returns the blocks that dominate b (always including
// the entry; may or may not include b itself — callers that need a
// reflexive answer should use Dominates(b, b), which always holds).
func (t *Tree) Dominators(b *ir.BasicBlock) []*ir.BasicBlock {
	return t.dominators[b]
}

// Dominated returns the blocks b dominates.
func (t *Tree) Dominated(b *ir.BasicBlock) []*ir.BasicBlock {
	return t.dominated[b]
}

// ImmediateChildren returns b's immediate children in the dominator
// tree: blocks whose immediate dominator is b. The order is stable
// across repeated calls but otherwise unspecified.
func (t *Tree) ImmediateChildren(b *ir.BasicBlock) []*ir.BasicBlock {
	return t.children[b]
}
