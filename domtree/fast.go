// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domtree

import (
	digraph "github.com/aclements/go-ircfg/internal/graph"
	"github.com/aclements/go-ircfg/ir"
)

// BuildFast computes the same dominator relation as Build, but using
// the Cooper-Harvey-Kennedy iterative dataflow algorithm
// (internal/graph.IDom) instead of the O(V^2) brute-force reference
// algorithm. Per spec.md §9, this is purely a complexity trade-off for
// large procedures: the public contract (Dominates/Dominators/
// Dominated/ImmediateChildren) is identical.
func BuildFast(g *ir.Graph) *Tree {
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

	idom := digraph.IDom(ir.AsDigraph(g), entry.ID())
	domTree := digraph.Dom(idom)

	// Walk up each reachable node's idom chain to fill in the full
	// (non-immediate) dominator/dominated sets BuildFast promises to
	// match Build on.
	for id := 0; id < domTree.NumNodes(); id++ {
		if id != entry.ID() && idom[id] == -1 {
			continue // unreachable
		}
		b := g.Block(id)
		t.dominators[b] = []*ir.BasicBlock{b}
		t.dominatorSet[b] = map[*ir.BasicBlock]bool{b: true}
		for p := idom[id]; p != -1; p = idom[p] {
			pb := g.Block(p)
			t.dominators[b] = append(t.dominators[b], pb)
			t.dominatorSet[b][pb] = true
		}
	}

	for b, doms := range t.dominatorSet {
		for d := range doms {
			if d != b {
				t.dominated[d] = append(t.dominated[d], b)
			}
		}
	}

	for id := 0; id < domTree.NumNodes(); id++ {
		if id != entry.ID() && idom[id] == -1 {
			continue
		}
		b := g.Block(id)
		for _, c := range domTree.Children(id) {
			t.children[b] = append(t.children[b], g.Block(c))
		}
	}

	return t
}
