// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import digraph "github.com/aclements/go-ircfg/internal/graph"

// blockGraph adapts a *Graph's blocks, indexed by their dense ids, to
// the digraph.BiGraph interface expected by the generic traversal
// algorithms in internal/graph — the same "wrap the arena as an
// int-indexed graph" pattern the teacher's ssa package uses to feed
// asm.BasicBlock into its dominator computation.
type blockGraph struct {
	g *Graph
}

func (bg blockGraph) NumNodes() int { return len(bg.g.blocks) }

func (bg blockGraph) Out(i int) []int {
	succs := bg.g.blocks[i].succs
	out := make([]int, len(succs))
	for j, s := range succs {
		out[j] = s.id
	}
	return out
}

func (bg blockGraph) In(i int) []int {
	preds := bg.g.blocks[i].preds
	out := make([]int, len(preds))
	for j, p := range preds {
		out[j] = p.id
	}
	return out
}

func blocksFromIDs(g *Graph, ids []int) []*BasicBlock {
	out := make([]*BasicBlock, len(ids))
	for i, id := range ids {
		out[i] = g.blocks[id]
	}
	return out
}

// DFS returns the blocks of g reachable from the entry block, visited
// in pre-order. An empty Graph yields an empty result.
func DFS(g *Graph) []*BasicBlock {
	if g.Entry() == nil {
		return nil
	}
	ids := digraph.PreOrder(blockGraph{g}, g.Entry().id)
	return blocksFromIDs(g, ids)
}

// DFSExcluding runs DFS from the entry block as though excluded did
// not exist: the walk never visits or crosses it. This is the "run
// DFS pretending block X doesn't exist" primitive domtree's reference
// algorithm uses to test, for every candidate dominator, what becomes
// unreachable once it's removed.
func DFSExcluding(g *Graph, excluded *BasicBlock) []*BasicBlock {
	if g.Entry() == nil {
		return nil
	}
	visited := map[int]bool{excluded.id: true}
	if g.Entry().id == excluded.id {
		return nil
	}
	ids := digraph.PreOrderFrom(blockGraph{g}, g.Entry().id, visited)
	return blocksFromIDs(g, ids)
}

// RPO returns the blocks of g reachable from the entry block, in
// reverse of the pre-order DFS enumeration. This is a reverse
// post-order only in the loose sense used by the original
// implementation this is ported from (plain DFS, then reversed) — it
// is not the standard reverse-postorder defined via DFS finish times.
func RPO(g *Graph) []*BasicBlock {
	order := DFS(g)
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// AsDigraph exposes g's block successor/predecessor structure as a
// digraph.BiGraph, for generic consumers outside this package (such
// as irdump's Graphviz rendering) that only need node-index
// connectivity, not instruction content.
func AsDigraph(g *Graph) digraph.BiGraph {
	return blockGraph{g}
}

// BackEdge is a DFS back edge: Tail -> Header, where Header is an
// ancestor of Tail in the DFS tree rooted at the entry block.
type BackEdge struct {
	Header *BasicBlock
	Tail   *BasicBlock
}

// FindBackEdges runs a three-color DFS from the entry block and
// returns every back edge it discovers. Results are deterministic for
// a fixed successor iteration order.
func FindBackEdges(g *Graph) []BackEdge {
	if g.Entry() == nil {
		return nil
	}
	raw := digraph.BackEdges(blockGraph{g}, g.Entry().id)
	out := make([]BackEdge, len(raw))
	for i, e := range raw {
		out[i] = BackEdge{Header: g.blocks[e.Header], Tail: g.blocks[e.Tail]}
	}
	return out
}
