// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loopanalysis finds natural loops in an ir.Graph and
// arranges them into a loop-nesting forest.
package loopanalysis

import (
	"sort"

	"github.com/aclements/go-ircfg/domtree"
	"github.com/aclements/go-ircfg/ir"
)

// Loop is one natural loop: a header block and the set of blocks
// reachable from a back edge's tail without passing back through the
// header.
type Loop struct {
	header   *ir.BasicBlock
	blocks   map[*ir.BasicBlock]bool
	backEdges []*ir.BasicBlock

	parent   *Loop
	subLoops []*Loop
}

// Header returns the loop's header block: the target of every back
// edge in the loop.
func (l *Loop) Header() *ir.BasicBlock { return l.header }

// Contains reports whether b is a member of the loop.
func (l *Loop) Contains(b *ir.BasicBlock) bool { return l.blocks[b] }

// Blocks returns every block in the loop, order unspecified.
func (l *Loop) Blocks() []*ir.BasicBlock {
	out := make([]*ir.BasicBlock, 0, len(l.blocks))
	for b := range l.blocks {
		out = append(out, b)
	}
	return out
}

// BackEdges returns the tails of every back edge targeting this
// loop's header.
func (l *Loop) BackEdges() []*ir.BasicBlock { return l.backEdges }

// Parent returns the loop immediately enclosing l, or nil if l is
// outermost.
func (l *Loop) Parent() *Loop { return l.parent }

// SubLoops returns the loops immediately nested inside l.
func (l *Loop) SubLoops() []*Loop { return l.subLoops }

// Analysis holds every natural loop found in one Graph.
type Analysis struct {
	loops       []*Loop
	headerLoop  map[*ir.BasicBlock]*Loop
}

// Loops returns every loop found, in no particular order.
func (a *Analysis) Loops() []*Loop { return a.loops }

// Analyze builds the dominator tree of g and finds its natural
// loops. A back edge t->h is only a loop if h dominates t (a
// "reducible" back edge); back edges that fail this test — as in an
// irreducible CFG — contribute no Loop. This mirrors the reference
// analyzer, which silently drops them rather than flagging
// irreducibility.
func Analyze(g *ir.Graph) *Analysis {
	tree := domtree.Build(g)

	a := &Analysis{headerLoop: make(map[*ir.BasicBlock]*Loop)}

	for _, be := range ir.FindBackEdges(g) {
		if !tree.Dominates(be.Header, be.Tail) {
			continue
		}

		loop, ok := a.headerLoop[be.Header]
		if !ok {
			loop = &Loop{header: be.Header, blocks: make(map[*ir.BasicBlock]bool)}
			a.loops = append(a.loops, loop)
			a.headerLoop[be.Header] = loop
		}
		loop.backEdges = append(loop.backEdges, be.Tail)

		// Expand the loop body backward from the back edge's
		// tail, stopping at the header: every block that can
		// reach the tail without first leaving through the
		// header is part of the loop.
		worklist := []*ir.BasicBlock{be.Tail}
		loop.blocks[be.Tail] = true
		for len(worklist) > 0 {
			cur := worklist[len(worklist)-1]
			worklist = worklist[:len(worklist)-1]
			for _, pred := range cur.Preds() {
				if pred == be.Header || loop.blocks[pred] {
					continue
				}
				loop.blocks[pred] = true
				worklist = append(worklist, pred)
			}
		}
		loop.blocks[be.Header] = true
	}

	a.buildLoopTree()
	return a
}

// buildLoopTree nests loops by descending body size: the smallest
// loop whose header lies inside a candidate parent, with no other
// loop strictly between them, becomes that parent's sub-loop.
func (a *Analysis) buildLoopTree() {
	ordered := append([]*Loop(nil), a.loops...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].blocks) > len(ordered[j].blocks)
	})

	for _, loop := range ordered {
		for _, parent := range ordered {
			if parent == loop || !parent.Contains(loop.header) {
				continue
			}

			validParent := true
			for _, other := range ordered {
				if other == parent || other == loop {
					continue
				}
				if parent.Contains(other.header) && other.Contains(loop.header) {
					validParent = false
					break
				}
			}

			if validParent {
				loop.parent = parent
				parent.subLoops = append(parent.subLoops, loop)
				break
			}
		}
	}
}
