// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import "github.com/google/uuid"

// Graph owns every block and instruction of one procedure. Ids are
// dense, assigned in insertion order, and never reused. Every
// cross-reference into a Graph (an operand, a user, a CFG edge, a
// parent pointer) is a non-owning observation whose lifetime must not
// exceed the Graph's — mirroring the "arena + indices" structure the
// original C++ implementation used unique_ptr vectors for.
type Graph struct {
	blocks []*BasicBlock
	instrs []*Instruction

	// RunID is an opaque correlation token, unrelated to analysis
	// semantics: domtree and loopanalysis never read it. It exists
	// so cmd/irtool can tag its log lines for a given run.
	RunID string
}

// NewGraph creates an empty Graph.
func NewGraph() *Graph {
	return &Graph{RunID: uuid.New().String()}
}

// AddBlock assigns b a dense id and records the Graph as its owner.
func (g *Graph) AddBlock(b *BasicBlock) {
	b.id = len(g.blocks)
	b.graph = g
	g.blocks = append(g.blocks, b)
}

// AddInstruction assigns i a dense id and records it as owned by g.
// This only tracks the instruction for id assignment/lifetime; it
// does not insert i into any block (use BasicBlock.Push for that).
func (g *Graph) AddInstruction(i *Instruction) {
	i.id = len(g.instrs)
	g.instrs = append(g.instrs, i)
}

// Entry returns the entry block: by convention, the first block
// added to the Graph. It returns nil for an empty Graph.
func (g *Graph) Entry() *BasicBlock {
	if len(g.blocks) == 0 {
		return nil
	}
	return g.blocks[0]
}

// NumBlocks returns the number of blocks in the Graph.
func (g *Graph) NumBlocks() int { return len(g.blocks) }

// Block returns the block with the given id.
func (g *Graph) Block(id int) *BasicBlock { return g.blocks[id] }

// Blocks returns every block in the Graph, in insertion order.
func (g *Graph) Blocks() []*BasicBlock { return g.blocks }

// NumInstructions returns the number of instructions in the Graph.
func (g *Graph) NumInstructions() int { return len(g.instrs) }

// Instruction returns the instruction with the given id.
func (g *Graph) Instruction(id int) *Instruction { return g.instrs[id] }
