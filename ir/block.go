// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import "fmt"

// BasicBlock is a labeled node in the CFG: an ordered sequence of
// instructions with at most one terminator, which if present must be
// the last instruction.
type BasicBlock struct {
	id int

	preds []*BasicBlock
	succs []*BasicBlock

	head, tail *Instruction

	graph *Graph
}

// ID is a stable, non-negative integer, unique within the owning
// Graph and assigned at insertion.
func (b *BasicBlock) ID() int { return b.id }

// Graph returns the owning graph.
func (b *BasicBlock) Graph() *Graph { return b.graph }

// Preds returns the ordered predecessor list.
func (b *BasicBlock) Preds() []*BasicBlock { return b.preds }

// Succs returns the ordered successor list.
func (b *BasicBlock) Succs() []*BasicBlock { return b.succs }

// Head returns the first instruction in the block, or nil if empty.
func (b *BasicBlock) Head() *Instruction { return b.head }

// Tail returns the last instruction in the block, or nil if empty.
func (b *BasicBlock) Tail() *Instruction { return b.tail }

// Instructions returns the block's instructions in order. This
// allocates; hot callers should walk Head()/Next() directly instead.
func (b *BasicBlock) Instructions() []*Instruction {
	var out []*Instruction
	for i := b.head; i != nil; i = i.next {
		out = append(out, i)
	}
	return out
}

// Terminator returns the block's terminating instruction (a jump,
// conditional branch, or return), or nil if the block has none.
func (b *BasicBlock) Terminator() *Instruction {
	if b.tail != nil && b.tail.IsTerminator() {
		return b.tail
	}
	return nil
}

// Push appends instr to the tail of the block's instruction list. It
// panics if the block already ends in a terminator: a terminator must
// be the last instruction in its block.
func (b *BasicBlock) Push(instr *Instruction) {
	if b.tail != nil && b.tail.IsTerminator() {
		panic(fmt.Sprintf("ir: cannot push instruction %d after terminator %d in block %d",
			instrID(instr), b.tail.id, b.id))
	}

	instr.SetParent(b)
	if b.tail == nil {
		b.head = instr
		b.tail = instr
		return
	}
	b.tail.next = instr
	instr.prev = b.tail
	b.tail = instr
}

func instrID(i *Instruction) int {
	if i == nil {
		return -1
	}
	return i.id
}

// AddSuccessor appends b2 to b's successor list. It does not
// deduplicate and does not add the reverse predecessor edge: callers
// (normally Builder) are responsible for keeping succ/pred lists
// symmetric.
func (b *BasicBlock) AddSuccessor(b2 *BasicBlock) {
	b.succs = append(b.succs, b2)
}

// AddPredecessor appends b2 to b's predecessor list. See AddSuccessor
// for the symmetry contract.
func (b *BasicBlock) AddPredecessor(b2 *BasicBlock) {
	b.preds = append(b.preds, b2)
}
