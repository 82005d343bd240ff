// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

// Builder creates blocks and instructions in a Graph one at a time
// and wires CFG successor/predecessor edges from terminator
// instructions as they're appended, mirroring the original
// implementation's IrBuilder.
type Builder struct {
	graph   *Graph
	current *BasicBlock
}

// NewBuilder creates a Builder that populates graph.
func NewBuilder(graph *Graph) *Builder {
	return &Builder{graph: graph}
}

// Graph returns the Graph this Builder populates.
func (b *Builder) Graph() *Graph { return b.graph }

// CreateBlock creates a new, empty BasicBlock owned by the Builder's
// Graph. The first block ever created becomes the Graph's entry.
func (b *Builder) CreateBlock() *BasicBlock {
	bb := &BasicBlock{}
	b.graph.AddBlock(bb)
	return bb
}

// SetCurrentBlock selects the block subsequent Create* calls append
// to.
func (b *Builder) SetCurrentBlock(bb *BasicBlock) {
	b.current = bb
}

// CurrentBlock returns the block Create* calls currently append to.
func (b *Builder) CurrentBlock() *BasicBlock { return b.current }

// insert registers instr with the Graph, appends it to the current
// block, and — if it's a terminator — wires the CFG edges it
// implies.
func (b *Builder) insert(instr *Instruction) *Instruction {
	b.graph.AddInstruction(instr)
	b.current.Push(instr)

	switch instr.op {
	case OpJmp:
		b.addEdge(b.current, instr.JmpTarget)
	case OpJa, OpJae, OpJe:
		b.addEdge(b.current, instr.TrueTarget)
		b.addEdge(b.current, instr.FalseTarget)
	}

	return instr
}

func (b *Builder) addEdge(from, to *BasicBlock) {
	from.AddSuccessor(to)
	to.AddPredecessor(from)
}

// CreateParam appends a PARAM instruction to the current block.
func (b *Builder) CreateParam(typ DataType, argNum uint32) *Instruction {
	return b.insert(NewParam(typ, argNum))
}

// CreateConst appends a CONST instruction to the current block.
func (b *Builder) CreateConst(typ DataType, value uint64, signed bool) *Instruction {
	return b.insert(NewConst(typ, value, signed))
}

// CreatePhi appends an empty PHI instruction to the current block.
// Use Instruction.AddPhiInput to fill in its operands afterward.
func (b *Builder) CreatePhi(typ DataType) *Instruction {
	return b.insert(NewPhi(typ))
}

// CreateAdd appends an ADD instruction to the current block.
func (b *Builder) CreateAdd(typ DataType, a, x *Instruction) *Instruction {
	return b.insert(NewAdd(typ, a, x))
}

// CreateSub appends a SUB instruction to the current block.
func (b *Builder) CreateSub(typ DataType, a, x *Instruction) *Instruction {
	return b.insert(NewSub(typ, a, x))
}

// CreateMul appends a MUL instruction to the current block.
func (b *Builder) CreateMul(typ DataType, a, x *Instruction) *Instruction {
	return b.insert(NewMul(typ, a, x))
}

// CreateDiv appends a DIV instruction to the current block.
func (b *Builder) CreateDiv(typ DataType, a, x *Instruction) *Instruction {
	return b.insert(NewDiv(typ, a, x))
}

// CreateAnd appends an AND instruction to the current block.
func (b *Builder) CreateAnd(typ DataType, a, x *Instruction) *Instruction {
	return b.insert(NewAnd(typ, a, x))
}

// CreateCmp appends a CMP instruction to the current block.
func (b *Builder) CreateCmp(a, x *Instruction) *Instruction {
	return b.insert(NewCmp(a, x))
}

// CreateJmp appends an unconditional JMP to target and wires the
// successor/predecessor edge between the current block and target.
func (b *Builder) CreateJmp(target *BasicBlock) *Instruction {
	return b.insert(NewJmp(target))
}

// CreateJa appends a JA branch and wires both successor edges.
func (b *Builder) CreateJa(cond *Instruction, ifTrue, ifFalse *BasicBlock) *Instruction {
	return b.insert(NewJa(cond, ifTrue, ifFalse))
}

// CreateJae appends a JAE branch and wires both successor edges.
func (b *Builder) CreateJae(cond *Instruction, ifTrue, ifFalse *BasicBlock) *Instruction {
	return b.insert(NewJae(cond, ifTrue, ifFalse))
}

// CreateJe appends a JE branch and wires both successor edges.
func (b *Builder) CreateJe(cond *Instruction, ifTrue, ifFalse *BasicBlock) *Instruction {
	return b.insert(NewJe(cond, ifTrue, ifFalse))
}

// CreateRet appends a RET instruction to the current block.
func (b *Builder) CreateRet(typ DataType, value *Instruction) *Instruction {
	return b.insert(NewRet(typ, value))
}
