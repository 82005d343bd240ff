// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ir is the in-memory intermediate representation of a
// single procedure: a control-flow graph of basic blocks containing
// SSA-style instructions. It is the data model that domtree and
// loopanalysis operate on.
package ir

import "fmt"

// Opcode is the operation an Instruction performs. The set is
// closed: every Instruction falls into exactly one of these cases.
type Opcode uint8

const (
	OpUndefined Opcode = iota
	OpParam
	OpConst
	OpPhi
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpAnd
	OpCmp
	OpJmp
	OpJa
	OpJae
	OpJe
	OpRet
)

var opcodeNames = [...]string{
	OpUndefined: "undefined",
	OpParam:     "param",
	OpConst:     "const",
	OpPhi:       "phi",
	OpAdd:       "add",
	OpSub:       "sub",
	OpMul:       "mul",
	OpDiv:       "div",
	OpAnd:       "and",
	OpCmp:       "cmp",
	OpJmp:       "jmp",
	OpJa:        "ja",
	OpJae:       "jae",
	OpJe:        "je",
	OpRet:       "ret",
}

func (op Opcode) String() string {
	if int(op) < len(opcodeNames) {
		return opcodeNames[op]
	}
	return fmt.Sprintf("Opcode(%d)", uint8(op))
}

// DataType is the result type of an Instruction.
type DataType uint8

const (
	TypeUndefined DataType = iota
	TypeI8
	TypeI16
	TypeI32
	TypeI64
	TypeU8
	TypeU16
	TypeU32
	TypeU64
	TypeVoid
)

var dataTypeNames = [...]string{
	TypeUndefined: "undefined",
	TypeI8:        "i8",
	TypeI16:       "i16",
	TypeI32:       "i32",
	TypeI64:       "i64",
	TypeU8:        "u8",
	TypeU16:       "u16",
	TypeU32:       "u32",
	TypeU64:       "u64",
	TypeVoid:      "void",
}

func (t DataType) String() string {
	if int(t) < len(dataTypeNames) {
		return dataTypeNames[t]
	}
	return fmt.Sprintf("DataType(%d)", uint8(t))
}

// Instruction is a single SSA value or control transfer. The common
// fields below are shared by every opcode; variant-specific data
// (argument index, constant payload, jump targets...) lives in the
// fields after them, following spec's "tagged variant instead of a
// polymorphic hierarchy" redesign.
type Instruction struct {
	id     int
	op     Opcode
	typ    DataType
	inputs []*Instruction
	users  []*Instruction

	prev, next *Instruction
	block      *BasicBlock

	// ParamIndex is valid for OpParam: the index of the argument
	// this value reads.
	ParamIndex uint32

	// ConstValue and ConstSigned are valid for OpConst: the raw
	// 64-bit payload and whether it should be read as a signed
	// value.
	ConstValue  uint64
	ConstSigned bool

	// PhiPreds holds, for OpPhi, the predecessor block
	// corresponding to each entry of inputs — PhiPreds[i] is the
	// block inputs[i] flows in from.
	PhiPreds []*BasicBlock

	// JmpTarget is valid for OpJmp.
	JmpTarget *BasicBlock

	// TrueTarget and FalseTarget are valid for the conditional
	// branch opcodes (OpJa, OpJae, OpJe).
	TrueTarget, FalseTarget *BasicBlock
}

// ID is a stable, non-negative integer, unique within the owning
// Graph and assigned in insertion order.
func (i *Instruction) ID() int { return i.id }

// Opcode returns the operation this instruction performs.
func (i *Instruction) Opcode() Opcode { return i.op }

// Type returns the instruction's result type.
func (i *Instruction) Type() DataType { return i.typ }

// SetType overrides the result type given at construction.
func (i *Instruction) SetType(t DataType) { i.typ = t }

// Parent returns the block this instruction belongs to, or nil if it
// hasn't been inserted into one yet.
func (i *Instruction) Parent() *BasicBlock { return i.block }

// SetParent sets the owning block. Callers outside this package
// should not normally need this: BasicBlock.Push calls it.
func (i *Instruction) SetParent(b *BasicBlock) { i.block = b }

// Prev and Next are the intrusive links within the owning block's
// instruction list.
func (i *Instruction) Prev() *Instruction { return i.prev }
func (i *Instruction) Next() *Instruction { return i.next }

// Inputs returns the ordered operand list.
func (i *Instruction) Inputs() []*Instruction { return i.inputs }

// Users returns the (unordered) set of instructions that use this
// value as an operand.
func (i *Instruction) Users() []*Instruction { return i.users }

// AddOperand appends v to i's operand list and records i as one of
// v's users, preserving the users/operands symmetry invariant.
func (i *Instruction) AddOperand(v *Instruction) {
	i.inputs = append(i.inputs, v)
	v.addUser(i)
}

// SetOperands replaces i's operand list wholesale, updating user
// lists on both the removed and the added edges so the symmetry
// invariant (u ∈ users(v) ⇔ v ∈ operands(u)) keeps holding.
func (i *Instruction) SetOperands(vs []*Instruction) {
	for _, old := range i.inputs {
		old.removeUser(i)
	}
	i.inputs = append([]*Instruction(nil), vs...)
	for _, v := range i.inputs {
		v.addUser(i)
	}
}

func (i *Instruction) addUser(u *Instruction) {
	i.users = append(i.users, u)
}

func (i *Instruction) removeUser(u *Instruction) {
	for idx, x := range i.users {
		if x == u {
			i.users = append(i.users[:idx], i.users[idx+1:]...)
			return
		}
	}
}

// IsPhi reports whether this is a PHI instruction.
func (i *Instruction) IsPhi() bool { return i.op == OpPhi }

// IsJmp reports whether this is an unconditional jump.
func (i *Instruction) IsJmp() bool { return i.op == OpJmp }

// IsConditionalBranch reports whether this is one of the three
// conditional jump opcodes.
func (i *Instruction) IsConditionalBranch() bool {
	switch i.op {
	case OpJa, OpJae, OpJe:
		return true
	}
	return false
}

// IsTerminator reports whether this instruction ends a basic block:
// jumps, conditional branches, and returns.
func (i *Instruction) IsTerminator() bool {
	return i.IsJmp() || i.IsConditionalBranch() || i.op == OpRet
}

// NewParam creates a PARAM instruction reading the argNum'th
// argument.
func NewParam(typ DataType, argNum uint32) *Instruction {
	return &Instruction{op: OpParam, typ: typ, ParamIndex: argNum}
}

// NewConst creates a CONST instruction holding value, interpreted per
// signed.
func NewConst(typ DataType, value uint64, signed bool) *Instruction {
	return &Instruction{op: OpConst, typ: typ, ConstValue: value, ConstSigned: signed}
}

// NewPhi creates an empty PHI instruction. Inputs are added later
// with AddPhiInput, one per predecessor of the owning block, in
// predecessor order.
func NewPhi(typ DataType) *Instruction {
	return &Instruction{op: OpPhi, typ: typ}
}

// AddPhiInput appends one ⟨value, predecessor⟩ pair to a PHI
// instruction's operand list.
func (i *Instruction) AddPhiInput(value *Instruction, pred *BasicBlock) {
	i.AddOperand(value)
	i.PhiPreds = append(i.PhiPreds, pred)
}

func newArith(op Opcode, typ DataType, a, b *Instruction) *Instruction {
	instr := &Instruction{op: op, typ: typ}
	instr.AddOperand(a)
	instr.AddOperand(b)
	return instr
}

// NewAdd creates an ADD instruction computing a+b.
func NewAdd(typ DataType, a, b *Instruction) *Instruction { return newArith(OpAdd, typ, a, b) }

// NewSub creates a SUB instruction computing a-b.
func NewSub(typ DataType, a, b *Instruction) *Instruction { return newArith(OpSub, typ, a, b) }

// NewMul creates a MUL instruction computing a*b.
func NewMul(typ DataType, a, b *Instruction) *Instruction { return newArith(OpMul, typ, a, b) }

// NewDiv creates a DIV instruction computing a/b.
func NewDiv(typ DataType, a, b *Instruction) *Instruction { return newArith(OpDiv, typ, a, b) }

// NewAnd creates an AND instruction computing a&b. The original
// implementation this is ported from constructed its AND variant
// with the ADD opcode; that bug is fixed here.
func NewAnd(typ DataType, a, b *Instruction) *Instruction { return newArith(OpAnd, typ, a, b) }

// NewCmp creates a CMP instruction comparing a and b. Its result type
// is always U8, matching the original implementation's CmpInstr.
func NewCmp(a, b *Instruction) *Instruction { return newArith(OpCmp, TypeU8, a, b) }

// NewJmp creates an unconditional jump to target.
func NewJmp(target *BasicBlock) *Instruction {
	return &Instruction{op: OpJmp, typ: TypeVoid, JmpTarget: target}
}

func newCjmp(op Opcode, cond *Instruction, ifTrue, ifFalse *BasicBlock) *Instruction {
	instr := &Instruction{op: op, typ: TypeVoid, TrueTarget: ifTrue, FalseTarget: ifFalse}
	instr.AddOperand(cond)
	return instr
}

// NewJa creates a conditional "jump if above" branch.
func NewJa(cond *Instruction, ifTrue, ifFalse *BasicBlock) *Instruction {
	return newCjmp(OpJa, cond, ifTrue, ifFalse)
}

// NewJae creates a conditional "jump if above or equal" branch.
func NewJae(cond *Instruction, ifTrue, ifFalse *BasicBlock) *Instruction {
	return newCjmp(OpJae, cond, ifTrue, ifFalse)
}

// NewJe creates a conditional "jump if equal" branch.
func NewJe(cond *Instruction, ifTrue, ifFalse *BasicBlock) *Instruction {
	return newCjmp(OpJe, cond, ifTrue, ifFalse)
}

// NewRet creates a RET instruction returning value.
func NewRet(typ DataType, value *Instruction) *Instruction {
	instr := &Instruction{op: OpRet, typ: typ}
	instr.AddOperand(value)
	return instr
}
