// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package irdump renders an ir.Graph and loopanalysis.Analysis as the
// stable, line-oriented text formats described in the IR's external
// interface: a per-block instruction dump for the CFG, and a
// human-readable report for loop analysis.
package irdump

import (
	"fmt"
	"strconv"
	"strings"

	digraph "github.com/aclements/go-ircfg/internal/graph"
	"github.com/aclements/go-ircfg/ir"
	"github.com/aclements/go-ircfg/loopanalysis"
)

// Graph renders g in the stable "BB_<id>:" / "<instr_id>. <type>
// <opcode> <operands>" text format.
func Graph(g *ir.Graph) string {
	var sb strings.Builder
	for _, b := range g.Blocks() {
		fmt.Fprintf(&sb, "BB_%d:\n", b.ID())
		for _, instr := range b.Instructions() {
			fmt.Fprintf(&sb, "%d. %s %s %s\n", instr.ID(), instr.Type(), instr.Opcode(), operands(instr))
		}
	}
	return sb.String()
}

// operands renders the operand list for instr following the
// variant-specific rule from the external interface spec: the
// original implementation this is ported from switched on a class
// hierarchy (ParameterInstr::Dump, ConstantInstr::Dump, ...); here
// it's a single switch on Opcode.
func operands(instr *ir.Instruction) string {
	switch instr.Opcode() {
	case ir.OpParam:
		return strconv.FormatUint(uint64(instr.ParamIndex), 10)

	case ir.OpConst:
		if instr.ConstSigned {
			return strconv.FormatInt(int64(instr.ConstValue), 10)
		}
		return strconv.FormatUint(instr.ConstValue, 10)

	case ir.OpPhi:
		parts := make([]string, len(instr.Inputs()))
		for i, in := range instr.Inputs() {
			parts[i] = fmt.Sprintf("v%d:BB_%d", in.ID(), instr.PhiPreds[i].ID())
		}
		return strings.Join(parts, ", ")

	case ir.OpAdd, ir.OpSub, ir.OpMul, ir.OpDiv, ir.OpAnd, ir.OpCmp:
		parts := make([]string, len(instr.Inputs()))
		for i, in := range instr.Inputs() {
			parts[i] = fmt.Sprintf("v%d", in.ID())
		}
		return strings.Join(parts, ", ")

	case ir.OpJmp:
		return fmt.Sprintf("BB_%d", instr.JmpTarget.ID())

	case ir.OpJa, ir.OpJae, ir.OpJe:
		cond := instr.Inputs()[0]
		return fmt.Sprintf("v%d, BB_%d, BB_%d", cond.ID(), instr.TrueTarget.ID(), instr.FalseTarget.ID())

	case ir.OpRet:
		return fmt.Sprintf("v%d", instr.Inputs()[0].ID())

	default:
		return ""
	}
}

// Loops renders a loopanalysis.Analysis as a human-readable report:
// one section per loop giving its header, block list, back edges,
// parent, and sub-loops. Not machine-consumed, and so not held to the
// same format stability as Graph.
func Loops(a *loopanalysis.Analysis) string {
	var sb strings.Builder
	sb.WriteString("Loop Analyser Results:\n")

	for _, loop := range a.Loops() {
		fmt.Fprintf(&sb, "Header BB_%d\n", loop.Header().ID())

		sb.WriteString("  Blocks: ")
		for _, b := range sortedBlocks(loop.Blocks()) {
			fmt.Fprintf(&sb, "BB_%d ", b.ID())
		}
		sb.WriteString("\n")

		sb.WriteString("  Back edges: ")
		for _, t := range loop.BackEdges() {
			fmt.Fprintf(&sb, "BB_%d->BB_%d ", t.ID(), loop.Header().ID())
		}
		sb.WriteString("\n")

		if p := loop.Parent(); p != nil {
			fmt.Fprintf(&sb, "  Parent loop header: BB_%d\n", p.Header().ID())
		}

		if subs := loop.SubLoops(); len(subs) > 0 {
			sb.WriteString("  Sub-loops: ")
			for _, s := range subs {
				fmt.Fprintf(&sb, "BB_%d ", s.Header().ID())
			}
			sb.WriteString("\n")
		}
		sb.WriteString("-----------------\n")
	}

	if len(a.Loops()) == 0 {
		sb.WriteString("No loops found\n")
	}

	return sb.String()
}

// DOT renders g's CFG shape (blocks and edges only, no instruction
// content) as Graphviz dot, for visualizing a procedure too large to
// read comfortably as text.
func DOT(g *ir.Graph) string {
	var sb strings.Builder
	d := digraph.Dot{
		Name:  "cfg",
		Label: func(node int) string { return fmt.Sprintf("BB_%d", node) },
	}
	// Fprint only fails if the Writer does; strings.Builder never
	// returns an error.
	_ = d.Fprint(ir.AsDigraph(g), &sb)
	return sb.String()
}

func sortedBlocks(bs []*ir.BasicBlock) []*ir.BasicBlock {
	out := append([]*ir.BasicBlock(nil), bs...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].ID() > out[j].ID(); j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
