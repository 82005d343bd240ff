// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aclements/go-ircfg/ir"
)

// procJSON is the on-disk shape of the one input format irtool
// accepts — a convenience for driving the analyzers from the command
// line, not part of the ir package's contract.
type procJSON struct {
	Blocks []struct {
		ID int `json:"id"`
	} `json:"blocks"`
	Instructions []struct {
		ID    int    `json:"id"`
		Block int    `json:"block"`
		Op    string `json:"op"`
		Type  string `json:"type"`
		Arg   uint32 `json:"arg"`
		Value uint64 `json:"value"`
		Signed bool   `json:"signed"`
		Target int   `json:"target"`
		TrueTarget  int `json:"true_target"`
		FalseTarget int `json:"false_target"`
		Operands []int `json:"operands"`
		RetValue int   `json:"ret_value"`
	} `json:"instructions"`
}

var dataTypes = map[string]ir.DataType{
	"i8": ir.TypeI8, "i16": ir.TypeI16, "i32": ir.TypeI32, "i64": ir.TypeI64,
	"u8": ir.TypeU8, "u16": ir.TypeU16, "u32": ir.TypeU32, "u64": ir.TypeU64,
	"void": ir.TypeVoid, "undefined": ir.TypeUndefined,
}

// loadGraph reads irtool's JSON procedure format from r and builds an
// ir.Graph from it via ir.Builder, in two passes: first every block
// (so forward jump targets resolve), then every instruction in the
// order it is listed (so an operand must be listed before its user).
func loadGraph(r io.Reader) (*ir.Graph, error) {
	var doc procJSON
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("irtool: decoding procedure JSON: %w", err)
	}

	g := ir.NewGraph()
	b := ir.NewBuilder(g)

	blocksByID := make(map[int]*ir.BasicBlock, len(doc.Blocks))
	for _, jb := range doc.Blocks {
		blocksByID[jb.ID] = b.CreateBlock()
	}

	instrsByID := make(map[int]*ir.Instruction, len(doc.Instructions))
	for _, ji := range doc.Instructions {
		block, ok := blocksByID[ji.Block]
		if !ok {
			return nil, fmt.Errorf("irtool: instruction %d references unknown block %d", ji.ID, ji.Block)
		}
		b.SetCurrentBlock(block)

		typ := dataTypes[ji.Type]

		var instr *ir.Instruction
		switch ji.Op {
		case "param":
			instr = b.CreateParam(typ, ji.Arg)
		case "const":
			instr = b.CreateConst(typ, ji.Value, ji.Signed)
		case "add", "sub", "mul", "div", "and", "cmp":
			if len(ji.Operands) != 2 {
				return nil, fmt.Errorf("irtool: %s instruction %d needs exactly 2 operands", ji.Op, ji.ID)
			}
			a, b2 := instrsByID[ji.Operands[0]], instrsByID[ji.Operands[1]]
			switch ji.Op {
			case "add":
				instr = b.CreateAdd(typ, a, b2)
			case "sub":
				instr = b.CreateSub(typ, a, b2)
			case "mul":
				instr = b.CreateMul(typ, a, b2)
			case "div":
				instr = b.CreateDiv(typ, a, b2)
			case "and":
				instr = b.CreateAnd(typ, a, b2)
			case "cmp":
				instr = b.CreateCmp(a, b2)
			}
		case "jmp":
			instr = b.CreateJmp(blocksByID[ji.Target])
		case "ja", "jae", "je":
			if len(ji.Operands) != 1 {
				return nil, fmt.Errorf("irtool: %s instruction %d needs exactly 1 operand", ji.Op, ji.ID)
			}
			cond := instrsByID[ji.Operands[0]]
			ifTrue, ifFalse := blocksByID[ji.TrueTarget], blocksByID[ji.FalseTarget]
			switch ji.Op {
			case "ja":
				instr = b.CreateJa(cond, ifTrue, ifFalse)
			case "jae":
				instr = b.CreateJae(cond, ifTrue, ifFalse)
			case "je":
				instr = b.CreateJe(cond, ifTrue, ifFalse)
			}
		case "ret":
			instr = b.CreateRet(typ, instrsByID[ji.RetValue])
		default:
			return nil, fmt.Errorf("irtool: instruction %d has unknown op %q", ji.ID, ji.Op)
		}

		instrsByID[ji.ID] = instr
	}

	return g, nil
}
