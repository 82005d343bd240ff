// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-ircfg/ir"
)

const sampleProc = `{
  "blocks": [{"id": 0}, {"id": 1}],
  "instructions": [
    {"id": 0, "block": 0, "op": "param", "type": "i32", "arg": 0},
    {"id": 1, "block": 0, "op": "jmp", "target": 1},
    {"id": 2, "block": 1, "op": "ret", "type": "i32", "operands": null, "ret_value": 0}
  ]
}`

func TestLoadGraphBuildsBlocksAndEdges(t *testing.T) {
	g, err := loadGraph(strings.NewReader(sampleProc))
	require.NoError(t, err)

	require.Equal(t, 2, g.NumBlocks())
	require.Equal(t, 3, g.NumInstructions())

	bb0, bb1 := g.Block(0), g.Block(1)
	assert.Equal(t, []*ir.BasicBlock{bb1}, bb0.Succs())
	assert.Equal(t, []*ir.BasicBlock{bb0}, bb1.Preds())

	ret := bb1.Terminator()
	require.NotNil(t, ret)
	assert.Equal(t, ir.OpRet, ret.Opcode())
	assert.Equal(t, 0, ret.Inputs()[0].ID())
}

func TestLoadGraphRejectsUnknownOp(t *testing.T) {
	_, err := loadGraph(strings.NewReader(`{"blocks":[{"id":0}],"instructions":[{"id":0,"block":0,"op":"nope"}]}`))
	require.Error(t, err)
}

func TestLoadGraphRejectsUnknownBlock(t *testing.T) {
	_, err := loadGraph(strings.NewReader(`{"blocks":[],"instructions":[{"id":0,"block":0,"op":"param"}]}`))
	require.Error(t, err)
}
