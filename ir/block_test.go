// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import "testing"

func TestPushAfterTerminatorPanics(t *testing.T) {
	g := NewGraph()
	bb := &BasicBlock{}
	g.AddBlock(bb)

	v := NewConst(TypeI32, 1, true)
	g.AddInstruction(v)
	bb.Push(v)

	ret := NewRet(TypeI32, v)
	g.AddInstruction(ret)
	bb.Push(ret)

	defer func() {
		if recover() == nil {
			t.Fatal("want panic pushing an instruction after a terminator")
		}
	}()

	extra := NewConst(TypeI32, 2, true)
	g.AddInstruction(extra)
	bb.Push(extra)
}

func TestSuccessorPredecessorSymmetry(t *testing.T) {
	g := NewGraph()
	a, b := &BasicBlock{}, &BasicBlock{}
	g.AddBlock(a)
	g.AddBlock(b)

	a.AddSuccessor(b)
	b.AddPredecessor(a)

	if len(a.Succs()) != 1 || a.Succs()[0] != b {
		t.Fatalf("want a.Succs() == [b], got %v", a.Succs())
	}
	if len(b.Preds()) != 1 || b.Preds()[0] != a {
		t.Fatalf("want b.Preds() == [a], got %v", b.Preds())
	}
}

func TestTerminator(t *testing.T) {
	g := NewGraph()
	bb := &BasicBlock{}
	g.AddBlock(bb)

	v := NewConst(TypeI32, 1, true)
	g.AddInstruction(v)
	bb.Push(v)
	if bb.Terminator() != nil {
		t.Fatal("want no terminator before one is pushed")
	}

	ret := NewRet(TypeI32, v)
	g.AddInstruction(ret)
	bb.Push(ret)
	if bb.Terminator() != ret {
		t.Fatalf("want Terminator() == ret, got %v", bb.Terminator())
	}
}
