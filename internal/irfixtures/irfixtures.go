// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package irfixtures builds bare ir.Graph CFGs from letter-named edge
// lists, for domtree and loopanalysis tests that only care about
// graph shape and not instruction content.
package irfixtures

import "github.com/aclements/go-ircfg/ir"

// Graph builds an ir.Graph with one block per distinct letter named
// in names (in the given order — the first name becomes the entry)
// and one edge per (from, to) pair in edges. Letters not listed in
// names but used in edges are an error in the caller's test, not
// handled here.
func Graph(names string, edges [][2]byte) (*ir.Graph, map[byte]*ir.BasicBlock) {
	g := ir.NewGraph()
	blocks := make(map[byte]*ir.BasicBlock, len(names))
	for i := 0; i < len(names); i++ {
		bb := &ir.BasicBlock{}
		g.AddBlock(bb)
		blocks[names[i]] = bb
	}
	for _, e := range edges {
		from, to := blocks[e[0]], blocks[e[1]]
		from.AddSuccessor(to)
		to.AddPredecessor(from)
	}
	return g, blocks
}
