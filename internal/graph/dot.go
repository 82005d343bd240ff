// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"fmt"
	"io"
)

// Dot renders a Graph in Graphviz dot format.
type Dot struct {
	// Name is the name given to the graph. Usually this can be
	// left blank.
	Name string

	// Label returns the string to use as a label for the given
	// node. If nil, nodes are labeled with their node numbers.
	Label func(node int) string
}

func defaultLabel(node int) string {
	return fmt.Sprintf("%d", node)
}

// Fprint writes the dot form of g to w.
func (d Dot) Fprint(g Graph, w io.Writer) error {
	label := d.Label
	if label == nil {
		label = defaultLabel
	}

	if _, err := fmt.Fprintf(w, "digraph %s {\n", dotString(d.Name)); err != nil {
		return err
	}

	for i := 0; i < g.NumNodes(); i++ {
		if _, err := fmt.Fprintf(w, "n%d [label=%s];\n", i, dotString(label(i))); err != nil {
			return err
		}
		for _, out := range g.Out(i) {
			if _, err := fmt.Fprintf(w, "n%d -> n%d;\n", i, out); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "}\n")
	return err
}

// dotString returns s as a quoted dot string.
func dotString(s string) string {
	buf := []byte{'"'}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\\', '"', '{', '}', '<', '>', '|':
			buf = append(buf, '\\', s[i])
		default:
			buf = append(buf, s[i])
		}
	}
	buf = append(buf, '"')
	return string(buf)
}
