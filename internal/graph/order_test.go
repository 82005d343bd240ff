// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"reflect"
	"testing"
)

func TestPreOrder(t *testing.T) {
	po := PreOrder(graphMuchnick, 0)
	want := []int{0, 1, 2, 3, 4, 5, 7, 6}
	if !reflect.DeepEqual(want, po) {
		t.Errorf("want %v, got %v", want, po)
	}
}

func TestPreOrderFromExcludes(t *testing.T) {
	// Exclude node 2 from graphMuchnick: node 1's only successor is
	// 2, so the walk stops after 0->1 and never reaches 3 through 7.
	visited := map[int]bool{2: true}
	po := PreOrderFrom(graphMuchnick, 0, visited)
	want := []int{0, 1}
	if !reflect.DeepEqual(want, po) {
		t.Errorf("want %v, got %v", want, po)
	}
}

func TestPostOrder(t *testing.T) {
	po := PostOrder(graphMuchnick, 0)
	want := []int{3, 7, 5, 6, 4, 2, 1, 0}
	if !reflect.DeepEqual(want, po) {
		t.Errorf("want %v, got %v", want, po)
	}
}

func TestReverse(t *testing.T) {
	xs := []int{1, 2, 3, 4}
	got := Reverse(xs)
	want := []int{4, 3, 2, 1}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("want %v, got %v", want, got)
	}
}
