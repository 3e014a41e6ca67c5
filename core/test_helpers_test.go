// Package core_test contains test helpers for grava/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities.
//   - Keep core tests stdlib-only (no third-party assertion frameworks),
//     so the container's contract is locked in without extra deps.

package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/grava-graph/grava/core"
)

// Common node IDs used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"

	NodeX = "X"
	NodeY = "Y"
)

// Common attribute keys and weights (avoid magic values in test bodies).
const (
	AttrWeight = "weight"
	AttrColor  = "color"
	AttrLabel  = "label"

	Weight1 = 1.0
	Weight3 = 3.0
	Weight5 = 5.0
)

// NewSquare returns an undirected simple graph shaped
//
//	A───B
//	│   │
//	C───D
//
// with edges inserted in the order (A,B), (A,C), (B,D), (C,D).
func NewSquare() *core.Graph[string] {
	g := core.New[string]()
	g.AddEdge(NodeA, NodeB)
	g.AddEdge(NodeA, NodeC)
	g.AddEdge(NodeB, NodeD)
	g.AddEdge(NodeC, NodeD)

	return g
}

// MustErrorIs fails the test unless errors.Is(err, want).
func MustErrorIs(t *testing.T, err, want error, msg string) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Fatalf("%s: got error %v, want %v", msg, err, want)
	}
}

// MustErrorNil fails the test unless err is nil.
func MustErrorNil(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error %v", msg, err)
	}
}

// MustEqualInt fails the test unless got == want.
func MustEqualInt(t *testing.T, got, want int, msg string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %d, want %d", msg, got, want)
	}
}

// MustEqualFloat fails the test unless got == want exactly (test inputs
// are chosen to be exactly representable).
func MustEqualFloat(t *testing.T, got, want float64, msg string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %v, want %v", msg, got, want)
	}
}

// MustEqualBool fails the test unless got == want.
func MustEqualBool(t *testing.T, got, want bool, msg string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %t, want %t", msg, got, want)
	}
}

// MustEqualStrings fails the test unless the slices are element-wise equal
// (order matters; core guarantees insertion order).
func MustEqualStrings(t *testing.T, got, want []string, msg string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %v, want %v", msg, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s: got %v, want %v", msg, got, want)
		}
	}
}

// MustDeepEqual fails the test unless reflect.DeepEqual(got, want).
func MustDeepEqual(t *testing.T, got, want any, msg string) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("%s: got %#v, want %#v", msg, got, want)
	}
}

// MustPanic runs fn and fails the test unless it panics.
func MustPanic(t *testing.T, fn func(), msg string) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic, got none", msg)
		}
	}()
	fn()
}
