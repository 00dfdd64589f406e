package column

import (
	"testing"

	"kmt/value"
)

func mustNew(t *testing.T, meta Meta) Column {
	t.Helper()
	c, err := New(meta)
	if err != nil {
		t.Fatalf("New(%+v): %v", meta, err)
	}
	return c
}

func TestPushGetResize(t *testing.T) {
	c := mustNew(t, Meta{Name: "id", Type: value.KindInt32})
	for _, v := range []int32{1, 2, 3} {
		if err := c.Push(value.Int32(v)); err != nil {
			t.Fatalf("Push: %v", err)
		}
	}
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	got, _ := c.Get(1).Int32()
	if got != 2 {
		t.Fatalf("Get(1) = %d, want 2", got)
	}
	if err := c.Resize(5); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if c.Len() != 5 {
		t.Fatalf("Len() after Resize(5) = %d, want 5", c.Len())
	}
	if err := c.Resize(2); err != nil {
		t.Fatalf("Resize down: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() after Resize(2) = %d, want 2", c.Len())
	}
}

func TestFloatEpsilonEquality(t *testing.T) {
	// Scenario 4 from the spec: epsilon 1e-17, three near-identical
	// float64 cells, searching for 1e-4 must match exactly one.
	c := mustNew(t, Meta{Name: "x", Type: value.KindFloat64})
	if err := c.SetEpsilon(1e-17); err != nil {
		t.Fatalf("SetEpsilon: %v", err)
	}
	cells := []float64{1.0000000000002645e-4, 1.0000000000000032e-4, 1.0000000000001242e-4}
	for _, v := range cells {
		if err := c.Push(value.Float64(v)); err != nil {
			t.Fatalf("Push: %v", err)
		}
	}
	matches := 0
	target := value.Float64(1e-4)
	for i := 0; i < c.Len(); i++ {
		if c.EqualValue(i, target) {
			matches++
		}
	}
	if matches != 1 {
		t.Fatalf("expected exactly 1 match at epsilon 1e-17, got %d", matches)
	}
}

func TestStringLexicographicOrder(t *testing.T) {
	c := mustNew(t, Meta{Name: "name", Type: value.KindStr})
	for _, s := range []string{"Hema", "Aarati"} {
		_ = c.Push(value.Str(s))
	}
	if !c.Greater(0, 1) {
		t.Fatalf("expected %q > %q lexicographically", "Hema", "Aarati")
	}
}

func TestSetEpsilonRejectedOnNonFloat(t *testing.T) {
	c := mustNew(t, Meta{Name: "n", Type: value.KindInt32})
	if err := c.SetEpsilon(0.1); err == nil {
		t.Fatal("expected SetEpsilon to fail on a non-float column")
	}
}

func TestPopOnEmptyFails(t *testing.T) {
	c := mustNew(t, Meta{Name: "n", Type: value.KindInt32})
	if err := c.Pop(); err == nil {
		t.Fatal("expected Pop on empty column to fail")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := mustNew(t, Meta{Name: "n", Type: value.KindInt32})
	_ = c.Push(value.Int32(1))
	clone := c.Clone()
	_ = c.Push(value.Int32(2))
	if clone.Len() != 1 {
		t.Fatalf("clone should not see pushes to the original, got len %d", clone.Len())
	}
}
