package value

import (
	"errors"
	"testing"

	"kmt/kmterr"
)

func TestAccessorTypeMismatch(t *testing.T) {
	v := Int32(5)
	if _, err := v.Str(); !errors.Is(err, kmterr.ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
	if got, err := v.Int32(); err != nil || got != 5 {
		t.Fatalf("Int32() = %d, %v, want 5, nil", got, err)
	}
}

func TestEqual(t *testing.T) {
	if !Str("hema").Equal(Str("hema")) {
		t.Fatal("expected equal strings to compare equal")
	}
	if Str("hema").Equal(Int32(1)) {
		t.Fatal("different kinds must never compare equal")
	}
	if Float64(1.0).Equal(Float64(1.0 + 1e-12)) {
		t.Fatal("Value.Equal is byte-for-byte; epsilon belongs to Column")
	}
}

func TestLessTotalOrder(t *testing.T) {
	cases := []struct {
		a, b Value
	}{
		{Int32(1), Int32(2)},
		{Int64(-1), Int64(0)},
		{Float32(1.5), Float32(2.5)},
		{Str("Aarati"), Str("Bhupendra")},
		{Bool(false), Bool(true)},
		{FromDate(Date{2025, 1, 1}), FromDate(Date{2025, 1, 2})},
	}
	for _, c := range cases {
		if !c.a.Less(c.b) {
			t.Errorf("%v should be less than %v", c.a, c.b)
		}
		if c.b.Less(c.a) {
			t.Errorf("%v should not be less than %v", c.b, c.a)
		}
		if !c.b.Greater(c.a) {
			t.Errorf("%v should be greater than %v", c.b, c.a)
		}
	}
}

func TestLessPanicsOnKindMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic comparing different kinds")
		}
	}()
	Int32(1).Less(Str("x"))
}

func TestTypeChar(t *testing.T) {
	want := map[Kind]byte{
		KindInt32: 'i', KindInt64: 'I', KindFloat32: 'f', KindFloat64: 'F',
		KindStr: 's', KindBool: 'b', KindDate: 'd', KindDateTime: 'D',
	}
	for k, c := range want {
		if k.TypeChar() != c {
			t.Errorf("%s.TypeChar() = %c, want %c", k, k.TypeChar(), c)
		}
	}
}
