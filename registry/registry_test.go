package registry

import (
	"testing"

	"kmt/value"
)

func TestMangleStable(t *testing.T) {
	got := Mangle("add", value.KindInt32, value.KindInt32)
	want := "add_ii"
	if got != want {
		t.Fatalf("Mangle() = %q, want %q", got, want)
	}
}

func TestLookupBuiltinArith(t *testing.T) {
	fn, ok := Lookup(Mangle("add", value.KindInt32, value.KindInt32))
	if !ok {
		t.Fatal("add_ii not registered")
	}
	out, err := fn.Call([]value.Value{value.Int32(2), value.Int32(3)})
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	got, _ := out.Int32()
	if got != 5 {
		t.Fatalf("add_ii(2,3) = %d, want 5", got)
	}
}

func TestIsOddScenario(t *testing.T) {
	fn, ok := Lookup(Mangle("isOdd", value.KindInt32))
	if !ok {
		t.Fatal("isOdd_i not registered")
	}
	out, err := fn.Call([]value.Value{value.Int32(7)})
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	got, _ := out.Bool()
	if !got {
		t.Fatal("isOdd(7) = false, want true")
	}
}

func TestIfAcrossKinds(t *testing.T) {
	fn, ok := Lookup(Mangle("IF", value.KindBool, value.KindInt32, value.KindInt32))
	if !ok {
		t.Fatal("IF_bii not registered")
	}
	out, err := fn.Call([]value.Value{value.Bool(false), value.Int32(1), value.Int32(2)})
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	got, _ := out.Int32()
	if got != 2 {
		t.Fatalf("IF(false,1,2) = %d, want 2", got)
	}
}

func TestRegisterSameKeyTwiceSucceeds(t *testing.T) {
	const name = "testDupFn"
	calls := 0
	register := func() error {
		return Register(name, []value.Kind{value.KindInt32}, value.KindInt32, func(a []value.Value) (value.Value, error) {
			calls++
			return a[0], nil
		})
	}
	if err := register(); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}
	if err := register(); err != nil {
		t.Fatalf("second Register() error = %v", err)
	}
	fn, ok := Lookup(Mangle(name, value.KindInt32))
	if !ok {
		t.Fatal("testDupFn_i not registered")
	}
	if _, err := fn.Call([]value.Value{value.Int32(1)}); err != nil {
		t.Fatalf("Call() error = %v", err)
	}
}

func TestStringConcatenateIsAdd(t *testing.T) {
	fn, ok := Lookup(Mangle("add", value.KindStr, value.KindStr))
	if !ok {
		t.Fatal("add_ss not registered")
	}
	out, err := fn.Call([]value.Value{value.Str("foo"), value.Str("bar")})
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	got, _ := out.Str()
	if got != "foobar" {
		t.Fatalf("add_ss(foo,bar) = %q, want foobar", got)
	}
}

func TestConvertInt64ToInt32(t *testing.T) {
	fn, ok := Lookup(Mangle("toInt32", value.KindInt64))
	if !ok {
		t.Fatal("toInt32_I not registered")
	}
	out, err := fn.Call([]value.Value{value.Int64(42)})
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	got, _ := out.Int32()
	if got != 42 {
		t.Fatalf("toInt32(42) = %d, want 42", got)
	}
}
