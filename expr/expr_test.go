package expr

import (
	"testing"

	"kmt/column"
	"kmt/value"
)

// fakeSource is a minimal in-memory Source used to exercise compilation
// and execution without pulling in the table package.
type fakeSource struct {
	metas []column.Meta
	rows  [][]value.Value
}

func (f *fakeSource) RowCount() int    { return len(f.rows) }
func (f *fakeSource) ColumnCount() int { return len(f.metas) }
func (f *fakeSource) ColumnMeta(i int) column.Meta { return f.metas[i] }
func (f *fakeSource) CellAt(row, col int) value.Value { return f.rows[row][col] }

func studentSource() *fakeSource {
	return &fakeSource{
		metas: []column.Meta{
			{Name: "id", Type: value.KindInt32},
			{Name: "age", Type: value.KindInt32},
		},
		rows: [][]value.Value{
			{value.Int32(1), value.Int32(10)},
			{value.Int32(2), value.Int32(11)},
			{value.Int32(3), value.Int32(12)},
			{value.Int32(4), value.Int32(13)},
		},
	}
}

func TestCompileAndEvalIsOdd(t *testing.T) {
	src := studentSource()
	p, err := Compile("isOdd($id)", src, value.KindBool)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	got, err := p.EvalRows(src)
	if err != nil {
		t.Fatalf("EvalRows() error = %v", err)
	}
	want := []bool{true, false, true, false}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCompileConstantFoldsToSingleLiteral(t *testing.T) {
	src := studentSource()
	p, err := Compile("IF(isEqual(add(5,10),15), 0, 1)", src, value.KindInt32)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if len(p.tokens) != 1 {
		t.Fatalf("expected constant folding to collapse to 1 token, got %d", len(p.tokens))
	}
	if p.tokens[0].kind != TokInt32Lit {
		t.Fatalf("expected a folded Int32 literal token, got kind %v", p.tokens[0].kind)
	}
	got, err := p.EvalRow(src, 0)
	if err != nil {
		t.Fatalf("EvalRow() error = %v", err)
	}
	n, _ := got.Int32()
	if n != 0 {
		t.Fatalf("IF(isEqual(add(5,10),15),0,1) = %d, want 0", n)
	}
}

func TestCompilePartiallyFoldsNestedCall(t *testing.T) {
	src := studentSource()
	p, err := Compile("add($age, mul(2,3))", src, value.KindInt32)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	// mul(2,3) folds to a literal 6, but add($age, 6) cannot fold further
	// since $age is not a compile-time constant.
	if len(p.tokens) != 3 {
		t.Fatalf("expected 3 tokens ($age, folded 6, add), got %d", len(p.tokens))
	}
	got, err := p.EvalRow(src, 0)
	if err != nil {
		t.Fatalf("EvalRow() error = %v", err)
	}
	n, _ := got.Int32()
	if n != 16 {
		t.Fatalf("add(age=10, mul(2,3)) = %d, want 16", n)
	}
}

func TestCompileRejectsUnknownColumn(t *testing.T) {
	src := studentSource()
	if _, err := Compile("$nope", src, value.KindInt32); err == nil {
		t.Fatal("expected an error for an unknown column reference")
	}
}

func TestCompileRejectsTypeMismatch(t *testing.T) {
	src := studentSource()
	if _, err := Compile("$id", src, value.KindBool); err == nil {
		t.Fatal("expected an error when resolved type does not match target type")
	}
}

func TestCompileFilterEmptyAcceptsAll(t *testing.T) {
	src := studentSource()
	p, err := CompileFilter("", src)
	if err != nil {
		t.Fatalf("CompileFilter() error = %v", err)
	}
	matched, err := p.EvalRows(src)
	if err != nil {
		t.Fatalf("EvalRows() error = %v", err)
	}
	for i, m := range matched {
		if !m {
			t.Errorf("row %d: expected empty filter to accept all rows", i)
		}
	}
}

func TestCompileGrammarError(t *testing.T) {
	src := studentSource()
	if _, err := Compile("add(1,", src, value.KindInt32); err == nil {
		t.Fatal("expected a grammar error for an unterminated call")
	}
}
