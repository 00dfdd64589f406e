package logsink

import (
	"errors"
	"strings"
	"testing"
)

func TestAddLogMsgHandlesImmediatelyWhenNotPaused(t *testing.T) {
	s := New()
	var got string
	s.SetHandler(func(formatted string) { got = formatted })

	s.AddLogMsg("row 3 out of range")

	if got != "row 3 out of range" {
		t.Errorf("handler got %q, want %q", got, "row 3 out of range")
	}
}

func TestPauseQueuesAndResumeFormatsCausationChain(t *testing.T) {
	s := New()
	var got string
	s.SetHandler(func(formatted string) { got = formatted })

	s.Pause()
	s.AddLogMsg("insert failed")
	s.AddLogMsg("column type mismatch")
	if got != "" {
		t.Fatalf("handler fired while paused: %q", got)
	}

	msgs := s.Resume()
	if len(msgs) != 2 {
		t.Fatalf("Resume() returned %d messages, want 2", len(msgs))
	}
	want := "insert failed\n\tDue to\n\t\tcolumn type mismatch"
	if got != want {
		t.Errorf("formatted chain = %q, want %q", got, want)
	}
}

func TestFormatChainThreeDeepIndentsEachLevelFurther(t *testing.T) {
	s := New()
	var got string
	s.SetHandler(func(formatted string) { got = formatted })

	s.Pause()
	s.AddLogMsg("snapshot write failed")
	s.AddLogMsg("column flush failed")
	s.AddLogMsg("disk full")
	s.Resume()

	want := "snapshot write failed\n\tDue to\n\t\tcolumn flush failed\n\t\tDue to\n\t\t\tdisk full"
	if got != want {
		t.Errorf("formatted chain = %q, want %q", got, want)
	}
}

func TestResumeWithNothingPendingDoesNotInvokeHandler(t *testing.T) {
	s := New()
	called := false
	s.SetHandler(func(string) { called = true })

	s.Pause()
	msgs := s.Resume()

	if called {
		t.Error("handler invoked on empty Resume()")
	}
	if len(msgs) != 0 {
		t.Errorf("Resume() = %v, want empty", msgs)
	}
}

func TestLogReturnsErrUnchangedAndEnqueuesItsMessage(t *testing.T) {
	s := New()
	var got string
	s.SetHandler(func(formatted string) { got = formatted })

	want := errors.New("boom")
	gotErr := s.Log(want)

	if gotErr != want {
		t.Errorf("Log() returned %v, want %v", gotErr, want)
	}
	if got != "boom" {
		t.Errorf("handler got %q, want %q", got, "boom")
	}
}

func TestLogNilIsANoOp(t *testing.T) {
	s := New()
	called := false
	s.SetHandler(func(string) { called = true })

	if err := s.Log(nil); err != nil {
		t.Errorf("Log(nil) = %v, want nil", err)
	}
	if called {
		t.Error("handler invoked for a nil error")
	}
}

func TestDumpDebugOnlyRendersWhenDebugEnabled(t *testing.T) {
	s := New()
	var got string
	s.SetHandler(func(formatted string) { got = formatted })

	s.DumpDebug("row", struct{ ID int }{ID: 7})
	if got != "" {
		t.Fatalf("DumpDebug fired with debug disabled: %q", got)
	}

	s.SetDebug(true)
	s.DumpDebug("row", struct{ ID int }{ID: 7})
	if !strings.Contains(got, "row:") {
		t.Errorf("formatted = %q, want it to contain the label", got)
	}
}

func TestSeverityYellowMatchesParseAndReferenceErrors(t *testing.T) {
	cases := []struct {
		formatted string
		want      bool
	}{
		{"expr: unexpected token: parse error", true},
		{"expr: unknown column \"x\": reference error", true},
		{"table: duplicate column: invalid argument", false},
		{"tableio: reading foo.kmt: io failure", false},
	}
	for _, c := range cases {
		if got := severityYellow(c.formatted); got != c.want {
			t.Errorf("severityYellow(%q) = %v, want %v", c.formatted, got, c.want)
		}
	}
}

func TestDefaultReturnsSameInstance(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() returned different instances across calls")
	}
}
