package logsink

import (
	"fmt"
	"testing"
	"time"
)

func TestAppend_PreservesOrder(t *testing.T) {
	s := New(10)
	for i := 0; i < 5; i++ {
		s.Append(Info, fmt.Sprintf("line %d", i))
	}

	lines := s.Snapshot()
	if len(lines) != 5 {
		t.Fatalf("Snapshot len = %d, want 5", len(lines))
	}
	for i, line := range lines {
		if want := fmt.Sprintf("line %d", i); line.Message != want {
			t.Fatalf("lines[%d].Message = %q, want %q", i, line.Message, want)
		}
	}
}

func TestAppend_DropsOldestAtCapacity(t *testing.T) {
	s := New(3)
	for i := 0; i < 5; i++ {
		s.Append(Info, fmt.Sprintf("line %d", i))
	}

	lines := s.Snapshot()
	if len(lines) != 3 {
		t.Fatalf("Snapshot len = %d, want 3", len(lines))
	}
	if lines[0].Message != "line 2" || lines[2].Message != "line 4" {
		t.Fatalf("Snapshot = %v, want lines 2..4", lines)
	}
}

func TestLine_StringFormat(t *testing.T) {
	s := New(1)
	s.now = func() time.Time {
		return time.Date(2025, 12, 13, 10, 11, 12, 0, time.UTC)
	}
	s.Append(Error, "pull failed")

	got := s.Snapshot()[0].String()
	if want := "[10:11:12] pull failed"; got != want {
		t.Fatalf("String = %q, want %q", got, want)
	}
}

func TestClear_EmptiesBuffer(t *testing.T) {
	s := New(4)
	s.Append(Info, "a")
	s.Append(Warn, "b")
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("Len after Clear = %d, want 0", s.Len())
	}
	if lines := s.Snapshot(); lines != nil {
		t.Fatalf("Snapshot after Clear = %v, want nil", lines)
	}
	s.Append(Info, "c")
	if got := s.Snapshot()[0].Message; got != "c" {
		t.Fatalf("Message after Clear+Append = %q, want c", got)
	}
}

func TestSeverity_Labels(t *testing.T) {
	cases := map[Severity]string{Debug: "DEBUG", Info: "INFO", Warn: "WARN", Error: "ERROR"}
	for sev, want := range cases {
		if got := sev.String(); got != want {
			t.Fatalf("Severity(%d).String = %q, want %q", sev, got, want)
		}
	}
}
