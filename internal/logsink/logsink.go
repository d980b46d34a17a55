package logsink

import (
	"fmt"
	"sync"
	"time"
)

// Severity classifies a log line for display.
type Severity int

const (
	Debug Severity = iota
	Info
	Warn
	Error
)

// String returns the display label for the severity.
func (s Severity) String() string {
	switch s {
	case Debug:
		return "DEBUG"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Line is one timestamped, append-only record shown to the user.
type Line struct {
	When     time.Time
	Severity Severity
	Message  string
}

// String renders the line the way the log pane shows it.
func (l Line) String() string {
	return fmt.Sprintf("[%s] %s", l.When.Format("15:04:05"), l.Message)
}

// DefaultCapacity bounds the sink when no capacity is given.
const DefaultCapacity = 2000

// Sink is a bounded, ordered line buffer. When full, appending drops the
// oldest line. The zero value is not usable; call New.
type Sink struct {
	mu    sync.Mutex
	ring  []Line
	start int
	count int
	now   func() time.Time
}

// New creates a sink holding at most capacity lines (DefaultCapacity when
// capacity is not positive).
func New(capacity int) *Sink {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Sink{
		ring: make([]Line, capacity),
		now:  time.Now,
	}
}

// Append stores a timestamped line, evicting the oldest when full.
func (s *Sink) Append(sev Severity, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := Line{When: s.now(), Severity: sev, Message: message}
	idx := (s.start + s.count) % len(s.ring)
	s.ring[idx] = line
	if s.count < len(s.ring) {
		s.count++
	} else {
		s.start = (s.start + 1) % len(s.ring)
	}
}

// Appendf formats and stores a line.
func (s *Sink) Appendf(sev Severity, format string, args ...any) {
	s.Append(sev, fmt.Sprintf(format, args...))
}

// Snapshot returns a copy of all buffered lines in append order.
func (s *Sink) Snapshot() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.count == 0 {
		return nil
	}
	lines := make([]Line, s.count)
	for i := 0; i < s.count; i++ {
		lines[i] = s.ring[(s.start+i)%len(s.ring)]
	}
	return lines
}

// Clear discards all buffered lines.
func (s *Sink) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.start = 0
	s.count = 0
}

// Len reports how many lines are buffered.
func (s *Sink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}
