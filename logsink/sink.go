// Package logsink implements the process-wide log message sink
// described in the store's error handling design: a pause/resume stack
// of human-readable messages that a failing mutator enqueues instead of
// raising, plus a causation-chain formatter for draining it.
package logsink

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

// Sink is a pause/resume stack of pending log messages plus an
// installed handler that consumes the formatted causation chain once
// resumed. The zero value is not usable; construct with New.
type Sink struct {
	mu      sync.Mutex
	paused  bool
	pending []string
	handler func(formatted string)
	debug   bool
}

// New returns a Sink with the default colorized slog handler installed.
func New() *Sink {
	s := &Sink{}
	s.handler = s.defaultHandler
	return s
}

var defaultSink = sync.OnceValue(New)

// Default returns the process-wide default sink, constructed once.
func Default() *Sink {
	return defaultSink()
}

// Pause suspends immediate handling: subsequent AddLogMsg calls are
// pushed onto the pending stack instead of being handled synchronously.
func (s *Sink) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = true
}

// Resume drains the pending stack, formats it as a causation chain, and
// invokes the installed handler once with the result. It returns the raw
// pending messages (top-most first) for callers that want them
// unformatted.
func (s *Sink) Resume() []string {
	s.mu.Lock()
	msgs := s.pending
	s.pending = nil
	s.paused = false
	handler := s.handler
	s.mu.Unlock()

	if len(msgs) == 0 {
		return msgs
	}

	if handler != nil {
		handler(formatChain(msgs))
	}

	return msgs
}

// AddLogMsg enqueues a message. While paused it is pushed onto the
// pending stack; otherwise it is handled immediately (as a
// single-element chain).
func (s *Sink) AddLogMsg(msg string) {
	s.mu.Lock()
	if s.paused {
		s.pending = append(s.pending, msg)
		s.mu.Unlock()
		return
	}
	handler := s.handler
	s.mu.Unlock()

	if handler != nil {
		handler(formatChain([]string{msg}))
	}
}

// Log is a convenience for AddLogMsg(err.Error()) that also returns err
// unchanged, so call sites can write `return kmterr.Log(err)`-style
// one-liners.
func (s *Sink) Log(err error) error {
	if err == nil {
		return nil
	}
	s.AddLogMsg(err.Error())
	return err
}

// SetHandler installs the consumer invoked on Resume/AddLogMsg.
func (s *Sink) SetHandler(h func(formatted string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = h
}

// SetDebug toggles whether DumpDebug actually renders anything.
func (s *Sink) SetDebug(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debug = enabled
}

// DumpDebug renders v with go-spew and feeds it through AddLogMsg, but
// only when the sink is running at debug verbosity. It exists for the
// rare failure that is easier to diagnose from a full structural dump
// of the offending row or table than from a one-line message.
func (s *Sink) DumpDebug(label string, v any) {
	s.mu.Lock()
	debug := s.debug
	s.mu.Unlock()
	if !debug {
		return
	}
	s.AddLogMsg(fmt.Sprintf("%s:\n%s", label, spew.Sdump(v)))
}

// formatChain renders msgs (top-most first) as the causation chain
// spec.md §7 documents: "<top-most>\n\tDue to\n\t\t<next>\n...". Each
// message one level down from the top sits one tab deeper than the
// "Due to" line introducing it, which itself sits one tab deeper per level.
func formatChain(msgs []string) string {
	if len(msgs) == 1 {
		return msgs[0]
	}
	var b strings.Builder
	b.WriteString(msgs[0])
	for i := 1; i < len(msgs); i++ {
		b.WriteString("\n")
		b.WriteString(strings.Repeat("\t", i))
		b.WriteString("Due to\n")
		b.WriteString(strings.Repeat("\t", i+1))
		b.WriteString(msgs[i])
	}
	return b.String()
}

// severityYellow reports whether formatted looks like a parse/reference
// warning rather than a harder failure, by checking for the wrapped
// kmterr sentinel text (%w always leaves it verbatim in Error()).
func severityYellow(formatted string) bool {
	return strings.Contains(formatted, "parse error") || strings.Contains(formatted, "reference error")
}

func (s *Sink) defaultHandler(formatted string) {
	if severityYellow(formatted) {
		color.Yellow("%s", formatted)
	} else {
		color.Red("%s", formatted)
	}
	slog.Error(formatted)
}
