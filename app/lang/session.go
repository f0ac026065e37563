package lang

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Mode decides what a failing line leaves behind.
type Mode int

const (
	// Transactional runs each line on a private copy and commits it only
	// if every operation succeeds.
	Transactional Mode = iota
	// InPlace commits every operation as it runs, so a failing line keeps
	// the progress made before the failure.
	InPlace
)

func (m Mode) String() string {
	if m == InPlace {
		return "inplace"
	}
	return "transactional"
}

// EvalResult is the result of evaluating a single line.
type EvalResult struct {
	Text  string // rendered stack, or the error message
	IsErr bool
}

// Session feeds lines of input to a Calculator.
type Session struct {
	id   uuid.UUID
	calc *Calculator
	mode Mode
	log  *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

func WithMode(m Mode) Option {
	return func(s *Session) { s.mode = m }
}

// WithRadix sets the initial display radix.
func WithRadix(r Radix) Option {
	return func(s *Session) { s.calc.SetRadix(r) }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.log = l }
}

// NewSession returns a session around an empty calculator.
func NewSession(opts ...Option) *Session {
	s := &Session{
		id:   uuid.New(),
		calc: New(),
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(zap.Stringer("session", s.id), zap.Stringer("mode", s.mode))
	return s
}

func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) Mode() Mode { return s.mode }

// Calculator returns a snapshot of the current state.
func (s *Session) Calculator() *Calculator {
	return s.calc.Clone()
}

// Reset discards the stack but keeps the radix.
func (s *Session) Reset() {
	r := s.calc.Radix()
	s.calc = New()
	s.calc.SetRadix(r)
	s.log.Debug("reset")
}

// Prompt renders the stack followed by the input marker.
func (s *Session) Prompt() string {
	return s.calc.String() + " | "
}

// EvalLine parses and applies one line. Blank lines and lines starting
// with '#' leave the state alone.
func (s *Session) EvalLine(line string) EvalResult {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return EvalResult{Text: s.calc.String()}
	}

	ops, err := ParseLine(line)
	if err != nil {
		s.log.Debug("parse failed", zap.String("line", line), zap.Error(err))
		return EvalResult{Text: err.Error(), IsErr: true}
	}

	switch s.mode {
	case InPlace:
		err = s.calc.ApplyAll(ops)
	default:
		var next *Calculator
		next, err = s.calc.Eval(ops...)
		if err == nil {
			s.calc = next
		}
	}
	if err != nil {
		s.log.Debug("line failed",
			zap.String("line", line),
			zap.Error(err),
			zap.Int("depth", s.calc.Len()))
		return EvalResult{Text: err.Error(), IsErr: true}
	}

	s.log.Debug("line applied",
		zap.String("line", line),
		zap.Int("ops", len(ops)),
		zap.Int("depth", s.calc.Len()))
	return EvalResult{Text: s.calc.String()}
}

// EvalLines evaluates lines in order and returns one result per line.
func (s *Session) EvalLines(lines []string) []EvalResult {
	results := make([]EvalResult, len(lines))
	for i, line := range lines {
		results[i] = s.EvalLine(line)
	}
	return results
}
