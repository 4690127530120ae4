package logging

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"log/slog"
	"sync"
)

// Level filters what a Session eventually flushes.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ErrUnknownLevel is returned by ParseLevel.
var ErrUnknownLevel = errors.New("logging: unknown level")

// ParseLevel accepts the names printed by Level.String, in any case.
func ParseLevel(s string) (Level, error) {
	for _, l := range []Level{LevelDebug, LevelInfo, LevelWarn, LevelError} {
		if strings.EqualFold(s, l.String()) {
			return l, nil
		}
	}
	return LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

func (l Level) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Session buffers log records while the renderer owns the terminal, so
// nothing is interleaved with frames. Flush writes them out afterwards.
type Session struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	Logger *slog.Logger
}

// InitForSession installs a buffering logger as the default.
func InitForSession(level Level) *Session {
	s := &Session{}
	s.Logger = slog.New(slog.NewTextHandler(lockedWriter{s}, &slog.HandlerOptions{Level: level.SlogLevel()}))
	slog.SetDefault(s.Logger)
	return s
}

// Flush copies buffered records to w and empties the buffer.
func (s *Session) Flush(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.buf.WriteTo(w)
	return err
}

type lockedWriter struct{ s *Session }

func (w lockedWriter) Write(p []byte) (int, error) {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	return w.s.buf.Write(p)
}
