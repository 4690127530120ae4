// Package stream drives the viewer from a plain byte stream, for when stdin
// or stdout is not a terminal. Keys are read on their own goroutine and
// multiplexed with resize notifications; each one is applied and answered
// with one complete frame.
package stream

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/san-kum/mandelterm/internal/input"
	"github.com/san-kum/mandelterm/internal/render"
	"github.com/san-kum/mandelterm/internal/view"
)

// SizeFunc reports the current output size. Zero dimensions are unknown.
type SizeFunc func() render.Size

// TerminalSize queries fd and returns an unknown size when fd is not a terminal.
func TerminalSize(fd int) SizeFunc {
	return func() render.Size {
		w, h, err := term.GetSize(fd)
		if err != nil {
			return render.Size{}
		}
		return render.Size{Width: w, Height: h}
	}
}

// fdReader is implemented by *os.File.
type fdReader interface {
	Fd() uintptr
}

type keyResult struct {
	key input.Key
	err error
}

type Loop struct {
	in       io.Reader
	dec      *input.Decoder
	out      *termenv.Output
	keys     input.KeyMap
	ctrl     *view.Controller
	renderer *render.Renderer
	size     SizeFunc
	resize   <-chan struct{}
	logger   *slog.Logger
}

func New(in io.Reader, out io.Writer, ctrl *view.Controller, renderer *render.Renderer, size SizeFunc, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{
		in:       in,
		dec:      input.NewDecoder(in),
		out:      termenv.NewOutput(out, termenv.WithProfile(termenv.TrueColor)),
		keys:     input.DefaultKeyMap(),
		ctrl:     ctrl,
		renderer: renderer,
		size:     size,
		logger:   logger,
	}
}

// WithResize redraws the frame whenever ch delivers. A nil channel never does.
func (l *Loop) WithResize(ch <-chan struct{}) *Loop {
	l.resize = ch
	return l
}

// Run clears the screen, draws the first frame and then handles keys and
// resizes until ctrl+c, end of input or ctx is done. A terminal on the input
// side is switched to raw mode for the duration.
func (l *Loop) Run(ctx context.Context) error {
	if restore := l.makeRaw(); restore != nil {
		defer restore()
	}

	l.out.HideCursor()
	defer l.out.ShowCursor()
	l.out.ClearScreen()
	if err := l.draw(); err != nil {
		return err
	}

	keys := make(chan keyResult)
	done := make(chan struct{})
	defer close(done)
	go l.read(keys, done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-l.resize:
			l.ctrl.Handle(view.EventResize)
			size := l.size()
			l.logger.Debug("resize", slog.Int("width", size.Width), slog.Int("height", size.Height))
			if err := l.draw(); err != nil {
				return err
			}

		case kr := <-keys:
			if errors.Is(kr.err, io.EOF) {
				l.logger.Debug("input closed")
				return nil
			}
			if kr.err != nil {
				return kr.err
			}

			ev := l.keys.Event(kr.key)
			l.logger.Debug("key", slog.String("key", kr.key.String()), slog.String("event", ev.String()))
			if !l.ctrl.Handle(ev) {
				return nil
			}
			if err := l.draw(); err != nil {
				return err
			}
		}
	}
}

// read pulls keys until the decoder fails or done is closed. A read that is
// blocked when Run returns ends with the next byte or the end of input.
func (l *Loop) read(keys chan<- keyResult, done <-chan struct{}) {
	for {
		k, err := l.dec.Next()
		select {
		case keys <- keyResult{key: k, err: err}:
		case <-done:
			return
		}
		if err != nil {
			return
		}
	}
}

// makeRaw puts a terminal input into raw mode and returns the restore func,
// or nil when the input is not a terminal.
func (l *Loop) makeRaw() func() {
	f, ok := l.in.(fdReader)
	if !ok {
		return nil
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		l.logger.Warn("raw mode unavailable, keys stay line buffered", slog.Any("error", err))
		return nil
	}
	return func() {
		if err := term.Restore(fd, state); err != nil {
			l.logger.Warn("failed to restore terminal", slog.Any("error", err))
		}
	}
}

func (l *Loop) draw() error {
	_, err := l.renderer.Draw(l.out, l.size(), l.ctrl.State())
	return err
}
