package render

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/san-kum/mandelterm/internal/fractal"
	"github.com/san-kum/mandelterm/internal/palette"
	"github.com/san-kum/mandelterm/internal/view"
)

const (
	CursorHome = termenv.CSI + "H"

	statusFormat = "Zoom: %.2f, Center: (%.4f, %.4f), arrow keys: pan, Z/X: zoom, Ctrl+C: exit."
)

type Options struct {
	MaxIterations int
	CharAspect    float64
	Fallback      Size
	// SlowFrame is the render time above which a frame is logged as a
	// warning. Zero disables the check.
	SlowFrame time.Duration
}

// Frame is one fully regenerated picture plus its status line.
type Frame struct {
	Geometry fractal.Geometry
	// Body holds Geometry.Rows lines, each terminated by a newline.
	Body   string
	Status string
}

// Renderer turns a view into frames. It reuses its coordinate buffers
// between calls and must not be shared across goroutines.
type Renderer struct {
	ramp   palette.Ramp
	opts   Options
	grid   fractal.Grid
	logger *slog.Logger
}

func New(ramp palette.Ramp, opts Options, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{ramp: ramp, opts: opts, logger: logger}
}

// Render evaluates every cell for a terminal of the given size. Unknown
// dimensions fall back to Options.Fallback.
func (r *Renderer) Render(size Size, s view.State) Frame {
	start := time.Now()
	resolved, substituted := size.Resolve(r.opts.Fallback)
	if substituted {
		r.logger.Debug("terminal size unknown, using fallback",
			slog.Int("width", size.Width), slog.Int("height", size.Height),
			slog.Int("fallback_width", resolved.Width), slog.Int("fallback_height", resolved.Height))
	}
	geom := resolved.Geometry(r.opts.CharAspect)
	r.grid.Fill(geom, s.CenterX, s.CenterY, s.Zoom)

	var b strings.Builder
	b.Grow(geom.Rows * (geom.Columns*len(r.ramp.Entry(r.ramp.Len()-1)) + 1))
	for _, ci := range r.grid.Imag {
		for _, cr := range r.grid.Real {
			n := fractal.EscapeIterations(cr, ci, r.opts.MaxIterations)
			b.WriteString(r.ramp.Entry(r.ramp.Index(n, r.opts.MaxIterations)))
		}
		b.WriteByte('\n')
	}

	f := Frame{
		Geometry: geom,
		Body:     b.String(),
		Status:   Status(s, resolved.Width),
	}
	if took := time.Since(start); r.opts.SlowFrame > 0 && took > r.opts.SlowFrame {
		r.logger.Warn("slow frame",
			slog.Int("columns", geom.Columns), slog.Int("rows", geom.Rows),
			slog.Float64("zoom", s.Zoom), slog.Duration("took", took))
	}
	return f
}

// Draw renders a frame and emits cursor-home, the frame and the status line
// as a single write.
func (r *Renderer) Draw(w io.Writer, size Size, s view.State) (Frame, error) {
	f := r.Render(size, s)
	out := make([]byte, 0, len(CursorHome)+len(f.Body)+len(f.Status)+1)
	out = append(out, CursorHome...)
	out = append(out, f.Body...)
	out = append(out, f.Status...)
	out = append(out, '\n')
	_, err := w.Write(out)
	return f, err
}

// Status reports zoom and centre, truncated to width cells.
func Status(s view.State, width int) string {
	line := fmt.Sprintf(statusFormat, s.Zoom, s.CenterX, s.CenterY)
	if width <= 0 {
		return line
	}
	return runewidth.Truncate(line, width, "")
}
