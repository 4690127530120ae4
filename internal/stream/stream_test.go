package stream_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math"
	"strings"
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mandelterm/internal/fractal"
	"github.com/san-kum/mandelterm/internal/palette"
	"github.com/san-kum/mandelterm/internal/render"
	"github.com/san-kum/mandelterm/internal/stream"
	"github.com/san-kum/mandelterm/internal/view"
)

// screenSetup is what the loop writes before its first frame: hide the
// cursor, clear, move to 1;1.
const screenSetup = "\x1b[?25l\x1b[2J\x1b[1;1H"

var _ = Describe("Loop", func() {
	var (
		out      *bytes.Buffer
		ctrl     *view.Controller
		renderer *render.Renderer
		size     stream.SizeFunc
		quiet    *slog.Logger
	)

	BeforeEach(func() {
		out = &bytes.Buffer{}
		ctrl = view.NewController(
			view.State{CenterX: -0.5, CenterY: 0, Zoom: 1},
			view.Controls{PanSpeed: 0.1, ZoomFactor: 1.2},
		)
		ramp, err := palette.Build(palette.DefaultGlyphs, true, nil)
		Expect(err).NotTo(HaveOccurred())
		quiet = slog.New(slog.NewTextHandler(io.Discard, nil))
		renderer = render.New(ramp, render.Options{
			MaxIterations: fractal.DefaultMaxIterations,
			CharAspect:    fractal.DefaultCharAspect,
			Fallback:      render.Size{Width: 80, Height: 24},
		}, quiet)
		size = func() render.Size { return render.Size{Width: 40, Height: 12} }
	})

	run := func(ctx context.Context, keys string) error {
		return stream.New(strings.NewReader(keys), out, ctrl, renderer, size, quiet).Run(ctx)
	}

	It("clears the screen and draws once before any input", func() {
		Expect(run(context.Background(), "")).To(Succeed())
		Expect(out.String()).To(HavePrefix(screenSetup + render.CursorHome))
		Expect(out.String()).To(HaveSuffix("\x1b[?25h"))
		Expect(strings.Count(out.String(), render.CursorHome)).To(Equal(1))
	})

	It("redraws after every key, including unbound ones", func() {
		Expect(run(context.Background(), "zqc\x1b[C")).To(Succeed())
		Expect(strings.Count(out.String(), render.CursorHome)).To(Equal(1 + 4))
		Expect(ctrl.Handled()).To(Equal(4))
	})

	It("zooms to 1.2^5 after five z presses", func() {
		Expect(run(context.Background(), "zzzzz")).To(Succeed())
		Expect(ctrl.State().Zoom).To(BeNumerically("~", math.Pow(1.2, 5), 1e-12))
		Expect(out.String()).To(ContainSubstring("Zoom: 2.49"))
	})

	It("pans with arrow sequences", func() {
		Expect(run(context.Background(), "\x1b[D\x1b[B")).To(Succeed())
		Expect(ctrl.State().CenterX).To(BeNumerically("~", -0.6, 1e-15))
		Expect(ctrl.State().CenterY).To(BeNumerically("~", 0.1, 1e-15))
	})

	It("stops on ctrl+c without drawing again", func() {
		Expect(run(context.Background(), "z\x03zzz")).To(Succeed())
		Expect(strings.Count(out.String(), render.CursorHome)).To(Equal(2))
		Expect(ctrl.State().Zoom).To(BeNumerically("~", 1.2, 1e-15))
	})

	It("falls back to 80x24 when the size is unknown", func() {
		size = func() render.Size { return render.Size{} }
		Expect(run(context.Background(), "")).To(Succeed())
		frame := strings.TrimPrefix(out.String(), screenSetup+render.CursorHome)
		lines := strings.Split(frame, "\n")
		Expect(lines[0]).To(HaveLen(80))
		Expect(lines).To(HaveLen(22 + 2))
	})

	It("emits only palette glyphs in gray mode", func() {
		Expect(run(context.Background(), "x")).To(Succeed())
		Expect(out.String()).NotTo(ContainSubstring("\x1b[38;2;"))
	})

	It("returns the context error once cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		Expect(run(ctx, "zzz")).To(MatchError(context.Canceled))
		Expect(ctrl.Handled()).To(Equal(0))
	})

	Context("with live input", func() {
		var (
			pr     *io.PipeReader
			pw     *io.PipeWriter
			resize chan struct{}
			width  atomic.Int64
			errc   chan error
		)

		BeforeEach(func() {
			pr, pw = io.Pipe()
			DeferCleanup(pw.Close)
			resize = make(chan struct{})
			width.Store(40)
			size = func() render.Size { return render.Size{Width: int(width.Load()), Height: 12} }
			errc = make(chan error, 1)
		})

		start := func(ctx context.Context) {
			loop := stream.New(pr, out, ctrl, renderer, size, quiet).WithResize(resize)
			go func() { errc <- loop.Run(ctx) }()
		}

		It("redraws at the new size when the terminal is resized", func() {
			start(context.Background())

			width.Store(50)
			resize <- struct{}{}
			_, err := pw.Write([]byte{0x03})
			Expect(err).NotTo(HaveOccurred())

			var runErr error
			Eventually(errc).Should(Receive(&runErr))
			Expect(runErr).NotTo(HaveOccurred())

			frames := strings.Split(out.String(), render.CursorHome)
			Expect(frames).To(HaveLen(3))
			Expect(strings.Split(frames[1], "\n")[0]).To(HaveLen(40))
			lines := strings.Split(frames[2], "\n")
			Expect(lines[0]).To(HaveLen(50))
			Expect(lines).To(HaveLen(10 + 2))
			Expect(ctrl.State()).To(Equal(view.State{CenterX: -0.5, CenterY: 0, Zoom: 1}))
		})

		It("returns when cancelled while waiting for a key", func() {
			ctx, cancel := context.WithCancel(context.Background())
			start(ctx)
			resize <- struct{}{}
			cancel()

			var runErr error
			Eventually(errc).Should(Receive(&runErr))
			Expect(runErr).To(MatchError(context.Canceled))
			Expect(ctrl.Handled()).To(Equal(1))
		})
	})
})
