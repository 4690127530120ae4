package view_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mandelterm/internal/view"
)

var defaults = view.State{CenterX: -0.5, CenterY: 0, Zoom: 1}
var controls = view.Controls{PanSpeed: 0.1, ZoomFactor: 1.2}

var _ = Describe("State", func() {
	DescribeTable("single transitions from the default view",
		func(e view.Event, expected view.State) {
			got := defaults.Apply(e, controls)
			Expect(got.CenterX).To(BeNumerically("~", expected.CenterX, 1e-15))
			Expect(got.CenterY).To(BeNumerically("~", expected.CenterY, 1e-15))
			Expect(got.Zoom).To(BeNumerically("~", expected.Zoom, 1e-15))
		},
		Entry("pan left", view.EventPanLeft, view.State{CenterX: -0.6, CenterY: 0, Zoom: 1}),
		Entry("pan right", view.EventPanRight, view.State{CenterX: -0.4, CenterY: 0, Zoom: 1}),
		Entry("pan up", view.EventPanUp, view.State{CenterX: -0.5, CenterY: -0.1, Zoom: 1}),
		Entry("pan down", view.EventPanDown, view.State{CenterX: -0.5, CenterY: 0.1, Zoom: 1}),
		Entry("zoom in", view.EventZoomIn, view.State{CenterX: -0.5, CenterY: 0, Zoom: 1.2}),
		Entry("zoom out", view.EventZoomOut, view.State{CenterX: -0.5, CenterY: 0, Zoom: 1 / 1.2}),
	)

	It("leaves the view alone on resize and unknown keys", func() {
		Expect(defaults.Apply(view.EventResize, controls)).To(Equal(defaults))
		Expect(defaults.Apply(view.EventNone, controls)).To(Equal(defaults))
	})

	It("pans by a distance inversely proportional to zoom", func() {
		zoomed := view.State{CenterX: 0, CenterY: 0, Zoom: 4}
		Expect(zoomed.Apply(view.EventPanRight, controls).CenterX).To(BeNumerically("~", 0.025, 1e-15))
	})

	It("restores centerX exactly after pan-left then pan-right", func() {
		for _, zoom := range []float64{1, 1.2, 1.44, 2} {
			s := view.State{CenterX: -0.5, CenterY: 0, Zoom: zoom}
			back := s.Apply(view.EventPanLeft, controls).Apply(view.EventPanRight, controls)
			Expect(back.CenterX).To(Equal(s.CenterX))
		}
	})

	It("restores zoom after zoom-in then zoom-out", func() {
		back := defaults.Apply(view.EventZoomIn, controls).Apply(view.EventZoomOut, controls)
		Expect(back.Zoom).To(BeNumerically("~", defaults.Zoom, 1e-12))
	})

	It("reaches 1.2^5 after five zoom-ins", func() {
		s := defaults
		for i := 0; i < 5; i++ {
			s = s.Apply(view.EventZoomIn, controls)
		}
		Expect(s.Zoom).To(BeNumerically("~", math.Pow(1.2, 5), 1e-12))
	})

	It("never drives zoom to zero or below", func() {
		s := defaults
		for i := 0; i < 2000; i++ {
			s = s.Apply(view.EventZoomOut, controls)
			Expect(s.Zoom).To(BeNumerically(">", 0))
		}
	})

	It("names events", func() {
		Expect(view.EventZoomIn.String()).To(Equal("zoom-in"))
		Expect(view.Event(99).String()).To(Equal("unknown"))
	})
})

var _ = Describe("Controller", func() {
	var c *view.Controller

	BeforeEach(func() {
		c = view.NewController(defaults, controls)
	})

	It("starts at the initial view", func() {
		Expect(c.State()).To(Equal(defaults))
		Expect(c.Handled()).To(Equal(0))
	})

	It("keeps running and counts redraws for navigation events", func() {
		Expect(c.Handle(view.EventZoomIn)).To(BeTrue())
		Expect(c.Handle(view.EventNone)).To(BeTrue())
		Expect(c.Handle(view.EventResize)).To(BeTrue())
		Expect(c.Handled()).To(Equal(3))
		Expect(c.State().Zoom).To(BeNumerically("~", 1.2, 1e-15))
	})

	It("stops on quit without touching the view", func() {
		c.Handle(view.EventPanDown)
		before := c.State()
		Expect(c.Handle(view.EventQuit)).To(BeFalse())
		Expect(c.State()).To(Equal(before))
		Expect(c.Handled()).To(Equal(1))
	})
})
