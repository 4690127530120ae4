package view

// Event is a navigation request from the input layer.
type Event int

const (
	EventNone Event = iota
	EventPanLeft
	EventPanRight
	EventPanUp
	EventPanDown
	EventZoomIn
	EventZoomOut
	EventResize
	EventQuit
)

var eventNames = [...]string{
	EventNone:     "none",
	EventPanLeft:  "pan-left",
	EventPanRight: "pan-right",
	EventPanUp:    "pan-up",
	EventPanDown:  "pan-down",
	EventZoomIn:   "zoom-in",
	EventZoomOut:  "zoom-out",
	EventResize:   "resize",
	EventQuit:     "quit",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[e]
}

// State is the visible region of the complex plane.
type State struct {
	CenterX float64
	CenterY float64
	Zoom    float64
}

// Controls are the fixed step sizes for navigation.
type Controls struct {
	PanSpeed   float64
	ZoomFactor float64
}

// Apply returns the state after e. Pan distance is PanSpeed/Zoom so a step
// always covers the same fraction of the visible region. Events that do not
// move the view return s unchanged. Zoom stays positive as long as it starts
// positive and ZoomFactor is positive.
func (s State) Apply(e Event, c Controls) State {
	step := c.PanSpeed / s.Zoom
	switch e {
	case EventPanLeft:
		s.CenterX -= step
	case EventPanRight:
		s.CenterX += step
	case EventPanUp:
		s.CenterY -= step
	case EventPanDown:
		s.CenterY += step
	case EventZoomIn:
		s.Zoom *= c.ZoomFactor
	case EventZoomOut:
		s.Zoom /= c.ZoomFactor
	}
	return s
}
