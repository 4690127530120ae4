package view

// Controller owns the view state for a session. It is driven by exactly one
// goroutine and needs no locking.
type Controller struct {
	state    State
	controls Controls
	handled  int
}

func NewController(initial State, controls Controls) *Controller {
	return &Controller{state: initial, controls: controls}
}

// Handle applies e and reports whether the session should keep running.
// Every event other than EventQuit is followed by a redraw.
func (c *Controller) Handle(e Event) bool {
	if e == EventQuit {
		return false
	}
	c.state = c.state.Apply(e, c.controls)
	c.handled++
	return true
}

func (c *Controller) State() State { return c.state }

// Handled returns the number of events that led to a redraw.
func (c *Controller) Handled() int { return c.handled }
