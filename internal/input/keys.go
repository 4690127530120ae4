package input

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/san-kum/mandelterm/internal/view"
)

// KeyMap binds key names to navigation events. Names follow bubbletea's
// KeyMsg.String() so the same map serves tea.KeyMsg and decoded [Key] values.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "pan left")),
		Right:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "pan right")),
		Up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "pan up")),
		Down:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "pan down")),
		ZoomIn:  key.NewBinding(key.WithKeys("z", "Z"), key.WithHelp("z", "zoom in")),
		ZoomOut: key.NewBinding(key.WithKeys("x", "X"), key.WithHelp("x", "zoom out")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "exit")),
	}
}

// Event translates a key press. Unbound keys yield view.EventNone.
func (k KeyMap) Event(msg fmt.Stringer) view.Event {
	switch {
	case key.Matches(msg, k.Quit):
		return view.EventQuit
	case key.Matches(msg, k.Left):
		return view.EventPanLeft
	case key.Matches(msg, k.Right):
		return view.EventPanRight
	case key.Matches(msg, k.Up):
		return view.EventPanUp
	case key.Matches(msg, k.Down):
		return view.EventPanDown
	case key.Matches(msg, k.ZoomIn):
		return view.EventZoomIn
	case key.Matches(msg, k.ZoomOut):
		return view.EventZoomOut
	}
	return view.EventNone
}
