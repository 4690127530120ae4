// Package view holds the pan/zoom state of the viewer and the transitions
// that navigation events apply to it.
//
// [State] is a plain value: [State.Apply] returns a new value and never
// mutates shared data. [Controller] keeps the current value for one session.
//
// # Key Bindings
//
//	←/→/↑/↓ - Pan by PanSpeed/Zoom
//	Z       - Zoom in by ZoomFactor
//	X       - Zoom out by ZoomFactor
//	Ctrl+C  - Quit
//
// There is no clamping. Deep zoom eventually runs out of float64 precision.
package view
