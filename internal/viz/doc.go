// Package viz is the interactive terminal front end built on Bubble Tea.
//
// Bubble Tea puts the terminal in raw mode, delivers key presses and
// resize notifications one message at a time, and writes each view as a
// single frame. [Model] forwards keys to the view controller and redraws the
// whole fractal on every message.
package viz
