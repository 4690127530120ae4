//go:build !unix

package stream

// WatchResize returns a channel that never delivers on platforms without
// SIGWINCH.
func WatchResize() (<-chan struct{}, func()) {
	return nil, func() {}
}
