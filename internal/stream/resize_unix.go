//go:build unix

package stream

import (
	"os"
	"os/signal"
	"syscall"
)

// WatchResize delivers on the returned channel after each SIGWINCH. Bursts
// collapse into one pending notification. stop releases the handler.
func WatchResize() (<-chan struct{}, func()) {
	sigCh := make(chan os.Signal, 1)
	eventCh := make(chan struct{}, 1)
	stopCh := make(chan struct{})
	doneCh := make(chan struct{})

	signal.Notify(sigCh, syscall.SIGWINCH)
	go func() {
		defer close(doneCh)
		for {
			select {
			case <-stopCh:
				return
			case <-sigCh:
				select {
				case eventCh <- struct{}{}:
				default:
				}
			}
		}
	}()

	stop := func() {
		signal.Stop(sigCh)
		close(stopCh)
		<-doneCh
	}
	return eventCh, stop
}
