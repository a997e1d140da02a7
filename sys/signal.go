package sys

import (
	"os"
	"os/signal"
)

// TrapSignal runs f on each delivery of s until the returned stop is called
func TrapSignal(s os.Signal, f func()) (stop func()) {
	channel := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(channel, s)
	go func() {
		for {
			select {
			case <-channel:
				f()
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(channel)
		close(done)
	}
}
