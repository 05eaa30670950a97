//go:build windows

package governor

import "time"

// preciseSleep falls back to time.Sleep on platforms without
// unix.Nanosleep.
func preciseSleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
