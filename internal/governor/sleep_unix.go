//go:build !windows

package governor

import (
	"time"

	"golang.org/x/sys/unix"
)

// preciseSleep sleeps for d using unix.Nanosleep, which has finer
// granularity than time.Sleep's runtime-timer path on the platforms
// this cabinet actually ships to. time.Sleep remains the fallback on
// platforms without unix.Nanosleep (see sleep_other.go).
func preciseSleep(d time.Duration) {
	if d <= 0 {
		return
	}
	req := unix.NsecToTimespec(d.Nanoseconds())
	for {
		rem := &unix.Timespec{}
		err := unix.Nanosleep(&req, rem)
		if err == nil {
			return
		}
		req = *rem
	}
}
