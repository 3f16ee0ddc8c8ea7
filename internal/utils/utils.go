package utils

import (
	"time"
)

var sleep = time.Sleep

// Pause blocks the caller for d. Non-positive durations return immediately.
func Pause(d time.Duration) {
	if d <= 0 {
		return
	}
	sleep(d)
}
