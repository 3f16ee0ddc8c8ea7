package utils

import (
	"testing"
	"time"
)

func TestPause(t *testing.T) {
	originalSleep := sleep
	defer func() { sleep = originalSleep }()

	var slept []time.Duration
	sleep = func(d time.Duration) { slept = append(slept, d) }

	Pause(0)
	Pause(-time.Second)
	Pause(2 * time.Second)

	if len(slept) != 1 || slept[0] != 2*time.Second {
		t.Fatalf("expected a single 2s sleep, got %v", slept)
	}
}
