package autoadvance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// manualTimer captures callbacks instead of running them, so a test can
// fire a callback after it has been superseded.
func manualTimer() (*Timer, *[]func()) {
	var fired []func()
	t := New()
	t.after = func(_ time.Duration, fn func()) *time.Timer {
		fired = append(fired, fn)
		return time.AfterFunc(time.Hour, func() {})
	}
	return t, &fired
}

func TestTimer_FiredAfterCancelDoesNotRun(t *testing.T) {
	timer, fired := manualTimer()
	runs := 0

	timer.Schedule(time.Second, func() { runs++ })
	timer.Cancel()
	(*fired)[0]()

	assert.Equal(t, 0, runs)
}

func TestTimer_FiredAfterRescheduleDoesNotRun(t *testing.T) {
	timer, fired := manualTimer()
	var got []string

	timer.Schedule(time.Second, func() { got = append(got, "first") })
	timer.Schedule(time.Second, func() { got = append(got, "second") })
	(*fired)[0]()
	(*fired)[1]()
	(*fired)[1]()

	assert.Equal(t, []string{"second"}, got)
}

func TestTimer_FiredAfterStopDoesNotRun(t *testing.T) {
	timer, fired := manualTimer()
	runs := 0

	timer.Schedule(time.Second, func() { runs++ })
	timer.Stop()
	(*fired)[0]()

	assert.Equal(t, 0, runs)
	assert.False(t, timer.Pending())
}
