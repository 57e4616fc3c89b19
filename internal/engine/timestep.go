package engine

import "time"

// Timestep samples the clock once per loop iteration and counts frames to
// measure the frame rate.
type Timestep struct {
	clock Clock
	last  time.Time

	frameTime  time.Duration
	frameCount int
	frameRate  int
}

// NewTimestep creates a timestep sampling clock, starting now.
func NewTimestep(clock Clock) *Timestep {
	return &Timestep{
		clock: clock,
		last:  clock.Now(),
	}
}

// Delta returns the time since the previous sample and takes a new one.
// A clock that went backwards yields zero.
func (t *Timestep) Delta() time.Duration {
	now := t.clock.Now()
	d := now.Sub(t.last)
	t.last = now
	return max(d, 0)
}

// ElapsedTime returns the time since the last sample without taking one.
func (t *Timestep) ElapsedTime() time.Duration {
	return max(t.clock.Now().Sub(t.last), 0)
}

// TrackFrame counts a finished frame. Once at least a second of frame time
// has accumulated it returns the number of frames in that window and starts a
// new one.
func (t *Timestep) TrackFrame() (int, bool) {
	t.frameTime += t.ElapsedTime()
	t.frameCount++

	if t.frameTime < time.Second {
		return 0, false
	}

	t.frameRate = t.frameCount
	t.frameTime = 0
	t.frameCount = 0
	return t.frameRate, true
}

// FrameRate returns the last measured frame rate, zero until the first
// window completes.
func (t *Timestep) FrameRate() int {
	return t.frameRate
}
