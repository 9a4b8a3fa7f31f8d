package object

import "time"

// Tween interpolates a value from From to To over Duration, starting at Start
// on the game clock. The curve decelerates toward the target (power1.out).
type Tween struct {
	From, To float64
	Start    time.Duration
	Duration time.Duration
}

// Progress returns how far the tween has run at now, in [0, 1].
func (t Tween) Progress(now time.Duration) float64 {
	if t.Duration <= 0 {
		return 1
	}
	p := float64(now-t.Start) / float64(t.Duration)
	return min(max(p, 0), 1)
}

// Value returns the interpolated value at now.
func (t Tween) Value(now time.Duration) float64 {
	p := t.Progress(now)
	eased := 1 - (1-p)*(1-p)
	return t.From + (t.To-t.From)*eased
}

// Done reports whether the tween has reached its target at now.
func (t Tween) Done(now time.Duration) bool {
	return t.Progress(now) >= 1
}
