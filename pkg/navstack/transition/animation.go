package transition

import "time"

// settle animates the strip offset between two resting positions.
type settle struct {
	from, to float64
	start    time.Time
	duration time.Duration
	active   bool
}

func (s *settle) valueAt(now time.Time) (float64, bool) {
	if !s.active {
		return 0, false
	}
	elapsed := now.Sub(s.start)
	if s.duration <= 0 || elapsed >= s.duration {
		s.active = false
		return s.to, false
	}
	if elapsed < 0 {
		elapsed = 0
	}
	p := easeInOut(float64(elapsed) / float64(s.duration))
	return s.from + (s.to-s.from)*p, true
}

// easeInOut is a cubic ease, slow at both ends.
func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}
