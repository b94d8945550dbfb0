package countdown

// slot owns at most one pending tick. Every cancel bumps the generation so a
// callback that already left the timer queue sees it is stale and returns.
type slot struct {
	generation uint64
	timer      Timer
}

// acquire cancels the previous holder and returns a fresh generation.
func (s *slot) acquire() uint64 {
	s.cancel()
	return s.generation
}

// cancel stops the pending timer and invalidates its generation.
func (s *slot) cancel() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.generation++
}

func (s *slot) current(generation uint64) bool {
	return s.generation == generation
}

func (s *slot) hold(timer Timer) {
	s.timer = timer
}
