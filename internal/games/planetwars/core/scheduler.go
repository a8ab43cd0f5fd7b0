package core

// task is a periodic callback on the virtual clock.
type task struct {
	name     string
	interval float64
	next     float64
	fn       func()
}

// Scheduler drives fixed-interval tasks from a single virtual clock
// measured in milliseconds. Tasks never run concurrently.
type Scheduler struct {
	now   float64
	tasks []*task
}

// NewScheduler creates a scheduler with its clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Every registers fn to run each interval milliseconds, first at
// now+interval. Registration order breaks ties between tasks due at
// the same instant.
func (s *Scheduler) Every(name string, intervalMs float64, fn func()) {
	s.tasks = append(s.tasks, &task{
		name:     name,
		interval: intervalMs,
		next:     s.now + intervalMs,
		fn:       fn,
	})
}

// Now returns the current virtual time in milliseconds.
func (s *Scheduler) Now() float64 {
	return s.now
}

// Advance moves the clock forward by dtMs and runs every task that falls
// due, in due-time order. A task runs once per elapsed interval, so a
// long step can fire the same task several times.
func (s *Scheduler) Advance(dtMs float64) {
	if dtMs <= 0 {
		return
	}
	target := s.now + dtMs
	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		s.now = t.next
		t.next += t.interval
		t.fn()
	}
	s.now = target
}

// nextDue returns the earliest task due at or before target.
func (s *Scheduler) nextDue(target float64) *task {
	var due *task
	for _, t := range s.tasks {
		if t.next > target {
			continue
		}
		if due == nil || t.next < due.next {
			due = t
		}
	}
	return due
}
