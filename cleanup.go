package triangle

import "log/slog"

// release is one registered cleanup action.
type release struct {
	name string
	fn   func()
}

// cleanupStack holds release actions in acquisition order.
// Push right after a resource is acquired; run releases in reverse.
type cleanupStack struct {
	items []release
}

func (s *cleanupStack) push(name string, fn func()) {
	s.items = append(s.items, release{name: name, fn: fn})
}

func (s *cleanupStack) len() int {
	return len(s.items)
}

// run releases everything in LIFO order. Each action is popped before it
// runs, so no action ever runs twice and a second run does nothing.
func (s *cleanupStack) run(log *slog.Logger) {
	for len(s.items) > 0 {
		last := len(s.items) - 1
		r := s.items[last]
		s.items = s.items[:last]
		log.Debug("release", "resource", r.name)
		r.fn()
	}
}
