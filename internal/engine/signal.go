package engine

import "github.com/google/uuid"

// Completion asks the host to leave the test screen for the results.
type Completion struct {
	TestID uuid.UUID
	Words  int
}

// latch sends at most one Completion without ever blocking the sender.
type latch struct {
	ch    chan Completion
	fired bool
}

func newLatch(ch chan Completion) *latch {
	if ch == nil {
		ch = make(chan Completion, 1)
	}
	return &latch{ch: ch}
}

// fire reports whether the message was queued. A full channel drops it.
func (l *latch) fire(c Completion) bool {
	if l.fired {
		return false
	}
	l.fired = true
	select {
	case l.ch <- c:
		return true
	default:
		return false
	}
}
