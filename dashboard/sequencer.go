package dashboard

import "sync"

// Sequencer orders overlapping re-fetches of one view. Every fetch takes a
// number from Next before it starts, and its result is only applied when no
// newer result has been applied yet.
type Sequencer struct {
	sync.Mutex
	issued  uint64
	applied uint64
}

func (s *Sequencer) Next() uint64 {
	s.Lock()
	defer s.Unlock()

	s.issued++
	return s.issued
}

// Apply runs fn for the result numbered seq and reports whether it ran. Stale
// results are discarded. fn runs under the lock so applications never
// interleave.
func (s *Sequencer) Apply(seq uint64, fn func()) bool {
	s.Lock()
	defer s.Unlock()

	if seq <= s.applied {
		return false
	}

	s.applied = seq
	if fn != nil {
		fn()
	}
	return true
}

// Applied returns the number of the last applied result.
func (s *Sequencer) Applied() uint64 {
	s.Lock()
	defer s.Unlock()

	return s.applied
}
