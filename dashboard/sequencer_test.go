package dashboard

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequencerDiscardsStaleResults(t *testing.T) {
	var s Sequencer

	first := s.Next()
	second := s.Next()

	view := ""
	assert.True(t, s.Apply(second, func() { view = "second" }))
	assert.False(t, s.Apply(first, func() { view = "first" }))
	assert.Equal(t, "second", view)
	assert.Equal(t, second, s.Applied())

	assert.False(t, s.Apply(second, nil))
}

func TestSequencerConcurrentApply(t *testing.T) {
	var s Sequencer

	seqs := make([]uint64, 50)
	for i := range seqs {
		seqs[i] = s.Next()
	}

	var wg sync.WaitGroup
	last := uint64(0)
	for _, seq := range seqs {
		wg.Add(1)
		go func(seq uint64) {
			defer wg.Done()
			s.Apply(seq, func() {
				assert.Greater(t, seq, last)
				last = seq
			})
		}(seq)
	}
	wg.Wait()

	assert.Equal(t, uint64(50), s.Applied())
	assert.Equal(t, uint64(50), last)
}
