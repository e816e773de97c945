package analysis

import (
	"context"
	"errors"
	"sync/atomic"
)

var ErrAnalysisInProgress = errors.New("analysis already in progress")

// Trigger allows a single outstanding analysis request at a time
type Trigger struct {
	analyzer Analyzer
	progress *Progress
	running  int32
}

func NewTrigger(analyzer Analyzer, progress *Progress) *Trigger {
	return &Trigger{
		analyzer: analyzer,
		progress: progress,
	}
}

// Run blocks until the analysis service answers. The progress indicator starts
// with the request and is cleared as soon as the analysis succeeds; after a
// failure it runs out on its own.
func (t *Trigger) Run(ctx context.Context) (*Result, error) {
	if !atomic.CompareAndSwapInt32(&t.running, 0, 1) {
		return nil, ErrAnalysisInProgress
	}
	defer atomic.StoreInt32(&t.running, 0)

	t.progress.Start()

	result, err := t.analyzer.Analyze(ctx)
	if err == nil {
		t.progress.Clear()
	}
	return result, err
}

func (t *Trigger) Running() bool {
	return atomic.LoadInt32(&t.running) == 1
}

func (t *Trigger) Progress() ProgressState {
	return t.progress.State()
}
