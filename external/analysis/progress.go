package analysis

import (
	"math"
	"sync"
	"time"

	"github.com/foodwatch/foodwatch-api/consts"
)

// Progress is a cosmetic indicator for a running analysis. It fills linearly
// over a fixed duration and has no relation to the real progress of the job.
// It disappears once the duration elapses or when Clear is called.
type Progress struct {
	sync.Mutex
	duration time.Duration
	now      func() time.Time
	started  time.Time
	shown    bool
}

type ProgressState struct {
	Visible bool `json:"visible"`
	Percent int  `json:"percent"`
}

func NewProgress(duration time.Duration) *Progress {
	if duration <= 0 {
		duration = consts.ANALYSIS_PROGRESS_DURATION
	}

	return &Progress{
		duration: duration,
		now:      time.Now,
	}
}

func (p *Progress) Start() {
	p.Lock()
	defer p.Unlock()

	p.started = p.now()
	p.shown = true
}

func (p *Progress) Clear() {
	p.Lock()
	defer p.Unlock()

	p.shown = false
}

func (p *Progress) State() ProgressState {
	p.Lock()
	defer p.Unlock()

	if !p.shown {
		return ProgressState{}
	}

	elapsed := p.now().Sub(p.started)
	if elapsed >= p.duration {
		p.shown = false
		return ProgressState{}
	}

	percent := math.Min(float64(elapsed)/float64(p.duration)*100, 100)
	return ProgressState{
		Visible: true,
		Percent: int(math.Round(percent)),
	}
}
