package metrics

import (
	"sync/atomic"
	"time"

	"github.com/coder/quartz"
)

// SearchMetric describes one move search.
type SearchMetric struct {
	Goroutines int
	Rollouts   int // Per candidate
	Candidates int
	Trials     int // Completed playouts
	Skipped    int
	Duration   time.Duration
}

type MoveMetric struct {
	Step   int
	Player int    // Seat
	Action string // play, draw or pass
	Tile   string
	SearchMetric
}

type GameMetric struct {
	ID             string
	Players        int
	Layout         string
	StartingPlayer int // Seat
	Opener         string
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Draws          int
	Passes         int
	Blocked        bool
}

type Collector interface {
	Start(goroutines, rollouts, candidates int)
	AddTrial()
	AddSkipped()
	Complete() SearchMetric
}

type collector struct {
	clock      quartz.Clock
	goroutines int
	rollouts   int
	candidates int
	startTime  time.Time
	trials     atomic.Int32
	skipped    atomic.Int32
}

func NewCollector(clock quartz.Clock) Collector {
	return &collector{clock: clock}
}

func (m *collector) Start(goroutines, rollouts, candidates int) {
	m.startTime = m.clock.Now()
	m.goroutines = goroutines
	m.rollouts = rollouts
	m.candidates = candidates
	m.trials.Store(0)
	m.skipped.Store(0)
}

func (m *collector) AddTrial() {
	m.trials.Add(1)
}

func (m *collector) AddSkipped() {
	m.skipped.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Rollouts:   m.rollouts,
		Candidates: m.candidates,
		Trials:     int(m.trials.Load()),
		Skipped:    int(m.skipped.Load()),
		Duration:   m.clock.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, rollouts, candidates int) {}
func (m *dummyCollector) AddTrial()                                  {}
func (m *dummyCollector) AddSkipped()                                {}
func (m *dummyCollector) Complete() SearchMetric                     { return SearchMetric{} }
