package metrics

import (
	"reversi/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines int
	Depth      int
	Evaluator  string
	Duration   time.Duration
	Nodes      int64 // Positions visited
	Leaves     int64 // Static evaluations at the depth limit
	Terminals  int64 // Positions scored by the rules
	Cutoffs    int64 // Alpha-beta prunes
}

type MoveMetric struct {
	Step  int
	Side  game.Side
	Move  game.Move
	Value float64
	SearchMetric
}

type GameMetric struct {
	StartingSide game.Side
	Result       game.Result
	DarkCount    int
	LightCount   int
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
	Passes       int
}

type Collector interface {
	Start(goroutines, depth int, evaluator string)
	AddNode()
	AddLeaf()
	AddTerminal()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	depth      int
	evaluator  string
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
	terminals  atomic.Int64
	cutoffs    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, depth int, evaluator string) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.depth = depth
	m.evaluator = evaluator
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.terminals.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Depth:      m.depth,
		Evaluator:  m.evaluator,
		Duration:   time.Since(m.startTime),
		Nodes:      m.nodes.Load(),
		Leaves:     m.leaves.Load(),
		Terminals:  m.terminals.Load(),
		Cutoffs:    m.cutoffs.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, depth int, evaluator string) {}
func (m *dummyCollector) AddNode()                                      {}
func (m *dummyCollector) AddLeaf()                                      {}
func (m *dummyCollector) AddTerminal()                                  {}
func (m *dummyCollector) AddCutoff()                                    {}
func (m *dummyCollector) Complete() SearchMetric                        { return SearchMetric{} }
