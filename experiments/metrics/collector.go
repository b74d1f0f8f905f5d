package metrics

import (
	"sync/atomic"
	"time"

	"gamey/game"
)

type SearchMetric struct {
	MaxDepth    int
	Duration    time.Duration
	Nodes       int // Interior nodes expanded
	Evaluations int // Leaves scored by the heuristic
	Terminals   int // Leaves scored as a win or a loss
}

type MoveMetric struct {
	Step   int
	Player game.PlayerID
	Bot    string
	Index  int // Cell index played, -1 on resignation
	Hash   game.StateHash
	SearchMetric
}

type GameMetric struct {
	Winner     game.PlayerID
	HasWinner  bool
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(maxDepth int)
	AddNode()
	AddEvaluation()
	AddTerminal()
	Complete() SearchMetric
}

type collector struct {
	maxDepth    int
	startTime   time.Time
	nodes       atomic.Int64
	evaluations atomic.Int64
	terminals   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(maxDepth int) {
	m.startTime = time.Now()
	m.maxDepth = maxDepth
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		MaxDepth:    m.maxDepth,
		Duration:    time.Since(m.startTime),
		Nodes:       int(m.nodes.Load()),
		Evaluations: int(m.evaluations.Load()),
		Terminals:   int(m.terminals.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(maxDepth int)     {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddEvaluation()         {}
func (m *dummyCollector) AddTerminal()           {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
