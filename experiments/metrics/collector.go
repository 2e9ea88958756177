package metrics

import (
	"time"
)

type SearchMetric struct {
	Depth     int
	Pruning   bool
	Duration  time.Duration
	Nodes     int // Positions entered by the search
	Leaves    int // Positions scored by the heuristic at the depth limit
	Terminals int // Won or tied positions
	Cutoffs   int // Sibling loops stopped by alpha-beta
	Score     int // Score of the chosen move
}

type MoveMetric struct {
	Step   int
	Player string
	Move   int
	SearchMetric
}

type GameMetric struct {
	ID             string
	StartingPlayer string
	Winner         string // Final status
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector counts search events for a single move decision. The search is sequential,
// so implementations need no synchronization.
type Collector interface {
	Start(depth int, pruning bool)
	AddNode()
	AddLeaf()
	AddTerminal()
	AddCutoff()
	SetScore(score int)
	Complete() SearchMetric
}

type collector struct {
	startTime time.Time
	metric    SearchMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int, pruning bool) {
	m.startTime = time.Now()
	m.metric = SearchMetric{Depth: depth, Pruning: pruning}
}

func (m *collector) AddNode()           { m.metric.Nodes++ }
func (m *collector) AddLeaf()           { m.metric.Leaves++ }
func (m *collector) AddTerminal()       { m.metric.Terminals++ }
func (m *collector) AddCutoff()         { m.metric.Cutoffs++ }
func (m *collector) SetScore(score int) { m.metric.Score = score }

func (m *collector) Complete() SearchMetric {
	metric := m.metric
	metric.Duration = time.Since(m.startTime)
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, pruning bool) {}
func (m *dummyCollector) AddNode()                      {}
func (m *dummyCollector) AddLeaf()                      {}
func (m *dummyCollector) AddTerminal()                  {}
func (m *dummyCollector) AddCutoff()                    {}
func (m *dummyCollector) SetScore(score int)            {}
func (m *dummyCollector) Complete() SearchMetric        { return SearchMetric{} }
