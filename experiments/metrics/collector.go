package metrics

import "time"

// SearchMetric summarizes one tree search: how deep it looked, how much
// of the tree it touched, and how long it took.
type SearchMetric struct {
	Depth    int
	Nodes    int
	Leaves   int
	Prunes   int
	Duration time.Duration
}

// MoveMetric ties a search to its turn in a game.
type MoveMetric struct {
	Turn  int
	Agent int
	SearchMetric
}

// GameMetric summarizes a finished game.
type GameMetric struct {
	Layout    string
	Winner    string
	Score     int
	Turns     int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// Collector accumulates search statistics. Strategies call it on every
// node; the dummy implementation makes that free when nobody is
// measuring.
type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddPrune()
	Complete() SearchMetric
}

type collector struct {
	depth     int
	nodes     int
	leaves    int
	prunes    int
	startTime time.Time
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(depth int) {
	c.depth = depth
	c.nodes = 0
	c.leaves = 0
	c.prunes = 0
	c.startTime = time.Now()
}

func (c *collector) AddNode()  { c.nodes++ }
func (c *collector) AddLeaf()  { c.leaves++ }
func (c *collector) AddPrune() { c.prunes++ }

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:    c.depth,
		Nodes:    c.nodes,
		Leaves:   c.leaves,
		Prunes:   c.prunes,
		Duration: time.Since(c.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (dummyCollector) Start(depth int)        {}
func (dummyCollector) AddNode()               {}
func (dummyCollector) AddLeaf()               {}
func (dummyCollector) AddPrune()              {}
func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
