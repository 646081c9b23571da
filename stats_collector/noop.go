package stats_collector

import "github.com/gin-gonic/gin"

var _ StatsCollector = (*noopCollector)(nil)

type noopCollector struct {
}

func (col *noopCollector) Name() string                            { return "no-op" }
func (col *noopCollector) RegisterGinEngine(*gin.Engine)           {}
func (col *noopCollector) AddBoundariesLoaded(origin string)       {}
func (col *noopCollector) AddSelectionServed(source string)        {}
func (col *noopCollector) AddLocateHit(num uint64)                 {}
func (col *noopCollector) AddLocateMiss(num uint64)                {}
func (col *noopCollector) SetRegionsMatched(matched, total uint64) {}

func NewNoopStatsCollector() StatsCollector {
	return &noopCollector{}
}
