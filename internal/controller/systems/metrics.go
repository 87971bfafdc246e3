package systems

import (
	"sort"
	"sync"
	"time"
)

// SystemMetrics holds per-system update statistics.
type SystemMetrics struct {
	SystemName             string
	TotalUpdates           int64
	TotalEntitiesProcessed int64
	TotalDuration          time.Duration
	MaxUpdateDuration      time.Duration
	MinUpdateDuration      time.Duration
}

// AvgUpdateDuration is zero before the first update.
func (m SystemMetrics) AvgUpdateDuration() time.Duration {
	if m.TotalUpdates == 0 {
		return 0
	}
	return m.TotalDuration / time.Duration(m.TotalUpdates)
}

// MetricsAggregator collects update metrics from every system in a world.
// Reads may happen from another goroutine while ticks run.
type MetricsAggregator struct {
	systems map[string]*SystemMetrics
	mu      sync.RWMutex
}

func NewMetricsAggregator() *MetricsAggregator {
	return &MetricsAggregator{
		systems: make(map[string]*SystemMetrics),
	}
}

// RecordSystemUpdate records one update of systemName. A nil aggregator
// records nothing.
func (ma *MetricsAggregator) RecordSystemUpdate(systemName string, duration time.Duration, entitiesProcessed int) {
	if ma == nil {
		return
	}
	ma.mu.Lock()
	defer ma.mu.Unlock()

	metrics, exists := ma.systems[systemName]
	if !exists {
		metrics = &SystemMetrics{SystemName: systemName, MinUpdateDuration: duration}
		ma.systems[systemName] = metrics
	}

	metrics.TotalUpdates++
	metrics.TotalEntitiesProcessed += int64(entitiesProcessed)
	metrics.TotalDuration += duration
	if duration > metrics.MaxUpdateDuration {
		metrics.MaxUpdateDuration = duration
	}
	if duration < metrics.MinUpdateDuration {
		metrics.MinUpdateDuration = duration
	}
}

// GetSystemMetrics returns a copy of the metrics for one system.
func (ma *MetricsAggregator) GetSystemMetrics(systemName string) (SystemMetrics, bool) {
	ma.mu.RLock()
	defer ma.mu.RUnlock()

	metrics, exists := ma.systems[systemName]
	if !exists {
		return SystemMetrics{}, false
	}
	return *metrics, true
}

// GetAllMetrics returns copies of all system metrics sorted by name.
func (ma *MetricsAggregator) GetAllMetrics() []SystemMetrics {
	ma.mu.RLock()
	defer ma.mu.RUnlock()

	result := make([]SystemMetrics, 0, len(ma.systems))
	for _, metrics := range ma.systems {
		result = append(result, *metrics)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SystemName < result[j].SystemName })
	return result
}
