// Package metrics exports search engine activity as Prometheus metrics.
//
// A Collector is fed through search.WithObserver(c.Observe) and records:
//
//   - backtrack_search_events_total{kind}: push, dead_end, backtrack, improve
//   - backtrack_search_depth: current stack depth
//   - backtrack_search_max_depth: deepest stack seen
//   - backtrack_search_best_score: best score so far (absent until one is found)
//   - backtrack_search_duration_seconds: wall time of completed searches
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/backtrack/search"
)

const namespace = "backtrack"

// Collector holds the search metrics. Observe is not synchronized: feed one
// search at a time.
type Collector struct {
	events    *prometheus.CounterVec
	depth     prometheus.Gauge
	maxDepth  prometheus.Gauge
	bestScore prometheus.Gauge
	duration  prometheus.Histogram

	deepest int
}

// NewCollector creates the metrics and registers them on reg.
// A nil reg registers nothing, which is handy in tests.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "events_total",
			Help:      "Traversal steps by kind.",
		}, []string{"kind"}),
		depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "depth",
			Help:      "Current traversal stack depth.",
		}),
		maxDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "max_depth",
			Help:      "Deepest traversal stack reached.",
		}),
		bestScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "best_score",
			Help:      "Score of the best path found so far.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Wall time of completed searches.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
	// Pre-create every kind so all series exist from the start.
	for _, k := range []search.EventKind{search.EventPush, search.EventDeadEnd, search.EventBacktrack, search.EventImprove} {
		c.events.WithLabelValues(k.String())
	}

	if reg == nil {
		return c, nil
	}
	for _, col := range []prometheus.Collector{c.events, c.depth, c.maxDepth, c.bestScore, c.duration} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// Observe records one traversal event. Pass it to search.WithObserver.
func (c *Collector) Observe(ev search.Event) {
	c.events.WithLabelValues(ev.Kind.String()).Inc()
	c.depth.Set(float64(ev.Depth))
	if ev.Depth > c.deepest {
		c.deepest = ev.Depth
		c.maxDepth.Set(float64(ev.Depth))
	}
	if ev.Kind == search.EventImprove {
		c.bestScore.Set(float64(ev.Score))
	}
}

// ObserveDuration records the wall time of a finished search started at start.
func (c *Collector) ObserveDuration(start time.Time) {
	c.duration.Observe(time.Since(start).Seconds())
}

// WriteTextfile writes everything gathered by g to path in the Prometheus
// text format, for the node_exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("metrics: write %q: %w", path, err)
	}

	return nil
}
