// Package metrics collects per-occurrence observations from the
// analysis: one record per examined argument, keyed by metric name and
// observed value.
package metrics

import (
	"sort"

	"optlint/internal/source"
)

// Recorder receives one observation per classified occurrence.
type Recorder interface {
	Record(at source.Span, metric, value string)
}

// Observation is a single recorded data point.
type Observation struct {
	At     source.Span
	Metric string
	Value  string
}

// Collector accumulates observations in order of arrival.
type Collector struct {
	observations []Observation
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Record(at source.Span, metric, value string) {
	c.observations = append(c.observations, Observation{At: at, Metric: metric, Value: value})
}

// Observations returns the recorded data points in arrival order.
func (c *Collector) Observations() []Observation {
	return c.observations
}

func (c *Collector) Len() int {
	return len(c.observations)
}

// Merge appends another collector's observations.
func (c *Collector) Merge(other *Collector) {
	if other == nil {
		return
	}
	c.observations = append(c.observations, other.observations...)
}

// Total is an aggregated count for one metric value.
type Total struct {
	Metric string
	Value  string
	Count  int
}

// Totals aggregates observations into sorted (metric, value) counts.
func (c *Collector) Totals() []Total {
	counts := make(map[[2]string]int)
	for _, o := range c.observations {
		counts[[2]string{o.Metric, o.Value}]++
	}
	totals := make([]Total, 0, len(counts))
	for k, n := range counts {
		totals = append(totals, Total{Metric: k[0], Value: k[1], Count: n})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Metric != totals[j].Metric {
			return totals[i].Metric < totals[j].Metric
		}
		return totals[i].Value < totals[j].Value
	})
	return totals
}

// Nop discards every observation.
type Nop struct{}

func (Nop) Record(source.Span, string, string) {}
