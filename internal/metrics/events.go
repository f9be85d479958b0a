package metrics

import "github.com/prometheus/client_golang/prometheus"

// EventCollector exports the simulation's in-state telemetry counters
// (pet_died, daily_chest, ...) as a prometheus counter family. The
// snapshot func must return a consistent copy of the counter map; the
// session takes its mutex and clones before handing it over.
type EventCollector struct {
	desc     *prometheus.Desc
	snapshot func() map[string]int
}

// NewEventCollector builds a collector over a counter-map snapshot source.
func NewEventCollector(snapshot func() map[string]int) *EventCollector {
	return &EventCollector{
		desc: prometheus.NewDesc(
			"pet_events_total",
			"Total number of simulation events recorded in the save state",
			[]string{"event"},
			nil,
		),
		snapshot: snapshot,
	}
}

func (c *EventCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

func (c *EventCollector) Collect(ch chan<- prometheus.Metric) {
	for name, count := range c.snapshot() {
		ch <- prometheus.MustNewConstMetric(
			c.desc,
			prometheus.CounterValue,
			float64(count),
			name,
		)
	}
}
