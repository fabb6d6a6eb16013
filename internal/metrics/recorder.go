package metrics

import (
	"sort"

	"github.com/san-kum/clothlab/internal/cloth"
)

// Recorder drives a set of metrics each tick and keeps their value traces.
// It satisfies the driver's Observer interface.
type Recorder struct {
	metrics []Metric
	Ticks   []int
	Traces  map[string][]float64
}

func NewRecorder(ms ...Metric) *Recorder {
	return &Recorder{
		metrics: ms,
		Traces:  make(map[string][]float64),
	}
}

func (r *Recorder) OnTick(m *cloth.Mesh, tick int) {
	r.Ticks = append(r.Ticks, tick)
	for _, metric := range r.metrics {
		metric.Observe(m, tick)
		r.Traces[metric.Name()] = append(r.Traces[metric.Name()], metric.Value())
	}
}

// Names returns the recorded metric names in sorted order.
func (r *Recorder) Names() []string {
	names := make([]string, 0, len(r.Traces))
	for name := range r.Traces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Final returns the last recorded value for each metric.
func (r *Recorder) Final() map[string]float64 {
	out := make(map[string]float64, len(r.Traces))
	for name, trace := range r.Traces {
		if len(trace) > 0 {
			out[name] = trace[len(trace)-1]
		}
	}
	return out
}
