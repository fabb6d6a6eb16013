// Package metrics provides tick observers that measure mesh quality without
// touching the simulation. The core never guards against numerical blow-up;
// [Finite] gives callers detection on the outside instead.
package metrics

import (
	"math"

	"github.com/san-kum/clothlab/internal/cloth"
)

// Metric samples the mesh once per tick.
type Metric interface {
	Name() string
	Observe(m *cloth.Mesh, tick int)
	Value() float64
	Reset()
}

// StretchError measures the mean relative rest-length violation across all
// constraints. A perfectly relaxed mesh scores zero; the value tracks how
// well the configured iteration count converges.
type StretchError struct {
	latest float64
	max    float64
}

func NewStretchError() *StretchError { return &StretchError{} }

func (s *StretchError) Name() string { return "stretch_error" }

func (s *StretchError) Observe(m *cloth.Mesh, tick int) {
	if len(m.Constraints) == 0 {
		s.latest = 0
		return
	}
	sum := 0.0
	for _, c := range m.Constraints {
		if c.Rest == 0 {
			continue
		}
		dist := m.Particles[c.A].Pos.Dist(m.Particles[c.B].Pos)
		sum += math.Abs(dist-c.Rest) / c.Rest
	}
	s.latest = sum / float64(len(m.Constraints))
	s.max = math.Max(s.max, s.latest)
}

func (s *StretchError) Value() float64 { return s.latest }
func (s *StretchError) Max() float64   { return s.max }
func (s *StretchError) Reset()         { s.latest, s.max = 0, 0 }

// KineticEnergy sums 0.5*|pos-prev|^2 over unpinned particles, treating each
// as unit mass. The position delta is the implied per-step velocity.
type KineticEnergy struct {
	latest float64
}

func NewKineticEnergy() *KineticEnergy { return &KineticEnergy{} }

func (k *KineticEnergy) Name() string { return "kinetic_energy" }

func (k *KineticEnergy) Observe(m *cloth.Mesh, tick int) {
	sum := 0.0
	for i := range m.Particles {
		p := &m.Particles[i]
		if p.Pinned {
			continue
		}
		d := p.Pos.Sub(p.Prev)
		sum += 0.5 * (d.X*d.X + d.Y*d.Y)
	}
	k.latest = sum
}

func (k *KineticEnergy) Value() float64 { return k.latest }
func (k *KineticEnergy) Reset()         { k.latest = 0 }

// Finite counts particles with a non-finite coordinate. Anything above zero
// means the simulation has diverged; the count only ever grows within a run
// because NaN propagates through the solver.
type Finite struct {
	latest float64
}

func NewFinite() *Finite { return &Finite{} }

func (f *Finite) Name() string { return "nonfinite_particles" }

func (f *Finite) Observe(m *cloth.Mesh, tick int) {
	n := 0
	for i := range m.Particles {
		if !m.Particles[i].Pos.Finite() {
			n++
		}
	}
	f.latest = float64(n)
}

func (f *Finite) Value() float64 { return f.latest }
func (f *Finite) Reset()         { f.latest = 0 }
