package cloth

// Params are the per-tick physics coefficients. They are plain data so a
// caller may vary them between ticks.
type Params struct {
	Gravity    float64 // vertical acceleration, world units per second squared
	Damping    float64 // velocity attenuation per step, 0 < Damping <= 1
	Dt         float64 // fixed time step in seconds
	Iterations int     // relaxation passes per tick
}

// Integrate advances every unpinned particle one Verlet step. The implied
// velocity (Pos - Prev) is scaled by damping, Prev captures the pre-update
// position, and gravity acts on the vertical axis only. Pinned particles are
// left untouched, Prev included.
func (m *Mesh) Integrate(p Params) {
	g := p.Gravity * p.Dt * p.Dt
	for i := range m.Particles {
		pt := &m.Particles[i]
		if pt.Pinned {
			continue
		}
		v := pt.Pos.Sub(pt.Prev).Scale(p.Damping)
		pt.Prev = pt.Pos
		pt.Pos.X += v.X
		pt.Pos.Y += v.Y + g
	}
}

// Relax runs one Gauss-Seidel pass over the constraint list in construction
// order. Corrections are applied in place, so earlier constraints in the
// pass influence later ones. Coincident endpoints (dist == 0) are skipped to
// avoid dividing by zero; pinned endpoints absorb no correction.
func (m *Mesh) Relax() {
	for _, c := range m.Constraints {
		p1 := &m.Particles[c.A]
		p2 := &m.Particles[c.B]

		d := p2.Pos.Sub(p1.Pos)
		dist := d.Len()
		if dist == 0 {
			continue
		}

		offset := d.Scale(0.5 * (dist - c.Rest) / dist)
		if !p1.Pinned {
			p1.Pos = p1.Pos.Add(offset)
		}
		if !p2.Pinned {
			p2.Pos = p2.Pos.Sub(offset)
		}
	}
}

// Step runs one tick: integration once, then p.Iterations relaxation passes.
// The order is fixed; relaxation is never interleaved with integration.
func (m *Mesh) Step(p Params) {
	m.Integrate(p)
	for i := 0; i < p.Iterations; i++ {
		m.Relax()
	}
}
