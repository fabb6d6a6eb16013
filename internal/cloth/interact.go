package cloth

// FindNearest scans all particles in row-major order and returns the index
// of the one closest to pt among those strictly within maxRadius. Ties keep
// the earlier index. It returns false when no particle is in range, or when
// the nearest candidate is pinned: pinned particles are never selectable.
func (m *Mesh) FindNearest(pt Vec2, maxRadius float64) (int, bool) {
	best := -1
	bestDist := 0.0
	for i := range m.Particles {
		dist := m.Particles[i].Pos.Dist(pt)
		if dist < maxRadius && (best == -1 || dist < bestDist) {
			best = i
			bestDist = dist
		}
	}
	if best == -1 || m.Particles[best].Pinned {
		return -1, false
	}
	return best, true
}

// SetPosition overwrites the particle's current position without touching
// its previous position, so the displacement registers as instantaneous
// velocity on the next integration. Pinned particles reject repositioning;
// out-of-range indices are ignored.
func (m *Mesh) SetPosition(i int, pt Vec2) {
	if i < 0 || i >= len(m.Particles) || m.Particles[i].Pinned {
		return
	}
	m.Particles[i].Pos = pt
}
