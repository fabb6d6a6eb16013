package cloth

// Particle is one mass point of the mesh. Velocity is implicit in the
// difference between Pos and Prev.
type Particle struct {
	Pos    Vec2
	Prev   Vec2
	Pinned bool
}

// Constraint links two particles by index and tries to keep them at Rest
// distance. Constraints never own particles; any number of them may
// reference the same index.
type Constraint struct {
	A, B int
	Rest float64
}

// Mesh holds the particle grid and its constraint list. Particles are stored
// row-major in a single slice; constraints address them by index.
type Mesh struct {
	Rows, Cols  int
	Particles   []Particle
	Constraints []Constraint
}

// New builds a rows x cols grid with uniform spacing, the top-left particle
// at origin. The whole top row is pinned. Constraints are appended in a
// fixed order (per cell, row-major: right, down, down-right, down-left);
// relaxation results depend on this order, so it must not change.
func New(rows, cols int, spacing float64, origin Vec2) *Mesh {
	m := &Mesh{
		Rows:      rows,
		Cols:      cols,
		Particles: make([]Particle, rows*cols),
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			pos := Vec2{
				X: origin.X + float64(col)*spacing,
				Y: origin.Y + float64(row)*spacing,
			}
			m.Particles[row*cols+col] = Particle{
				Pos:    pos,
				Prev:   pos,
				Pinned: row == 0,
			}
		}
	}

	m.Constraints = make([]Constraint, 0, ConstraintCount(rows, cols))
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if col < cols-1 {
				m.link(row, col, row, col+1)
			}
			if row < rows-1 {
				m.link(row, col, row+1, col)
			}
			if row < rows-1 && col < cols-1 {
				m.link(row, col, row+1, col+1)
			}
			if row < rows-1 && col > 0 {
				m.link(row, col, row+1, col-1)
			}
		}
	}

	return m
}

func (m *Mesh) link(r1, c1, r2, c2 int) {
	a := m.Index(r1, c1)
	b := m.Index(r2, c2)
	m.Constraints = append(m.Constraints, Constraint{
		A:    a,
		B:    b,
		Rest: m.Particles[a].Pos.Dist(m.Particles[b].Pos),
	})
}

// Index converts grid coordinates to a particle index.
func (m *Mesh) Index(row, col int) int { return row*m.Cols + col }

// At returns the particle at grid coordinates.
func (m *Mesh) At(row, col int) *Particle { return &m.Particles[m.Index(row, col)] }

// ConstraintCount is the number of constraints New creates for a rows x cols
// grid: R(C-1) horizontal + (R-1)C vertical + 2(R-1)(C-1) diagonal.
func ConstraintCount(rows, cols int) int {
	return rows*(cols-1) + (rows-1)*cols + 2*(rows-1)*(cols-1)
}
