package cloth_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/clothlab/internal/cloth"
)

func TestCloth(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Cloth Suite")
}

// pair builds a two-particle mesh with a single constraint, for probing the
// relaxation rule in isolation.
func pair(p1, p2 cloth.Vec2, rest float64, pin1, pin2 bool) *cloth.Mesh {
	return &cloth.Mesh{
		Rows: 1, Cols: 2,
		Particles: []cloth.Particle{
			{Pos: p1, Prev: p1, Pinned: pin1},
			{Pos: p2, Prev: p2, Pinned: pin2},
		},
		Constraints: []cloth.Constraint{{A: 0, B: 1, Rest: rest}},
	}
}

var _ = Describe("constraint relaxation", func() {
	It("moves a stretched free pair symmetrically back to rest length", func() {
		m := pair(cloth.Vec2{X: 0, Y: 0}, cloth.Vec2{X: 10, Y: 0}, 5, false, false)

		m.Relax()

		// Excess is 5; each endpoint absorbs half of it.
		Expect(m.Particles[0].Pos.X).To(BeNumerically("~", 2.5, 1e-12))
		Expect(m.Particles[1].Pos.X).To(BeNumerically("~", 7.5, 1e-12))
		Expect(m.Particles[0].Pos.Y).To(BeZero())
		Expect(m.Particles[1].Pos.Y).To(BeZero())
	})

	It("pushes a compressed pair apart", func() {
		m := pair(cloth.Vec2{X: 0, Y: 0}, cloth.Vec2{X: 2, Y: 0}, 6, false, false)

		m.Relax()

		Expect(m.Particles[0].Pos.X).To(BeNumerically("~", -2, 1e-12))
		Expect(m.Particles[1].Pos.X).To(BeNumerically("~", 4, 1e-12))
	})

	It("converges toward rest length without overshooting", func() {
		for _, d0 := range []float64{1, 4.9, 5.1, 20} {
			m := pair(cloth.Vec2{X: 0, Y: 0}, cloth.Vec2{X: d0, Y: 0}, 5, false, false)
			errBefore := d0 - 5

			m.Relax()

			dist := m.Particles[0].Pos.Dist(m.Particles[1].Pos)
			errAfter := dist - 5
			Expect(errAfter * errBefore).To(BeNumerically(">=", 0),
				"correction must not overshoot past rest length")
			Expect(errAfter).To(BeNumerically("~", 0, 1e-12))
		}
	})

	It("skips coincident particles instead of dividing by zero", func() {
		m := pair(cloth.Vec2{X: 3, Y: 3}, cloth.Vec2{X: 3, Y: 3}, 5, false, false)

		m.Relax()

		Expect(m.Particles[0].Pos).To(Equal(cloth.Vec2{X: 3, Y: 3}))
		Expect(m.Particles[1].Pos).To(Equal(cloth.Vec2{X: 3, Y: 3}))
	})

	It("gives the whole correction to the free endpoint when the other is pinned", func() {
		m := pair(cloth.Vec2{X: 0, Y: 0}, cloth.Vec2{X: 10, Y: 0}, 5, true, false)

		m.Relax()

		Expect(m.Particles[0].Pos.X).To(BeZero())
		// Only half the excess is corrected in a single pass: the offset is
		// computed for symmetric motion and the pinned side's share is lost.
		Expect(m.Particles[1].Pos.X).To(BeNumerically("~", 7.5, 1e-12))
	})

	It("is a no-op when both endpoints are pinned", func() {
		m := pair(cloth.Vec2{X: 0, Y: 0}, cloth.Vec2{X: 10, Y: 0}, 5, true, true)

		m.Relax()

		Expect(m.Particles[0].Pos).To(Equal(cloth.Vec2{}))
		Expect(m.Particles[1].Pos).To(Equal(cloth.Vec2{X: 10, Y: 0}))
	})

	It("sees earlier corrections within the same pass", func() {
		// Three collinear particles, two chained constraints. Solving the
		// first constraint moves the middle particle before the second
		// constraint reads it: the final middle position differs from a
		// double-buffered (Jacobi) solve.
		m := &cloth.Mesh{
			Rows: 1, Cols: 3,
			Particles: []cloth.Particle{
				{Pos: cloth.Vec2{X: 0, Y: 0}, Prev: cloth.Vec2{X: 0, Y: 0}, Pinned: true},
				{Pos: cloth.Vec2{X: 10, Y: 0}, Prev: cloth.Vec2{X: 10, Y: 0}},
				{Pos: cloth.Vec2{X: 20, Y: 0}, Prev: cloth.Vec2{X: 20, Y: 0}},
			},
			Constraints: []cloth.Constraint{
				{A: 0, B: 1, Rest: 5},
				{A: 1, B: 2, Rest: 5},
			},
		}

		m.Relax()

		// First constraint: particle 1 pulled to x=7.5. Second constraint
		// then sees gap 12.5 and splits the excess 7.5 around it.
		Expect(m.Particles[1].Pos.X).To(BeNumerically("~", 11.25, 1e-12))
		Expect(m.Particles[2].Pos.X).To(BeNumerically("~", 16.25, 1e-12))
	})
})
