// Package cloth simulates a deformable 2D mesh as a mass-spring network.
//
// A [Mesh] owns a rectangular grid of particles linked by distance
// constraints. Each tick advances the system with position-based (Verlet)
// integration followed by a fixed number of Gauss-Seidel relaxation passes
// over the constraint list:
//
//	m := cloth.New(20, 30, 20, cloth.Vec2{X: 100, Y: 50})
//	m.Step(cloth.Params{Gravity: 980, Damping: 0.99, Dt: 0.016, Iterations: 5})
//
// Velocity is never stored: it is reconstructed each step from the delta
// between a particle's current and previous position, so overwriting a
// position through [Mesh.SetPosition] is felt as an instantaneous velocity
// on the next integration.
//
// The package is single-threaded by design. A tick mutates particle state in
// place and runs to completion before returning; callers that render from
// another goroutine must snapshot or synchronize themselves.
package cloth
