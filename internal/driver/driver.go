// Package driver wires the cloth core to front-ends. It owns the tick and
// pointer event surface so that terminal and windowed UIs stay free of
// physics state, and lets observers sample the mesh after every tick.
package driver

import (
	"context"
	"fmt"

	"github.com/san-kum/clothlab/internal/cloth"
)

// Handler is the event surface a front-end drives. Pointer coordinates are
// in world space; translating from screen or cell coordinates is the
// front-end's job.
type Handler interface {
	OnTick()
	OnPointerDown(pt cloth.Vec2)
	OnPointerDrag(pt cloth.Vec2)
	OnPointerUp()
}

// Observer is notified after each completed tick.
type Observer interface {
	OnTick(m *cloth.Mesh, tick int)
}

// Driver runs the simulation and tracks the dragged particle, if any.
// It is not safe for concurrent use; the caller owns the cadence.
type Driver struct {
	mesh       *cloth.Mesh
	params     cloth.Params
	pickRadius float64
	selected   int
	tick       int
	observers  []Observer
}

func New(mesh *cloth.Mesh, params cloth.Params, pickRadius float64) *Driver {
	return &Driver{
		mesh:       mesh,
		params:     params,
		pickRadius: pickRadius,
		selected:   -1,
	}
}

func (d *Driver) AddObserver(o Observer) { d.observers = append(d.observers, o) }

func (d *Driver) Mesh() *cloth.Mesh    { return d.mesh }
func (d *Driver) Params() cloth.Params { return d.params }
func (d *Driver) Tick() int            { return d.tick }

// Selected returns the particle currently being dragged.
func (d *Driver) Selected() (int, bool) { return d.selected, d.selected >= 0 }

// SetParams replaces the physics coefficients from the next tick on.
func (d *Driver) SetParams(p cloth.Params) { d.params = p }

// OnTick advances the mesh one step and notifies observers.
func (d *Driver) OnTick() {
	d.mesh.Step(d.params)
	d.tick++
	for _, o := range d.observers {
		o.OnTick(d.mesh, d.tick)
	}
}

// OnPointerDown selects the nearest particle within the pick radius. A press
// over nothing, or over a pinned particle, clears the selection.
func (d *Driver) OnPointerDown(pt cloth.Vec2) {
	if i, ok := d.mesh.FindNearest(pt, d.pickRadius); ok {
		d.selected = i
	} else {
		d.selected = -1
	}
}

// OnPointerDrag moves the selected particle to the pointer. The particle's
// previous position is left alone, so the drag reads as velocity on the
// next tick.
func (d *Driver) OnPointerDrag(pt cloth.Vec2) {
	if d.selected >= 0 {
		d.mesh.SetPosition(d.selected, pt)
	}
}

// OnPointerUp releases the selection. The mesh itself is untouched.
func (d *Driver) OnPointerUp() { d.selected = -1 }

// Run executes ticks back to back without pacing, for headless runs and
// benchmarks. Interactive front-ends call OnTick on their own timer instead.
func (d *Driver) Run(ctx context.Context, ticks int) error {
	if ticks < 0 {
		return fmt.Errorf("ticks must be non-negative, got %d", ticks)
	}
	for i := 0; i < ticks; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		d.OnTick()
	}
	return nil
}
