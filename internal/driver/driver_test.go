package driver

import (
	"context"
	"testing"

	"github.com/san-kum/clothlab/internal/cloth"
)

func testDriver() *Driver {
	m := cloth.New(4, 4, 20, cloth.Vec2{})
	p := cloth.Params{Gravity: 980, Damping: 0.99, Dt: 0.016, Iterations: 5}
	return New(m, p, 20)
}

func TestPointerLifecycle(t *testing.T) {
	d := testDriver()

	if _, ok := d.Selected(); ok {
		t.Fatal("fresh driver should have no selection")
	}

	// Press near unpinned particle (2,1) at (20,40).
	d.OnPointerDown(cloth.Vec2{X: 21, Y: 41})
	sel, ok := d.Selected()
	if !ok {
		t.Fatal("expected a selection")
	}
	if sel != d.Mesh().Index(2, 1) {
		t.Errorf("selected %d, want %d", sel, d.Mesh().Index(2, 1))
	}

	d.OnPointerDrag(cloth.Vec2{X: 55, Y: 66})
	if got := d.Mesh().Particles[sel].Pos; got != (cloth.Vec2{X: 55, Y: 66}) {
		t.Errorf("drag moved particle to (%f,%f), want (55,66)", got.X, got.Y)
	}

	d.OnPointerUp()
	if _, ok := d.Selected(); ok {
		t.Error("release should clear the selection")
	}

	// Dragging with nothing selected is a no-op.
	before := d.Mesh().Particles[sel].Pos
	d.OnPointerDrag(cloth.Vec2{X: 1, Y: 1})
	if d.Mesh().Particles[sel].Pos != before {
		t.Error("drag without selection moved a particle")
	}
}

func TestPointerDownOverNothingClearsSelection(t *testing.T) {
	d := testDriver()

	d.OnPointerDown(cloth.Vec2{X: 21, Y: 41})
	if _, ok := d.Selected(); !ok {
		t.Fatal("expected a selection")
	}

	d.OnPointerDown(cloth.Vec2{X: 900, Y: 900})
	if _, ok := d.Selected(); ok {
		t.Error("press over empty space should clear the selection")
	}
}

func TestPointerDownOnPinnedSelectsNothing(t *testing.T) {
	d := testDriver()

	// (0,0) is pinned and the nearest candidate.
	d.OnPointerDown(cloth.Vec2{X: 1, Y: 1})
	if _, ok := d.Selected(); ok {
		t.Error("pinned particles must not be selectable")
	}
}

type countingObserver struct {
	ticks []int
}

func (c *countingObserver) OnTick(m *cloth.Mesh, tick int) {
	c.ticks = append(c.ticks, tick)
}

func TestRunNotifiesObservers(t *testing.T) {
	d := testDriver()
	obs := &countingObserver{}
	d.AddObserver(obs)

	if err := d.Run(context.Background(), 10); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if d.Tick() != 10 {
		t.Errorf("tick = %d, want 10", d.Tick())
	}
	if len(obs.ticks) != 10 {
		t.Fatalf("observer saw %d ticks, want 10", len(obs.ticks))
	}
	for i, tick := range obs.ticks {
		if tick != i+1 {
			t.Errorf("observation %d reported tick %d, want %d", i, tick, i+1)
		}
	}
}

func TestRunHonorsContext(t *testing.T) {
	d := testDriver()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := d.Run(ctx, 1000); err == nil {
		t.Error("expected context error")
	}
	if d.Tick() != 0 {
		t.Errorf("no tick should run after cancellation, got %d", d.Tick())
	}
}

func TestRunRejectsNegativeTicks(t *testing.T) {
	d := testDriver()
	if err := d.Run(context.Background(), -1); err == nil {
		t.Error("expected error for negative tick count")
	}
}
