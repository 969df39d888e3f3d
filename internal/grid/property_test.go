package grid

import (
	"math/rand/v2"
	"testing"
)

// TestProperties drives random operation sequences over many catalog sizes
// and geometries and checks the invariants after every step.
func TestProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(20150101, 35))

	for round := 0; round < 300; round++ {
		rows := 1 + rng.IntN(4)
		cols := 1 + rng.IntN(6)
		n := rng.IntN(3*rows*cols + 2)

		c, err := New(n, Options{Rows: rows, Cols: cols, ScrollStep: 1 + rng.IntN(40), JumpStep: 1 + rng.IntN(80)})
		if err != nil {
			t.Fatalf("New(%d, %dx%d) error = %v", n, rows, cols, err)
		}
		c.SetViewport(80+rng.IntN(60), 24)
		c.SetLayout(newFakeLayout())

		lastNotified := c.Selected()
		c.OnSelectionChanged(func(_ *Controller, idx int) {
			if idx == lastNotified {
				t.Fatalf("notified unchanged index %d", idx)
			}
			lastNotified = idx
		})

		for step := 0; step < 200; step++ {
			before := c.Selected()
			_, prevTarget := c.Offsets()
			prevCurrent, _ := c.Offsets()
			op := rng.IntN(10)

			switch {
			case op < 6:
				c.Navigate(Direction(rng.IntN(6)))
			case op == 6:
				_ = c.Select(rng.IntN(n+2) - 1)
			case op == 7:
				_, _ = c.Activate(rng.IntN(n+2) - 1)
			case op == 8:
				if before >= 0 {
					_ = c.Select(before)
				}
			default:
				c.Tick()
				current, target := c.Offsets()
				if target != prevTarget {
					t.Fatalf("tick changed target %d -> %d", prevTarget, target)
				}
				if d0, d1 := abs(prevCurrent-target), abs(current-target); d1 > d0 {
					t.Fatalf("tick moved away from target: %d -> %d (target %d)", prevCurrent, current, target)
				}
				if (prevCurrent <= target) != (current <= target) && current != target {
					t.Fatalf("tick overshot: %d -> %d (target %d)", prevCurrent, current, target)
				}
			}

			checkInvariants(t, c, n)
			if c.Selected() != lastNotified {
				t.Fatalf("selection %d but last notification %d", c.Selected(), lastNotified)
			}
		}

		for i := 0; i < 10000 && c.NeedsTick(); i++ {
			c.Tick()
		}
		if current, target := c.Offsets(); current != target {
			t.Fatalf("scroll never converged: %d vs %d", current, target)
		}
	}
}

func checkInvariants(t *testing.T, c *Controller, n int) {
	t.Helper()
	sel := c.Selected()
	if n == 0 {
		if sel != -1 {
			t.Fatalf("empty catalog selected %d", sel)
		}
		return
	}
	if sel < 0 || sel >= n {
		t.Fatalf("selection %d out of [0, %d)", sel, n)
	}
	if c.Page() != c.Geometry().PageOf(sel) {
		t.Fatalf("page %d, but selection %d lives on page %d", c.Page(), sel, c.Geometry().PageOf(sel))
	}
	if _, target := c.Offsets(); target != -c.Page()*c.view.width {
		t.Fatalf("target offset %d, want %d for page %d", target, -c.Page()*c.view.width, c.Page())
	}
	a := c.Affordances()
	if a.Previous != (c.Page() > 0) {
		t.Fatalf("previous affordance %v on page %d", a.Previous, c.Page())
	}
	if a.Next != (c.Page() < c.Geometry().MaxPage(n)) {
		t.Fatalf("next affordance %v on page %d of %d", a.Next, c.Page(), c.PageCount())
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
