package xonix

import (
	"errors"
	"testing"
)

func TestTrailBeginAndExtend(t *testing.T) {
	g := NewGrid(10, 10)
	tr := NewTrail()

	tr.Begin(Point{X: 5, Y: 0}, Point{X: 5, Y: 1}, g)

	if !tr.Active() {
		t.Fatal("Trail should be active after Begin")
	}
	if tr.Len() != 1 {
		t.Errorf("Expected trail length 1, got %d", tr.Len())
	}
	if g.At(Point{X: 5, Y: 1}) != CellTrail {
		t.Error("First trail cell should be tagged on the grid")
	}
	if tr.Anchor() != (Point{X: 5, Y: 0}) {
		t.Errorf("Anchor should be (5, 0), got (%d, %d)", tr.Anchor().X, tr.Anchor().Y)
	}

	if err := tr.Extend(Point{X: 5, Y: 2}, g); err != nil {
		t.Fatalf("Extend to open cell failed: %v", err)
	}
	if tr.Len() != 2 {
		t.Errorf("Expected trail length 2, got %d", tr.Len())
	}
	head, ok := tr.Head()
	if !ok || head != (Point{X: 5, Y: 2}) {
		t.Errorf("Head should be (5, 2), got (%d, %d)", head.X, head.Y)
	}
	if !tr.Contains(Point{X: 5, Y: 1}) || !tr.Contains(Point{X: 5, Y: 2}) {
		t.Error("Trail should contain both drawn cells")
	}
}

func TestTrailHeadOfferIsNoOp(t *testing.T) {
	g := NewGrid(10, 10)
	tr := NewTrail()
	tr.Begin(Point{X: 5, Y: 0}, Point{X: 5, Y: 1}, g)

	// Standing still: offering the head back must not error or grow
	if err := tr.Extend(Point{X: 5, Y: 1}, g); err != nil {
		t.Fatalf("Offering the head cell should be a no-op, got %v", err)
	}
	if tr.Len() != 1 {
		t.Errorf("Expected trail length 1 after head offer, got %d", tr.Len())
	}
}

func TestTrailNonAdjacentIgnored(t *testing.T) {
	g := NewGrid(10, 10)
	tr := NewTrail()
	tr.Begin(Point{X: 5, Y: 0}, Point{X: 5, Y: 1}, g)

	if err := tr.Extend(Point{X: 8, Y: 8}, g); err != nil {
		t.Fatalf("Non-adjacent extend should be ignored, got %v", err)
	}
	if tr.Len() != 1 {
		t.Errorf("Expected trail length 1 after ignored extend, got %d", tr.Len())
	}
	if g.At(Point{X: 8, Y: 8}) != CellOpen {
		t.Error("Ignored extend should not tag the grid")
	}
}

func TestTrailRetraceUndoesHead(t *testing.T) {
	g := NewGrid(10, 10)
	tr := NewTrail()
	tr.Begin(Point{X: 5, Y: 0}, Point{X: 5, Y: 1}, g)
	if err := tr.Extend(Point{X: 5, Y: 2}, g); err != nil {
		t.Fatalf("Extend failed: %v", err)
	}

	// Stepping back onto the previous cell pops the head
	if err := tr.Extend(Point{X: 5, Y: 1}, g); err != nil {
		t.Fatalf("Retrace should not error, got %v", err)
	}
	if tr.Len() != 1 {
		t.Errorf("Expected trail length 1 after retrace, got %d", tr.Len())
	}
	if g.At(Point{X: 5, Y: 2}) != CellOpen {
		t.Error("Popped cell should revert to open")
	}
	if tr.Contains(Point{X: 5, Y: 2}) {
		t.Error("Popped cell should no longer be in the trail")
	}
	if !tr.Active() {
		t.Error("Trail should stay active with one cell left")
	}

	// Retracing the last cell back to the anchor empties the trail
	if err := tr.Extend(Point{X: 5, Y: 0}, g); err != nil {
		t.Fatalf("Retrace to anchor should not error, got %v", err)
	}
	if tr.Active() {
		t.Error("Trail should be inactive after retracing to the anchor")
	}
	if g.At(Point{X: 5, Y: 1}) != CellOpen {
		t.Error("Last popped cell should revert to open")
	}
}

func TestTrailSelfIntersection(t *testing.T) {
	g := NewGrid(10, 10)
	tr := NewTrail()

	// Draw a hook: down, down, right, up. Stepping left hits the trail body.
	tr.Begin(Point{X: 5, Y: 0}, Point{X: 5, Y: 1}, g)
	for _, p := range []Point{{X: 5, Y: 2}, {X: 6, Y: 2}, {X: 6, Y: 1}} {
		if err := tr.Extend(p, g); err != nil {
			t.Fatalf("Extend to (%d, %d) failed: %v", p.X, p.Y, err)
		}
	}

	err := tr.Extend(Point{X: 5, Y: 1}, g)
	if !errors.Is(err, ErrSelfIntersection) {
		t.Fatalf("Expected ErrSelfIntersection, got %v", err)
	}

	// The failed step must not have touched anything
	if tr.Len() != 4 {
		t.Errorf("Trail length should still be 4, got %d", tr.Len())
	}
	if g.At(Point{X: 5, Y: 1}) != CellTrail {
		t.Error("Revisited cell should still be tagged trail")
	}
}

func TestTrailClose(t *testing.T) {
	g := NewGrid(10, 10)
	tr := NewTrail()
	tr.Begin(Point{X: 5, Y: 0}, Point{X: 5, Y: 1}, g)
	if err := tr.Extend(Point{X: 5, Y: 2}, g); err != nil {
		t.Fatalf("Extend failed: %v", err)
	}

	path := tr.Close(Point{X: 5, Y: 3})

	want := []Point{{X: 5, Y: 0}, {X: 5, Y: 1}, {X: 5, Y: 2}, {X: 5, Y: 3}}
	if len(path) != len(want) {
		t.Fatalf("Expected path of %d points, got %d", len(want), len(path))
	}
	for i, p := range want {
		if path[i] != p {
			t.Errorf("Path[%d] should be (%d, %d), got (%d, %d)", i, p.X, p.Y, path[i].X, path[i].Y)
		}
	}

	if tr.Active() {
		t.Error("Trail should be inactive after Close")
	}
	if tr.Len() != 0 {
		t.Errorf("Trail should be empty after Close, got %d cells", tr.Len())
	}

	// Grid tags stay in place for the closure pass
	if g.At(Point{X: 5, Y: 1}) != CellTrail || g.At(Point{X: 5, Y: 2}) != CellTrail {
		t.Error("Close should leave trail tags on the grid")
	}
}

func TestTrailCloseEmpty(t *testing.T) {
	g := NewGrid(10, 10)
	tr := NewTrail()

	if path := tr.Close(Point{X: 5, Y: 0}); path != nil {
		t.Errorf("Closing an inactive trail should return nil, got %v", path)
	}

	// A trail fully retraced back to the anchor closes to nothing too
	tr.Begin(Point{X: 5, Y: 0}, Point{X: 5, Y: 1}, g)
	if err := tr.Extend(Point{X: 5, Y: 0}, g); err != nil {
		t.Fatalf("Retrace to anchor failed: %v", err)
	}
	if path := tr.Close(Point{X: 5, Y: 0}); path != nil {
		t.Errorf("Closing an emptied trail should return nil, got %v", path)
	}
}

func TestTrailDiscard(t *testing.T) {
	g := NewGrid(10, 10)
	tr := NewTrail()
	tr.Begin(Point{X: 5, Y: 0}, Point{X: 5, Y: 1}, g)
	for _, p := range []Point{{X: 5, Y: 2}, {X: 5, Y: 3}} {
		if err := tr.Extend(p, g); err != nil {
			t.Fatalf("Extend failed: %v", err)
		}
	}

	tr.Discard(g)

	if tr.Active() {
		t.Error("Trail should be inactive after Discard")
	}
	if tr.Len() != 0 {
		t.Errorf("Trail should be empty after Discard, got %d cells", tr.Len())
	}
	for _, p := range []Point{{X: 5, Y: 1}, {X: 5, Y: 2}, {X: 5, Y: 3}} {
		if g.At(p) != CellOpen {
			t.Errorf("Discarded cell (%d, %d) should revert to open", p.X, p.Y)
		}
	}
	if g.ClaimedCount() != 36 {
		t.Errorf("Discard should leave only the border claimed, got %d", g.ClaimedCount())
	}
}
