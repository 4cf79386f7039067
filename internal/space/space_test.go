package space

import (
	"testing"

	"mycon/internal/data"
)

func TestGetUninitializedIsSpace(t *testing.T) {
	s := New()

	if got := s.Get(data.Point{X: -100, Y: 100}); got != data.Space {
		t.Errorf("Get(unwritten) = %d, want %d", got, data.Space)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	s := New()
	p := data.Point{X: 3, Y: -6}

	s.Set(p, 45)

	if got := s.Get(p); got != 45 {
		t.Errorf("Get(p) = %d, want 45", got)
	}
}

func TestSetGetLargeCoordinates(t *testing.T) {
	s := New()
	p := data.Point{X: 2147483647, Y: -1029771328}

	s.Set(p, 1307812)

	if got := s.Get(p); got != 1307812 {
		t.Errorf("Get(p) = %d, want 1307812", got)
	}
}

func TestWriteSpaceToUnallocatedIsNoop(t *testing.T) {
	s := New()

	s.Set(data.Point{X: 0, Y: 0}, data.Space)

	minX, minY := s.Min()
	maxX, maxY := s.Max()
	if minX != 0 || minY != 0 || maxX != 0 || maxY != 0 {
		t.Errorf("bounds affected by writing space to unwritten cell: min=(%d,%d) max=(%d,%d)", minX, minY, maxX, maxY)
	}
}

func TestBoundsGrow(t *testing.T) {
	s := New()

	s.Set(data.Point{X: 0, Y: 0}, 42)
	s.Set(data.Point{X: -3, Y: 5}, 1)
	s.Set(data.Point{X: 2, Y: -1}, 2)

	minX, minY := s.Min()
	maxX, maxY := s.Max()

	if minX != -3 || minY != -1 || maxX != 2 || maxY != 5 {
		t.Errorf("bounds = min(%d,%d) max(%d,%d), want min(-3,-1) max(2,5)", minX, minY, maxX, maxY)
	}
}

func TestBoundsRecomputeOnShrink(t *testing.T) {
	s := New()

	s.Set(data.Point{X: 0, Y: 0}, 42)
	s.Set(data.Point{X: -2, Y: 3}, 1)
	s.Set(data.Point{X: -2, Y: 3}, data.Space)

	minX, minY := s.Min()
	maxX, maxY := s.Max()

	if minX != 0 || minY != 0 || maxX != 0 || maxY != 0 {
		t.Errorf("bounds did not recompute after shrink: min(%d,%d) max(%d,%d)", minX, minY, maxX, maxY)
	}
}

func TestBoundsEmptyWhenAllCleared(t *testing.T) {
	s := New()
	p := data.Point{X: 7, Y: -7}

	s.Set(p, 1)
	s.Set(p, data.Space)

	minX, minY := s.Min()
	maxX, maxY := s.Max()

	if minX != 0 || minY != 0 || maxX != 0 || maxY != 0 {
		t.Errorf("bounds not reset to origin when empty: min(%d,%d) max(%d,%d)", minX, minY, maxX, maxY)
	}
}

func TestReadSplitsLines(t *testing.T) {
	code := "123\n456\n789"
	s := Read(code)

	for i := int32(0); i < 9; i++ {
		want := i + '1'
		got := s.Get(data.Point{X: i % 3, Y: i / 3})
		if got != want {
			t.Errorf("Get(%d) = %d, want %d", i, got, want)
		}
	}

	_, maxY := s.Max()
	if maxY != 2 {
		t.Errorf("max y = %d, want 2", maxY)
	}
}

func TestReadSkipsFormFeedAndCarriageReturn(t *testing.T) {
	s := Read("a\x0Cb\r\nc")

	if got := s.Get(data.Point{X: 0, Y: 0}); got != 'a' {
		t.Errorf("Get(0,0) = %d, want 'a'", got)
	}
	if got := s.Get(data.Point{X: 1, Y: 0}); got != 'b' {
		t.Errorf("Get(1,0) = %d, want 'b' (form feed must not advance column)", got)
	}
	if got := s.Get(data.Point{X: 0, Y: 1}); got != 'c' {
		t.Errorf("Get(0,1) = %d, want 'c'", got)
	}
}

func TestNewPositionInsideBounds(t *testing.T) {
	s := New()
	s.Set(data.Point{X: 0, Y: 0}, 1)
	s.Set(data.Point{X: 5, Y: 5}, 2)

	p := data.Point{X: 2, Y: 2}
	d := data.East

	got := s.NewPosition(p, d)
	want := p.Add(d)
	if got != want {
		t.Errorf("NewPosition = %v, want %v", got, want)
	}
}

func TestNewPositionWraps(t *testing.T) {
	s := New()
	s.Set(data.Point{X: 0, Y: 0}, 1)
	s.Set(data.Point{X: 10, Y: 0}, 2)

	p := data.Point{X: 10, Y: 0}
	d := data.East

	if !s.IsLast(p, d) {
		t.Fatalf("expected IsLast to be true at the east edge")
	}

	got := s.NewPosition(p, d)
	want := data.Point{X: 0, Y: 0}
	if got != want {
		t.Errorf("NewPosition wrapped to %v, want %v", got, want)
	}
}

func TestNewPositionWrapsOverHugeGap(t *testing.T) {
	s := New()
	s.Set(data.Point{X: -2000000000, Y: 0}, 1)
	s.Set(data.Point{X: 2000000000, Y: 0}, 2)

	p := data.Point{X: 2000000000, Y: 0}
	d := data.East

	got := s.NewPosition(p, d)
	want := data.Point{X: -2000000000, Y: 0}
	if got != want {
		t.Errorf("NewPosition = %v, want %v (single jump, not iterative stepping)", got, want)
	}
}
