package main

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

var (
	opaqueRed   = color.RGBA{R: 255, A: 255}
	opaqueGreen = color.RGBA{G: 255, A: 255}
	transparent = color.RGBA{}
)

func newTestSurface(t *testing.T) *RasterSurface {
	t.Helper()
	return NewRasterSurface(40, 40, nil)
}

func fillSurface(s *RasterSurface, hex string) {
	s.FillRect(s.Bounds(), resolvePaint(hex, 1))
}

func TestRasterSurfaceFillRect(t *testing.T) {
	s := newTestSurface(t)
	fillSurface(s, "#00FF00")
	for _, pt := range []image.Point{{0, 0}, {20, 20}, {39, 39}} {
		if got := s.Image().RGBAAt(pt.X, pt.Y); got != opaqueGreen {
			t.Errorf("pixel %v = %v, want %v", pt, got, opaqueGreen)
		}
	}
}

func TestRasterSurfaceFillTranslucent(t *testing.T) {
	s := newTestSurface(t)
	s.FillRect(s.Bounds(), resolvePaint("#FF0000", 0.5))
	got := s.Image().RGBAAt(10, 10)
	if got.A < 127 || got.A > 128 || got.R != got.A || got.G != 0 || got.B != 0 {
		t.Errorf("pixel = %v, want half transparent red", got)
	}
}

func TestRasterSurfacePenSegment(t *testing.T) {
	s := newTestSurface(t)
	s.DrawSegment(Position{10, 10}, Position{20, 20}, 3, PaintInk(resolvePaint("#FF0000", 1)))

	if got := s.Image().RGBAAt(15, 15); got != opaqueRed {
		t.Errorf("pixel on segment = %v, want %v", got, opaqueRed)
	}
	for _, pt := range []image.Point{{15, 5}, {30, 30}, {5, 30}} {
		if got := s.Image().RGBAAt(pt.X, pt.Y); got != transparent {
			t.Errorf("pixel %v off segment = %v, want transparent", pt, got)
		}
	}
}

func TestRasterSurfaceEraseSegment(t *testing.T) {
	s := newTestSurface(t)
	fillSurface(s, "#FF0000")

	s.DrawSegment(Position{5, 20}, Position{35, 20}, 6, EraseInk())

	if got := s.Image().RGBAAt(20, 20); got != transparent {
		t.Errorf("erased pixel = %v, want transparent", got)
	}
	if got := s.Image().RGBAAt(20, 5); got != opaqueRed {
		t.Errorf("untouched pixel = %v, want %v", got, opaqueRed)
	}
}

func TestRasterSurfaceInvalidPaintDrawsNothing(t *testing.T) {
	s := newTestSurface(t)
	before := s.Snapshot()

	bad := resolvePaint("#zz0000", 1)
	s.DrawSegment(Position{0, 0}, Position{39, 39}, 5, PaintInk(bad))
	s.FillRect(s.Bounds(), bad)

	if !bytes.Equal(s.Image().Pix, before.img.Pix) {
		t.Error("surface changed after drawing with NaN paint")
	}
}

func TestRasterSurfaceClearRect(t *testing.T) {
	s := newTestSurface(t)
	fillSurface(s, "#FF0000")
	s.ClearRect(s.Bounds())
	for i, v := range s.Image().Pix {
		if v != 0 {
			t.Fatalf("Pix[%d] = %d after clear, want 0", i, v)
		}
	}
}

func TestSnapshotIsIndependentOfSurface(t *testing.T) {
	s := newTestSurface(t)
	fillSurface(s, "#FF0000")
	snap := s.Snapshot()

	fillSurface(s, "#00FF00")
	if got := snap.img.RGBAAt(5, 5); got != opaqueRed {
		t.Errorf("snapshot pixel = %v after later drawing, want %v", got, opaqueRed)
	}

	s.Restore(snap)
	if got := s.Image().RGBAAt(5, 5); got != opaqueRed {
		t.Errorf("restored pixel = %v, want %v", got, opaqueRed)
	}

	fillSurface(s, "#00FF00")
	if got := snap.img.RGBAAt(5, 5); got != opaqueRed {
		t.Errorf("snapshot pixel = %v after drawing on restored surface, want %v", got, opaqueRed)
	}
}

func TestSegmentBounds(t *testing.T) {
	got := segmentBounds(Position{10, 20}, Position{4, 30}, 4)
	want := image.Rect(1, 17, 13, 33)
	if got != want {
		t.Errorf("segmentBounds = %v, want %v", got, want)
	}
}
