package main

import (
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

// Surface is the mutable raster the controller draws on.
type Surface interface {
	Bounds() image.Rectangle
	DrawSegment(from, to Position, width float64, ink Ink)
	FillRect(r image.Rectangle, p Paint)
	ClearRect(r image.Rectangle)
	Snapshot() Snapshot
	Restore(s Snapshot)
}

// Snapshot is an immutable copy of a surface's pixels.
type Snapshot struct {
	img *image.RGBA
}

func (s Snapshot) Bounds() image.Rectangle {
	if s.img == nil {
		return image.Rectangle{}
	}
	return s.img.Bounds()
}

// RasterSurface draws onto an RGBA image through a gg context. Strokes use
// round caps and joins.
type RasterSurface struct {
	dc     *gg.Context
	im     *image.RGBA
	mask   *gg.Context
	logger *slog.Logger
}

func NewRasterSurface(width, height int, logger *slog.Logger) *RasterSurface {
	if logger == nil {
		logger = newNopLogger()
	}
	im := image.NewRGBA(image.Rect(0, 0, width, height))
	dc := gg.NewContextForRGBA(im)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	mask := gg.NewContext(width, height)
	mask.SetLineCapRound()
	mask.SetLineJoinRound()
	return &RasterSurface{dc: dc, im: im, mask: mask, logger: logger}
}

func (s *RasterSurface) Bounds() image.Rectangle {
	return s.im.Bounds()
}

// Image exposes the live pixels for rendering. Callers must not modify it.
func (s *RasterSurface) Image() *image.RGBA {
	return s.im
}

func (s *RasterSurface) DrawSegment(from, to Position, width float64, ink Ink) {
	if ink.Erase {
		s.eraseSegment(from, to, width)
		return
	}
	if !ink.Paint.Valid() {
		s.logger.Debug("segment skipped, paint is not a colour", "paint", ink.Paint.String())
		return
	}
	s.dc.SetColor(ink.Paint.NRGBA())
	strokeSegment(s.dc, from, to, width)
}

// eraseSegment removes coverage along the segment: each pixel keeps
// (1 - stroke alpha) of its previous value, colour is irrelevant.
func (s *RasterSurface) eraseSegment(from, to Position, width float64) {
	s.mask.SetColor(color.Transparent)
	s.mask.Clear()
	s.mask.SetColor(color.Black)
	strokeSegment(s.mask, from, to, width)
	alpha := s.mask.AsMask()

	r := segmentBounds(from, to, width).Intersect(s.im.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			a := alpha.AlphaAt(x, y).A
			if a == 0 {
				continue
			}
			keep := uint32(255 - a)
			i := s.im.PixOffset(x, y)
			for k := 0; k < 4; k++ {
				s.im.Pix[i+k] = uint8(uint32(s.im.Pix[i+k]) * keep / 255)
			}
		}
	}
}

func (s *RasterSurface) FillRect(r image.Rectangle, p Paint) {
	if !p.Valid() {
		s.logger.Debug("fill skipped, paint is not a colour", "paint", p.String())
		return
	}
	r = r.Intersect(s.im.Bounds())
	if r.Empty() {
		return
	}
	s.dc.SetColor(p.NRGBA())
	s.dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	s.dc.Fill()
}

func (s *RasterSurface) ClearRect(r image.Rectangle) {
	xdraw.Draw(s.im, r.Intersect(s.im.Bounds()), image.Transparent, image.Point{}, xdraw.Src)
}

func (s *RasterSurface) Snapshot() Snapshot {
	img := image.NewRGBA(s.im.Bounds())
	xdraw.Draw(img, img.Bounds(), s.im, s.im.Bounds().Min, xdraw.Src)
	return Snapshot{img: img}
}

func (s *RasterSurface) Restore(snap Snapshot) {
	if snap.img == nil {
		return
	}
	xdraw.Draw(s.im, snap.img.Bounds().Intersect(s.im.Bounds()), snap.img, snap.img.Bounds().Min, xdraw.Src)
}

func strokeSegment(dc *gg.Context, from, to Position, width float64) {
	dc.SetLineWidth(width)
	dc.DrawLine(from.X, from.Y, to.X, to.Y)
	dc.Stroke()
}

func segmentBounds(from, to Position, width float64) image.Rectangle {
	pad := width/2 + 1
	return image.Rect(
		int(math.Floor(math.Min(from.X, to.X)-pad)),
		int(math.Floor(math.Min(from.Y, to.Y)-pad)),
		int(math.Ceil(math.Max(from.X, to.X)+pad)),
		int(math.Ceil(math.Max(from.Y, to.Y)+pad)),
	)
}
