package render

import (
	"fmt"
	"image"
	"image/draw"
	"io"
	"math"

	"github.com/gogpu/gg"
)

// Minimum logical size of the surface and the height used when none is known.
const (
	MinWidth      = 320
	MinHeight     = 280
	DefaultHeight = 420
)

// FitSize applies the logical size floor. A zero height becomes DefaultHeight.
func FitSize(w, h float64) (float64, float64) {
	if h <= 0 {
		h = DefaultHeight
	}
	return max(MinWidth, w), max(MinHeight, h)
}

// BackingSize returns the pixel size of the backing store for a logical size.
func BackingSize(w, h, dpr float64) (int, int) {
	return max(1, int(math.Round(w*dpr))), max(1, int(math.Round(h*dpr)))
}

// Surface is a DPR-aware pixel surface the report is drawn onto.
type Surface struct {
	ctx       *gg.Context
	fonts     *Fonts
	ownsFonts bool

	width, height float64
	dpr           float64
}

// NewSurface creates a surface that draws text with fonts.
// A nil fonts loads the embedded Go fonts and closes them with the surface.
func NewSurface(fonts *Fonts) (*Surface, error) {
	s := &Surface{fonts: fonts, dpr: 1}
	if fonts == nil {
		f, err := LoadFonts()
		if err != nil {
			return nil, err
		}
		s.fonts = f
		s.ownsFonts = true
	}
	return s, nil
}

// Resize sets the logical size and device pixel ratio, reallocating the
// backing store when its pixel size changes.
func (s *Surface) Resize(cssW, cssH, dpr float64) error {
	if dpr <= 0 || math.IsNaN(dpr) || math.IsInf(dpr, 0) {
		return fmt.Errorf("invalid device pixel ratio %v", dpr)
	}
	cssW, cssH = FitSize(cssW, cssH)
	pw, ph := BackingSize(cssW, cssH, dpr)

	s.width, s.height, s.dpr = cssW, cssH, dpr
	if s.ctx == nil {
		s.ctx = gg.NewContext(pw, ph)
		return nil
	}
	if err := s.ctx.Resize(pw, ph); err != nil {
		return fmt.Errorf("resize surface: %w", err)
	}
	return nil
}

// Size returns the logical size in CSS pixels.
func (s *Surface) Size() (float64, float64) {
	return s.width, s.height
}

// DPR returns the device pixel ratio.
func (s *Surface) DPR() float64 {
	return s.dpr
}

// PixelSize returns the backing store size, or zeros before the first Resize.
func (s *Surface) PixelSize() (int, int) {
	if s.ctx == nil {
		return 0, 0
	}
	return s.ctx.Width(), s.ctx.Height()
}

// Render draws r at the given progress. Without a backing store it does nothing.
func (s *Surface) Render(r Report, progress float64) error {
	if s == nil || s.ctx == nil {
		return nil
	}
	c := &ggCanvas{ctx: s.ctx, fonts: s.fonts, scale: s.dpr}
	Draw(c, s.width, s.height, r, progress)
	return c.err
}

// Image returns a copy of the current pixels. Pending GPU work is flushed
// first, as gg does before saving.
func (s *Surface) Image() *image.RGBA {
	if s.ctx == nil {
		return nil
	}
	_ = s.ctx.FlushGPU()
	src := s.ctx.Image()
	img := image.NewRGBA(src.Bounds())
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)
	return img
}

// EncodePNG writes the current pixels as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s.ctx == nil {
		return fmt.Errorf("surface has no pixels")
	}
	_ = s.ctx.FlushGPU()
	return s.ctx.EncodePNG(w)
}

// SavePNG writes the current pixels to path.
func (s *Surface) SavePNG(path string) error {
	if s.ctx == nil {
		return fmt.Errorf("surface has no pixels")
	}
	if err := s.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Close releases the backing store and any fonts the surface loaded.
func (s *Surface) Close() error {
	var err error
	if s.ctx != nil {
		err = s.ctx.Close()
		s.ctx = nil
	}
	if s.ownsFonts && s.fonts != nil {
		if ferr := s.fonts.Close(); err == nil {
			err = ferr
		}
		s.fonts = nil
	}
	return err
}
