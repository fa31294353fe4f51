package render

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts holds the regular and bold sources and caches faces by pixel size.
type Fonts struct {
	regular *text.FontSource
	bold    *text.FontSource

	mu    sync.Mutex
	faces map[faceKey]text.Face
}

type faceKey struct {
	bold bool
	size float64
}

// LoadFonts parses the embedded Go fonts.
func LoadFonts() (*Fonts, error) {
	regular, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		_ = regular.Close()
		return nil, fmt.Errorf("load bold font: %w", err)
	}
	return &Fonts{
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]text.Face),
	}, nil
}

// Face returns the face for bold/regular at size pixels.
func (f *Fonts) Face(bold bool, size float64) text.Face {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := faceKey{bold: bold, size: size}
	if face, ok := f.faces[key]; ok {
		return face
	}
	src := f.regular
	if bold {
		src = f.bold
	}
	face := src.Face(size)
	f.faces[key] = face
	return face
}

// Close releases both font sources.
func (f *Fonts) Close() error {
	f.mu.Lock()
	f.faces = nil
	f.mu.Unlock()

	errReg := f.regular.Close()
	errBold := f.bold.Close()
	if errReg != nil {
		return errReg
	}
	return errBold
}
