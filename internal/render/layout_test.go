package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLayout(t *testing.T) {
	tests := []struct {
		name      string
		w, h      float64
		left      float64
		right     float64
		donut     float64
		thickness float64
	}{
		{"default export", 640, 420, 0.58 * 604, 604 - 0.58*604 - 36, 160, 44.8},
		{"minimum surface", 320, 280, 180, 140, 128, 35.84},
		{"wide surface caps the left column", 1200, 420, 420, 1164 - 420 - 36, 160, 44.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ComputeLayout(tt.w, tt.h)
			assert.InDelta(t, tt.left, l.LeftWidth, 1e-9)
			assert.InDelta(t, tt.right, l.RightWidth, 1e-9)
			assert.InDelta(t, tt.donut, l.DonutSize, 1e-9)
			assert.InDelta(t, tt.thickness, l.DonutThickness, 1e-9)
			assert.Equal(t, Rect{X: 18, Y: 18, W: tt.w - 36, H: tt.h - 36}, l.Card)
			assert.InDelta(t, l.VisualsX+l.RightWidth/2, l.DonutX+l.DonutSize/2, 1e-9)
		})
	}
}

func TestComputeLayout_Thickness(t *testing.T) {
	for _, w := range []float64{320, 400, 500, 640, 900, 2000} {
		l := ComputeLayout(w, 420)
		assert.GreaterOrEqual(t, l.DonutSize, float64(minDonut))
		assert.LessOrEqual(t, l.DonutSize, float64(maxDonut))
		assert.GreaterOrEqual(t, l.DonutThickness, float64(minThickness))
		assert.LessOrEqual(t, l.DonutThickness, float64(maxThickness))
		assert.GreaterOrEqual(t, l.RightWidth, float64(minRightWidth))
	}
}
