package ui

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hinahinako39/hour-percent-clock/internal/config"
)

func TestAngleFromNoon(t *testing.T) {
	tests := []struct {
		name     string
		dx, dy   float64
		expected float64
	}{
		{"Noon", 0, -1, 0},
		{"Three o'clock", 1, 0, math.Pi / 2},
		{"Six o'clock", 0, 1, math.Pi},
		{"Nine o'clock", -1, 0, 3 * math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, angleFromNoon(tt.dx, tt.dy), 1e-9)
		})
	}
}

func TestClampFraction(t *testing.T) {
	assert.Equal(t, 0.0, clampFraction(-0.5))
	assert.Equal(t, 0.25, clampFraction(0.25))
	assert.Equal(t, 1.0, clampFraction(1.7))
}

func TestProgressRings_SetProgressClamps(t *testing.T) {
	r := NewProgressRings()
	r.SetProgress(1.5, -0.2, "x")

	assert.Equal(t, 1.0, r.hourFraction)
	assert.Equal(t, 0.0, r.dayFraction)
	assert.Equal(t, "x", r.centerText)
}

// TestProgressRings_Draw samples the rasterized image at known angles. With
// the day ring half full and the hour ring a quarter full, pixels just past
// noon are filled on both rings, the outer right-middle is filled while the
// inner right-middle is not, and the outer left-middle is track.
func TestProgressRings_Draw(t *testing.T) {
	r := NewProgressRings()
	r.SetProgress(0.25, 0.5, "25%")

	img := r.draw(config.RingWidgetSize, config.RingWidgetSize).(*image.NRGBA)

	dayFill := rgb(config.ColorDayFill)
	dayTrack := rgb(config.ColorDayTrack)
	hourFill := rgb(config.ColorHourFill)
	hourTrack := rgb(config.ColorHourTrack)

	// Outer (day) band: radius 104..112 around the 120,120 center.
	assert.Equal(t, dayFill, img.NRGBAAt(120, 12), "Outer ring just past noon")
	assert.Equal(t, dayFill, img.NRGBAAt(228, 120), "Outer ring at three o'clock, within the half")
	assert.Equal(t, dayTrack, img.NRGBAAt(11, 120), "Outer ring at nine o'clock, past the half")

	// Inner (hour) band: radius 78..88.
	assert.Equal(t, hourFill, img.NRGBAAt(120, 37), "Inner ring just past noon")
	assert.Equal(t, hourTrack, img.NRGBAAt(202, 120), "Inner ring just past its quarter")

	// The center stays transparent so the label reads over the theme background.
	assert.Zero(t, img.NRGBAAt(120, 120).A)
}

func TestProgressRings_DrawDegenerateSize(t *testing.T) {
	r := NewProgressRings()

	img := r.draw(0, 0)
	assert.NotNil(t, img)
}
