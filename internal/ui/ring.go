package ui

import (
	"image"
	"image/color"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/hinahinako39/hour-percent-clock/internal/config"
)

// ProgressRings renders two concentric progress rings: the outer ring shows
// day progress, the inner ring hour progress, with the hour percentage as
// center text. Both arcs start at 12 o'clock and grow clockwise.
type ProgressRings struct {
	widget.BaseWidget

	mut          sync.RWMutex
	hourFraction float64
	dayFraction  float64
	centerText   string
}

// NewProgressRings creates the widget with both rings empty.
func NewProgressRings() *ProgressRings {
	r := &ProgressRings{centerText: config.StatPlaceholder}
	r.ExtendBaseWidget(r)
	return r
}

// SetProgress updates both ring fills and the center label. Fractions are
// clamped to [0, 1].
func (r *ProgressRings) SetProgress(hourFraction, dayFraction float64, centerText string) {
	r.mut.Lock()
	r.hourFraction = clampFraction(hourFraction)
	r.dayFraction = clampFraction(dayFraction)
	r.centerText = centerText
	r.mut.Unlock()

	r.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (r *ProgressRings) CreateRenderer() fyne.WidgetRenderer {
	label := canvas.NewText(r.centerText, theme.Color(theme.ColorNameForeground))
	label.TextSize = config.RingCenterTextSz
	label.TextStyle = fyne.TextStyle{Bold: true}

	raster := canvas.NewRaster(r.draw)

	return &ringsRenderer{rings: r, raster: raster, label: label}
}

// draw rasterizes the two ring bands. It runs on the render thread with the
// pixel dimensions of the widget, which may differ from the logical size on
// HiDPI displays, so all geometry is derived from the pixel square.
func (r *ProgressRings) draw(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return img
	}

	r.mut.RLock()
	hourFrac, dayFrac := r.hourFraction, r.dayFraction
	r.mut.RUnlock()

	side := w
	if h < side {
		side = h
	}
	scale := float64(side) / float64(config.RingWidgetSize)
	cx := float64(w) / 2
	cy := float64(h) / 2

	outerR := float64(side)/2 - float64(config.RingOuterMargin)*scale
	outerIn := outerR - float64(config.RingOuterStroke)*scale
	innerR := outerIn - float64(config.RingInnerGap)*scale
	innerIn := innerR - float64(config.RingInnerStroke)*scale

	dayAngle := dayFrac * 2 * math.Pi
	hourAngle := hourFrac * 2 * math.Pi

	dayFill := rgb(config.ColorDayFill)
	dayTrack := rgb(config.ColorDayTrack)
	hourFill := rgb(config.ColorHourFill)
	hourTrack := rgb(config.ColorHourTrack)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			dist := math.Hypot(dx, dy)

			var fill, track color.NRGBA
			var limit float64
			switch {
			case dist <= outerR && dist >= outerIn:
				fill, track, limit = dayFill, dayTrack, dayAngle
			case dist <= innerR && dist >= innerIn:
				fill, track, limit = hourFill, hourTrack, hourAngle
			default:
				continue
			}

			if angleFromNoon(dx, dy) <= limit {
				img.SetNRGBA(x, y, fill)
			} else {
				img.SetNRGBA(x, y, track)
			}
		}
	}
	return img
}

// angleFromNoon returns the clockwise angle in [0, 2π) measured from the
// 12 o'clock direction, in screen coordinates (y grows downwards).
func angleFromNoon(dx, dy float64) float64 {
	a := math.Atan2(dx, -dy)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func clampFraction(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func rgb(v uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}
}

type ringsRenderer struct {
	rings  *ProgressRings
	raster *canvas.Raster
	label  *canvas.Text
}

func (r *ringsRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)

	textSize := fyne.MeasureText(r.label.Text, r.label.TextSize, r.label.TextStyle)
	r.label.Resize(textSize)
	r.label.Move(fyne.NewPos(
		(size.Width-textSize.Width)/2,
		(size.Height-textSize.Height)/2,
	))
}

func (r *ringsRenderer) MinSize() fyne.Size {
	return fyne.NewSize(config.RingWidgetSize, config.RingWidgetSize)
}

func (r *ringsRenderer) Refresh() {
	r.rings.mut.RLock()
	r.label.Text = r.rings.centerText
	r.rings.mut.RUnlock()

	r.label.Color = theme.Color(theme.ColorNameForeground)
	r.label.Refresh()
	r.raster.Refresh()
	r.Layout(r.rings.Size())
}

func (r *ringsRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster, r.label}
}

func (r *ringsRenderer) Destroy() {}
