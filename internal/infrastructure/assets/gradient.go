package assets

import (
	"image"
	"image/color"
	"math"
)

// GradientStop is a color at a normalized distance from the center
type GradientStop struct {
	Offset float64
	Color  color.NRGBA
}

// SunStops is the sun disc gradient from white core to transparent rim
var SunStops = []GradientStop{
	{0, color.NRGBA{255, 255, 255, 255}},
	{0.05, color.NRGBA{255, 255, 220, 242}},
	{0.1, color.NRGBA{255, 255, 200, 230}},
	{0.2, color.NRGBA{255, 255, 180, 204}},
	{0.4, color.NRGBA{255, 255, 150, 153}},
	{0.7, color.NRGBA{255, 255, 120, 77}},
	{1, color.NRGBA{255, 255, 100, 0}},
}

// GlowStops is the wide ambient glow laid over the scene
var GlowStops = []GradientStop{
	{0, color.NRGBA{255, 255, 200, 64}},
	{0.3, color.NRGBA{255, 255, 180, 38}},
	{0.6, color.NRGBA{255, 255, 150, 20}},
	{1, color.NRGBA{255, 255, 120, 0}},
}

// RadialGradient renders a square image of the given radius. Pixels closer
// than inner to the center take the first stop.
func RadialGradient(radius, inner float64, stops []GradientStop) *image.NRGBA {
	size := int(math.Ceil(radius * 2))
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	span := radius - inner
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-radius, float64(y)+0.5-radius)
			if d > radius {
				continue
			}
			t := 0.0
			if span > 0 && d > inner {
				t = (d - inner) / span
			}
			img.SetNRGBA(x, y, sample(stops, t))
		}
	}
	return img
}

func sample(stops []GradientStop, t float64) color.NRGBA {
	if len(stops) == 0 {
		return color.NRGBA{}
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Offset {
			a, b := stops[i-1], stops[i]
			f := (t - a.Offset) / (b.Offset - a.Offset)
			return color.NRGBA{
				R: lerp8(a.Color.R, b.Color.R, f),
				G: lerp8(a.Color.G, b.Color.G, f),
				B: lerp8(a.Color.B, b.Color.B, f),
				A: lerp8(a.Color.A, b.Color.A, f),
			}
		}
	}
	return stops[len(stops)-1].Color
}

func lerp8(a, b uint8, f float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*f))
}

// Vignette renders a w x h darkening overlay. Pixels within inner of (cx, cy)
// are clear; darkness ramps up to alpha at outer and stays there beyond it.
func Vignette(w, h int, cx, cy, inner, outer, alpha float64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	maxA := math.Min(math.Max(alpha, 0), 1) * 255
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			f := 1.0
			switch {
			case d <= inner:
				f = 0
			case d < outer:
				f = (d - inner) / (outer - inner)
			}
			img.SetNRGBA(x, y, color.NRGBA{A: uint8(math.Round(maxA * f))})
		}
	}
	return img
}
