package glyphmask

import (
	"image/color"
	"math"
)

// SweepGradient varies color with the angle around Center. Angles are in
// degrees measured from the positive x axis toward the positive y axis,
// which is clockwise on screen. Offset 0 is at StartAngle and 1 at EndAngle.
type SweepGradient struct {
	Center               Point
	StartAngle, EndAngle float64
	Colors               []color.NRGBA
	Offsets              []float64
	Tile                 TileMode
}

func (SweepGradient) shaderMarker() {}

// ColorAt returns the color for the angle of (x, y) around Center.
func (g SweepGradient) ColorAt(x, y float64) color.RGBA {
	stops := gradientStops{Colors: g.Colors, Offsets: g.Offsets, Tile: g.Tile}
	dx := x - g.Center.X
	dy := y - g.Center.Y
	if dx == 0 && dy == 0 {
		return stops.colorAt(0)
	}
	angle := math.Atan2(dy, dx) * 180 / math.Pi
	return stops.colorAt(g.angleToT(angle))
}

func (g SweepGradient) angleToT(angle float64) float64 {
	sweepRange := g.EndAngle - g.StartAngle
	if sweepRange == 0 {
		return 0
	}
	return normalizeAngle(angle-g.StartAngle, sweepRange) / sweepRange
}

// normalizeAngle wraps angle into [0, 360) for a positive sweep and
// (-360, 0] for a negative one.
func normalizeAngle(angle, sweepRange float64) float64 {
	angle = math.Mod(angle, 360)
	if sweepRange > 0 {
		if angle < 0 {
			angle += 360
		}
	} else if angle > 0 {
		angle -= 360
	}
	return angle
}
