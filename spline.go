package binet

import (
	"math"

	"github.com/gogpu/gg"
)

// DefaultTension is the cardinal spline tension used for smooth curves.
// 0.5 matches the GDI+ DrawCurve default; 0 degenerates to straight lines.
const DefaultTension = 0.5

// CardinalToBezier converts a cardinal spline through pts into cubic Bézier
// segments. Segment i runs from pts[i] to pts[i+1]; its control points
// follow the chord of the neighboring points scaled by tension/3. End
// points reuse themselves as the missing neighbor.
//
// Fewer than two points produce no segments.
func CardinalToBezier(pts []gg.Point, tension float64) []gg.CubicBez {
	if len(pts) < 2 {
		return nil
	}
	k := tension / 3
	segs := make([]gg.CubicBez, 0, len(pts)-1)
	for i := 0; i < len(pts)-1; i++ {
		p0 := pts[max(i-1, 0)]
		p1 := pts[i]
		p2 := pts[i+1]
		p3 := pts[min(i+2, len(pts)-1)]

		c1 := p1.Add(p2.Sub(p0).Mul(k))
		c2 := p2.Sub(p3.Sub(p1).Mul(k))
		segs = append(segs, gg.NewCubicBez(p1, c1, c2, p2))
	}
	return segs
}

// FiniteRuns splits pts into maximal runs of finite points. NaN and Inf
// coordinates break the curve instead of reaching the rasterizer.
func FiniteRuns(pts []gg.Point) [][]gg.Point {
	var runs [][]gg.Point
	start := -1
	for i, p := range pts {
		if isFinite(p) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, pts[start:i])
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, pts[start:])
	}
	return runs
}

func isFinite(p gg.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
