package curve

import "math"

// degenerateSpan is the endpoint distance below which the middle point is
// translated instead of projected.
const degenerateSpan = 1e-6

// FollowMode selects how the middle point tracks a dragged endpoint.
type FollowMode int

const (
	// FollowTranslate moves the middle point by the same delta as the endpoint.
	FollowTranslate FollowMode = iota
	// FollowProject keeps the middle point at the same relative position
	// along and across the endpoint-to-endpoint segment.
	FollowProject
)

// String implements fmt.Stringer.
func (m FollowMode) String() string {
	if m == FollowProject {
		return "project"
	}

	return "translate"
}

// Follow captures the middle point's placement at the start of an endpoint drag.
type Follow struct {
	dragged       int
	mode          FollowMode
	startEndpoint Point
	startMiddle   Point
	// t is the parametric position of the middle point along p0->p2.
	t float64
	// perp is the signed distance of the middle point from the p0->p2 line.
	perp float64
}

// NewFollow records the geometry for dragging points[dragged]. Only the two
// endpoints (index 0 and 2) pull the middle point; ok is false otherwise.
func NewFollow(points Points, dragged int) (Follow, bool) {
	if dragged != 0 && dragged != 2 {
		return Follow{}, false
	}

	f := Follow{
		dragged:       dragged,
		mode:          FollowTranslate,
		startEndpoint: points[dragged],
		startMiddle:   points[1],
	}

	vx, vy := sub(points[2], points[0])

	span := math.Hypot(vx, vy)
	if span < degenerateSpan {
		return f, true
	}

	ux, uy := vx/span, vy/span
	mx, my := sub(points[1], points[0])
	proj := mx*ux + my*uy

	f.mode = FollowProject
	f.t = proj / span
	// Perpendicular unit is the direction rotated by +90°.
	f.perp = (mx-ux*proj)*(-uy) + (my-uy*proj)*ux

	return f, true
}

// Mode reports the follow mode chosen at drag start.
func (f Follow) Mode() FollowMode {
	return f.mode
}

// Dragged returns the index of the endpoint being dragged.
func (f Follow) Dragged() int {
	return f.dragged
}

// Apply returns points with the middle point recomputed. points must already
// contain the dragged endpoint at its new position.
func (f Follow) Apply(points Points) Points {
	p0, p2 := points[0], points[2]
	vx, vy := sub(p2, p0)
	span := math.Hypot(vx, vy)

	if f.mode == FollowTranslate || span < degenerateSpan {
		dx, dy := sub(points[f.dragged], f.startEndpoint)
		points[1] = Point{
			Intensity: f.startMiddle.Intensity + dx,
			Weight:    f.startMiddle.Weight + dy,
		}

		return points
	}

	ux, uy := vx/span, vy/span
	points[1] = Point{
		Intensity: p0.Intensity + ux*f.t*span + -uy*f.perp,
		Weight:    p0.Weight + uy*f.t*span + ux*f.perp,
	}

	return points
}

func sub(a, b Point) (float64, float64) {
	return a.Intensity - b.Intensity, a.Weight - b.Weight
}
