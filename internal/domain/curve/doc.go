// Package curve turns three editable control points into the weighted
// intensity distribution used to pick actuation strength.
//
// The points are interpolated with a quadratic Bézier curve, discretised into
// integer intensities in [1,100] with weights in [0,1], and sampled with a
// weighted random choice. The package also holds the drag-follow geometry that
// keeps the middle point in place relative to the endpoints while one of them
// is dragged.
package curve
