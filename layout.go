package wordreel

import "math/rand/v2"

// Layout constants.
const (
	CandidateCount  = 8    // placements produced per burst
	SafeAreaInset   = 0.1  // fraction of each viewport dimension kept clear per edge
	QuadrantOffset  = 0.25 // quadrant points, fraction of the safe area from center
	AxisOffset      = 0.35 // axis points, fraction of the safe area from center
	PlacementJitter = 10   // max random offset per axis, screen units
	OverlapBuffer   = 30   // inflation of the candidate rectangle in Overlaps
)

// Placement is the target center of a project image.
type Placement struct {
	X, Y float64
}

// ActiveImage is a project image currently attached to the tree, tracked at
// its destination rectangle (centered on X, Y).
type ActiveImage struct {
	X, Y          float64
	Width, Height float64
	Node          *Node
}

// Rect returns the image's occupied rectangle.
func (a ActiveImage) Rect() Rect {
	return RectCentered(a.X, a.Y, a.Width, a.Height)
}

// LayoutPlanner produces candidate image placements. The zero value uses the
// global random source for jitter.
type LayoutPlanner struct {
	Rand *rand.Rand
}

// GenerateCandidatePositions returns CandidateCount placements around the
// viewport center: four quadrant points, then the top, bottom, left and right
// axis points, each with independent jitter. maxItemWidth and maxItemHeight
// describe the largest image in the batch; the anchor grid is fixed and does
// not depend on them.
func (p LayoutPlanner) GenerateCandidatePositions(viewportWidth, viewportHeight, maxItemWidth, maxItemHeight float64) []Placement {
	_, _ = maxItemWidth, maxItemHeight

	cx, cy := viewportWidth/2, viewportHeight/2
	availW := viewportWidth * (1 - 2*SafeAreaInset)
	availH := viewportHeight * (1 - 2*SafeAreaInset)
	qx, qy := availW*QuadrantOffset, availH*QuadrantOffset
	ax, ay := availW*AxisOffset, availH*AxisOffset

	anchors := [CandidateCount]Placement{
		{cx - qx, cy - qy},
		{cx + qx, cy - qy},
		{cx - qx, cy + qy},
		{cx + qx, cy + qy},
		{cx, cy - ay},
		{cx, cy + ay},
		{cx - ax, cy},
		{cx + ax, cy},
	}

	out := make([]Placement, CandidateCount)
	for i, a := range anchors {
		out[i] = Placement{X: a.X + p.jitter(), Y: a.Y + p.jitter()}
	}
	return out
}

func (p LayoutPlanner) jitter() float64 {
	var f float64
	if p.Rand != nil {
		f = p.Rand.Float64()
	} else {
		f = rand.Float64()
	}
	return f*2*PlacementJitter - PlacementJitter
}

// PlacementFor returns the placement for the i-th image. More images than
// placements reuse them cyclically, which may overlap.
func PlacementFor(placements []Placement, i int) Placement {
	return placements[i%len(placements)]
}

// Overlaps reports whether a width x height rectangle centered on (x, y),
// inflated by OverlapBuffer on every side, touches any occupied rectangle.
// It is advisory: callers decide what to do about an overlap.
func Overlaps(x, y, width, height float64, occupied []ActiveImage) bool {
	candidate := RectCentered(x, y, width, height).Inflate(OverlapBuffer)
	for _, img := range occupied {
		if candidate.Intersects(img.Rect()) {
			return true
		}
	}
	return false
}
