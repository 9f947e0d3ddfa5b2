package wordreel

import (
	"math/rand/v2"
	"testing"
)

func TestGenerateCandidatePositionsCount(t *testing.T) {
	p := LayoutPlanner{Rand: rand.New(rand.NewPCG(1, 2))}
	for _, vp := range [][2]float64{{1280, 720}, {320, 480}, {0, 0}} {
		got := p.GenerateCandidatePositions(vp[0], vp[1], 500, 300)
		if len(got) != CandidateCount {
			t.Errorf("viewport %v: len = %d, want %d", vp, len(got), CandidateCount)
		}
	}
}

func TestGenerateCandidatePositionsWithinSafeArea(t *testing.T) {
	const vw, vh = 1280.0, 720.0
	p := LayoutPlanner{Rand: rand.New(rand.NewPCG(7, 7))}

	minX, maxX := vw*SafeAreaInset-PlacementJitter, vw*(1-SafeAreaInset)+PlacementJitter
	minY, maxY := vh*SafeAreaInset-PlacementJitter, vh*(1-SafeAreaInset)+PlacementJitter

	for round := 0; round < 200; round++ {
		for i, pl := range p.GenerateCandidatePositions(vw, vh, 400, 400) {
			if pl.X < minX || pl.X > maxX || pl.Y < minY || pl.Y > maxY {
				t.Fatalf("round %d placement %d = %+v outside [%v,%v]x[%v,%v]",
					round, i, pl, minX, maxX, minY, maxY)
			}
		}
	}
}

func TestGenerateCandidatePositionsAnchors(t *testing.T) {
	const vw, vh = 1000.0, 500.0
	// Safe area is 800 x 400 around (500, 250).
	want := []Placement{
		{300, 150}, {700, 150}, {300, 350}, {700, 350},
		{500, 110}, {500, 390}, {220, 250}, {780, 250},
	}
	p := LayoutPlanner{Rand: rand.New(rand.NewPCG(3, 4))}
	got := p.GenerateCandidatePositions(vw, vh, 0, 0)
	for i := range want {
		if !approx(got[i].X, want[i].X, PlacementJitter) || !approx(got[i].Y, want[i].Y, PlacementJitter) {
			t.Errorf("placement %d = %+v, want %+v ± %d", i, got[i], want[i], PlacementJitter)
		}
	}
}

func TestGenerateCandidatePositionsJitters(t *testing.T) {
	p := LayoutPlanner{Rand: rand.New(rand.NewPCG(11, 12))}
	a := p.GenerateCandidatePositions(1000, 1000, 0, 0)
	b := p.GenerateCandidatePositions(1000, 1000, 0, 0)
	same := 0
	for i := range a {
		if a[i] == b[i] {
			same++
		}
	}
	if same == len(a) {
		t.Error("two generations produced identical placements; jitter missing")
	}
}

func TestPlacementForWrapsModuloCandidates(t *testing.T) {
	placements := LayoutPlanner{}.GenerateCandidatePositions(800, 600, 100, 100)
	for i := 0; i < 3*CandidateCount; i++ {
		if got, want := PlacementFor(placements, i), placements[i%CandidateCount]; got != want {
			t.Errorf("PlacementFor(%d) = %+v, want %+v", i, got, want)
		}
	}
	// The ninth image lands on the first image's spot.
	if PlacementFor(placements, CandidateCount) != placements[0] {
		t.Error("image 8 should reuse placement 0")
	}
}

func TestOverlaps(t *testing.T) {
	occupied := []ActiveImage{{X: 100, Y: 100, Width: 50, Height: 40}}

	tests := []struct {
		name       string
		x, y, w, h float64
		occupied   []ActiveImage
		want       bool
	}{
		{"identical rectangle", 100, 100, 50, 40, occupied, true},
		{"none occupied", 100, 100, 50, 40, nil, false},
		// Edges 25+25 apart plus buffer 30 still touch.
		{"within buffer", 100 + 50 + 30, 100, 50, 40, occupied, true},
		{"just past buffer", 100 + 50 + 31, 100, 50, 40, occupied, false},
		{"far away", 100 + 50 + 40 + 2*OverlapBuffer + 1, 100 + 50 + 40 + 2*OverlapBuffer + 1, 50, 40, occupied, false},
		{"zero size inside buffer", 150, 100, 0, 0, occupied, true},
		{"second entry hits", 500, 500, 10, 10, append([]ActiveImage{{X: 0, Y: 0, Width: 1, Height: 1}}, ActiveImage{X: 500, Y: 500, Width: 10, Height: 10}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.x, tt.y, tt.w, tt.h, tt.occupied); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverlapsOnlyInflatesCandidate(t *testing.T) {
	// Occupied 10x10 at origin; candidate 10x10 at x=50. Gap between edges is
	// 40: overlapping only if both sides were inflated by 30.
	occupied := []ActiveImage{{X: 0, Y: 0, Width: 10, Height: 10}}
	if Overlaps(50, 0, 10, 10, occupied) {
		t.Error("occupied rectangle must not be inflated")
	}
	if !Overlaps(40, 0, 10, 10, occupied) {
		t.Error("gap of 30 should overlap with buffer 30")
	}
}
