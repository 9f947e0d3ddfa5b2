package wordreel

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"
)

const frameDT = 1.0 / 60

// monoFont measures every rune as w x h.
type monoFont struct {
	w, h float64
}

func (f monoFont) MeasureString(s string) (float64, float64) {
	return float64(len([]rune(s))) * f.w, f.h
}

func (f monoFont) LineHeight() float64 { return f.h }

// fakeLoader resolves URLs from a size table. URLs missing from the table fail.
type fakeLoader struct {
	mu    sync.Mutex
	sizes map[string][2]float64
	calls map[string]int
}

func newFakeLoader(sizes map[string][2]float64) *fakeLoader {
	return &fakeLoader{sizes: sizes, calls: map[string]int{}}
}

func (l *fakeLoader) Load(_ context.Context, url string) (LoadedImage, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls[url]++
	sz, ok := l.sizes[url]
	if !ok {
		return LoadedImage{}, errors.New("not found")
	}
	return LoadedImage{URL: url, Width: sz[0], Height: sz[1]}, nil
}

func (l *fakeLoader) callCount(url string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls[url]
}

// fastConfig keeps virtual time short so cycles finish in few frames.
func fastConfig() Config {
	return Config{
		WordDuration:      0.5,
		AnimationDuration: 0.2,
		ProjectDelay:      100,
		CharStagger:       0.02,
	}
}

// newMountedStage returns a stage with an "h1" heading and a
// ".project-container" at the origin.
func newMountedStage() (*Stage, *Node, *Node) {
	s := NewStage(1000, 800)
	projects := NewContainer("projects")
	projects.Class = "project-container"
	s.Root().AddChild(projects)
	heading := NewContainer("h1")
	heading.Font = monoFont{w: 10, h: 20}
	s.Root().AddChild(heading)
	return s, heading, projects
}

// runUntil steps the stage one frame at a time until cond holds. Background
// loads need wall-clock time, so it yields briefly between frames.
func runUntil(t *testing.T, s *Stage, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not reached by t=%.2fs", s.Clock().Now())
		}
		s.Update(frameDT)
		time.Sleep(50 * time.Microsecond)
	}
}

// runFor steps the stage for the given virtual seconds.
func runFor(s *Stage, seconds float64) {
	for n := int(math.Ceil(seconds / frameDT)); n > 0; n-- {
		s.Update(frameDT)
	}
}

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
