package wordreel

import (
	"sync"

	"go.uber.org/zap"
)

// Stage is the top-level object that owns the node tree, the tween engine,
// the timer clock and the viewport size. Everything except Post must be called
// from the goroutine that calls Update.
type Stage struct {
	root *Node

	width, height float64

	clock    Clock
	animator Animator

	postMu sync.Mutex
	posted []func()

	logger *zap.Logger
	debug  bool

	// ClearColor fills the screen before drawing.
	ClearColor Color
}

// NewStage creates a stage with a pre-created root container and the given
// viewport size.
func NewStage(width, height float64) *Stage {
	return &Stage{
		root:   NewContainer("root"),
		width:  width,
		height: height,
		logger: zap.NewNop(),
	}
}

// Root returns the stage's root container node.
func (s *Stage) Root() *Node {
	return s.root
}

// Find resolves selector against the whole tree. See Node.Find.
func (s *Stage) Find(selector string) *Node {
	return s.root.Find(selector)
}

// Viewport returns the current viewport size.
func (s *Stage) Viewport() (width, height float64) {
	return s.width, s.height
}

// SetViewport records a new viewport size. Layout reads it at the moment it
// places images; nothing already placed moves.
func (s *Stage) SetViewport(width, height float64) {
	s.width = width
	s.height = height
}

// Center returns the center of the viewport.
func (s *Stage) Center() Vec2 {
	return Vec2{X: s.width / 2, Y: s.height / 2}
}

// Clock returns the stage's timer clock.
func (s *Stage) Clock() *Clock {
	return &s.clock
}

// Animator returns the stage's tween engine.
func (s *Stage) Animator() *Animator {
	return &s.animator
}

// Animate starts a tween on the stage's animator.
func (s *Stage) Animate(targets []*Node, spec TweenSpec) *Tween {
	return s.animator.Animate(targets, spec)
}

// AfterFunc schedules fn on the stage's clock.
func (s *Stage) AfterFunc(delay float64, fn func()) *Timer {
	return s.clock.AfterFunc(delay, fn)
}

// Post queues fn to run at the start of the next Update. Safe to call from any
// goroutine; this is how background work hands results back.
func (s *Stage) Post(fn func()) {
	s.postMu.Lock()
	s.posted = append(s.posted, fn)
	s.postMu.Unlock()
}

// Logger returns the stage logger.
func (s *Stage) Logger() *zap.Logger {
	return s.logger
}

// SetLogger replaces the stage logger. nil installs a no-op logger.
func (s *Stage) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	s.logger = l
}

// SetDebugMode enables or disables per-frame debug logging of node, tween and
// timer counts.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Update runs posted callbacks, fires due timers, advances tweens by dt
// seconds, then refreshes world transforms.
func (s *Stage) Update(dt float64) {
	s.drainPosted()
	s.clock.Update(dt)
	s.animator.Update(dt)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	if s.debug {
		s.logger.Debug("stage frame",
			zap.Float64("now", s.clock.Now()),
			zap.Int("nodes", countNodes(s.root)),
			zap.Int("tweens", s.animator.Len()),
			zap.Int("timers", s.clock.Pending()),
		)
	}
}

func (s *Stage) drainPosted() {
	s.postMu.Lock()
	fns := s.posted
	s.posted = nil
	s.postMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func countNodes(n *Node) int {
	c := 1
	for _, child := range n.children {
		c += countNodes(child)
	}
	return c
}
