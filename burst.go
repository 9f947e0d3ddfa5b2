package wordreel

import (
	"context"
	"fmt"

	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// ProjectClass is the Class given to spawned project image nodes.
const ProjectClass = "project"

// ProjectBurst shows one batch of project images for the active word:
// preload, lay out, spawn with a staggered elastic entrance, hold, fade out
// and dispose.
//
// A new Run supersedes the previous one. Images the previous run already
// spawned keep animating and tear themselves down; loads it still had in
// flight are cancelled and their results dropped.
type ProjectBurst struct {
	stage     *Stage
	container *Node
	preloader *Preloader
	planner   LayoutPlanner
	tracker   Tracker
	cfg       Config
	logger    *zap.Logger

	generation uint64
	settle     *Timer
	cancel     context.CancelFunc
}

// NewProjectBurst creates a burst that spawns images into container, resolving
// them with loader.
func NewProjectBurst(stage *Stage, container *Node, loader Loader, cfg Config) *ProjectBurst {
	cfg = cfg.withDefaults()
	return &ProjectBurst{
		stage:     stage,
		container: container,
		preloader: &Preloader{
			Loader:  loader,
			Stage:   stage,
			Limit:   cfg.MaxConcurrentLoads,
			Timeout: cfg.LoadTimeout,
			Logger:  cfg.Logger,
		},
		cfg:    cfg,
		logger: cfg.Logger,
	}
}

// SetPlanner replaces the layout planner, e.g. to seed its jitter.
func (b *ProjectBurst) SetPlanner(p LayoutPlanner) {
	b.planner = p
}

// Tracker returns the tracker holding the current run's images.
func (b *ProjectBurst) Tracker() *Tracker {
	return &b.tracker
}

// Generation counts Run and Stop calls. Work started under an older
// generation never spawns images.
func (b *ProjectBurst) Generation() uint64 {
	return b.generation
}

// Run starts a burst for projects. Tracking is reset immediately; loading
// begins after the settle delay.
func (b *ProjectBurst) Run(projects []Project) {
	b.tracker.Reset()
	b.supersede()
	gen := b.generation

	if len(projects) == 0 {
		b.logger.Debug("burst has no projects", zap.Uint64("generation", gen))
		return
	}

	urls := make([]string, len(projects))
	for i, p := range projects {
		urls[i] = p.URL
	}

	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	b.settle = b.stage.AfterFunc(b.cfg.SettleDelay, func() {
		b.preloader.Preload(ctx, urls, func(loaded []LoadedImage) {
			if gen != b.generation {
				return
			}
			b.spawnAll(loaded)
		})
	})
}

// Stop cancels a pending settle delay and any in-flight loads. Spawned images
// are left to finish.
func (b *ProjectBurst) Stop() {
	b.supersede()
}

func (b *ProjectBurst) supersede() {
	b.generation++
	if b.settle != nil {
		b.settle.Stop()
		b.settle = nil
	}
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
}

func (b *ProjectBurst) spawnAll(loaded []LoadedImage) {
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
	if len(loaded) == 0 {
		b.logger.Debug("burst resolved no images", zap.Uint64("generation", b.generation))
		return
	}

	var maxW, maxH float64
	for _, img := range loaded {
		maxW = max(maxW, img.Width)
		maxH = max(maxH, img.Height)
	}

	vw, vh := b.stage.Viewport()
	placements := b.planner.GenerateCandidatePositions(vw, vh, maxW, maxH)
	center := b.stage.Center()

	for i, img := range loaded {
		b.spawn(img, center, PlacementFor(placements, i), i)
	}
	b.logger.Debug("burst spawned",
		zap.Uint64("generation", b.generation),
		zap.Int("images", len(loaded)),
		zap.Float64("maxWidth", maxW),
		zap.Float64("maxHeight", maxH),
	)
}

func (b *ProjectBurst) spawn(img LoadedImage, from Vec2, to Placement, i int) {
	n := NewSprite(fmt.Sprintf("project-%d", i), img.Pixels, img.Width, img.Height)
	n.Class = ProjectClass
	n.UserData = img.URL
	n.SetPivot(img.Width/2, img.Height/2)
	b.container.AddChild(n)

	if Overlaps(to.X, to.Y, img.Width, img.Height, b.tracker.active) {
		b.logger.Debug("placement overlaps an active image",
			zap.String("url", img.URL), zap.Int("index", i))
	}
	b.tracker.Add(ActiveImage{X: to.X, Y: to.Y, Width: img.Width, Height: img.Height, Node: n})

	b.stage.Animate([]*Node{n}, TweenSpec{
		From:     Props{PropX: from.X, PropY: from.Y, PropAlpha: 0, PropScale: 0.5},
		To:       Props{PropX: to.X, PropY: to.Y, PropAlpha: 1, PropScale: 1},
		Duration: b.cfg.AnimationDuration * 1.5,
		Delay:    float64(i) * b.cfg.ImageStagger,
		Ease:     ease.OutElastic,
		OnComplete: func() {
			b.stage.AfterFunc(b.cfg.ProjectDelay, func() { b.fadeOut(n) })
		},
	})
}

// fadeOut fades n, then untracks and disposes it. Untracking is a no-op when a
// newer Run already reset the tracker.
func (b *ProjectBurst) fadeOut(n *Node) {
	b.stage.Animate([]*Node{n}, TweenSpec{
		To:       Props{PropAlpha: 0},
		Duration: b.cfg.FadeOutDuration,
		Ease:     ease.Linear,
		OnComplete: func() {
			b.tracker.Remove(n)
			n.Dispose()
		},
	})
}
