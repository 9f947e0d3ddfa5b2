package wordreel

import (
	"time"

	"go.uber.org/zap"
)

// Config tunes a WordSequencer and its ProjectBurst. Durations are in seconds.
// Zero fields take the defaults from DefaultConfig.
type Config struct {
	// WordContainerSelector locates the heading the words are written into.
	WordContainerSelector string
	// ProjectContainerSelector locates the parent of spawned project images.
	ProjectContainerSelector string

	// WordDuration is how long a word holds between animate-in and animate-out.
	WordDuration float64
	// AnimationDuration is the per-character in/out duration. Project images
	// animate in over 1.5x this.
	AnimationDuration float64
	// ProjectDelay is how long a project image holds before fading out.
	ProjectDelay float64

	SettleDelay     float64
	FadeOutDuration float64
	CharStagger     float64
	ImageStagger    float64

	// MaxConcurrentLoads bounds in-flight image loads per burst.
	MaxConcurrentLoads int
	// LoadTimeout bounds a single image load.
	LoadTimeout time.Duration

	Logger *zap.Logger
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		WordContainerSelector:    "h1",
		ProjectContainerSelector: ".project-container",
		WordDuration:             3,
		AnimationDuration:        1,
		ProjectDelay:             3,
		SettleDelay:              0.2,
		FadeOutDuration:          0.25,
		CharStagger:              0.1,
		ImageStagger:             0.2,
		MaxConcurrentLoads:       4,
		LoadTimeout:              10 * time.Second,
	}
}

// withDefaults returns c with every zero field replaced by its default.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.WordContainerSelector == "" {
		c.WordContainerSelector = d.WordContainerSelector
	}
	if c.ProjectContainerSelector == "" {
		c.ProjectContainerSelector = d.ProjectContainerSelector
	}
	if c.WordDuration <= 0 {
		c.WordDuration = d.WordDuration
	}
	if c.AnimationDuration <= 0 {
		c.AnimationDuration = d.AnimationDuration
	}
	if c.ProjectDelay <= 0 {
		c.ProjectDelay = d.ProjectDelay
	}
	if c.SettleDelay <= 0 {
		c.SettleDelay = d.SettleDelay
	}
	if c.FadeOutDuration <= 0 {
		c.FadeOutDuration = d.FadeOutDuration
	}
	if c.CharStagger <= 0 {
		c.CharStagger = d.CharStagger
	}
	if c.ImageStagger <= 0 {
		c.ImageStagger = d.ImageStagger
	}
	if c.MaxConcurrentLoads <= 0 {
		c.MaxConcurrentLoads = d.MaxConcurrentLoads
	}
	if c.LoadTimeout <= 0 {
		c.LoadTimeout = d.LoadTimeout
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}
