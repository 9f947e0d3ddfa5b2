package wordreel

import (
	"errors"
	"math"

	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// State is a WordSequencer phase.
type State uint8

const (
	StateIdle         State = iota // not started, or stopped
	StateSplittingIn               // characters animating in
	StateHolding                   // word fully shown
	StateSplittingOut              // characters animating out
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSplittingIn:
		return "splitting-in"
	case StateHolding:
		return "holding"
	case StateSplittingOut:
		return "splitting-out"
	default:
		return "unknown"
	}
}

// WordWrapperClass is the Class of the node that holds the current word inside
// the heading. Start creates it when the heading has none.
const WordWrapperClass = "word-container"

// Character entrance and exit angles.
const (
	charInRotation  = 25 * math.Pi / 180
	charOutRotation = 50 * math.Pi / 180
)

// ErrAlreadyStarted is returned by Start on a running sequencer.
var ErrAlreadyStarted = errors.New("wordreel: sequencer already started")

// WordSequencer cycles through a word catalog: each word's characters animate
// in, hold, animate out, and the next word follows. The start of every
// entrance triggers a ProjectBurst for that word.
//
// All state lives in the value; any number of sequencers may share a Stage as
// long as their mount nodes differ.
type WordSequencer struct {
	stage  *Stage
	words  []Word
	loader Loader
	cfg    Config
	logger *zap.Logger

	index int
	state State

	heading  *Node
	wrapper  *Node
	projects *Node
	burst    *ProjectBurst

	chars []*Node
	tween *Tween
	hold  *Timer

	// cycles counts completed word cycles.
	cycles int
}

// NewWordSequencer creates a sequencer over words. loader resolves project
// images; Start mounts it.
func NewWordSequencer(stage *Stage, words []Word, loader Loader, cfg Config) *WordSequencer {
	cfg = cfg.withDefaults()
	return &WordSequencer{
		stage:  stage,
		words:  words,
		loader: loader,
		cfg:    cfg,
		logger: cfg.Logger,
	}
}

// Start locates the mount nodes, creates the word wrapper if needed and begins
// the first word. A missing mount node is reported as a *MountError.
func (s *WordSequencer) Start() error {
	if s.state != StateIdle || s.heading != nil {
		return ErrAlreadyStarted
	}
	if err := ValidateCatalog(s.words); err != nil {
		return err
	}

	heading := s.stage.Find(s.cfg.WordContainerSelector)
	if heading == nil {
		return &MountError{Selector: s.cfg.WordContainerSelector, Role: "word container"}
	}
	projects := s.stage.Find(s.cfg.ProjectContainerSelector)
	if projects == nil {
		return &MountError{Selector: s.cfg.ProjectContainerSelector, Role: "project container"}
	}

	wrapper := heading.Find("." + WordWrapperClass)
	if wrapper == nil {
		wrapper = NewContainer(WordWrapperClass)
		wrapper.Class = WordWrapperClass
		heading.AddChild(wrapper)
	}

	s.heading = heading
	s.wrapper = wrapper
	s.projects = projects
	if s.burst == nil {
		s.burst = NewProjectBurst(s.stage, projects, s.loader, s.cfg)
	}
	s.index = 0
	s.enterSplittingIn()
	return nil
}

// Stop halts the cycle where it is: pending tweens and timers of the current
// word are dropped and the burst stops loading. Spawned images finish on their
// own. The sequencer can be started again.
func (s *WordSequencer) Stop() {
	s.stopCycle()
	if s.burst != nil {
		s.burst.Stop()
	}
	s.heading = nil
	s.setState(StateIdle)
}

// Advance moves to the next word, wrapping after the last, and restarts the
// cycle if the sequencer is running.
func (s *WordSequencer) Advance() {
	if len(s.words) == 0 {
		return
	}
	s.index = (s.index + 1) % len(s.words)
	if s.heading == nil {
		return
	}
	s.stopCycle()
	s.enterSplittingIn()
}

// Index returns the current word index.
func (s *WordSequencer) Index() int {
	return s.index
}

// State returns the current phase.
func (s *WordSequencer) State() State {
	return s.state
}

// Current returns the current word.
func (s *WordSequencer) Current() Word {
	return s.words[s.index]
}

// Cycles returns the number of word cycles that ran to completion.
func (s *WordSequencer) Cycles() int {
	return s.cycles
}

// Burst returns the project burst, or nil before Start.
func (s *WordSequencer) Burst() *ProjectBurst {
	return s.burst
}

// Chars returns the character nodes of the current word.
func (s *WordSequencer) Chars() []*Node {
	return s.chars
}

func (s *WordSequencer) setState(st State) {
	if s.state == st {
		return
	}
	s.logger.Debug("sequencer transition",
		zap.Stringer("from", s.state),
		zap.Stringer("to", st),
		zap.Int("index", s.index),
	)
	s.state = st
}

func (s *WordSequencer) stopCycle() {
	if s.tween != nil {
		s.tween.Stop()
		s.tween = nil
	}
	if s.hold != nil {
		s.hold.Stop()
		s.hold = nil
	}
}

// charRest returns the resting Y of the current characters and the distance
// they travel in and out (one line height).
func (s *WordSequencer) charRest() (restY, travel float64) {
	if len(s.chars) == 0 {
		return 0, 0
	}
	return s.chars[0].Y, s.chars[0].Height
}

func (s *WordSequencer) enterSplittingIn() {
	s.setState(StateSplittingIn)
	w := s.words[s.index]

	s.wrapper.DisposeChildren()
	word := NewText("word", w.Title, s.heading.Font)
	word.Class = "word"
	word.Color = s.heading.Color
	word.SetPosition(-word.Width/2, -word.Height/2)
	s.wrapper.AddChild(word)
	s.chars = SplitChars(word)

	restY, travel := s.charRest()
	s.tween = s.stage.Animate(s.chars, TweenSpec{
		From:     Props{PropY: restY - travel, PropAlpha: 0, PropRotation: charInRotation},
		To:       Props{PropY: restY, PropAlpha: 1, PropRotation: 0},
		Duration: s.cfg.AnimationDuration,
		Stagger:  s.cfg.CharStagger,
		Ease:     ease.OutElastic,
		OnStart: func() {
			s.burst.Run(w.Projects)
		},
		OnComplete: s.enterHolding,
	})
}

func (s *WordSequencer) enterHolding() {
	s.setState(StateHolding)
	s.tween = nil
	s.hold = s.stage.AfterFunc(s.cfg.WordDuration, s.enterSplittingOut)
}

func (s *WordSequencer) enterSplittingOut() {
	s.setState(StateSplittingOut)
	s.hold = nil

	restY, travel := s.charRest()
	s.tween = s.stage.Animate(s.chars, TweenSpec{
		To:       Props{PropY: restY + travel, PropAlpha: 0, PropRotation: charOutRotation},
		Duration: s.cfg.AnimationDuration,
		Stagger:  s.cfg.CharStagger,
		Ease:     ease.InElastic,
		OnComplete: func() {
			s.tween = nil
			s.cycles++
			s.Advance()
		},
	})
}
