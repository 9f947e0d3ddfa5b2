// Command wordreel opens a window that cycles through a word catalog, spelling
// each word out character by character while its project images burst around
// it.
//
// Settings come from WORDREEL_* environment variables and may be overridden by
// flags:
//
//	wordreel --catalog words.yaml --word-duration 5 --animation-duration 0.75
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/phanxgames/wordreel"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/image/font/gofont/goregular"
)

// settings is everything the command reads from the environment and flags.
type settings struct {
	Title    string  `env:"TITLE" envDefault:"wordreel"`
	Width    int     `env:"WIDTH" envDefault:"1280"`
	Height   int     `env:"HEIGHT" envDefault:"720"`
	FontPath string  `env:"FONT"`
	FontSize float64 `env:"FONT_SIZE" envDefault:"96"`
	Catalog  string  `env:"CATALOG"`

	WordDuration      float64       `env:"WORD_DURATION" envDefault:"3"`
	AnimationDuration float64       `env:"ANIMATION_DURATION" envDefault:"1"`
	ProjectDelay      float64       `env:"PROJECT_DELAY" envDefault:"3"`
	LoadTimeout       time.Duration `env:"LOAD_TIMEOUT" envDefault:"10s"`

	Verbose bool `env:"VERBOSE"`
	Debug   bool `env:"DEBUG"`
}

// loadSettings reads WORDREEL_* variables.
func loadSettings() (settings, error) {
	var s settings
	if err := env.ParseWithOptions(&s, env.Options{Prefix: "WORDREEL_"}); err != nil {
		return settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}

// config maps settings onto the library configuration.
func (s settings) config(logger *zap.Logger) wordreel.Config {
	cfg := wordreel.DefaultConfig()
	cfg.WordDuration = s.WordDuration
	cfg.AnimationDuration = s.AnimationDuration
	cfg.ProjectDelay = s.ProjectDelay
	cfg.LoadTimeout = s.LoadTimeout
	cfg.Logger = logger
	return cfg
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// loadCatalog returns the built-in catalog when path is empty.
func loadCatalog(path string) ([]wordreel.Word, error) {
	if path == "" {
		return wordreel.DefaultCatalog(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return wordreel.LoadCatalog(f)
}

func loadFont(path string, size float64) (*wordreel.TTFFont, error) {
	data := goregular.TTF
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
	}
	return wordreel.LoadTTFFont(data, size)
}

// buildStage lays out the mount nodes the sequencer expects: the project
// container at the origin and the heading centered above it.
func buildStage(s settings, font wordreel.Font) *wordreel.Stage {
	stage := wordreel.NewStage(float64(s.Width), float64(s.Height))
	stage.ClearColor = wordreel.Color{R: 0.06, G: 0.06, B: 0.08, A: 1}

	projects := wordreel.NewContainer("projects")
	projects.Class = "project-container"
	stage.Root().AddChild(projects)

	heading := wordreel.NewContainer("h1")
	heading.Font = font
	heading.SetPosition(float64(s.Width)/2, float64(s.Height)/2)
	stage.Root().AddChild(heading)
	return stage
}

func run(s settings) error {
	logger, err := newLogger(s.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	words, err := loadCatalog(s.Catalog)
	if err != nil {
		return err
	}
	font, err := loadFont(s.FontPath, s.FontSize)
	if err != nil {
		return err
	}

	stage := buildStage(s, font)
	stage.SetLogger(logger)
	stage.SetDebugMode(s.Debug)

	seq := wordreel.NewWordSequencer(stage, words, wordreel.HTTPLoader{}, s.config(logger))
	if err := seq.Start(); err != nil {
		var me *wordreel.MountError
		if errors.As(err, &me) {
			logger.Error("mount failed", zap.String("selector", me.Selector), zap.Error(err))
		}
		return err
	}
	defer seq.Stop()

	logger.Info("wordreel started",
		zap.Int("words", len(words)),
		zap.Int("width", s.Width),
		zap.Int("height", s.Height),
	)
	return wordreel.Run(stage, wordreel.RunConfig{
		Title:     s.Title,
		Width:     s.Width,
		Height:    s.Height,
		Resizable: true,
	})
}

func newRootCmd(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordreel",
		Short: "Cycle through words with bursting project images",
		Long: `wordreel spells out each word of a catalog with a staggered
character animation and bursts that word's project images around it.

Defaults come from WORDREEL_* environment variables; flags override them.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(*s)
		},
	}

	f := cmd.Flags()
	f.StringVar(&s.Title, "title", s.Title, "window title")
	f.IntVar(&s.Width, "width", s.Width, "window width")
	f.IntVar(&s.Height, "height", s.Height, "window height")
	f.StringVar(&s.FontPath, "font", s.FontPath, "TTF/OTF font file (default Go Regular)")
	f.Float64Var(&s.FontSize, "font-size", s.FontSize, "font size")
	f.StringVar(&s.Catalog, "catalog", s.Catalog, "YAML word catalog (default built-in)")
	f.Float64Var(&s.WordDuration, "word-duration", s.WordDuration, "seconds a word holds")
	f.Float64Var(&s.AnimationDuration, "animation-duration", s.AnimationDuration, "seconds per character animation")
	f.Float64Var(&s.ProjectDelay, "project-delay", s.ProjectDelay, "seconds a project image holds")
	f.DurationVar(&s.LoadTimeout, "load-timeout", s.LoadTimeout, "per-image load timeout")
	f.BoolVarP(&s.Verbose, "verbose", "v", s.Verbose, "debug logging")
	f.BoolVar(&s.Debug, "debug", s.Debug, "log per-frame stage stats (needs --verbose)")
	return cmd
}

func main() {
	s, err := loadSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd(&s).Execute(); err != nil {
		os.Exit(1)
	}
}
