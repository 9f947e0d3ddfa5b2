package wordreel

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"go.uber.org/zap"
	_ "golang.org/x/image/webp" // register WebP
	"golang.org/x/sync/errgroup"
)

// LoadedImage is a project image whose natural size is known.
type LoadedImage struct {
	URL    string
	Width  float64
	Height float64
	// Pixels is the decoded image, or nil when the loader only resolved the
	// size.
	Pixels image.Image
}

// Loader resolves one image URL. Implementations must be safe for concurrent
// use; Load is called from worker goroutines.
type Loader interface {
	Load(ctx context.Context, url string) (LoadedImage, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context, url string) (LoadedImage, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, url string) (LoadedImage, error) {
	return f(ctx, url)
}

// HTTPLoader fetches and decodes images. http and https URLs go through
// Client; file URLs and bare paths are read from disk. PNG, JPEG, GIF and WebP
// are supported. Nothing is cached between calls.
type HTTPLoader struct {
	// Client defaults to http.DefaultClient.
	Client *http.Client
}

// Load fetches rawURL and decodes it. Every failure is an *ImageLoadError.
func (l HTTPLoader) Load(ctx context.Context, rawURL string) (LoadedImage, error) {
	rc, err := l.open(ctx, rawURL)
	if err != nil {
		return LoadedImage{}, &ImageLoadError{URL: rawURL, Err: err}
	}
	defer rc.Close()

	img, _, err := image.Decode(rc)
	if err != nil {
		return LoadedImage{}, &ImageLoadError{URL: rawURL, Err: fmt.Errorf("decode: %w", err)}
	}
	b := img.Bounds()
	return LoadedImage{
		URL:    rawURL,
		Width:  float64(b.Dx()),
		Height: float64(b.Dy()),
		Pixels: img,
	}, nil
}

func (l HTTPLoader) open(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "http", "https":
	case "file":
		return os.Open(u.Path)
	case "":
		return os.Open(rawURL)
	default:
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

// Preloader loads a batch of images in the background and hands the survivors
// back on the stage goroutine.
type Preloader struct {
	Loader Loader
	Stage  *Stage

	// Limit bounds concurrent loads; 0 means unbounded.
	Limit int
	// Timeout bounds each load; 0 means no per-load timeout.
	Timeout time.Duration
	Logger  *zap.Logger
}

// LoadAll loads every URL concurrently and blocks until all have finished.
// Failed images are logged and left out; the rest keep the order of urls.
func (p *Preloader) LoadAll(ctx context.Context, urls []string) []LoadedImage {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]*LoadedImage, len(urls))
	var g errgroup.Group
	if p.Limit > 0 {
		g.SetLimit(p.Limit)
	}
	for i, u := range urls {
		g.Go(func() error {
			lctx := ctx
			if p.Timeout > 0 {
				var cancel context.CancelFunc
				lctx, cancel = context.WithTimeout(ctx, p.Timeout)
				defer cancel()
			}
			img, err := p.Loader.Load(lctx, u)
			if err != nil {
				var le *ImageLoadError
				if !errors.As(err, &le) {
					err = &ImageLoadError{URL: u, Err: err}
				}
				logger.Warn("skipping project image", zap.String("url", u), zap.Error(err))
				return nil
			}
			if img.URL == "" {
				img.URL = u
			}
			results[i] = &img
			return nil
		})
	}
	_ = g.Wait()

	loaded := make([]LoadedImage, 0, len(urls))
	for _, r := range results {
		if r != nil {
			loaded = append(loaded, *r)
		}
	}
	return loaded
}

// Preload starts loading urls and returns immediately. done runs on the stage
// goroutine with the images that loaded, in the order of urls. If ctx is
// cancelled before the batch finishes, done never runs.
func (p *Preloader) Preload(ctx context.Context, urls []string, done func([]LoadedImage)) {
	go func() {
		loaded := p.LoadAll(ctx, urls)
		if ctx.Err() != nil {
			return
		}
		p.Stage.Post(func() { done(loaded) })
	}()
}
