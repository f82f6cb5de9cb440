// Package imagefetch retrieves remote page art for document builds. Fetch
// failures are expected and non-fatal: the renderer substitutes a placeholder
// for any page whose art never arrived.
package imagefetch

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// FormatPNG and FormatJPG are the two embed formats the print pipeline
// supports.
const (
	FormatPNG = "png"
	FormatJPG = "jpg"
)

// Image is fetched page art plus its detected embed format.
type Image struct {
	Data   []byte
	Format string
}

// Fetcher retrieves image bytes by URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (Image, error)
}

// Options configures an HTTPFetcher.
type Options struct {
	// Timeout bounds each individual fetch. Zero means 15 seconds.
	Timeout time.Duration

	// RequestsPerSecond throttles calls to the remote image host. Zero
	// disables throttling.
	RequestsPerSecond float64

	// CacheTTL keeps recently fetched bytes around so a rebuild of the same
	// project doesn't hammer the host. Zero disables caching.
	CacheTTL time.Duration
}

// HTTPFetcher fetches image bytes over HTTP with a per-fetch deadline, a
// polite rate limit, and a TTL byte cache keyed by URL.
type HTTPFetcher struct {
	client  *http.Client
	cache   *cache.Cache
	limiter *rate.Limiter
	timeout time.Duration
}

var _ Fetcher = (*HTTPFetcher)(nil)

func NewHTTPFetcher(opts Options) *HTTPFetcher {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	f := &HTTPFetcher{
		client:  &http.Client{},
		timeout: timeout,
	}
	if opts.RequestsPerSecond > 0 {
		f.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}
	if opts.CacheTTL > 0 {
		f.cache = cache.New(opts.CacheTTL, opts.CacheTTL*2)
	}
	return f
}

// Fetch retrieves the image at url and detects its embed format.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (Image, error) {
	if f.cache != nil {
		if cached, ok := f.cache.Get(url); ok {
			return cached.(Image), nil
		}
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return Image{}, errors.WithStack(err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Image{}, errors.WithStack(err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return Image{}, errors.Wrapf(err, "fetch image: %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Image{}, errors.Errorf("fetch image: %s returned %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Image{}, errors.Wrapf(err, "read image body: %s", url)
	}
	if len(data) == 0 {
		return Image{}, errors.Errorf("fetch image: %s returned an empty body", url)
	}

	img := Image{Data: data, Format: DetectFormat(url, data)}
	if f.cache != nil {
		f.cache.Set(url, img, cache.DefaultExpiration)
	}
	return img, nil
}

// DetectFormat sniffs the embed format from magic bytes, falling back to the
// URL only when sniffing is inconclusive. JPEG is the final default since
// most generation hosts serve it without any extension.
func DetectFormat(url string, data []byte) string {
	mtype := mimetype.Detect(data)
	switch {
	case mtype.Is("image/png"):
		return FormatPNG
	case mtype.Is("image/jpeg"):
		return FormatJPG
	}

	lower := strings.ToLower(url)
	if strings.Contains(lower, ".png") || strings.Contains(lower, "format=png") {
		return FormatPNG
	}
	return FormatJPG
}
