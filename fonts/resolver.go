// Package fonts resolves Google Fonts families to local TTF files through
// a disk cache, and reads the font metrics the worksheet fitter needs.
package fonts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const (
	// DefaultStylesheetURL is the Google Fonts CSS2 endpoint. The format
	// verbs receive the plus-escaped family name and the weight.
	DefaultStylesheetURL = "https://fonts.googleapis.com/css2?family=%s:wght@%d"

	// The CSS2 endpoint serves TTF URLs only to browser-like clients.
	userAgent = "Mozilla/5.0"

	listTimeout     = 20 * time.Second
	downloadTimeout = 30 * time.Second
)

// defaultFilePattern matches the direct font-file URL embedded in the
// stylesheet body.
var defaultFilePattern = regexp.MustCompile(`url\((https://fonts\.gstatic\.com/s/.*?\.ttf)\)`)

var (
	// ErrNoFontURL reports a stylesheet without a usable TTF URL.
	ErrNoFontURL = errors.New("no ttf url in font stylesheet")
	// ErrBadFontPayload reports a download that is not a parseable font.
	ErrBadFontPayload = errors.New("downloaded payload is not an opentype font")
)

// Spec identifies one font resource by family and weight.
type Spec struct {
	Family string
	Weight int
}

func (s Spec) String() string {
	return fmt.Sprintf("%s:%d", s.Family, s.Weight)
}

// CacheKey returns the filesystem-safe cache file name for the spec:
// lower-cased family with spaces replaced by dashes, plus the weight.
func (s Spec) CacheKey() string {
	family := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s.Family)), " ", "-")
	return fmt.Sprintf("%s-%d.ttf", family, s.Weight)
}

// ResolutionError reports a failed font lookup or download.
type ResolutionError struct {
	Spec Spec
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve font %s: %v", e.Spec, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// Resolver downloads fonts into a cache directory and reuses cached files
// on later calls. The zero value is not usable; call NewResolver.
type Resolver struct {
	// CacheDir receives one file per resolved Spec.
	CacheDir string
	// Client issues both HTTP calls. Per-request deadlines are applied on
	// top of any client timeout.
	Client *http.Client
	// StylesheetURL is a format string for the listing endpoint. Tests
	// point it at a local server.
	StylesheetURL string
	// FilePattern extracts the font-file URL from the stylesheet body.
	FilePattern *regexp.Regexp
}

// NewResolver returns a Resolver caching under dir.
func NewResolver(dir string) *Resolver {
	return &Resolver{
		CacheDir:      dir,
		Client:        http.DefaultClient,
		StylesheetURL: DefaultStylesheetURL,
		FilePattern:   defaultFilePattern,
	}
}

// DefaultCacheDir returns the per-user font cache directory, falling back
// to a directory under os.TempDir when the user cache is unavailable.
func DefaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "ruled", "fonts")
	}
	return filepath.Join(os.TempDir(), "ruled-fonts")
}

// Resolve returns the local path of the font file for spec, downloading
// and caching it on first use. A cached non-empty file short-circuits all
// network access, so repeated calls are idempotent. Every network or
// payload failure is returned as a *ResolutionError; nothing is retried.
func (r *Resolver) Resolve(ctx context.Context, spec Spec) (string, error) {
	if strings.TrimSpace(spec.Family) == "" {
		return "", &ResolutionError{Spec: spec, Err: errors.New("empty font family")}
	}
	target := filepath.Join(r.CacheDir, spec.CacheKey())
	if info, err := os.Stat(target); err == nil && info.Size() > 0 {
		return target, nil
	}

	fileURL, err := r.lookupFileURL(ctx, spec)
	if err != nil {
		return "", &ResolutionError{Spec: spec, Err: err}
	}
	data, err := r.download(ctx, fileURL)
	if err != nil {
		return "", &ResolutionError{Spec: spec, Err: err}
	}
	if _, err := ParseMetrics(data); err != nil {
		return "", &ResolutionError{Spec: spec, Err: fmt.Errorf("%w: %v", ErrBadFontPayload, err)}
	}

	if err := os.MkdirAll(r.CacheDir, 0o755); err != nil {
		return "", &ResolutionError{Spec: spec, Err: fmt.Errorf("create cache dir: %w", err)}
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", &ResolutionError{Spec: spec, Err: fmt.Errorf("write cache file: %w", err)}
	}
	return target, nil
}

func (r *Resolver) lookupFileURL(ctx context.Context, spec Spec) (string, error) {
	family := strings.ReplaceAll(strings.TrimSpace(spec.Family), " ", "+")
	listURL := fmt.Sprintf(r.StylesheetURL, family, spec.Weight)
	body, err := r.fetch(ctx, listURL, listTimeout)
	if err != nil {
		return "", fmt.Errorf("font listing: %w", err)
	}
	match := r.FilePattern.FindSubmatch(body)
	if match == nil {
		return "", ErrNoFontURL
	}
	return string(match[1]), nil
}

func (r *Resolver) download(ctx context.Context, fileURL string) ([]byte, error) {
	data, err := r.fetch(ctx, fileURL, downloadTimeout)
	if err != nil {
		return nil, fmt.Errorf("font download: %w", err)
	}
	return data, nil
}

func (r *Resolver) fetch(ctx context.Context, rawURL string, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("http %s: %s", rawURL, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
