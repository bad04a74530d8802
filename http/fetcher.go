// Package http provides the HTTP transport for pagebrief: a Fetcher that
// retrieves a single page with browser-like identity and bounded latency,
// and a Server exposing the analysis pipeline over HTTP.
package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/pagebrief"
	"golang.org/x/net/html/charset"
)

// Fetch defaults.
const (
	DefaultFetchTimeout = 15 * time.Second
	DefaultMaxRedirects = 5
	DefaultMaxBodyBytes = 5 << 20

	// DefaultUserAgent impersonates a current desktop Chrome. Many
	// documentation hosts reject clients that do not look like a browser.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
)

// Responses with a status below this are treated as pages, not failures.
const firstFatalStatus = 500

var errTooManyRedirects = errors.New("too many redirects")

// Ensure Fetcher implements pagebrief.Fetcher at compile time.
var _ pagebrief.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML pages with a single GET request. It does not
// execute JavaScript and never retries.
type Fetcher struct {
	client       *http.Client
	timeout      time.Duration
	maxRedirects int
	maxBodyBytes int64
	userAgent    string
	header       http.Header
	limiter      pagebrief.HostLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout bounds the whole retrieval including the body transfer.
// Defaults to DefaultFetchTimeout (15s) if not specified. Non-positive
// durations are ignored.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithMaxRedirects sets how many redirects are followed before failing.
// Defaults to DefaultMaxRedirects (5) if not specified. Zero disables
// redirects; negative values are ignored.
func WithMaxRedirects(n int) Option {
	return func(f *Fetcher) {
		if n >= 0 {
			f.maxRedirects = n
		}
	}
}

// WithMaxBodyBytes caps how much of the response body is read. Non-positive
// values are ignored.
func WithMaxBodyBytes(n int64) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxBodyBytes = n
		}
	}
}

// WithUserAgent overrides the browser User-Agent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithHeader sets an extra request header, replacing any default value.
func WithHeader(key, value string) Option {
	return func(f *Fetcher) {
		f.header.Set(key, value)
	}
}

// WithLimiter throttles requests per host. The wait counts against the
// fetch timeout.
func WithLimiter(l pagebrief.HostLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:      DefaultFetchTimeout,
		maxRedirects: DefaultMaxRedirects,
		maxBodyBytes: DefaultMaxBodyBytes,
		userAgent:    DefaultUserAgent,
		header:       make(http.Header),
	}
	for _, opt := range opts {
		opt(f)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DisableKeepAlives = true

	f.client = &http.Client{
		Transport: transport,
		CheckRedirect: func(_ *http.Request, via []*http.Request) error {
			if len(via) > f.maxRedirects {
				return errTooManyRedirects
			}
			return nil
		},
	}

	return f
}

// Fetch retrieves the page at rawURL. Any status below 500 is returned as a
// page; the caller decides whether its content is usable.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*pagebrief.FetchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, pagebrief.Errorf(pagebrief.EINTERNAL, "cannot build request for %s: %v", rawURL, err)
	}
	f.setHeaders(req)

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, req.URL.Hostname()); err != nil {
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil, f.fetchError(rawURL, ctx.Err())
			}
			// The limiter refuses to wait past the deadline rather than
			// returning DeadlineExceeded, so report it as a timeout here.
			return nil, &pagebrief.Error{
				Code:    pagebrief.EFETCH,
				Timeout: true,
				Message: fmt.Sprintf("%s could not be requested within %s: host rate limit", rawURL, f.timeout),
			}
		}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, f.fetchError(rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= firstFatalStatus {
		return nil, &pagebrief.Error{
			Code:    pagebrief.EFETCH,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("%s responded with HTTP %d", rawURL, resp.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes))
	if err != nil {
		return nil, f.fetchError(rawURL, err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(body)
	}
	if !isHTML(contentType) {
		return nil, pagebrief.Errorf(pagebrief.EUNSUPPORTED, "%s returned %q, only HTML pages can be analyzed", rawURL, contentType)
	}

	return &pagebrief.FetchResult{
		URL:         rawURL,
		FinalURL:    resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Body:        decode(body, contentType),
	}, nil
}

func (f *Fetcher) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Referer", req.URL.Scheme+"://"+req.URL.Host+"/")
	for key, values := range f.header {
		req.Header[key] = values
	}
}

// fetchError classifies a transport error. No response was received, so
// the error carries no upstream status.
func (f *Fetcher) fetchError(rawURL string, err error) error {
	switch {
	case errors.Is(err, errTooManyRedirects):
		return pagebrief.Errorf(pagebrief.EFETCH, "%s: stopped after %d redirects", rawURL, f.maxRedirects)
	case isTimeout(err):
		return &pagebrief.Error{
			Code:    pagebrief.EFETCH,
			Timeout: true,
			Message: fmt.Sprintf("%s did not respond within %s", rawURL, f.timeout),
		}
	case errors.Is(err, context.Canceled):
		return pagebrief.Errorf(pagebrief.EFETCH, "request to %s was canceled", rawURL)
	default:
		return pagebrief.Errorf(pagebrief.EFETCH, "could not reach %s: %v", rawURL, err)
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isHTML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}

// decode converts body to UTF-8 using the declared or sniffed charset.
func decode(body []byte, contentType string) string {
	r, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return string(body)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return string(body)
	}
	return string(decoded)
}
