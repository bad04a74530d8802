package pagebrief

import "context"

// FetchResult holds a single retrieved page.
type FetchResult struct {
	// URL is the URL that was requested.
	URL string

	// FinalURL is the URL after redirects were followed.
	FinalURL string

	StatusCode  int
	ContentType string

	// Body is the response body decoded to UTF-8.
	Body string
}

// Fetcher retrieves a single page over the network.
type Fetcher interface {
	// Fetch performs exactly one retrieval of url. The context controls
	// cancellation; implementations apply their own deadline on top of it.
	// Failures are returned as *Error with code EFETCH, EUNSUPPORTED or
	// EINTERNAL.
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// HostLimiter throttles outbound requests per host.
type HostLimiter interface {
	// Wait blocks until a request to host is allowed.
	// Returns an error if the context is canceled first.
	Wait(ctx context.Context, host string) error
}
