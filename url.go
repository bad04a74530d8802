package pagebrief

import (
	"net/url"
	"strings"
)

// ValidateURL checks that raw is an absolute http or https URL and returns
// it parsed. It never touches the network.
func ValidateURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, Errorf(EINVALID, "URL is required")
	}

	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return nil, Errorf(EINVALID, "URL %q is malformed", raw)
	}
	if !u.IsAbs() {
		return nil, Errorf(EINVALID, "URL %q must be absolute", raw)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return nil, Errorf(EINVALID, "URL scheme %q is not supported, use http or https", u.Scheme)
	}

	if u.Hostname() == "" {
		return nil, Errorf(EINVALID, "URL %q has no host", raw)
	}

	return u, nil
}
