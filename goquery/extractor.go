// Package goquery selects the main content of an HTML page with CSS
// selectors, using github.com/PuerkitoBio/goquery.
package goquery

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagebrief"
)

// DefaultMinRegionLength is the number of characters a region's trimmed text
// must exceed to be accepted.
const DefaultMinRegionLength = 100

// NoiseSelectors match markup that never carries main content. They are
// removed from the document before any region is considered.
var NoiseSelectors = []string{
	// Scripts, styles and embedded media.
	"script", "style", "noscript", "template", "link",
	"iframe", "embed", "object", "video", "audio", "canvas", "svg",

	// Navigation and page chrome.
	"nav", "[role=navigation]",
	"header", "[role=banner]",
	"footer", "[role=contentinfo]",
	"aside", "[role=complementary]",
	".sidebar", "#sidebar", ".side-bar", ".toc", ".table-of-contents",
	".breadcrumb", ".breadcrumbs", ".skip-link",

	// Advertising.
	".ad", ".ads", ".advert", ".advertisement", ".sponsored",
	"[id^='ad-']", "[class*=ad-slot]", "[class*=adsbygoogle]",

	// Cookie and consent banners.
	".cookie", ".cookies", ".cookie-banner", ".cookie-notice", ".cookie-consent",
	"#cookie-banner", "#cookie-notice", "#cookie-consent", ".consent-banner", ".gdpr",

	// Comment sections.
	".comments", "#comments", ".comment-section", "#disqus_thread",
}

// Strategy is one candidate content region: a CSS selector plus the length
// its text must exceed to be accepted.
type Strategy struct {
	Name      string
	Selector  string
	MinLength int
}

// Match returns the text of the first element matching the strategy's
// selector, and whether it qualifies.
func (s Strategy) Match(doc *goquery.Document) (string, bool) {
	sel := doc.Find(s.Selector).First()
	if sel.Length() == 0 {
		return "", false
	}
	text := Text(sel)
	return text, utf8.RuneCountInString(text) > s.MinLength
}

// DefaultStrategies returns the candidate regions ordered from most to least
// specific. Each region must exceed minLength characters.
func DefaultStrategies(minLength int) []Strategy {
	specs := []struct{ name, selector string }{
		// Landmarks.
		{"main", "main"},
		{"role-main", "[role=main]"},
		{"article", "article"},

		// Documentation generators.
		{"docusaurus", ".theme-doc-markdown"},
		{"mkdocs", ".md-content"},
		{"sphinx", ".rst-content"},
		{"sphinx-body", "div.body[role=main], div.document"},
		{"vitepress", ".vp-doc"},
		{"vuepress", ".theme-default-content"},
		{"gitbook", "[data-testid='page.contentEditor']"},
		{"nextra", ".nextra-content"},
		{"markdown-body", ".markdown-body"},

		// Common content classes.
		{"documentation", ".documentation"},
		{"docs-content", ".docs-content"},
		{"content", ".content"},
		{"main-content", ".main-content"},
		{"post-content", ".post-content"},
		{"entry-content", ".entry-content"},

		// Common content ids.
		{"content-id", "#content"},
		{"main-content-id", "#main-content"},
		{"main-id", "#main"},

		{"body", "body"},
	}

	strategies := make([]Strategy, len(specs))
	for i, s := range specs {
		strategies[i] = Strategy{Name: s.name, Selector: s.selector, MinLength: minLength}
	}
	return strategies
}

// Ensure Extractor implements pagebrief.Extractor at compile time.
var _ pagebrief.Extractor = (*Extractor)(nil)

// Extractor strips noise from a page and returns the text of the first
// strategy region that qualifies. There is no scoring across candidates:
// the order of Strategies is the preference.
type Extractor struct {
	Strategies []Strategy
}

// NewExtractor creates an Extractor using DefaultStrategies with the given
// minimum region length. A non-positive length selects DefaultMinRegionLength.
func NewExtractor(minLength int) *Extractor {
	if minLength <= 0 {
		minLength = DefaultMinRegionLength
	}
	return &Extractor{Strategies: DefaultStrategies(minLength)}
}

// Extract parses rawHTML and returns its main content. If no strategy
// qualifies, the full body text is returned regardless of its length;
// deciding whether that is enough is left to the caller.
func (e *Extractor) Extract(rawHTML string) (*pagebrief.Extraction, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return &pagebrief.Extraction{Selector: pagebrief.SelectorBodyFallback}, nil
	}
	return e.ExtractFrom(strings.NewReader(rawHTML))
}

// ExtractFrom is Extract for a page read from r.
func (e *Extractor) ExtractFrom(r io.Reader) (*pagebrief.Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, pagebrief.Errorf(pagebrief.EINTERNAL, "failed to parse HTML: %v", err)
	}

	result := &pagebrief.Extraction{
		Title:     strings.TrimSpace(doc.Find("head title").First().Text()),
		Framework: detectFramework(doc),
	}

	RemoveNoise(doc)

	for _, s := range e.Strategies {
		if text, ok := s.Match(doc); ok {
			result.Text = text
			result.Selector = s.Name
			return result, nil
		}
	}

	result.Text = Text(doc.Find("body"))
	result.Selector = pagebrief.SelectorBodyFallback
	return result, nil
}

// RemoveNoise deletes every element matching NoiseSelectors from doc.
func RemoveNoise(doc *goquery.Document) {
	doc.Find(strings.Join(NoiseSelectors, ", ")).Remove()
}
