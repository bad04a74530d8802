package pagebrief

// Selector names reported when an extractor falls back to the whole body.
const SelectorBodyFallback = "body-fallback"

// Extraction holds the main content selected from an HTML page.
type Extraction struct {
	// Text is the trimmed text of the selected region.
	Text string

	// Selector names the strategy that produced Text.
	Selector string

	// Title is the page title, if the document declares one.
	Title string

	// Framework is the detected documentation generator, if any.
	Framework Framework
}

// Extractor selects the most likely main-content region of an HTML page.
type Extractor interface {
	// Extract parses raw HTML and returns the text of its main content.
	// It never fails because no region qualified; in that case the whole
	// body text is returned, which may be empty.
	Extract(html string) (*Extraction, error)
}

// Framework identifies a documentation framework.
type Framework string

// Recognized documentation frameworks.
const (
	FrameworkUnknown    Framework = ""
	FrameworkDocusaurus Framework = "docusaurus"
	FrameworkMkDocs     Framework = "mkdocs"
	FrameworkSphinx     Framework = "sphinx"
	FrameworkVuePress   Framework = "vuepress"
	FrameworkVitePress  Framework = "vitepress"
	FrameworkGitBook    Framework = "gitbook"
	FrameworkNextra     Framework = "nextra"
)
