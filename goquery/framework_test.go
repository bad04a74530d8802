package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagebrief"
	"github.com/fwojciec/pagebrief/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_DetectsFramework(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want pagebrief.Framework
	}{
		{
			name: "docusaurus from meta generator",
			html: `<html><head><meta name="generator" content="Docusaurus v3.1.0"></head><body><main>x</main></body></html>`,
			want: pagebrief.FrameworkDocusaurus,
		},
		{
			name: "sphinx from meta generator",
			html: `<html><head><meta name="generator" content="Sphinx 7.2.6"></head><body></body></html>`,
			want: pagebrief.FrameworkSphinx,
		},
		{
			name: "vitepress from meta generator",
			html: `<html><head><meta name="generator" content="VitePress v1.0.0"></head><body></body></html>`,
			want: pagebrief.FrameworkVitePress,
		},
		{
			name: "mkdocs from navigation marker",
			html: `<html><body data-md-color-scheme="default"><nav class="md-nav md-nav--primary"><a href="/">Home</a></nav></body></html>`,
			want: pagebrief.FrameworkMkDocs,
		},
		{
			name: "docusaurus from sidebar marker",
			html: `<html><body><div class="theme-doc-sidebar-container"><nav class="menu"></nav></div></body></html>`,
			want: pagebrief.FrameworkDocusaurus,
		},
		{
			name: "vitepress from content marker",
			html: `<html><body><div id="VPContent"><div class="vp-doc">Docs</div></div></body></html>`,
			want: pagebrief.FrameworkVitePress,
		},
		{
			name: "vuepress from content marker",
			html: `<html><body><div class="theme-default-content">Docs</div></body></html>`,
			want: pagebrief.FrameworkVuePress,
		},
		{
			name: "nextra from navbar marker",
			html: `<html><body><div class="nextra-navbar"></div></body></html>`,
			want: pagebrief.FrameworkNextra,
		},
		{
			name: "gitbook from sidebar test id",
			html: `<html><body><aside data-testid="space.sidebar"></aside></body></html>`,
			want: pagebrief.FrameworkGitBook,
		},
		{
			name: "unknown for plain pages",
			html: `<html><body><main>Hello</main></body></html>`,
			want: pagebrief.FrameworkUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := goquery.NewExtractor(100).Extract(tt.html)

			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Framework)
		})
	}
}

func TestExtractor_DocusaurusContent(t *testing.T) {
	t.Parallel()

	text := words("docusaurus", 20)
	html := `<html><head><meta name="generator" content="Docusaurus v3"></head><body>
<div class="theme-doc-sidebar-container"><nav class="menu">Sidebar Link</nav></div>
<div class="theme-doc-markdown markdown">` + text + `</div>
</body></html>`

	result, err := goquery.NewExtractor(100).Extract(html)

	require.NoError(t, err)
	assert.Equal(t, pagebrief.FrameworkDocusaurus, result.Framework)
	assert.Equal(t, "docusaurus", result.Selector)
	assert.Equal(t, text, result.Text)
	assert.NotContains(t, result.Text, "Sidebar Link")
}
