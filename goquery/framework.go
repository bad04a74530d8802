package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagebrief"
)

// frameworkMarkers lists selectors unique to each documentation generator.
// Order matters: VitePress is checked before VuePress because it reuses
// some VuePress class names.
var frameworkMarkers = []struct {
	framework pagebrief.Framework
	selectors []string
}{
	{pagebrief.FrameworkDocusaurus, []string{"#__docusaurus", "#__docusaurus_skipToContent_fallback", ".theme-doc-sidebar-container", ".theme-doc-markdown"}},
	{pagebrief.FrameworkMkDocs, []string{"[data-md-color-scheme]", "[data-md-component]", ".md-nav--primary"}},
	{pagebrief.FrameworkSphinx, []string{".toctree-wrapper", ".wy-nav-side", ".sphinxsidebar", ".rst-content"}},
	{pagebrief.FrameworkVitePress, []string{"#VPContent", ".VPDoc", ".vp-doc"}},
	{pagebrief.FrameworkVuePress, []string{".theme-default-content", ".sidebar-links", ".vuepress-navbar"}},
	{pagebrief.FrameworkGitBook, []string{"[data-testid='space.sidebar']", "[data-testid='page.desktopTableOfContents']"}},
	{pagebrief.FrameworkNextra, []string{".nextra-navbar", ".nextra-sidebar", ".nextra-toc", ".nextra-content"}},
}

// detectFramework identifies the documentation generator that produced doc.
// It must run before noise removal, since most markers live in navigation.
func detectFramework(doc *goquery.Document) pagebrief.Framework {
	if generator, ok := doc.Find("meta[name='generator']").Attr("content"); ok {
		generator = strings.ToLower(generator)
		for _, m := range frameworkMarkers {
			if strings.Contains(generator, string(m.framework)) {
				return m.framework
			}
		}
	}

	for _, m := range frameworkMarkers {
		if doc.Find(strings.Join(m.selectors, ", ")).Length() > 0 {
			return m.framework
		}
	}

	return pagebrief.FrameworkUnknown
}
