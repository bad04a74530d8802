package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagebrief"
	"golang.org/x/net/html"
)

// Text returns the text of every node in sel, with each non-blank text node
// trimmed and joined to its neighbours by a single space. Unlike
// Selection.Text, adjacent block elements such as <h1>Install</h1><p>Run</p>
// come out as "Install Run" rather than "InstallRun".
func Text(sel *goquery.Selection) string {
	var parts []string
	for _, n := range sel.Nodes {
		collectText(n, &parts)
	}
	return strings.Join(parts, " ")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// BodyFallback parses rawHTML, strips noise and returns the whole body text
// marked as a body fallback. Extractors backed by other libraries use it when
// their own heuristics find nothing.
func BodyFallback(rawHTML string) *pagebrief.Extraction {
	result := &pagebrief.Extraction{Selector: pagebrief.SelectorBodyFallback}
	if strings.TrimSpace(rawHTML) == "" {
		return result
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return result
	}
	result.Title = strings.TrimSpace(doc.Find("head title").First().Text())
	RemoveNoise(doc)
	result.Text = Text(doc.Find("body"))
	return result
}
