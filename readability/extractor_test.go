package readability_test

import (
	"testing"

	"github.com/fwojciec/pagebrief"
	"github.com/fwojciec/pagebrief/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articlePage = `<!DOCTYPE html>
<html>
<head><title>Page Title</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article>
<h1>Main Heading</h1>
<p>This is the important article paragraph text that must be kept. It goes on for a while so that
Readability considers it the main content of the page rather than boilerplate around it.</p>
<p>A second paragraph adds more substance, with commas, clauses, and enough words to score well.</p>
</article>
<footer><p>Footer copyright text 2024</p></footer>
</body>
</html>`

func TestExtractor_EmptyInputFallsBack(t *testing.T) {
	t.Parallel()

	result, err := readability.NewExtractor().Extract("")

	require.NoError(t, err)
	assert.Empty(t, result.Text)
	assert.Equal(t, pagebrief.SelectorBodyFallback, result.Selector)
}

func TestExtractor_ExtractsTitle(t *testing.T) {
	t.Parallel()

	result, err := readability.NewExtractor().Extract(articlePage)

	require.NoError(t, err)
	assert.Equal(t, "Page Title", result.Title)
}

func TestExtractor_KeepsArticleText(t *testing.T) {
	t.Parallel()

	result, err := readability.NewExtractor().Extract(articlePage)

	require.NoError(t, err)
	assert.Equal(t, readability.Name, result.Selector)
	assert.Contains(t, result.Text, "important article paragraph text")
	assert.NotContains(t, result.Text, "<p>")
}

func TestExtractor_RemovesBoilerplate(t *testing.T) {
	t.Parallel()

	result, err := readability.NewExtractor().Extract(articlePage)

	require.NoError(t, err)
	assert.NotContains(t, result.Text, "Home Nav Link")
	assert.NotContains(t, result.Text, "Footer copyright text")
}

func TestExtractor_FallbackCarriesBodyText(t *testing.T) {
	t.Parallel()

	result, err := readability.NewExtractor().Extract(`<html><head><title>Note</title></head><body><div>Short</div><div>note</div></body></html>`)

	require.NoError(t, err)
	if result.Selector == pagebrief.SelectorBodyFallback {
		assert.Equal(t, "Short note", result.Text)
	} else {
		assert.Contains(t, result.Text, "Short")
	}
}
