package pagebrief

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Content length limits applied by a zero-value Normalizer.
const (
	DefaultMaxContentLength = 8000
	DefaultMinContentLength = 100
)

// NormalizedContent is extracted text after cleanup and truncation.
type NormalizedContent struct {
	Text      string `json:"text"`
	Length    int    `json:"length"`
	Truncated bool   `json:"truncated"`
}

// Normalizer turns extracted text into single-spaced printable ASCII capped
// at MaxLength characters. Zero fields fall back to the package defaults.
type Normalizer struct {
	MaxLength int
	MinLength int
}

// typography maps common non-ASCII punctuation onto ASCII before folding,
// so quotes and dashes survive instead of turning into word breaks.
var typography = strings.NewReplacer(
	"‘", "'", "’", "'", "‚", "'", "′", "'",
	"“", `"`, "”", `"`, "„", `"`, "″", `"`,
	"«", `"`, "»", `"`,
	"‐", "-", "‑", "-", "‒", "-", "–", "-", "—", "-", "−", "-",
	"•", "*", "·", "*",
)

// Normalize cleans text for use in a model prompt. The steps run in a fixed
// order and truncation is always last, so the cap applies to the final text.
// Normalize is idempotent.
func (n Normalizer) Normalize(text string) *NormalizedContent {
	s := typography.Replace(text)

	// Decompose accented letters and drop the combining marks: "é" -> "e".
	fold := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	if folded, _, err := transform.String(fold, s); err == nil {
		s = folded
	}

	// Anything that is not printable ASCII acts as a separator. Runs of
	// separators, including blank-line sequences, collapse to one space and
	// leading/trailing separators are dropped.
	var b strings.Builder
	b.Grow(len(s))
	pending := false
	for _, r := range s {
		if r > ' ' && r <= '~' {
			if pending && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	out := b.String()

	limit := n.maxLength()
	truncated := false
	if len(out) > limit {
		out = strings.TrimRight(out[:limit], " ")
		truncated = true
	}

	return &NormalizedContent{
		Text:      out,
		Length:    len(out),
		Truncated: truncated,
	}
}

// Check returns EINSUFFICIENT when the content is shorter than MinLength.
func (n Normalizer) Check(c *NormalizedContent) error {
	minimum := n.minLength()
	if c == nil || c.Length < minimum {
		length := 0
		if c != nil {
			length = c.Length
		}
		return Errorf(EINSUFFICIENT, "page has too little readable content (%d characters, need at least %d)", length, minimum)
	}
	return nil
}

func (n Normalizer) maxLength() int {
	if n.MaxLength <= 0 {
		return DefaultMaxContentLength
	}
	return n.MaxLength
}

func (n Normalizer) minLength() int {
	if n.MinLength <= 0 {
		return DefaultMinContentLength
	}
	return n.MinLength
}
