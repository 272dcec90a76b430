// Package sanitize cleans HTML coming from feeds and scraped pages.
// Every text field stored by the application passes through one of the
// two policies defined here.
package sanitize

import (
	"html"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

// safeTags is the set of elements preserved by KeepSafeTags. Everything
// else is stripped, scripts and event handlers included.
var safeTags = []string{
	"a", "abbr", "acronym", "article", "aside", "b", "blockquote", "br",
	"caption", "code", "col", "colgroup", "dd", "del", "details", "div",
	"dl", "dt", "em", "figcaption", "figure", "h1", "h2", "h3", "h4",
	"h5", "h6", "hr", "i", "img", "ins", "kbd", "li", "mark", "ol", "p",
	"pre", "q", "s", "section", "small", "span", "strike", "strong",
	"sub", "summary", "sup", "table", "tbody", "td", "tfoot", "th",
	"thead", "time", "tr", "u", "ul", "var",
}

// SummaryDroppedTags are additionally removed from article summaries so
// that list views stay compact.
var SummaryDroppedTags = []string{"img", "pre"}

var (
	strictPolicy  = bluemonday.StrictPolicy()
	contentPolicy = newSafePolicy(nil)
	summaryPolicy = newSafePolicy(SummaryDroppedTags)
)

func newSafePolicy(dropped []string) *bluemonday.Policy {
	drop := make(map[string]bool, len(dropped))
	for _, tag := range dropped {
		drop[tag] = true
	}

	p := bluemonday.NewPolicy()
	for _, tag := range safeTags {
		if !drop[tag] {
			p.AllowElements(tag)
		}
	}

	p.AllowStandardURLs()
	p.AllowRelativeURLs(true)
	p.AllowAttrs("href").OnElements("a")
	if !drop["img"] {
		p.AllowAttrs("src", "alt").OnElements("img")
	}
	p.AllowAttrs("datetime").OnElements("time")
	p.AllowURLSchemes("http", "https", "mailto")

	return p
}

// Full strips every tag and returns decoded plain text. Used for
// titles, tags, author names and anything rendered outside an HTML
// context.
func Full(raw string) string {
	return html.UnescapeString(strictPolicy.Sanitize(raw))
}

// KeepSafeTags sanitizes article content while preserving structural
// and formatting elements.
func KeepSafeTags(raw string) string {
	return strings.TrimSpace(contentPolicy.Sanitize(raw))
}

// KeepSafeTagsForSummary is KeepSafeTags with images and code blocks
// removed.
func KeepSafeTagsForSummary(raw string) string {
	return strings.TrimSpace(summaryPolicy.Sanitize(raw))
}

// WordCount counts the words in an HTML fragment after stripping tags.
// Tokens made purely of punctuation are not words.
func WordCount(raw string) int {
	count := 0
	for _, word := range strings.Fields(Full(raw)) {
		if strings.TrimFunc(word, unicode.IsPunct) != "" {
			count++
		}
	}
	return count
}
