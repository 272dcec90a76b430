package feedparse

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"feedreader/internal/domain"
	"feedreader/internal/sanitize"
	"feedreader/internal/urlutil"
)

// Field length caps shared by the feed parser and the page extractor.
const (
	ArticleTitleMaxLength      = 300
	SourceTitleMaxLength       = 300
	ExternalArticleIDMaxLength = 512
	LanguageCodeMaxLength      = 5
	MaxSummaryWords            = 255
)

var languageCodeRe = regexp.MustCompile(`^[a-z]{2}([_-][a-z]{2})?$`)

// NormalizeArticleData sanitizes every field of a raw article record and
// fills the derivable gaps: relative links in the body are resolved
// against the article link, a missing summary is built from the content
// and a missing title or source falls back to the link's host.
func NormalizeArticleData(data domain.ArticleData) domain.ArticleData {
	if data.Link != "" {
		data.Summary = resolveRelativeURLs(data.Link, data.Summary)
		data.Content = resolveRelativeURLs(data.Link, data.Content)
	}

	data.Content = sanitize.KeepSafeTags(data.Content)
	data.Summary = sanitize.KeepSafeTagsForSummary(data.Summary)
	if data.Summary == "" && data.Content != "" {
		data.Summary = fallbackSummary(data.Content)
	}

	host := linkHost(data.Link)
	data.Title = truncate(strings.TrimSpace(sanitize.Full(data.Title)), ArticleTitleMaxLength)
	if data.Title == "" {
		data.Title = host
	}
	data.SourceTitle = truncate(strings.TrimSpace(sanitize.Full(data.SourceTitle)), SourceTitleMaxLength)
	if data.SourceTitle == "" {
		data.SourceTitle = host
	}

	data.ExternalArticleID = truncate(strings.TrimSpace(sanitize.Full(data.ExternalArticleID)), ExternalArticleIDMaxLength)
	data.Authors = cleanStrings(data.Authors)
	data.Contributors = cleanStrings(data.Contributors)
	data.Tags = cleanStrings(data.Tags)
	data.PreviewPictureAlt = strings.TrimSpace(sanitize.Full(data.PreviewPictureAlt))
	if data.PreviewPictureURL != "" && !urlutil.IsValid(data.PreviewPictureURL) {
		data.PreviewPictureURL = ""
	}
	data.Language = validLanguageCode(sanitize.Full(data.Language))

	return data
}

// resolveRelativeURLs rewrites link hrefs and image sources so the body
// keeps working outside its origin page. Values that cannot be
// normalized stay as they are.
func resolveRelativeURLs(articleURL, content string) string {
	if content == "" || !strings.Contains(content, "<") {
		return content
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return content
	}

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		s.SetAttr("href", urlutil.MustNormalize(articleURL, s.AttrOr("href", "")))
	})
	doc.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
		s.SetAttr("src", urlutil.MustNormalize(articleURL, s.AttrOr("src", "")))
	})

	resolved, err := doc.Find("body").Html()
	if err != nil {
		return content
	}
	return resolved
}

// fallbackSummary derives a plain-text summary from the first words of
// the content.
func fallbackSummary(content string) string {
	words := strings.Fields(sanitize.Full(content))
	if len(words) <= MaxSummaryWords {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:MaxSummaryWords], " ") + "…"
}

func linkHost(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return link
	}
	return u.Host
}

func cleanStrings(values []string) []string {
	cleaned := make([]string, 0, len(values))
	for _, value := range values {
		if v := strings.TrimSpace(sanitize.Full(value)); v != "" {
			cleaned = append(cleaned, v)
		}
	}
	return cleaned
}

// validLanguageCode accepts two-letter codes with an optional region
// part ("fr", "en-US", "pt_br"). Anything else becomes empty.
func validLanguageCode(value string) string {
	value = truncate(strings.TrimSpace(value), LanguageCodeMaxLength)
	if languageCodeRe.MatchString(strings.ToLower(value)) {
		return value
	}
	return ""
}
