// Package extract turns arbitrary HTML article pages into normalized
// article records and carries the field normalization shared with the
// feed parser.
package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"

	"feedreader/internal/domain"
	"feedreader/internal/fetch"
	"feedreader/internal/feedparse"
	"feedreader/internal/urlutil"
)

// maxMetaRefreshHops bounds how many http-equiv refresh redirects a page
// can chain before extraction gives up and uses the last response.
const maxMetaRefreshHops = 10

// contentMarkers are id/class values that identify the main article
// element on pages with several article tags.
var contentMarkers = map[string]bool{
	"post__content":    true,
	"article__content": true,
	"post-content":     true,
	"article-content":  true,
	"article":          true,
	"post":             true,
	"content":          true,
}

// Extractor fetches article pages and extracts normalized records.
type Extractor struct {
	client      *fetch.Client
	maxFileSize int64
	logger      *slog.Logger
}

// NewExtractor creates a page extractor around the given fetch client.
func NewExtractor(client *fetch.Client, maxFileSize int64, logger *slog.Logger) *Extractor {
	return &Extractor{
		client:      client,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// FromURL fetches url, following both HTTP redirects and meta refresh
// redirects, and extracts an article record from the final page.
func (e *Extractor) FromURL(ctx context.Context, rawURL string) (domain.ArticleData, error) {
	finalURL, doc, contentLanguage, err := e.fetchPage(ctx, rawURL)
	if err != nil {
		return domain.ArticleData{}, err
	}
	return buildArticleData(finalURL, doc, contentLanguage, ""), nil
}

// FromContent builds an article record from user-supplied HTML, keeping
// the supplied title when there is one.
func FromContent(rawURL, title, content string) domain.ArticleData {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return feedparse.NormalizeArticleData(domain.ArticleData{Link: rawURL, Title: title, Content: content})
	}
	return buildArticleData(rawURL, doc, "", title)
}

func (e *Extractor) fetchPage(ctx context.Context, rawURL string) (string, *goquery.Document, string, error) {
	var finalURL string
	var doc *goquery.Document
	var contentLanguage string

	pageURL := rawURL
	for hop := 0; hop < maxMetaRefreshHops; hop++ {
		result, err := e.client.Get(ctx, pageURL, fetch.ConditionalHeaders{})
		if err != nil {
			if errors.Is(err, fetch.ErrBodyTooBig) {
				return "", nil, "", &domain.ArticleTooBigError{URL: pageURL, Size: e.maxFileSize}
			}
			return "", nil, "", fmt.Errorf("fetch %s: %w", pageURL, err)
		}

		doc, err = goquery.NewDocumentFromReader(strings.NewReader(string(result.Body)))
		if err != nil {
			return "", nil, "", fmt.Errorf("parse page %s: %w", pageURL, err)
		}

		finalURL = result.FinalURL
		contentLanguage = contentLanguageFromResult(result)

		refreshURL := metaRefreshURL(doc)
		if refreshURL == "" {
			break
		}
		e.logger.Debug("following meta refresh", "from", pageURL, "to", refreshURL)
		pageURL = refreshURL
	}

	return finalURL, doc, contentLanguage, nil
}

func contentLanguageFromResult(result *fetch.Result) string {
	// Content-Language may list several languages, the first one wins.
	return strings.TrimSpace(strings.Split(result.ContentLanguage, ",")[0])
}

// metaRefreshURL parses a meta http-equiv refresh element. The content
// attribute has the form "N;url=...".
func metaRefreshURL(doc *goquery.Document) string {
	content, ok := doc.Find(`meta[http-equiv="refresh"]`).First().Attr("content")
	if !ok {
		return ""
	}

	parts := strings.Split(content, ";")
	if len(parts) != 2 {
		return ""
	}

	target := strings.TrimSpace(parts[1])
	target = strings.TrimPrefix(target, "url=")
	if !urlutil.IsValid(target) {
		return ""
	}
	return target
}

func buildArticleData(fetchedURL string, doc *goquery.Document, contentLanguage, forcedTitle string) domain.ArticleData {
	title := forcedTitle
	if title == "" {
		title = pageTitle(doc)
	}

	return feedparse.NormalizeArticleData(domain.ArticleData{
		SourceTitle:       siteTitle(fetchedURL, doc),
		Title:             title,
		Summary:           pageSummary(doc),
		Content:           pageContent(doc),
		Authors:           pageAuthors(doc),
		Tags:              pageTags(doc),
		Link:              canonicalURL(fetchedURL, doc),
		PreviewPictureURL: previewPictureURL(fetchedURL, doc),
		PublishedAt:       metaTime(doc, "article:published_time"),
		UpdatedAt:         metaTime(doc, "article:modified_time"),
		Language:          pageLanguage(doc, contentLanguage),
	})
}

// pageTitle walks the known title sources in decreasing specificity.
func pageTitle(doc *goquery.Document) string {
	if v := metaContent(doc, `meta[property="og:title"]`); v != "" {
		return v
	}
	if v := metaContent(doc, `meta[itemprop="name"]`); v != "" {
		return v
	}
	if v := metaContent(doc, `meta[property="title"]`); v != "" {
		return v
	}
	if v := strings.TrimSpace(doc.Find("title").First().Text()); v != "" {
		return v
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}

func siteTitle(fetchedURL string, doc *goquery.Document) string {
	if v := metaContent(doc, `meta[property="og:site_name"]`); v != "" {
		return v
	}
	if v := strings.TrimSpace(doc.Find("title").First().Text()); v != "" {
		return v
	}
	if u, err := url.Parse(fetchedURL); err == nil {
		return u.Host
	}
	return fetchedURL
}

func pageSummary(doc *goquery.Document) string {
	if v := metaContent(doc, `meta[property="og:description"]`); v != "" {
		return v
	}
	if v := metaContent(doc, `meta[name="description"]`); v != "" {
		return v
	}
	return metaContent(doc, `meta[itemprop="description"]`)
}

// pageContent selects the most likely article root and strips the page
// chrome out of it. With several article tags the one whose id or class
// intersects the content marker set wins.
func pageContent(doc *goquery.Document) string {
	var root *goquery.Selection

	articles := doc.Find("article")
	switch {
	case articles.Length() > 1:
		root = pickMarkedArticle(doc)
	case articles.Length() == 1:
		root = articles.First()
	}

	if root == nil || root.Length() == 0 {
		root = doc.Find("main").First()
	}
	if root.Length() == 0 {
		root = doc.Find("body").First()
	}
	if root.Length() == 0 {
		return ""
	}

	root.Find("noscript, footer, header, nav, aside").Remove()
	// A single h1 is the page title and is dropped. Several h1 elements
	// are in-article section titles and stay.
	if doc.Find("h1").Length() == 1 {
		root.Find("h1").Remove()
	}

	content, err := goquery.OuterHtml(root)
	if err != nil {
		return ""
	}
	return content
}

func pickMarkedArticle(doc *goquery.Document) *goquery.Selection {
	var marked *goquery.Selection
	doc.Find("article, section").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		for _, attr := range strings.Fields(s.AttrOr("id", "") + " " + s.AttrOr("class", "")) {
			if contentMarkers[attr] {
				marked = s
				return false
			}
		}
		return true
	})
	if marked != nil {
		return marked
	}
	return doc.Find("article").First()
}

func pageAuthors(doc *goquery.Document) []string {
	if v := metaContent(doc, `meta[name="author"]`); v != "" {
		return []string{v}
	}
	return nil
}

func pageTags(doc *goquery.Document) []string {
	var raw []string
	doc.Find(`meta[property="article:tag"]`).Each(func(_ int, s *goquery.Selection) {
		if v, ok := s.Attr("content"); ok && v != "" {
			raw = append(raw, v)
		}
	})
	if len(raw) == 0 {
		if v := metaContent(doc, `meta[property="keywords"]`); v != "" {
			raw = append(raw, v)
		}
	}
	return feedparse.ParseTags(raw)
}

func canonicalURL(fetchedURL string, doc *goquery.Document) string {
	href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href")
	if !ok || !urlutil.IsValid(href) {
		return fetchedURL
	}
	normalized, err := urlutil.Normalize(fetchedURL, href)
	if err != nil {
		return fetchedURL
	}
	return normalized
}

// previewPictureURL returns the first image reference that normalizes,
// og:image first, then itemprop and twitter images.
func previewPictureURL(fetchedURL string, doc *goquery.Document) string {
	selectors := []string{
		`meta[property="og:image"]`,
		`meta[itemprop="image"]`,
		`meta[property="twitter:image"]`,
	}
	for _, selector := range selectors {
		raw := metaContent(doc, selector)
		if raw == "" {
			continue
		}
		if normalized, err := urlutil.Normalize(fetchedURL, raw); err == nil {
			return normalized
		}
	}
	return ""
}

func metaTime(doc *goquery.Document, property string) *time.Time {
	raw := metaContent(doc, `meta[property="`+property+`"]`)
	if raw == "" {
		return nil
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}

func pageLanguage(doc *goquery.Document, contentLanguage string) string {
	if lang, ok := doc.Find("html").First().Attr("lang"); ok && lang != "" {
		return lang
	}
	return contentLanguage
}

func metaContent(doc *goquery.Document, selector string) string {
	v, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(v)
}
