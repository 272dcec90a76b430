package feedparse

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"feedreader/internal/domain"
	"feedreader/internal/fetch"
	"feedreader/internal/urlutil"
)

var (
	youtubeFeedRe    = regexp.MustCompile(`(?i)^https://[^/]+/feeds/videos\.xml\?(channel_id|playlist_id)=.+`)
	youtubeChannelRe = regexp.MustCompile(`(?i)^https://[^/]+/channel/(.+)`)
)

// Locator resolves an arbitrary URL into feed data. The URL may point at
// a feed directly or at an HTML page that links to one.
type Locator struct {
	client      *fetch.Client
	parser      *gofeed.Parser
	maxFileSize int64
	logger      *slog.Logger
}

// NewLocator creates a locator around the given fetch client.
func NewLocator(client *fetch.Client, maxFileSize int64, logger *slog.Logger) *Locator {
	return &Locator{
		client:      client,
		parser:      gofeed.NewParser(),
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Locate fetches rawURL and returns the feed it designates. When the
// response is an HTML page it scans the page's link elements: exactly
// one recognized feed link is followed, zero fails with
// NoFeedURLFoundError and several fail with MultipleFeedsFoundError so
// the caller can ask the user to choose. A 304 response surfaces as
// ErrNotModified.
func (l *Locator) Locate(ctx context.Context, rawURL string, cond fetch.ConditionalHeaders) (*domain.FeedData, error) {
	feedURL := RewriteYouTubeURL(rawURL)

	result, err := l.client.Get(ctx, feedURL, cond)
	if err != nil {
		if errors.Is(err, fetch.ErrBodyTooBig) {
			return nil, &domain.FeedFileTooBigError{URL: feedURL, Size: l.maxFileSize}
		}
		return nil, fmt.Errorf("fetch %s: %w", feedURL, err)
	}
	if result.NotModified {
		return nil, domain.ErrNotModified
	}

	parsed, parseErr := l.parser.ParseString(string(result.Body))
	if parseErr == nil {
		return buildFeedData(parsed, result.FinalURL, result.ETag, result.LastModified, l.logger), nil
	}

	candidateURL, err := findFeedURLOnPage(result.FinalURL, string(result.Body))
	if err != nil {
		return nil, err
	}

	l.logger.Debug("following feed link found on page",
		"page_url", result.FinalURL,
		"feed_url", candidateURL,
	)

	result, err = l.client.Get(ctx, candidateURL, cond)
	if err != nil {
		if errors.Is(err, fetch.ErrBodyTooBig) {
			return nil, &domain.FeedFileTooBigError{URL: candidateURL, Size: l.maxFileSize}
		}
		return nil, fmt.Errorf("fetch %s: %w", candidateURL, err)
	}
	if result.NotModified {
		return nil, domain.ErrNotModified
	}

	parsed, err = l.parser.ParseString(string(result.Body))
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", candidateURL, err)
	}

	return buildFeedData(parsed, result.FinalURL, result.ETag, result.LastModified, l.logger), nil
}

// findFeedURLOnPage scans the page's link elements for feed references,
// atom before rss, deduplicated by normalized href.
func findFeedURLOnPage(pageURL, pageContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageContent))
	if err != nil {
		return "", &domain.NoFeedURLFoundError{PageURL: pageURL}
	}

	var candidates []domain.FeedCandidate
	seen := make(map[string]bool)

	collect := func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || href == "" {
			return
		}
		normalized := normalizeFoundURL(href)
		if seen[normalized] {
			return
		}
		seen[normalized] = true

		title := s.AttrOr("title", "")
		if title == "" {
			title = normalized
		}
		candidates = append(candidates, domain.FeedCandidate{URL: normalized, Title: title})
	}

	doc.Find(`link[type="application/atom+xml"]`).Each(collect)
	doc.Find(`link[type="application/rss+xml"]`).Each(collect)

	switch len(candidates) {
	case 0:
		return "", &domain.NoFeedURLFoundError{PageURL: pageURL}
	case 1:
		return candidates[0].URL, nil
	default:
		return "", &domain.MultipleFeedsFoundError{PageURL: pageURL, Candidates: candidates}
	}
}

func normalizeFoundURL(href string) string {
	if strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	return href
}

// RewriteYouTubeURL maps YouTube channel and playlist page URLs onto the
// corresponding videos.xml feed. Non-YouTube URLs and URLs it cannot
// handle pass through untouched.
func RewriteYouTubeURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || !youtubeDomains[u.Host] {
		return rawURL
	}

	if youtubeFeedRe.MatchString(rawURL) {
		return rawURL
	}

	if match := youtubeChannelRe.FindStringSubmatch(rawURL); match != nil {
		return "https://www.youtube.com/feeds/videos.xml?channel_id=" + match[1]
	}

	if playlist := u.Query().Get("list"); playlist != "" {
		return "https://www.youtube.com/feeds/videos.xml?playlist_id=" + playlist
	}

	return rawURL
}

// CheckFeedURL reports whether the URL is acceptable as a subscription
// target before any network traffic happens.
func CheckFeedURL(rawURL string) error {
	if !urlutil.IsValid(rawURL) {
		return fmt.Errorf("invalid feed url %q", rawURL)
	}
	return nil
}
