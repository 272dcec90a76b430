// Package feedparse locates feeds from arbitrary URLs and turns parsed
// RSS/Atom payloads into normalized article records.
package feedparse

import (
	"log/slog"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/mmcdole/gofeed"

	"feedreader/internal/domain"
	"feedreader/internal/sanitize"
	"feedreader/internal/urlutil"
)

// FeedTitleMaxLength caps stored feed titles.
const FeedTitleMaxLength = 300

var youtubeDomains = map[string]bool{
	"youtube.com":            true,
	"www.youtube.com":        true,
	"youtu.be":               true,
	"youtube.googleapis.com": true,
	"m.youtube.com":          true,
}

var imageExtensionRe = regexp.MustCompile(
	`\.(png|apng|avif|gif|jpg|jpeg|jfif|pjpeg|pjp|svg|bmp|tiff|tif|webp)$`,
)

// buildFeedData maps a parsed feed and its resolved URL onto the
// normalized feed record.
func buildFeedData(parsed *gofeed.Feed, resolvedURL, etag, lastModified string, logger *slog.Logger) *domain.FeedData {
	feedTitle := truncate(strings.TrimSpace(sanitize.Full(parsed.Title)), FeedTitleMaxLength)

	return &domain.FeedData{
		FeedURL:      resolvedURL,
		SiteURL:      feedSiteURL(parsed.Link, resolvedURL),
		Title:        feedTitle,
		Description:  strings.TrimSpace(sanitize.Full(parsed.Description)),
		FeedType:     mapFeedType(parsed.FeedType, parsed.FeedVersion),
		ETag:         etag,
		LastModified: parseHTTPDate(lastModified),
		Articles:     parseArticles(resolvedURL, feedTitle, parsed, logger),
	}
}

// feedSiteURL falls back to the feed URL's scheme and host when the feed
// declares no usable site link.
func feedSiteURL(siteURL, feedURL string) string {
	if siteURL == "" || !urlutil.IsValid(siteURL) {
		u, err := url.Parse(feedURL)
		if err != nil {
			return feedURL
		}
		return u.Scheme + "://" + u.Host
	}
	if strings.HasPrefix(siteURL, "//") {
		return "https:" + siteURL
	}
	return siteURL
}

func mapFeedType(feedType, version string) domain.FeedType {
	switch feedType {
	case "atom":
		switch version {
		case "0.3":
			return domain.FeedTypeAtom03
		case "1.0":
			return domain.FeedTypeAtom10
		default:
			return domain.FeedTypeAtom
		}
	case "json":
		return domain.FeedTypeJSON
	case "rss":
		switch version {
		case "0.90":
			return domain.FeedTypeRSS090
		case "1.0":
			return domain.FeedTypeRSS10
		case "2.0":
			return domain.FeedTypeRSS20
		default:
			return domain.FeedTypeRSS
		}
	default:
		return domain.FeedTypeRSS
	}
}

func parseArticles(feedURL, feedTitle string, parsed *gofeed.Feed, logger *slog.Logger) []domain.ArticleData {
	articles := make([]domain.ArticleData, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		article, err := parseArticle(feedURL, feedTitle, parsed, item)
		if err != nil {
			logger.Error("failed to parse feed entry", "feed_url", feedURL, "error", err)
			continue
		}
		articles = append(articles, article)
	}
	return articles
}

func parseArticle(feedURL, feedTitle string, parsed *gofeed.Feed, item *gofeed.Item) (domain.ArticleData, error) {
	link, err := urlutil.Normalize(feedURL, item.Link)
	if err != nil {
		return domain.ArticleData{}, &domain.InvalidFeedArticleError{
			FeedURL: feedURL,
			Link:    item.Link,
			Reason:  "link cannot be normalized",
		}
	}

	externalID := strings.TrimSpace(sanitize.Full(item.GUID))
	if externalID == "" {
		externalID = link
	}

	previewURL := previewPictureURL(link, item)
	previewAlt := previewPictureAlt(item)

	return NormalizeArticleData(domain.ArticleData{
		ExternalArticleID: externalID,
		SourceTitle:       feedTitle,
		Title:             item.Title,
		Summary:           articleSummary(link, item, previewAlt),
		Content:           item.Content,
		Authors:           articleAuthors(item),
		Contributors:      articleContributors(item),
		Tags:              ParseTags(item.Categories),
		Link:              link,
		PreviewPictureURL: previewURL,
		PreviewPictureAlt: previewAlt,
		PublishedAt:       entryTime(item.PublishedParsed, item.Published),
		UpdatedAt:         entryTime(item.UpdatedParsed, item.Updated),
		Language:          parsed.Language,
	}), nil
}

// articleSummary uses the entry summary when present. Video entries from
// the YouTube domains carry their description in the media extension, so
// the preview alt text stands in.
func articleSummary(link string, item *gofeed.Item, previewAlt string) string {
	if item.Description != "" {
		return item.Description
	}
	if isYouTubeURL(link) {
		return previewAlt
	}
	return ""
}

func articleAuthors(item *gofeed.Item) []string {
	authors := make([]string, 0, len(item.Authors))
	for _, person := range item.Authors {
		if person != nil && person.Name != "" {
			authors = append(authors, person.Name)
		}
	}
	if len(authors) == 0 && item.Author != nil && item.Author.Name != "" {
		authors = append(authors, item.Author.Name)
	}
	return authors
}

func articleContributors(item *gofeed.Item) []string {
	if item.DublinCoreExt == nil {
		return nil
	}
	contributors := make([]string, 0, len(item.DublinCoreExt.Contributor))
	for _, name := range item.DublinCoreExt.Contributor {
		if name != "" {
			contributors = append(contributors, name)
		}
	}
	return contributors
}

// ParseTags splits each raw value on commas, strips markup, dedupes and
// sorts the result for determinism.
func ParseTags(raw []string) []string {
	seen := make(map[string]struct{})
	for _, value := range raw {
		for _, part := range strings.Split(value, ",") {
			tag := strings.TrimSpace(sanitize.Full(part))
			if tag == "" {
				continue
			}
			seen[tag] = struct{}{}
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// previewPictureURL prefers media:thumbnail, then media:content when it
// is an image or at least looks like one.
func previewPictureURL(articleURL string, item *gofeed.Item) string {
	mediaExt, ok := item.Extensions["media"]
	if !ok {
		return enclosureImageURL(item)
	}

	for _, thumb := range mediaExt["thumbnail"] {
		if raw := thumb.Attrs["url"]; raw != "" {
			if normalized, err := urlutil.Normalize(articleURL, raw); err == nil {
				return normalized
			}
			return raw
		}
	}

	for _, content := range mediaExt["content"] {
		raw := content.Attrs["url"]
		if raw == "" {
			continue
		}
		normalized, err := urlutil.Normalize(articleURL, raw)
		if err != nil {
			continue
		}
		if content.Attrs["medium"] == "image" || isImageURL(normalized) {
			return normalized
		}
	}

	return enclosureImageURL(item)
}

func enclosureImageURL(item *gofeed.Item) string {
	for _, enc := range item.Enclosures {
		if strings.HasPrefix(enc.Type, "image/") && enc.URL != "" {
			return enc.URL
		}
	}
	return ""
}

// previewPictureAlt combines the media description or title with the
// media credit.
func previewPictureAlt(item *gofeed.Item) string {
	mediaExt, ok := item.Extensions["media"]
	if !ok {
		return ""
	}

	alt := ""
	if descriptions := mediaExt["description"]; len(descriptions) > 0 {
		alt = descriptions[0].Value
	}
	if alt == "" {
		if titles := mediaExt["title"]; len(titles) > 0 {
			alt = titles[0].Value
		}
	}
	if credits := mediaExt["credit"]; len(credits) > 0 && credits[0].Value != "" {
		alt += " " + credits[0].Value
	}

	return strings.TrimSpace(alt)
}

func isImageURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return imageExtensionRe.MatchString(strings.ToLower(u.Path))
}

func isYouTubeURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return youtubeDomains[u.Host]
}

// entryTime takes the parser's timestamp when available and retries the
// raw value with a lenient parser otherwise. Feeds get dates wrong in
// creative ways.
func entryTime(parsed *time.Time, raw string) *time.Time {
	if parsed != nil {
		utc := parsed.UTC()
		return &utc
	}
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

func parseHTTPDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(time.RFC1123, value)
	if err != nil {
		t, err = dateparse.ParseAny(value)
		if err != nil {
			return nil
		}
	}
	utc := t.UTC()
	return &utc
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
