package feedparse

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedreader/internal/domain"
)

const rssFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:media="http://search.yahoo.com/mrss/" xmlns:dc="http://purl.org/dc/elements/1.1/">
<channel>
<title>Example &amp; Blog</title>
<link>https://example.com</link>
<description>Example feed</description>
<language>en</language>
<item>
  <guid>entry-1</guid>
  <title>First post</title>
  <link>/posts/first</link>
  <description>A summary</description>
  <dc:creator>Alice</dc:creator>
  <category>go, programming</category>
  <category>feeds</category>
  <pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate>
  <media:thumbnail url="/img/first.png"/>
  <media:description>Preview description</media:description>
  <media:credit>Bob</media:credit>
</item>
<item>
  <title>Broken entry</title>
  <link></link>
</item>
</channel>
</rss>`

const atomFixture = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Atom Feed</title>
  <entry>
    <id>tag:example.com,2025:1</id>
    <title>Entry</title>
    <link href="https://example.com/entry"/>
    <updated>2025-03-01T10:00:00Z</updated>
  </entry>
</feed>`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseFixture(t *testing.T, fixture string) *gofeed.Feed {
	t.Helper()
	parsed, err := gofeed.NewParser().ParseString(fixture)
	require.NoError(t, err)
	return parsed
}

func TestBuildFeedData(t *testing.T) {
	data := buildFeedData(parseFixture(t, rssFixture), "https://example.com/feed.xml", `"v1"`, "", testLogger())

	assert.Equal(t, "https://example.com/feed.xml", data.FeedURL)
	assert.Equal(t, "https://example.com", data.SiteURL)
	assert.Equal(t, "Example & Blog", data.Title)
	assert.Equal(t, "Example feed", data.Description)
	assert.Equal(t, domain.FeedTypeRSS20, data.FeedType)
	assert.Equal(t, `"v1"`, data.ETag)

	// The entry without a link cannot be normalized and is skipped.
	require.Len(t, data.Articles, 1)

	article := data.Articles[0]
	assert.Equal(t, "entry-1", article.ExternalArticleID)
	assert.Equal(t, "Example & Blog", article.SourceTitle)
	assert.Equal(t, "First post", article.Title)
	assert.Equal(t, "A summary", article.Summary)
	assert.Equal(t, "https://example.com/posts/first", article.Link)
	assert.Equal(t, []string{"Alice"}, article.Authors)
	assert.Equal(t, []string{"feeds", "go", "programming"}, article.Tags)
	assert.Equal(t, "https://example.com/img/first.png", article.PreviewPictureURL)
	assert.Equal(t, "Preview description Bob", article.PreviewPictureAlt)
	assert.Equal(t, "en", article.Language)

	require.NotNil(t, article.PublishedAt)
	assert.Equal(t, time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC), article.PublishedAt.UTC())
}

func TestBuildFeedDataSiteURLFallback(t *testing.T) {
	data := buildFeedData(parseFixture(t, atomFixture), "https://example.com/feeds/all.atom", "", "", testLogger())

	assert.Equal(t, "https://example.com", data.SiteURL)
	assert.Equal(t, domain.FeedTypeAtom10, data.FeedType)

	require.Len(t, data.Articles, 1)
	article := data.Articles[0]
	assert.Equal(t, "tag:example.com,2025:1", article.ExternalArticleID)
	require.NotNil(t, article.UpdatedAt)
	assert.Equal(t, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), article.UpdatedAt.UTC())
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{name: "nil", in: nil, want: []string{}},
		{name: "comma split and sorted", in: []string{"go, programming", "feeds"}, want: []string{"feeds", "go", "programming"}},
		{name: "dedup", in: []string{"go", "go"}, want: []string{"go"}},
		{name: "html stripped", in: []string{"<b>go</b>"}, want: []string{"go"}},
		{name: "empty parts dropped", in: []string{" , ,go"}, want: []string{"go"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTags(tt.in))
		})
	}
}

func TestRewriteYouTubeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "channel page",
			in:   "https://www.youtube.com/channel/UC123",
			want: "https://www.youtube.com/feeds/videos.xml?channel_id=UC123",
		},
		{
			name: "playlist page",
			in:   "https://www.youtube.com/playlist?list=PL456",
			want: "https://www.youtube.com/feeds/videos.xml?playlist_id=PL456",
		},
		{
			name: "already a feed",
			in:   "https://www.youtube.com/feeds/videos.xml?channel_id=UC123",
			want: "https://www.youtube.com/feeds/videos.xml?channel_id=UC123",
		},
		{
			name: "unhandled youtube url",
			in:   "https://www.youtube.com/watch?v=abc",
			want: "https://www.youtube.com/watch?v=abc",
		},
		{
			name: "not youtube",
			in:   "https://example.com/channel/UC123",
			want: "https://example.com/channel/UC123",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RewriteYouTubeURL(tt.in))
		})
	}
}
