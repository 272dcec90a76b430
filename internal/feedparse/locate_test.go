package feedparse

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedreader/internal/domain"
	"feedreader/internal/fetch"
)

func newTestLocator(maxFileSize int64) *Locator {
	client := fetch.NewClient(fetch.Config{
		UserAgent:   "feedreader RSS",
		Timeout:     5 * time.Second,
		MaxBodySize: maxFileSize,
		MaxAttempts: 1,
	}, testLogger())
	return NewLocator(client, maxFileSize, testLogger())
}

func TestLocateDirectFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Header().Set("ETag", `"v2"`)
		fmt.Fprint(w, rssFixture)
	}))
	defer srv.Close()

	data, err := newTestLocator(1<<20).Locate(context.Background(), srv.URL+"/feed.xml", fetch.ConditionalHeaders{})
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/feed.xml", data.FeedURL)
	assert.Equal(t, "Example & Blog", data.Title)
	assert.Equal(t, `"v2"`, data.ETag)
	assert.Len(t, data.Articles, 1)
}

func TestLocateFollowsSinglePageLink(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/feed.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, atomFixture)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html><head>
			<link rel="alternate" type="application/atom+xml" href="%s/feed.xml">
		</head><body>hi</body></html>`, srv.URL)
	})

	data, err := newTestLocator(1<<20).Locate(context.Background(), srv.URL, fetch.ConditionalHeaders{})
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/feed.xml", data.FeedURL)
	assert.Equal(t, "Atom Feed", data.Title)
}

func TestLocateNoFeedOnPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head></head><body>nothing here</body></html>`)
	}))
	defer srv.Close()

	_, err := newTestLocator(1<<20).Locate(context.Background(), srv.URL, fetch.ConditionalHeaders{})

	var notFound *domain.NoFeedURLFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestLocateMultipleFeedsOnPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head>
			<link rel="alternate" type="application/rss+xml" title="RSS" href="https://example.com/rss.xml">
			<link rel="alternate" type="application/atom+xml" title="Atom" href="//example.com/atom.xml">
		</head><body></body></html>`)
	}))
	defer srv.Close()

	_, err := newTestLocator(1<<20).Locate(context.Background(), srv.URL, fetch.ConditionalHeaders{})

	var multiple *domain.MultipleFeedsFoundError
	require.ErrorAs(t, err, &multiple)
	require.Len(t, multiple.Candidates, 2)
	// Atom candidates come first, protocol-relative hrefs get https.
	assert.Equal(t, domain.FeedCandidate{URL: "https://example.com/atom.xml", Title: "Atom"}, multiple.Candidates[0])
	assert.Equal(t, domain.FeedCandidate{URL: "https://example.com/rss.xml", Title: "RSS"}, multiple.Candidates[1])
}

func TestLocateDedupesCandidates(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/feed.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, atomFixture)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html><head>
			<link rel="alternate" type="application/atom+xml" href="%[1]s/feed.xml">
			<link rel="alternate" type="application/atom+xml" href="%[1]s/feed.xml">
		</head></html>`, srv.URL)
	})

	data, err := newTestLocator(1<<20).Locate(context.Background(), srv.URL, fetch.ConditionalHeaders{})
	require.NoError(t, err)
	assert.Equal(t, "Atom Feed", data.Title)
}

func TestLocateNotModified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, `"v1"`, r.Header.Get("If-None-Match"))
		w.WriteHeader(http.StatusNotModified)
	}))
	defer srv.Close()

	_, err := newTestLocator(1<<20).Locate(context.Background(), srv.URL, fetch.ConditionalHeaders{ETag: `"v1"`})
	require.ErrorIs(t, err, domain.ErrNotModified)
}

func TestLocateFeedTooBig(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(make([]byte, 2048))
	}))
	defer srv.Close()

	_, err := newTestLocator(1024).Locate(context.Background(), srv.URL, fetch.ConditionalHeaders{})

	var tooBig *domain.FeedFileTooBigError
	require.ErrorAs(t, err, &tooBig)
	assert.Equal(t, int64(1024), tooBig.Size)
}
