package urlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "absolute https", in: "https://example.com/path", want: true},
		{name: "absolute http", in: "http://example.com", want: true},
		{name: "scheme assumed", in: "example.com/feed.xml", want: true},
		{name: "protocol relative", in: "//example.com/feed.xml", want: true},
		{name: "empty", in: "", want: false},
		{name: "ftp", in: "ftp://example.com", want: false},
		{name: "no host", in: "https://", want: false},
		{name: "spaces", in: "https://example.com/a page", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.in))
		})
	}
}

func TestNormalize(t *testing.T) {
	const base = "https://example.com/blog/post/"

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "absolute passes through", raw: "https://other.com/a", want: "https://other.com/a"},
		{name: "http passes through", raw: "http://other.com/a", want: "http://other.com/a"},
		{name: "protocol relative", raw: "//cdn.example.com/img.png", want: "https://cdn.example.com/img.png"},
		{name: "root relative", raw: "/feed.xml", want: "https://example.com/feed.xml"},
		{name: "document relative", raw: "page.html", want: "https://example.com/blog/post/page.html"},
		{name: "parent relative", raw: "../other/", want: "https://example.com/blog/other/"},
		{name: "query only", raw: "?page=2", want: "https://example.com/?page=2"},
		{name: "spaces escaped", raw: "/a page.html", want: "https://example.com/a%20page.html"},
		{name: "backslashes fixed", raw: "\\articles\\one", want: "https://example.com/articles/one"},
		{name: "anchor untouched", raw: "#section", want: "#section"},
		{name: "mailto untouched", raw: "mailto:a@example.com", want: "mailto:a@example.com"},
		{name: "ftp untouched", raw: "ftp://example.com/file", want: "ftp://example.com/file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(base, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("empty fails", func(t *testing.T) {
		_, err := Normalize(base, "")
		assert.Error(t, err)
	})

	t.Run("invalid base fails", func(t *testing.T) {
		_, err := Normalize("not a base", "/feed.xml")
		assert.Error(t, err)
	})
}
