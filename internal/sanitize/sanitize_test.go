package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFull(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text", in: "hello world", want: "hello world"},
		{name: "strips tags", in: "<p>hello <b>world</b></p>", want: "hello world"},
		{name: "strips scripts", in: "before<script>alert(1)</script>after", want: "beforeafter"},
		{name: "decodes entities", in: "fish &amp; chips", want: "fish & chips"},
		{name: "strips comments", in: "a<!-- hidden -->b", want: "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Full(tt.in))
		})
	}
}

func TestKeepSafeTags(t *testing.T) {
	t.Run("keeps structural markup", func(t *testing.T) {
		in := `<p>intro</p><img src="https://example.com/a.png" alt="pic"><pre>code</pre>`
		got := KeepSafeTags(in)
		assert.Contains(t, got, "<p>intro</p>")
		assert.Contains(t, got, `<img src="https://example.com/a.png" alt="pic">`)
		assert.Contains(t, got, "<pre>code</pre>")
	})

	t.Run("drops scripts and handlers", func(t *testing.T) {
		in := `<p onclick="evil()">text</p><script>alert(1)</script>`
		got := KeepSafeTags(in)
		assert.Equal(t, "<p>text</p>", got)
	})

	t.Run("blocks javascript urls", func(t *testing.T) {
		got := KeepSafeTags(`<a href="javascript:alert(1)">x</a>`)
		assert.NotContains(t, got, "javascript:")
	})
}

func TestKeepSafeTagsForSummary(t *testing.T) {
	in := `<p>summary</p><img src="https://example.com/a.png"><pre>code</pre>`
	got := KeepSafeTagsForSummary(in)
	assert.Contains(t, got, "<p>summary</p>")
	assert.NotContains(t, got, "<img")
	assert.NotContains(t, got, "<pre>")
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "empty", in: "", want: 0},
		{name: "plain words", in: "one two three", want: 3},
		{name: "html stripped", in: "<p>one <b>two</b></p>", want: 2},
		{name: "punctuation only tokens ignored", in: "one - two ... three", want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WordCount(tt.in))
		})
	}
}
