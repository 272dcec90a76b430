package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestMergeDataNewerRecordWins(t *testing.T) {
	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	article := &Article{
		Title:     "Original title",
		Slug:      "original-title",
		Summary:   "old summary",
		Content:   "old content",
		Authors:   []string{"Alice"},
		UpdatedAt: timePtr(jan),
	}

	changed := article.MergeData(ArticleData{
		Title:     "Retitled upstream",
		Summary:   "new summary",
		Content:   "new content",
		Authors:   []string{"Bob", "Alice"},
		UpdatedAt: timePtr(feb),
	}, false)

	assert.True(t, changed)
	assert.Equal(t, "new summary", article.Summary)
	assert.Equal(t, "new content", article.Content)
	assert.Equal(t, []string{"Alice", "Bob"}, article.Authors)
	assert.Equal(t, feb, *article.UpdatedAt)

	assert.Equal(t, "Original title", article.Title)
	assert.Equal(t, "original-title", article.Slug)
}

func TestMergeDataStaleRecordIgnored(t *testing.T) {
	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	article := &Article{Content: "current", UpdatedAt: timePtr(feb)}

	changed := article.MergeData(ArticleData{
		Content:   "outdated",
		UpdatedAt: timePtr(jan),
	}, false)

	assert.False(t, changed)
	assert.Equal(t, "current", article.Content)
	assert.Equal(t, feb, *article.UpdatedAt)
}

func TestMergeDataMissingTimestampMeansMoreRecent(t *testing.T) {
	feb := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	article := &Article{Summary: "old", UpdatedAt: timePtr(feb)}
	assert.True(t, article.MergeData(ArticleData{Summary: "undated"}, false))
	assert.Equal(t, "undated", article.Summary)

	article = &Article{Summary: "old"}
	assert.True(t, article.MergeData(ArticleData{Summary: "dated", UpdatedAt: timePtr(feb)}, false))
	assert.Equal(t, "dated", article.Summary)
}

func TestMergeDataStaleRecordFillsContentGap(t *testing.T) {
	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	article := &Article{
		Summary:   "current summary",
		UpdatedAt: timePtr(feb),
	}

	changed := article.MergeData(ArticleData{
		Summary:   "stale summary",
		Content:   "full text",
		UpdatedAt: timePtr(jan),
	}, false)

	assert.True(t, changed)
	assert.Equal(t, "full text", article.Content)
	assert.Equal(t, "current summary", article.Summary)
	assert.Equal(t, feb, *article.UpdatedAt)
}

func TestMergeDataForceAppliesStaleRecord(t *testing.T) {
	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	article := &Article{Content: "current", UpdatedAt: timePtr(feb)}

	changed := article.MergeData(ArticleData{
		Content:   "manual edit",
		UpdatedAt: timePtr(jan),
	}, true)

	assert.True(t, changed)
	assert.Equal(t, "manual edit", article.Content)
	assert.Equal(t, feb, *article.UpdatedAt)
}

func TestMergeDataEmptyFieldsKeepStoredValues(t *testing.T) {
	feb := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	article := &Article{
		Summary:           "kept",
		Content:           "kept",
		PreviewPictureURL: "https://example.com/pic.png",
	}

	changed := article.MergeData(ArticleData{UpdatedAt: timePtr(feb)}, false)

	assert.True(t, changed)
	assert.Equal(t, "kept", article.Summary)
	assert.Equal(t, "kept", article.Content)
	assert.Equal(t, "https://example.com/pic.png", article.PreviewPictureURL)
}

func TestMergeDataTimestampBounds(t *testing.T) {
	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	article := &Article{
		PublishedAt: timePtr(feb),
		UpdatedAt:   timePtr(feb),
	}

	article.MergeData(ArticleData{
		PublishedAt: timePtr(jan),
		UpdatedAt:   timePtr(mar),
	}, false)

	assert.Equal(t, jan, *article.PublishedAt)
	assert.Equal(t, mar, *article.UpdatedAt)
}

func TestMergeDataListUnionsPreserveOrder(t *testing.T) {
	article := &Article{
		Authors:      []string{"Alice", "Bob"},
		ExternalTags: []string{"go"},
	}

	article.MergeData(ArticleData{
		Authors: []string{"Bob", "Carol"},
		Tags:    []string{"databases", "go"},
	}, false)

	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, article.Authors)
	assert.Equal(t, []string{"go", "databases"}, article.ExternalTags)
}

func TestIsRead(t *testing.T) {
	assert.False(t, (&Article{}).IsRead())
	assert.True(t, (&Article{ReadAt: timePtr(time.Now())}).IsRead())
}
