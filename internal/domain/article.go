package domain

import "time"

// TaggingReason records why an article-tag link exists. DELETED is a soft
// tombstone: the row stays so a feed refresh cannot silently re-add a tag the
// user removed.
type TaggingReason string

const (
	TaggingReasonAddedManually TaggingReason = "ADDED_MANUALLY"
	TaggingReasonFromFeed      TaggingReason = "FROM_FEED"
	TaggingReasonDeleted       TaggingReason = "DELETED"
)

// ArticleSourceType describes how an article first entered the system.
type ArticleSourceType string

const (
	ArticleSourceFeed   ArticleSourceType = "FEED"
	ArticleSourceManual ArticleSourceType = "MANUAL"
)

// Article is the normalized content unit. It belongs to a user, not to a
// feed: feeds only reference articles through a join table.
type Article struct {
	ID                 int64             `db:"id"`
	UserID             int64             `db:"user_id"`
	ExternalArticleID  string            `db:"external_article_id"`
	Title              string            `db:"title"`
	Slug               string            `db:"slug"`
	Summary            string            `db:"summary"`
	Content            string            `db:"content"`
	ReadingTime        int               `db:"reading_time"`
	Authors            []string          `db:"-"`
	Contributors       []string          `db:"-"`
	ExternalTags       []string          `db:"-"`
	Link               string            `db:"link"`
	PreviewPictureURL  string            `db:"preview_picture_url"`
	PreviewPictureAlt  string            `db:"preview_picture_alt"`
	Language           string            `db:"language"`
	Annotations        []string          `db:"-"`
	ReadAt             *time.Time        `db:"read_at"`
	OpenedAt           *time.Time        `db:"opened_at"`
	IsFavorite         bool              `db:"is_favorite"`
	IsForLater         bool              `db:"is_for_later"`
	InitialSourceType  ArticleSourceType `db:"initial_source_type"`
	InitialSourceTitle string            `db:"initial_source_title"`
	PublishedAt        *time.Time        `db:"published_at"`
	UpdatedAt          *time.Time        `db:"updated_at"`
	ObjCreatedAt       time.Time         `db:"obj_created_at"`
	ObjUpdatedAt       time.Time         `db:"obj_updated_at"`

	// LiveTagIDs is hydrated on reads that aggregate the article's tag links
	// with reason != DELETED. It is never written back.
	LiveTagIDs []int64 `db:"-"`
}

// IsRead reports whether the article has been read. Presence of the
// timestamp is the source of truth, not a separate flag.
func (a *Article) IsRead() bool { return a.ReadAt != nil }

// ArticleData is a normalized article record produced by the feed parser or
// the page extractor, before it is resolved against stored articles.
type ArticleData struct {
	ExternalArticleID string
	SourceTitle       string
	Title             string
	Summary           string
	Content           string
	Authors           []string
	Contributors      []string
	Tags              []string
	Link              string
	PreviewPictureURL string
	PreviewPictureAlt string
	PublishedAt       *time.Time
	UpdatedAt         *time.Time
	Language          string
	Annotations       []string
	ReadAt            *time.Time
	IsFavorite        bool
}

// MergeData folds an incoming record into the stored article using the
// recency-wins policy. It reports whether anything changed.
//
// The incoming record wins when its updated_at is strictly newer than the
// stored one, or when either side has no timestamp at all. Independently of
// recency, incoming content fills a stored content gap. The title and slug
// are never touched: they may have been edited manually and changing them
// breaks bookmarked URLs.
func (a *Article) MergeData(data ArticleData, force bool) bool {
	isMoreRecent := a.UpdatedAt == nil || data.UpdatedAt == nil ||
		data.UpdatedAt.After(*a.UpdatedAt)
	fillsContentGap := data.Content != "" && a.Content == ""

	if !isMoreRecent && !fillsContentGap && !force {
		return false
	}

	if isMoreRecent || force {
		if data.Summary != "" {
			a.Summary = data.Summary
		}
		if data.Content != "" {
			a.Content = data.Content
		}
		if data.PreviewPictureURL != "" {
			a.PreviewPictureURL = data.PreviewPictureURL
		}
		if data.PreviewPictureAlt != "" {
			a.PreviewPictureAlt = data.PreviewPictureAlt
		}
		a.Authors = unionPreservingOrder(a.Authors, data.Authors)
		a.Contributors = unionPreservingOrder(a.Contributors, data.Contributors)
		a.ExternalTags = unionPreservingOrder(a.ExternalTags, data.Tags)
		a.UpdatedAt = maxTime(a.UpdatedAt, data.UpdatedAt)
		a.PublishedAt = minTime(a.PublishedAt, data.PublishedAt)
	} else {
		a.Content = data.Content
	}

	return true
}

// SaveArticleResult pairs a persisted article with how it was persisted.
type SaveArticleResult struct {
	Article    *Article
	WasCreated bool
	WasUpdated bool
}

// Tag is a user-scoped label, unique per (user, slug).
type Tag struct {
	ID     int64  `db:"id"`
	UserID int64  `db:"user_id"`
	Title  string `db:"title"`
	Slug   string `db:"slug"`
}

// ArticleTag is the article-tag link with its provenance.
type ArticleTag struct {
	ArticleID     int64         `db:"article_id"`
	TagID         int64         `db:"tag_id"`
	TaggingReason TaggingReason `db:"tagging_reason"`
}

// ArticleFetchError records a failed attempt to fetch an article's content,
// kept alongside the placeholder article so the failure can be shown and
// retried.
type ArticleFetchError struct {
	ID        int64     `db:"id"`
	ArticleID int64     `db:"article_id"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}

func unionPreservingOrder(existing, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	out := make([]string, 0, len(existing)+len(incoming))
	for _, v := range existing {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	for _, v := range incoming {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func maxTime(a, b *time.Time) *time.Time {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case b.After(*a):
		return b
	default:
		return a
	}
}

func minTime(a, b *time.Time) *time.Time {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case b.Before(*a):
		return b
	default:
		return a
	}
}
