package domain

import "time"

// FeedType identifies the syndication format reported by the parser.
type FeedType string

const (
	FeedTypeRSS090 FeedType = "rss090"
	FeedTypeRSS10  FeedType = "rss10"
	FeedTypeRSS20  FeedType = "rss20"
	FeedTypeRSS    FeedType = "rss"
	FeedTypeAtom03 FeedType = "atom03"
	FeedTypeAtom10 FeedType = "atom10"
	FeedTypeAtom   FeedType = "atom"
	FeedTypeCDF    FeedType = "cdf"
	FeedTypeJSON   FeedType = "json1"
)

// FeedRefreshDelay is the user-chosen refresh cadence for a feed.
type FeedRefreshDelay string

const (
	RefreshHourly   FeedRefreshDelay = "HOURLY"
	RefreshBihourly FeedRefreshDelay = "BIHOURLY"
	RefreshDaily    FeedRefreshDelay = "DAILY"
	RefreshWeekly   FeedRefreshDelay = "WEEKLY"
)

// Interval returns how long to wait between two refreshes of a feed with
// this cadence. The hourly delays are shaved by a quarter so a cycle that
// runs on the hour still picks the feed up.
func (d FeedRefreshDelay) Interval() time.Duration {
	switch d {
	case RefreshHourly:
		return 45 * time.Minute
	case RefreshBihourly:
		return time.Hour + 45*time.Minute
	case RefreshWeekly:
		return 7 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// Feed is a per-user subscription. (user_id, feed_url) is unique.
type Feed struct {
	ID                      int64            `db:"id"`
	UserID                  int64            `db:"user_id"`
	FeedURL                 string           `db:"feed_url"`
	SiteURL                 string           `db:"site_url"`
	Title                   string           `db:"title"`
	Slug                    string           `db:"slug"`
	Description             string           `db:"description"`
	FeedType                FeedType         `db:"feed_type"`
	Enabled                 bool             `db:"enabled"`
	DisabledReason          string           `db:"disabled_reason"`
	DisabledAt              *time.Time       `db:"disabled_at"`
	RefreshDelay            FeedRefreshDelay `db:"refresh_delay"`
	ArticleRetentionDays    int              `db:"article_retention_days"`
	OpenOriginalByDefault   bool             `db:"open_original_by_default"`
	CreatedAt               time.Time        `db:"created_at"`
	UpdatedAt               time.Time        `db:"updated_at"`
}

// Disable turns the feed off. A disabled feed always carries a reason.
func (f *Feed) Disable(reason string, now time.Time) {
	f.Enabled = false
	f.DisabledReason = reason
	f.DisabledAt = &now
}

// Enable turns the feed back on and clears the disable state.
func (f *Feed) Enable() {
	f.Enabled = true
	f.DisabledReason = ""
	f.DisabledAt = nil
}

// FeedUpdateStatus is the outcome of one refresh attempt.
type FeedUpdateStatus string

const (
	FeedUpdateSuccess     FeedUpdateStatus = "SUCCESS"
	FeedUpdateFailure     FeedUpdateStatus = "FAILURE"
	FeedUpdateNotModified FeedUpdateStatus = "NOT_MODIFIED"
)

// FeedUpdate is one entry in a feed's refresh history. The most recent
// SUCCESS row carries the conditional-fetch state (ETag/Last-Modified) for
// the next attempt.
type FeedUpdate struct {
	ID               int64            `db:"id"`
	FeedID           int64            `db:"feed_id"`
	Status           FeedUpdateStatus `db:"status"`
	ErrorMessage     string           `db:"error_message"`
	FeedETag         string           `db:"feed_etag"`
	FeedLastModified *time.Time       `db:"feed_last_modified"`
	CreatedAt        time.Time        `db:"created_at"`
}

// FeedDeletedArticle memoizes an article link the user deleted from a feed,
// so the next refresh does not resurrect it.
type FeedDeletedArticle struct {
	ID          int64     `db:"id"`
	FeedID      int64     `db:"feed_id"`
	ArticleLink string    `db:"article_link"`
	CreatedAt   time.Time `db:"created_at"`
}

// FeedData is the feed-level result of fetching and parsing a feed URL.
type FeedData struct {
	FeedURL      string
	SiteURL      string
	Title        string
	Description  string
	FeedType     FeedType
	ETag         string
	LastModified *time.Time
	Articles     []ArticleData
}
