package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"feedreader/internal/domain"
)

const feedColumns = `id, user_id, feed_url, site_url, title, slug, description, feed_type,
	enabled, disabled_reason, disabled_at, refresh_delay, article_retention_days,
	open_original_by_default, created_at, updated_at`

type FeedStore struct {
	db *sqlx.DB
}

func NewFeedStore(db *sqlx.DB) *FeedStore {
	return &FeedStore{db: db}
}

func (s *FeedStore) Create(ctx context.Context, feed *domain.Feed) error {
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx,
		`INSERT INTO feeds (user_id, feed_url, site_url, title, slug, description, feed_type,
			enabled, disabled_reason, disabled_at, refresh_delay, article_retention_days,
			open_original_by_default)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING id, created_at, updated_at`,
		feed.UserID, feed.FeedURL, feed.SiteURL, feed.Title, feed.Slug, feed.Description,
		feed.FeedType, feed.Enabled, feed.DisabledReason, feed.DisabledAt, feed.RefreshDelay,
		feed.ArticleRetentionDays, feed.OpenOriginalByDefault,
	).Scan(&feed.ID, &feed.CreatedAt, &feed.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.ErrFeedExists
	}
	if err != nil {
		return fmt.Errorf("create feed: %w", err)
	}
	return nil
}

func (s *FeedStore) GetByID(ctx context.Context, id int64) (*domain.Feed, error) {
	var feed domain.Feed
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &feed,
		`SELECT `+feedColumns+` FROM feeds WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get feed: %w", err)
	}
	return &feed, nil
}

func (s *FeedStore) GetByURL(ctx context.Context, userID int64, feedURL string) (*domain.Feed, error) {
	var feed domain.Feed
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &feed,
		`SELECT `+feedColumns+` FROM feeds WHERE user_id = $1 AND feed_url = $2`, userID, feedURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get feed by url: %w", err)
	}
	return &feed, nil
}

func (s *FeedStore) ListForUser(ctx context.Context, userID int64) ([]domain.Feed, error) {
	var feeds []domain.Feed
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &feeds,
		`SELECT `+feedColumns+` FROM feeds WHERE user_id = $1 ORDER BY title, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list feeds: %w", err)
	}
	return feeds, nil
}

func (s *FeedStore) Update(ctx context.Context, feed *domain.Feed) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE feeds SET site_url = $2, title = $3, slug = $4, description = $5,
			feed_type = $6, enabled = $7, disabled_reason = $8, disabled_at = $9,
			refresh_delay = $10, article_retention_days = $11,
			open_original_by_default = $12, updated_at = now()
		 WHERE id = $1`,
		feed.ID, feed.SiteURL, feed.Title, feed.Slug, feed.Description, feed.FeedType,
		feed.Enabled, feed.DisabledReason, feed.DisabledAt, feed.RefreshDelay,
		feed.ArticleRetentionDays, feed.OpenOriginalByDefault)
	if err != nil {
		return fmt.Errorf("update feed: %w", err)
	}
	return requireRowAffected(res, "update feed")
}

func (s *FeedStore) Delete(ctx context.Context, id int64) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `DELETE FROM feeds WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete feed: %w", err)
	}
	return requireRowAffected(res, "delete feed")
}

// DueForRefresh returns the enabled feeds whose latest refresh attempt is
// older than their cadence allows. Feeds never refreshed yet are always due.
func (s *FeedStore) DueForRefresh(ctx context.Context, now time.Time) ([]domain.Feed, error) {
	type dueRow struct {
		domain.Feed
		LastAttemptAt *time.Time `db:"last_attempt_at"`
	}

	var rows []dueRow
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows,
		`SELECT f.*, u.created_at AS last_attempt_at
		 FROM feeds f
		 LEFT JOIN LATERAL (
			SELECT created_at FROM feed_updates
			WHERE feed_id = f.id ORDER BY created_at DESC LIMIT 1
		 ) u ON TRUE
		 WHERE f.enabled
		 ORDER BY f.id`)
	if err != nil {
		return nil, fmt.Errorf("list feeds due for refresh: %w", err)
	}

	due := make([]domain.Feed, 0, len(rows))
	for _, row := range rows {
		if row.LastAttemptAt == nil || now.Sub(*row.LastAttemptAt) >= row.RefreshDelay.Interval() {
			due = append(due, row.Feed)
		}
	}
	return due, nil
}

// LinkArticles records that the feed carried these articles. Links are
// idempotent so re-seeing an article on refresh is a no-op.
func (s *FeedStore) LinkArticles(ctx context.Context, feedID int64, articleIDs []int64) error {
	if len(articleIDs) == 0 {
		return nil
	}
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`INSERT INTO feed_articles (feed_id, article_id)
		 SELECT $1, a.id FROM unnest($2::bigint[]) AS a(id)
		 ON CONFLICT (feed_id, article_id) DO NOTHING`,
		feedID, pq.Array(articleIDs))
	if err != nil {
		return fmt.Errorf("link feed articles: %w", err)
	}
	return nil
}

// SetTags replaces the default tags applied to articles coming from this
// feed.
func (s *FeedStore) SetTags(ctx context.Context, feedID int64, tagIDs []int64) error {
	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx,
		`DELETE FROM feed_tags WHERE feed_id = $1 AND tag_id <> ALL($2)`,
		feedID, pq.Array(tagIDs))
	if err != nil {
		return fmt.Errorf("clear feed tags: %w", err)
	}
	if len(tagIDs) == 0 {
		return nil
	}
	_, err = exec.ExecContext(ctx,
		`INSERT INTO feed_tags (feed_id, tag_id)
		 SELECT $1, t.id FROM unnest($2::bigint[]) AS t(id)
		 ON CONFLICT (feed_id, tag_id) DO NOTHING`,
		feedID, pq.Array(tagIDs))
	if err != nil {
		return fmt.Errorf("set feed tags: %w", err)
	}
	return nil
}

// FeedsForArticle returns the feeds an article is linked to. The delete
// path records a suppression memo on each of them.
func (s *FeedStore) FeedsForArticle(ctx context.Context, articleID int64) ([]domain.Feed, error) {
	var feeds []domain.Feed
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &feeds,
		`SELECT f.id, f.user_id, f.feed_url, f.site_url, f.title, f.slug, f.description,
			f.feed_type, f.enabled, f.disabled_reason, f.disabled_at, f.refresh_delay,
			f.article_retention_days, f.open_original_by_default, f.created_at, f.updated_at
		 FROM feeds f
		 JOIN feed_articles fa ON fa.feed_id = f.id
		 WHERE fa.article_id = $1
		 ORDER BY f.id`, articleID)
	if err != nil {
		return nil, fmt.Errorf("get feeds for article: %w", err)
	}
	return feeds, nil
}

func (s *FeedStore) TagIDs(ctx context.Context, feedID int64) ([]int64, error) {
	var ids []int64
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &ids,
		`SELECT tag_id FROM feed_tags WHERE feed_id = $1 ORDER BY tag_id`, feedID)
	if err != nil {
		return nil, fmt.Errorf("get feed tag ids: %w", err)
	}
	return ids, nil
}

func requireRowAffected(res sql.Result, op string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
