package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"feedreader/internal/domain"
)

type FeedUpdateStore struct {
	db *sqlx.DB
}

func NewFeedUpdateStore(db *sqlx.DB) *FeedUpdateStore {
	return &FeedUpdateStore{db: db}
}

func (s *FeedUpdateStore) Create(ctx context.Context, update *domain.FeedUpdate) error {
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx,
		`INSERT INTO feed_updates (feed_id, status, error_message, feed_etag, feed_last_modified)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		update.FeedID, update.Status, update.ErrorMessage, update.FeedETag, update.FeedLastModified,
	).Scan(&update.ID, &update.CreatedAt)
	if err != nil {
		return fmt.Errorf("create feed update: %w", err)
	}
	return nil
}

// LatestSuccess returns the most recent successful refresh, which carries
// the ETag and Last-Modified values to send on the next conditional fetch.
// A feed with no success yet yields ErrNotFound.
func (s *FeedUpdateStore) LatestSuccess(ctx context.Context, feedID int64) (*domain.FeedUpdate, error) {
	var update domain.FeedUpdate
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &update,
		`SELECT id, feed_id, status, error_message, feed_etag, feed_last_modified, created_at
		 FROM feed_updates
		 WHERE feed_id = $1 AND status = $2
		 ORDER BY created_at DESC, id DESC
		 LIMIT 1`,
		feedID, domain.FeedUpdateSuccess)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get latest successful feed update: %w", err)
	}
	return &update, nil
}

// MustDisableFeed reports whether the feed only failed over the given
// window. A feed with at least one success or not-modified outcome in the
// window is still considered healthy.
func (s *FeedUpdateStore) MustDisableFeed(ctx context.Context, feedID int64, since time.Time) (bool, error) {
	var counts struct {
		Failures int `db:"failures"`
		Others   int `db:"others"`
	}
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &counts,
		`SELECT
			COUNT(*) FILTER (WHERE status = $3) AS failures,
			COUNT(*) FILTER (WHERE status <> $3) AS others
		 FROM feed_updates
		 WHERE feed_id = $1 AND created_at >= $2`,
		feedID, since, domain.FeedUpdateFailure)
	if err != nil {
		return false, fmt.Errorf("count feed update outcomes: %w", err)
	}
	return counts.Failures > 0 && counts.Others == 0, nil
}

// Cleanup drops refresh history older than the cutoff, keeping the latest
// successful row per feed so conditional-fetch state survives.
func (s *FeedUpdateStore) Cleanup(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM feed_updates
		 WHERE created_at < $1
		   AND id NOT IN (
			SELECT DISTINCT ON (feed_id) id FROM feed_updates
			WHERE status = $2
			ORDER BY feed_id, created_at DESC, id DESC
		 )`,
		cutoff, domain.FeedUpdateSuccess)
	if err != nil {
		return 0, fmt.Errorf("cleanup feed updates: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("cleanup feed updates: %w", err)
	}
	return deleted, nil
}
