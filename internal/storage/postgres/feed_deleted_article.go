package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// FeedDeletedArticleStore memoizes article links the user deleted from a
// feed. The refresh path checks the memo before upserting so a deleted
// article never comes back.
type FeedDeletedArticleStore struct {
	db *sqlx.DB
}

func NewFeedDeletedArticleStore(db *sqlx.DB) *FeedDeletedArticleStore {
	return &FeedDeletedArticleStore{db: db}
}

func (s *FeedDeletedArticleStore) Record(ctx context.Context, feedID int64, links []string) error {
	if len(links) == 0 {
		return nil
	}
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`INSERT INTO feed_deleted_articles (feed_id, article_link)
		 SELECT $1, l.link FROM unnest($2::text[]) AS l(link)
		 ON CONFLICT (feed_id, article_link) DO NOTHING`,
		feedID, pq.Array(links))
	if err != nil {
		return fmt.Errorf("record deleted feed articles: %w", err)
	}
	return nil
}

func (s *FeedDeletedArticleStore) Links(ctx context.Context, feedID int64) ([]string, error) {
	var links []string
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &links,
		`SELECT article_link FROM feed_deleted_articles WHERE feed_id = $1`, feedID)
	if err != nil {
		return nil, fmt.Errorf("list deleted feed articles: %w", err)
	}
	return links, nil
}
