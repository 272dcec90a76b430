package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"feedreader/internal/domain"
)

// ArticleFetchErrorStore keeps the failure trail of manual article fetches.
// The article itself is still saved as a placeholder; this records why its
// content is empty.
type ArticleFetchErrorStore struct {
	db *sqlx.DB
}

func NewArticleFetchErrorStore(db *sqlx.DB) *ArticleFetchErrorStore {
	return &ArticleFetchErrorStore{db: db}
}

func (s *ArticleFetchErrorStore) Record(ctx context.Context, articleID int64, message string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`INSERT INTO article_fetch_errors (article_id, message) VALUES ($1, $2)`,
		articleID, message)
	if err != nil {
		return fmt.Errorf("record article fetch error: %w", err)
	}
	return nil
}

func (s *ArticleFetchErrorStore) ListForArticle(ctx context.Context, articleID int64) ([]domain.ArticleFetchError, error) {
	var fetchErrors []domain.ArticleFetchError
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &fetchErrors,
		`SELECT id, article_id, message, created_at FROM article_fetch_errors
		 WHERE article_id = $1 ORDER BY created_at DESC, id DESC`, articleID)
	if err != nil {
		return nil, fmt.Errorf("list article fetch errors: %w", err)
	}
	return fetchErrors, nil
}
