package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"feedreader/internal/domain"
)

// Association inserts and soft deletes are chunked so a feed refresh
// touching thousands of articles never builds an unbounded statement.
const associationPageSize = 1000

type ArticleTagStore struct {
	db *sqlx.DB
}

func NewArticleTagStore(db *sqlx.DB) *ArticleTagStore {
	return &ArticleTagStore{db: db}
}

// Associate links every article with every tag under the given reason.
// Existing links keep their current reason, except that when readdDeleted
// is set links previously soft deleted by the user are resurrected as
// ADDED_MANUALLY.
func (s *ArticleTagStore) Associate(ctx context.Context, articleIDs, tagIDs []int64, reason domain.TaggingReason, readdDeleted bool) error {
	if len(articleIDs) == 0 || len(tagIDs) == 0 {
		return nil
	}

	for start := 0; start < len(articleIDs); start += associationPageSize {
		end := start + associationPageSize
		if end > len(articleIDs) {
			end = len(articleIDs)
		}
		page := articleIDs[start:end]

		_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
			`INSERT INTO article_tags (article_id, tag_id, tagging_reason)
			 SELECT a.id, t.id FROM unnest($1::bigint[]) AS a(id) CROSS JOIN unnest($2::bigint[]) AS t(id)
			 ON CONFLICT (article_id, tag_id) DO NOTHING`,
			pq.Array(page), pq.Array(tagIDs))
		if err != nil {
			return fmt.Errorf("insert article tags: %w", err)
		}

		if !readdDeleted {
			continue
		}
		_, err = GetExecutor(ctx, s.db).ExecContext(ctx,
			`UPDATE article_tags SET tagging_reason = $3
			 WHERE article_id = ANY($1) AND tag_id = ANY($2) AND tagging_reason = $4`,
			pq.Array(page), pq.Array(tagIDs),
			domain.TaggingReasonAddedManually, domain.TaggingReasonDeleted)
		if err != nil {
			return fmt.Errorf("readd deleted article tags: %w", err)
		}
	}

	return nil
}

// DissociateNotInList soft deletes every link of the article whose tag is
// not in the keep list. The link rows survive so a feed carrying the same
// tag later cannot reattach it against the user's choice.
func (s *ArticleTagStore) DissociateNotInList(ctx context.Context, articleID int64, keepTagIDs []int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE article_tags SET tagging_reason = $3
		 WHERE article_id = $1 AND tag_id <> ALL($2) AND tagging_reason <> $3`,
		articleID, pq.Array(keepTagIDs), domain.TaggingReasonDeleted)
	if err != nil {
		return fmt.Errorf("dissociate article tags: %w", err)
	}
	return nil
}

// Dissociate soft deletes the links between the given articles and tags.
func (s *ArticleTagStore) Dissociate(ctx context.Context, articleIDs, tagIDs []int64) error {
	if len(articleIDs) == 0 || len(tagIDs) == 0 {
		return nil
	}

	for start := 0; start < len(articleIDs); start += associationPageSize {
		end := start + associationPageSize
		if end > len(articleIDs) {
			end = len(articleIDs)
		}

		_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
			`UPDATE article_tags SET tagging_reason = $3
			 WHERE article_id = ANY($1) AND tag_id = ANY($2) AND tagging_reason <> $3`,
			pq.Array(articleIDs[start:end]), pq.Array(tagIDs), domain.TaggingReasonDeleted)
		if err != nil {
			return fmt.Errorf("dissociate article tags: %w", err)
		}
	}

	return nil
}

// ListLiveForArticle returns the tags attached to the article, excluding
// soft deleted links.
func (s *ArticleTagStore) ListLiveForArticle(ctx context.Context, articleID int64) ([]domain.Tag, error) {
	var tags []domain.Tag
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &tags,
		`SELECT t.id, t.user_id, t.title, t.slug
		 FROM tags t
		 JOIN article_tags at ON at.tag_id = t.id
		 WHERE at.article_id = $1 AND at.tagging_reason <> $2
		 ORDER BY t.slug`,
		articleID, domain.TaggingReasonDeleted)
	if err != nil {
		return nil, fmt.Errorf("list article tags: %w", err)
	}
	return tags, nil
}
