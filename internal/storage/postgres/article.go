package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"feedreader/internal/domain"
	"feedreader/internal/query"
)

// articleColumns is the select list shared by every article read. The
// live_tag_ids alias aggregates the article's tag links whose reason is
// not DELETED, which the filter engine's tag clauses run against.
const articleColumns = `
	a.id, a.user_id, a.external_article_id, a.title, a.slug, a.summary,
	a.content, a.reading_time, a.link, a.preview_picture_url,
	a.preview_picture_alt, a.language, a.read_at, a.opened_at,
	a.is_favorite, a.is_for_later, a.initial_source_type,
	a.initial_source_title, a.published_at, a.updated_at,
	a.obj_created_at, a.obj_updated_at,
	a.authors, a.contributors, a.external_tags, a.annotations,
	COALESCE(lt.tag_ids, '{}') AS live_tag_ids`

const liveTagJoin = `
	LEFT JOIN (
		SELECT article_id, array_agg(tag_id ORDER BY tag_id) AS tag_ids
		FROM article_tags
		WHERE tagging_reason <> 'DELETED'
		GROUP BY article_id
	) lt ON lt.article_id = a.id`

type articleRow struct {
	domain.Article
	Authors      pq.StringArray `db:"authors"`
	Contributors pq.StringArray `db:"contributors"`
	ExternalTags pq.StringArray `db:"external_tags"`
	Annotations  pq.StringArray `db:"annotations"`
	LiveTagIDs   pq.Int64Array  `db:"live_tag_ids"`
}

func (r articleRow) toDomain() *domain.Article {
	article := r.Article
	article.Authors = r.Authors
	article.Contributors = r.Contributors
	article.ExternalTags = r.ExternalTags
	article.Annotations = r.Annotations
	article.LiveTagIDs = r.LiveTagIDs
	return &article
}

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

func (s *ArticleStore) GetByID(ctx context.Context, userID, articleID int64) (*domain.Article, error) {
	q := `SELECT` + articleColumns + ` FROM articles a` + liveTagJoin + `
		WHERE a.user_id = $1 AND a.id = $2`

	var row articleRow
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, q, userID, articleID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get article %d: %w", articleID, err)
	}
	return row.toDomain(), nil
}

// GetByLinks loads the user's articles matching any of the links, keyed
// by link. The upsert engine resolves incoming records against this map.
func (s *ArticleStore) GetByLinks(ctx context.Context, userID int64, links []string) (map[string]*domain.Article, error) {
	result := make(map[string]*domain.Article, len(links))
	if len(links) == 0 {
		return result, nil
	}

	q := `SELECT` + articleColumns + ` FROM articles a` + liveTagJoin + `
		WHERE a.user_id = $1 AND a.link = ANY($2)`

	var rows []articleRow
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, q, userID, pq.Array(links)); err != nil {
		return nil, fmt.Errorf("get articles by links: %w", err)
	}

	for _, row := range rows {
		result[row.Link] = row.toDomain()
	}
	return result, nil
}

func (s *ArticleStore) Create(ctx context.Context, article *domain.Article) error {
	q := `
		INSERT INTO articles (
			user_id, external_article_id, title, slug, summary, content,
			reading_time, authors, contributors, external_tags, annotations,
			link, preview_picture_url, preview_picture_alt, language,
			read_at, opened_at, is_favorite, is_for_later,
			initial_source_type, initial_source_title, published_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23
		)
		RETURNING id, obj_created_at, obj_updated_at`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, q,
		article.UserID,
		article.ExternalArticleID,
		article.Title,
		article.Slug,
		article.Summary,
		article.Content,
		article.ReadingTime,
		pq.Array(article.Authors),
		pq.Array(article.Contributors),
		pq.Array(article.ExternalTags),
		pq.Array(article.Annotations),
		article.Link,
		article.PreviewPictureURL,
		article.PreviewPictureAlt,
		article.Language,
		article.ReadAt,
		article.OpenedAt,
		article.IsFavorite,
		article.IsForLater,
		article.InitialSourceType,
		article.InitialSourceTitle,
		article.PublishedAt,
		article.UpdatedAt,
	).Scan(&article.ID, &article.ObjCreatedAt, &article.ObjUpdatedAt)

	if isUniqueViolation(err) {
		return domain.ErrArticleExists
	}
	if err != nil {
		return fmt.Errorf("create article: %w", err)
	}
	return nil
}

// Update writes back every mutable field. The title, slug and link
// columns are deliberately left alone.
func (s *ArticleStore) Update(ctx context.Context, article *domain.Article) error {
	q := `
		UPDATE articles SET
			external_article_id = $1,
			summary = $2,
			content = $3,
			reading_time = $4,
			authors = $5,
			contributors = $6,
			external_tags = $7,
			annotations = $8,
			preview_picture_url = $9,
			preview_picture_alt = $10,
			language = $11,
			read_at = $12,
			opened_at = $13,
			is_favorite = $14,
			is_for_later = $15,
			initial_source_type = $16,
			initial_source_title = $17,
			published_at = $18,
			updated_at = $19,
			obj_updated_at = now()
		WHERE id = $20`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, q,
		article.ExternalArticleID,
		article.Summary,
		article.Content,
		article.ReadingTime,
		pq.Array(article.Authors),
		pq.Array(article.Contributors),
		pq.Array(article.ExternalTags),
		pq.Array(article.Annotations),
		article.PreviewPictureURL,
		article.PreviewPictureAlt,
		article.Language,
		article.ReadAt,
		article.OpenedAt,
		article.IsFavorite,
		article.IsForLater,
		article.InitialSourceType,
		article.InitialSourceTitle,
		article.PublishedAt,
		article.UpdatedAt,
		article.ID,
	)
	if err != nil {
		return fmt.Errorf("update article %d: %w", article.ID, err)
	}
	return nil
}

func (s *ArticleStore) Delete(ctx context.Context, userID, articleID int64) error {
	result, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM articles WHERE user_id = $1 AND id = $2`, userID, articleID)
	if err != nil {
		return fmt.Errorf("delete article %d: %w", articleID, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ForReadingList returns the page of the user's articles matching the
// predicate, ordered by COALESCE(updated_at, published_at) with rows
// lacking both dates last, then by id as tie break.
func (s *ArticleStore) ForReadingList(ctx context.Context, userID int64, node query.Node, direction domain.OrderDirection, page domain.Page) ([]*domain.Article, error) {
	args := []interface{}{userID}
	predicate := predicateSQL(node, &args)

	order := "DESC NULLS LAST, a.id DESC"
	if direction == domain.OrderAsc {
		order = "ASC NULLS LAST, a.id ASC"
	}

	q := `SELECT` + articleColumns + ` FROM articles a` + liveTagJoin + `
		WHERE a.user_id = $1 AND ` + predicate + `
		ORDER BY COALESCE(a.updated_at, a.published_at) ` + order

	if page.Limit > 0 {
		q += fmt.Sprintf(" LIMIT %d OFFSET %d", page.Limit, page.Offset)
	}

	var rows []articleRow
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, q, args...); err != nil {
		return nil, fmt.Errorf("query articles for reading list: %w", err)
	}

	articles := make([]*domain.Article, 0, len(rows))
	for _, row := range rows {
		articles = append(articles, row.toDomain())
	}
	return articles, nil
}

// Count counts the user's articles matching the predicate.
func (s *ArticleStore) Count(ctx context.Context, userID int64, node query.Node) (int64, error) {
	args := []interface{}{userID}
	predicate := predicateSQL(node, &args)

	q := `SELECT COUNT(*) FROM articles a` + liveTagJoin + `
		WHERE a.user_id = $1 AND ` + predicate

	var count int64
	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count, q, args...); err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}

// CleanupFeedArticles deletes articles a feed pulled in that fell out of
// the feed's retention window, unless the user touched them.
func (s *ArticleStore) CleanupFeedArticles(ctx context.Context, feedID int64, retentionDays int) (int64, error) {
	q := `
		DELETE FROM articles WHERE id IN (
			SELECT a.id
			FROM articles a
			JOIN feed_articles fa ON fa.article_id = a.id
			WHERE fa.feed_id = $1
			  AND a.initial_source_type = 'FEED'
			  AND a.read_at IS NULL
			  AND a.is_favorite = FALSE
			  AND a.is_for_later = FALSE
			  AND a.obj_created_at < now() - make_interval(days => $2)
		)`

	result, err := GetExecutor(ctx, s.db).ExecContext(ctx, q, feedID, retentionDays)
	if err != nil {
		return 0, fmt.Errorf("cleanup feed articles: %w", err)
	}
	n, _ := result.RowsAffected()
	return n, nil
}

// predicateSQL renders a predicate tree into a SQL condition over the
// aliased articles query, appending bind values to args.
func predicateSQL(node query.Node, args *[]interface{}) string {
	bind := func(value interface{}) string {
		*args = append(*args, value)
		return fmt.Sprintf("$%d", len(*args))
	}

	switch n := node.(type) {
	case nil:
		return "TRUE"
	case query.And:
		if len(n.Children) == 0 {
			return "TRUE"
		}
		parts := make([]string, 0, len(n.Children))
		for _, child := range n.Children {
			parts = append(parts, predicateSQL(child, args))
		}
		return "(" + joinSQL(parts, " AND ") + ")"
	case query.Or:
		if len(n.Children) == 0 {
			return "TRUE"
		}
		parts := make([]string, 0, len(n.Children))
		for _, child := range n.Children {
			parts = append(parts, predicateSQL(child, args))
		}
		return "(" + joinSQL(parts, " OR ") + ")"
	case query.Not:
		return "NOT " + predicateSQL(n.Child, args)
	case query.ReadIs:
		if n.Read {
			return "(a.read_at IS NOT NULL)"
		}
		return "(a.read_at IS NULL)"
	case query.FavoriteIs:
		return "(a.is_favorite = " + bind(n.Favorite) + ")"
	case query.ForLaterIs:
		return "(a.is_for_later = " + bind(n.ForLater) + ")"
	case query.PublishedAfter:
		return "(a.published_at > " + bind(n.Cutoff) + ")"
	case query.ReadingTimeAtLeast:
		return "(a.reading_time >= " + bind(n.Minutes) + ")"
	case query.ReadingTimeAtMost:
		return "(a.reading_time <= " + bind(n.Minutes) + ")"
	case query.TagsContainAll:
		return "(COALESCE(lt.tag_ids, '{}') @> " + bind(pq.Array(n.TagIDs)) + ")"
	case query.TagsContainAny:
		return "(COALESCE(lt.tag_ids, '{}') && " + bind(pq.Array(n.TagIDs)) + ")"
	default:
		return "FALSE"
	}
}

func joinSQL(parts []string, sep string) string {
	out := parts[0]
	for _, part := range parts[1:] {
		out += sep + part
	}
	return out
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
