package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"feedreader/internal/domain"
)

type TagStore struct {
	db *sqlx.DB
}

func NewTagStore(db *sqlx.DB) *TagStore {
	return &TagStore{db: db}
}

// GetOrCreateFromList resolves a mixed list of titles or slugs into tag
// rows, creating the missing ones. Existing tags are matched by slug so
// "Some Tag" and "some-tag" resolve to the same tag.
func (s *TagStore) GetOrCreateFromList(ctx context.Context, userID int64, titlesOrSlugs []string) ([]domain.Tag, error) {
	if len(titlesOrSlugs) == 0 {
		return nil, nil
	}

	slugs := make([]string, 0, len(titlesOrSlugs))
	for _, title := range titlesOrSlugs {
		slugs = append(slugs, domain.Slugify(title))
	}

	var existing []domain.Tag
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &existing,
		`SELECT id, user_id, title, slug FROM tags WHERE user_id = $1 AND slug = ANY($2)`,
		userID, pq.Array(slugs))
	if err != nil {
		return nil, fmt.Errorf("get tags by slugs: %w", err)
	}

	existingSlugs := make(map[string]bool, len(existing))
	for _, tag := range existing {
		existingSlugs[tag.Slug] = true
	}

	tags := existing
	for i, title := range titlesOrSlugs {
		slug := slugs[i]
		if existingSlugs[slug] {
			continue
		}
		existingSlugs[slug] = true

		tag := domain.Tag{UserID: userID, Title: title, Slug: slug}
		err := GetExecutor(ctx, s.db).QueryRowxContext(ctx,
			`INSERT INTO tags (user_id, title, slug) VALUES ($1, $2, $3)
			 ON CONFLICT (user_id, slug) DO UPDATE SET slug = EXCLUDED.slug
			 RETURNING id`,
			userID, title, slug,
		).Scan(&tag.ID)
		if err != nil {
			return nil, fmt.Errorf("create tag %q: %w", title, err)
		}
		tags = append(tags, tag)
	}

	return tags, nil
}

func (s *TagStore) ListForUser(ctx context.Context, userID int64) ([]domain.Tag, error) {
	var tags []domain.Tag
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &tags,
		`SELECT id, user_id, title, slug FROM tags WHERE user_id = $1 ORDER BY slug`, userID)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}
