package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"feedreader/internal/domain"
)

const readingListColumns = `id, user_id, title, slug, is_default, enable_reading_on_scroll,
	auto_refresh_interval, list_order, read_status, favorite_status, for_later_status,
	articles_max_age_value, articles_max_age_unit, articles_reading_time,
	articles_reading_time_operator, include_tag_operator, exclude_tag_operator,
	order_direction, created_at, updated_at`

type ReadingListStore struct {
	db *sqlx.DB
}

func NewReadingListStore(db *sqlx.DB) *ReadingListStore {
	return &ReadingListStore{db: db}
}

func (s *ReadingListStore) Create(ctx context.Context, list *domain.ReadingList) error {
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx,
		`INSERT INTO reading_lists (user_id, title, slug, is_default, enable_reading_on_scroll,
			auto_refresh_interval, list_order, read_status, favorite_status, for_later_status,
			articles_max_age_value, articles_max_age_unit, articles_reading_time,
			articles_reading_time_operator, include_tag_operator, exclude_tag_operator,
			order_direction)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		 RETURNING id, created_at, updated_at`,
		list.UserID, list.Title, list.Slug, list.IsDefault, list.EnableReadingOnScroll,
		list.AutoRefreshInterval, list.Order, list.ReadStatus, list.FavoriteStatus,
		list.ForLaterStatus, list.MaxAgeValue, list.MaxAgeUnit, list.ReadingTime,
		list.ReadingTimeOperator, list.IncludeTagOperator, list.ExcludeTagOperator,
		list.OrderDirection,
	).Scan(&list.ID, &list.CreatedAt, &list.UpdatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("create reading list %q: %w", list.Slug, err)
	}
	if err != nil {
		return fmt.Errorf("create reading list: %w", err)
	}
	return nil
}

func (s *ReadingListStore) GetByID(ctx context.Context, id int64) (*domain.ReadingList, error) {
	var list domain.ReadingList
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &list,
		`SELECT `+readingListColumns+` FROM reading_lists WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get reading list: %w", err)
	}
	return &list, nil
}

func (s *ReadingListStore) GetBySlug(ctx context.Context, userID int64, slug string) (*domain.ReadingList, error) {
	var list domain.ReadingList
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &list,
		`SELECT `+readingListColumns+` FROM reading_lists WHERE user_id = $1 AND slug = $2`,
		userID, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get reading list by slug: %w", err)
	}
	return &list, nil
}

func (s *ReadingListStore) GetDefault(ctx context.Context, userID int64) (*domain.ReadingList, error) {
	var list domain.ReadingList
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &list,
		`SELECT `+readingListColumns+` FROM reading_lists WHERE user_id = $1 AND is_default`,
		userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get default reading list: %w", err)
	}
	return &list, nil
}

func (s *ReadingListStore) ListForUser(ctx context.Context, userID int64) ([]domain.ReadingList, error) {
	var lists []domain.ReadingList
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &lists,
		`SELECT `+readingListColumns+` FROM reading_lists
		 WHERE user_id = $1 ORDER BY list_order, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list reading lists: %w", err)
	}
	return lists, nil
}

func (s *ReadingListStore) Update(ctx context.Context, list *domain.ReadingList) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE reading_lists SET title = $2, slug = $3, enable_reading_on_scroll = $4,
			auto_refresh_interval = $5, list_order = $6, read_status = $7,
			favorite_status = $8, for_later_status = $9, articles_max_age_value = $10,
			articles_max_age_unit = $11, articles_reading_time = $12,
			articles_reading_time_operator = $13, include_tag_operator = $14,
			exclude_tag_operator = $15, order_direction = $16, updated_at = now()
		 WHERE id = $1`,
		list.ID, list.Title, list.Slug, list.EnableReadingOnScroll, list.AutoRefreshInterval,
		list.Order, list.ReadStatus, list.FavoriteStatus, list.ForLaterStatus,
		list.MaxAgeValue, list.MaxAgeUnit, list.ReadingTime, list.ReadingTimeOperator,
		list.IncludeTagOperator, list.ExcludeTagOperator, list.OrderDirection)
	if err != nil {
		return fmt.Errorf("update reading list: %w", err)
	}
	return requireRowAffected(res, "update reading list")
}

// Delete refuses to remove the default list so a user always keeps one
// landing list.
func (s *ReadingListStore) Delete(ctx context.Context, id int64) error {
	list, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if list.IsDefault {
		return domain.ErrDefaultListDelete
	}
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM reading_lists WHERE id = $1 AND NOT is_default`, id)
	if err != nil {
		return fmt.Errorf("delete reading list: %w", err)
	}
	return requireRowAffected(res, "delete reading list")
}

// MakeDefault moves the default flag to the given list. The caller wraps
// this in a transaction so the partial unique index never sees two defaults.
func (s *ReadingListStore) MakeDefault(ctx context.Context, userID, listID int64) error {
	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx,
		`UPDATE reading_lists SET is_default = FALSE, updated_at = now()
		 WHERE user_id = $1 AND is_default AND id <> $2`,
		userID, listID)
	if err != nil {
		return fmt.Errorf("clear default reading list: %w", err)
	}
	res, err := exec.ExecContext(ctx,
		`UPDATE reading_lists SET is_default = TRUE, updated_at = now()
		 WHERE user_id = $1 AND id = $2`,
		userID, listID)
	if err != nil {
		return fmt.Errorf("set default reading list: %w", err)
	}
	return requireRowAffected(res, "set default reading list")
}

// AssociateTags attaches tags to the list as include or exclude criteria.
// Re-associating an already linked tag moves it to the given filter type.
func (s *ReadingListStore) AssociateTags(ctx context.Context, listID int64, tagIDs []int64, filterType domain.TagFilterType) error {
	if len(tagIDs) == 0 {
		return nil
	}
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`INSERT INTO reading_list_tags (reading_list_id, tag_id, filter_type)
		 SELECT $1, t.id, $3 FROM unnest($2::bigint[]) AS t(id)
		 ON CONFLICT (reading_list_id, tag_id) DO UPDATE SET filter_type = EXCLUDED.filter_type`,
		listID, pq.Array(tagIDs), filterType)
	if err != nil {
		return fmt.Errorf("associate reading list tags: %w", err)
	}
	return nil
}

func (s *ReadingListStore) DissociateTags(ctx context.Context, listID int64, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM reading_list_tags WHERE reading_list_id = $1 AND tag_id = ANY($2)`,
		listID, pq.Array(tagIDs))
	if err != nil {
		return fmt.Errorf("dissociate reading list tags: %w", err)
	}
	return nil
}

func (s *ReadingListStore) Tags(ctx context.Context, listID int64) ([]domain.ReadingListTag, error) {
	var tags []domain.ReadingListTag
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &tags,
		`SELECT reading_list_id, tag_id, filter_type FROM reading_list_tags
		 WHERE reading_list_id = $1 ORDER BY tag_id`, listID)
	if err != nil {
		return nil, fmt.Errorf("get reading list tags: %w", err)
	}
	return tags, nil
}
