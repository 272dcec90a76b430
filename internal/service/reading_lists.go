package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"feedreader/internal/domain"
	"feedreader/internal/query"
)

// ReadingListService manages saved filters and evaluates them against the
// article corpus.
type ReadingListService struct {
	lists     ReadingListStore
	articles  ArticleStore
	tags      TagStore
	txManager TransactionManager
	logger    *slog.Logger
}

func NewReadingListService(
	lists ReadingListStore,
	articles ArticleStore,
	tags TagStore,
	txManager TransactionManager,
	logger *slog.Logger,
) *ReadingListService {
	return &ReadingListService{
		lists:     lists,
		articles:  articles,
		tags:      tags,
		txManager: txManager,
		logger:    logger,
	}
}

// CreateDefaults builds the initial set of reading lists a fresh account
// starts with. "Unread" is the default landing list.
func (s *ReadingListService) CreateDefaults(ctx context.Context, userID int64) error {
	defaults := []domain.ReadingList{
		{
			Title: "All articles", Slug: "all-articles", Order: 0,
		},
		{
			Title: "Unread", Slug: "unread", Order: 10, IsDefault: true,
			ReadStatus: domain.ReadStatusOnlyUnread, ForLaterStatus: domain.ForLaterStatusOnlyNot,
			AutoRefreshInterval: 3600,
		},
		{
			Title: "Recent", Slug: "recent", Order: 20,
			MaxAgeValue: 2, MaxAgeUnit: domain.MaxAgeDays,
		},
		{
			Title: "Favorite", Slug: "favorite", Order: 30,
			FavoriteStatus: domain.FavoriteStatusOnlyFavorite,
		},
		{
			Title: "For later", Slug: "for-later", Order: 35,
			ReadStatus: domain.ReadStatusOnlyUnread, ForLaterStatus: domain.ForLaterStatusOnlyForLater,
		},
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		for i := range defaults {
			list := &defaults[i]
			list.UserID = userID
			fillListDefaults(list)
			if err := s.lists.Create(txCtx, list); err != nil {
				return fmt.Errorf("create default list %q: %w", list.Slug, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("created default reading lists", "user_id", userID)
	return nil
}

// fillListDefaults sets the unset enum fields to their neutral values so
// the storage check constraints accept the row.
func fillListDefaults(list *domain.ReadingList) {
	if list.ReadStatus == "" {
		list.ReadStatus = domain.ReadStatusAll
	}
	if list.FavoriteStatus == "" {
		list.FavoriteStatus = domain.FavoriteStatusAll
	}
	if list.ForLaterStatus == "" {
		list.ForLaterStatus = domain.ForLaterStatusAll
	}
	if list.MaxAgeUnit == "" {
		list.MaxAgeUnit = domain.MaxAgeUnset
	}
	if list.ReadingTimeOperator == "" {
		list.ReadingTimeOperator = domain.ReadingTimeUnset
	}
	if list.IncludeTagOperator == "" {
		list.IncludeTagOperator = domain.TagOperatorAll
	}
	if list.ExcludeTagOperator == "" {
		list.ExcludeTagOperator = domain.TagOperatorAll
	}
	if list.OrderDirection == "" {
		list.OrderDirection = domain.OrderDesc
	}
}

// Create saves a user-defined list, filling neutral values for unset
// criteria.
func (s *ReadingListService) Create(ctx context.Context, list *domain.ReadingList) error {
	if list.Slug == "" {
		list.Slug = domain.Slugify(list.Title)
	}
	fillListDefaults(list)
	return s.lists.Create(ctx, list)
}

func (s *ReadingListService) Update(ctx context.Context, list *domain.ReadingList) error {
	return s.lists.Update(ctx, list)
}

func (s *ReadingListService) Delete(ctx context.Context, listID int64) error {
	return s.lists.Delete(ctx, listID)
}

// MakeDefault moves the default flag to the list inside one transaction,
// keeping the one-default-per-user invariant.
func (s *ReadingListService) MakeDefault(ctx context.Context, userID, listID int64) error {
	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.lists.MakeDefault(txCtx, userID, listID)
	})
}

// SetTags replaces the list's tags of the given filter type: titles are
// resolved to tags, new ones associated, and previous tags of that type
// not in the new set dropped.
func (s *ReadingListService) SetTags(ctx context.Context, listID int64, tagTitles []string, filterType domain.TagFilterType) error {
	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return err
	}

	tags, err := s.tags.GetOrCreateFromList(ctx, list.UserID, tagTitles)
	if err != nil {
		return fmt.Errorf("resolve tags: %w", err)
	}
	tagIDs := lo.Map(tags, func(t domain.Tag, _ int) int64 { return t.ID })
	keep := lo.SliceToMap(tagIDs, func(id int64) (int64, bool) { return id, true })

	current, err := s.lists.Tags(ctx, listID)
	if err != nil {
		return err
	}
	var remove []int64
	for _, lt := range current {
		if lt.FilterType == filterType && !keep[lt.TagID] {
			remove = append(remove, lt.TagID)
		}
	}

	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.lists.AssociateTags(txCtx, listID, tagIDs, filterType); err != nil {
			return err
		}
		return s.lists.DissociateTags(txCtx, listID, remove)
	})
}

// Evaluate compiles the list into a predicate and returns one page of
// matching articles in reading order.
func (s *ReadingListService) Evaluate(ctx context.Context, list *domain.ReadingList, page domain.Page) ([]*domain.Article, error) {
	listTags, err := s.lists.Tags(ctx, list.ID)
	if err != nil {
		return nil, err
	}

	node := query.ForReadingList(list, listTags, time.Now().UTC())
	return s.articles.ForReadingList(ctx, list.UserID, node, list.OrderDirection, page)
}

// UnreadCounts returns, per reading list, how many unread articles match
// the list's predicate.
func (s *ReadingListService) UnreadCounts(ctx context.Context, userID int64) (map[int64]int64, error) {
	lists, err := s.lists.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	counts := make(map[int64]int64, len(lists))
	for i := range lists {
		list := &lists[i]
		listTags, err := s.lists.Tags(ctx, list.ID)
		if err != nil {
			return nil, err
		}

		node := query.And{Children: []query.Node{
			query.ForReadingList(list, listTags, now),
			query.ReadIs{Read: false},
		}}
		count, err := s.articles.Count(ctx, userID, node)
		if err != nil {
			return nil, err
		}
		counts[list.ID] = count
	}
	return counts, nil
}
