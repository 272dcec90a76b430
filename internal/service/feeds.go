package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"feedreader/internal/domain"
	"feedreader/internal/feedparse"
	"feedreader/internal/fetch"
)

// FeedService manages subscriptions: locating a feed from a user-supplied
// URL, creating the subscription and ingesting the initial batch of
// articles.
type FeedService struct {
	feeds    FeedStore
	updates  FeedUpdateStore
	tags     TagStore
	articles *ArticleService
	locator  FeedLocator
	logger   *slog.Logger
}

func NewFeedService(
	feeds FeedStore,
	updates FeedUpdateStore,
	tags TagStore,
	articles *ArticleService,
	locator FeedLocator,
	logger *slog.Logger,
) *FeedService {
	return &FeedService{
		feeds:    feeds,
		updates:  updates,
		tags:     tags,
		articles: articles,
		locator:  locator,
		logger:   logger,
	}
}

// SubscribeOptions are the user-chosen settings of a new subscription.
type SubscribeOptions struct {
	RefreshDelay         domain.FeedRefreshDelay
	ArticleRetentionDays int
	TagTitles            []string
}

// Subscribe resolves rawURL to a feed and subscribes the user to it. It
// returns the feed and whether a new subscription was created. Subscribing
// to an already subscribed feed returns the existing one with created
// false; if that feed was disabled it is re-enabled and refreshed.
func (s *FeedService) Subscribe(ctx context.Context, user *domain.User, rawURL string, opts SubscribeOptions) (*domain.Feed, bool, error) {
	if err := feedparse.CheckFeedURL(rawURL); err != nil {
		return nil, false, err
	}
	if opts.RefreshDelay == "" {
		opts.RefreshDelay = domain.RefreshDaily
	}

	feedData, err := s.locator.Locate(ctx, rawURL, fetch.ConditionalHeaders{})
	if err != nil {
		return nil, false, err
	}

	tags, err := s.tags.GetOrCreateFromList(ctx, user.ID, opts.TagTitles)
	if err != nil {
		return nil, false, fmt.Errorf("resolve tags: %w", err)
	}
	tagIDs := lo.Map(tags, func(t domain.Tag, _ int) int64 { return t.ID })

	feed := &domain.Feed{
		UserID:               user.ID,
		FeedURL:              feedData.FeedURL,
		SiteURL:              feedData.SiteURL,
		Title:                feedData.Title,
		Slug:                 domain.Slugify(feedData.Title),
		Description:          feedData.Description,
		FeedType:             feedData.FeedType,
		Enabled:              true,
		RefreshDelay:         opts.RefreshDelay,
		ArticleRetentionDays: opts.ArticleRetentionDays,
	}

	err = s.feeds.Create(ctx, feed)
	if errors.Is(err, domain.ErrFeedExists) {
		return s.resubscribe(ctx, user, feedData, tagIDs)
	}
	if err != nil {
		return nil, false, err
	}

	if err := s.feeds.SetTags(ctx, feed.ID, tagIDs); err != nil {
		return nil, false, err
	}

	if err := s.ingest(ctx, user, feed, feedData, tagIDs); err != nil {
		return nil, false, err
	}

	s.logger.Info("subscribed to feed", "feed_url", feed.FeedURL, "title", feed.Title)
	return feed, true, nil
}

// resubscribe handles the already-subscribed case: the existing feed is
// returned, re-enabled and refreshed when it had been disabled.
func (s *FeedService) resubscribe(ctx context.Context, user *domain.User, feedData *domain.FeedData, tagIDs []int64) (*domain.Feed, bool, error) {
	feed, err := s.feeds.GetByURL(ctx, user.ID, feedData.FeedURL)
	if err != nil {
		return nil, false, err
	}

	if !feed.Enabled {
		feed.Enable()
		if err := s.feeds.Update(ctx, feed); err != nil {
			return nil, false, err
		}
		if err := s.ingest(ctx, user, feed, feedData, tagIDs); err != nil {
			return nil, false, err
		}
		s.logger.Info("re-enabled feed on resubscribe", "feed_url", feed.FeedURL)
	}

	return feed, false, nil
}

// ingest saves the located feed's articles and records the successful
// fetch with its conditional validators.
func (s *FeedService) ingest(ctx context.Context, user *domain.User, feed *domain.Feed, feedData *domain.FeedData, tagIDs []int64) error {
	results, err := s.articles.SaveArticles(ctx, user, feedData.Articles, tagIDs, domain.ArticleSourceFeed, false)
	if err != nil {
		return fmt.Errorf("save feed articles: %w", err)
	}

	articleIDs := lo.Map(results, func(r domain.SaveArticleResult, _ int) int64 { return r.Article.ID })
	if err := s.feeds.LinkArticles(ctx, feed.ID, articleIDs); err != nil {
		return err
	}

	return s.updates.Create(ctx, &domain.FeedUpdate{
		FeedID:           feed.ID,
		Status:           domain.FeedUpdateSuccess,
		FeedETag:         feedData.ETag,
		FeedLastModified: feedData.LastModified,
	})
}

// DisableFeed turns the feed off with a reason supplied by the user.
func (s *FeedService) DisableFeed(ctx context.Context, feedID int64, reason string) error {
	feed, err := s.feeds.GetByID(ctx, feedID)
	if err != nil {
		return err
	}
	feed.Disable(reason, time.Now().UTC())
	return s.feeds.Update(ctx, feed)
}

func (s *FeedService) EnableFeed(ctx context.Context, feedID int64) error {
	feed, err := s.feeds.GetByID(ctx, feedID)
	if err != nil {
		return err
	}
	feed.Enable()
	return s.feeds.Update(ctx, feed)
}

// DeleteFeed removes the subscription. Articles survive: the feed-article
// links cascade away but the articles stay owned by the user.
func (s *FeedService) DeleteFeed(ctx context.Context, feedID int64) error {
	return s.feeds.Delete(ctx, feedID)
}
