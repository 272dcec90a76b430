package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"feedreader/internal/config"
	"feedreader/internal/domain"
	"feedreader/internal/fetch"
)

// UpdateService refreshes subscribed feeds. Each feed is one independently
// failing unit of work: a feed's failure is recorded on its update history
// and never propagates to sibling feeds or to the caller.
type UpdateService struct {
	feeds    FeedStore
	updates  FeedUpdateStore
	deleted  FeedDeletedArticleStore
	users    UserStore
	articles *ArticleService
	locator  FeedLocator
	logger   *slog.Logger
	config   config.UpdateConfig
}

func NewUpdateService(
	feeds FeedStore,
	updates FeedUpdateStore,
	deleted FeedDeletedArticleStore,
	users UserStore,
	articles *ArticleService,
	locator FeedLocator,
	logger *slog.Logger,
	cfg config.UpdateConfig,
) *UpdateService {
	return &UpdateService{
		feeds:    feeds,
		updates:  updates,
		deleted:  deleted,
		users:    users,
		articles: articles,
		locator:  locator,
		logger:   logger,
		config:   cfg,
	}
}

// UpdateStats summarizes one refresh cycle.
type UpdateStats struct {
	Due         int
	Updated     int
	NotModified int
	Failed      int
	Disabled    int
	Duration    time.Duration
}

// UpdateDueFeeds refreshes every enabled feed whose cadence says it is
// due, fanning out over a bounded worker group. Sibling feeds keep going
// when one fails; only context cancellation stops the cycle.
func (s *UpdateService) UpdateDueFeeds(ctx context.Context) (*UpdateStats, error) {
	startTime := time.Now()

	due, err := s.feeds.DueForRefresh(ctx, startTime.UTC())
	if err != nil {
		return nil, err
	}
	s.logger.Info("starting update cycle", "due_feeds", len(due))

	stats := &UpdateStats{Due: len(due)}
	var mu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.config.MaxConcurrentFeeds)

	for i := range due {
		feed := due[i]
		group.Go(func() error {
			outcome := s.UpdateFeed(groupCtx, &feed)

			mu.Lock()
			switch outcome {
			case domain.FeedUpdateSuccess:
				stats.Updated++
			case domain.FeedUpdateNotModified:
				stats.NotModified++
			case domain.FeedUpdateFailure:
				stats.Failed++
				if !feed.Enabled {
					stats.Disabled++
				}
			}
			mu.Unlock()

			return groupCtx.Err()
		})
	}

	if err := group.Wait(); err != nil {
		return stats, err
	}

	if s.config.KeepFeedUpdatesFor > 0 {
		cutoff := time.Now().UTC().Add(-s.config.KeepFeedUpdatesFor)
		if deleted, err := s.updates.Cleanup(ctx, cutoff); err != nil {
			s.logger.Error("failed to clean up feed update history", "error", err)
		} else if deleted > 0 {
			s.logger.Debug("cleaned up feed update history", "deleted", deleted)
		}
	}

	stats.Duration = time.Since(startTime)
	s.logger.Info("update cycle completed",
		"updated", stats.Updated,
		"not_modified", stats.NotModified,
		"failed", stats.Failed,
		"disabled", stats.Disabled,
		"duration", stats.Duration,
	)
	return stats, nil
}

// UpdateFeed refreshes one feed and records the outcome on its update
// history. It never returns an error; the returned status tells the caller
// what happened.
func (s *UpdateService) UpdateFeed(ctx context.Context, feed *domain.Feed) domain.FeedUpdateStatus {
	logger := s.logger.With("feed_id", feed.ID, "feed_url", feed.FeedURL)

	feedData, err := s.locator.Locate(ctx, feed.FeedURL, s.conditionalHeaders(ctx, feed.ID))
	if errors.Is(err, domain.ErrNotModified) {
		logger.Debug("feed not modified")
		s.recordOutcome(ctx, &domain.FeedUpdate{
			FeedID: feed.ID,
			Status: domain.FeedUpdateNotModified,
		})
		return domain.FeedUpdateNotModified
	}
	if err != nil {
		logger.Warn("feed update failed", "error", err)
		s.recordOutcome(ctx, &domain.FeedUpdate{
			FeedID:       feed.ID,
			Status:       domain.FeedUpdateFailure,
			ErrorMessage: err.Error(),
		})
		s.maybeDisable(ctx, feed, logger)
		return domain.FeedUpdateFailure
	}

	if err := s.applyFeedData(ctx, feed, feedData); err != nil {
		logger.Warn("feed update failed", "error", err)
		s.recordOutcome(ctx, &domain.FeedUpdate{
			FeedID:       feed.ID,
			Status:       domain.FeedUpdateFailure,
			ErrorMessage: err.Error(),
		})
		return domain.FeedUpdateFailure
	}

	s.recordOutcome(ctx, &domain.FeedUpdate{
		FeedID:           feed.ID,
		Status:           domain.FeedUpdateSuccess,
		FeedETag:         feedData.ETag,
		FeedLastModified: feedData.LastModified,
	})

	if feed.ArticleRetentionDays > 0 {
		if deleted, err := s.articles.CleanupFeedArticles(ctx, feed.ID, feed.ArticleRetentionDays); err != nil {
			logger.Error("failed to clean up retained articles", "error", err)
		} else if deleted > 0 {
			logger.Debug("cleaned up retained articles", "deleted", deleted)
		}
	}

	return domain.FeedUpdateSuccess
}

// applyFeedData ingests the fetched articles and refreshes the feed's
// metadata. Articles the user deleted from this feed are suppressed.
func (s *UpdateService) applyFeedData(ctx context.Context, feed *domain.Feed, feedData *domain.FeedData) error {
	user, err := s.users.GetByID(ctx, feed.UserID)
	if err != nil {
		return err
	}

	deletedLinks, err := s.deleted.Links(ctx, feed.ID)
	if err != nil {
		return err
	}
	suppressed := lo.SliceToMap(deletedLinks, func(link string) (string, bool) { return link, true })
	records := lo.Filter(feedData.Articles, func(r domain.ArticleData, _ int) bool {
		return !suppressed[r.Link]
	})

	tagIDs, err := s.feeds.TagIDs(ctx, feed.ID)
	if err != nil {
		return err
	}

	results, err := s.articles.SaveArticles(ctx, user, records, tagIDs, domain.ArticleSourceFeed, false)
	if err != nil {
		return err
	}

	articleIDs := lo.Map(results, func(r domain.SaveArticleResult, _ int) int64 { return r.Article.ID })
	if err := s.feeds.LinkArticles(ctx, feed.ID, articleIDs); err != nil {
		return err
	}

	// The title stays as the user sees it; only derived metadata follows
	// the document.
	feed.SiteURL = feedData.SiteURL
	feed.Description = feedData.Description
	feed.FeedType = feedData.FeedType
	return s.feeds.Update(ctx, feed)
}

func (s *UpdateService) conditionalHeaders(ctx context.Context, feedID int64) fetch.ConditionalHeaders {
	latest, err := s.updates.LatestSuccess(ctx, feedID)
	if errors.Is(err, domain.ErrNotFound) {
		return fetch.ConditionalHeaders{}
	}
	if err != nil {
		s.logger.Error("failed to load conditional fetch state", "feed_id", feedID, "error", err)
		return fetch.ConditionalHeaders{}
	}

	cond := fetch.ConditionalHeaders{ETag: latest.FeedETag}
	if latest.FeedLastModified != nil {
		cond.LastModified = latest.FeedLastModified.UTC().Format(http.TimeFormat)
	}
	return cond
}

// maybeDisable disables the feed when every attempt inside the grace
// window failed. One intervening success or not-modified keeps it alive.
func (s *UpdateService) maybeDisable(ctx context.Context, feed *domain.Feed, logger *slog.Logger) {
	since := time.Now().UTC().Add(-s.config.DisableGracePeriod)
	mustDisable, err := s.updates.MustDisableFeed(ctx, feed.ID, since)
	if err != nil {
		logger.Error("failed to evaluate disable rule", "error", err)
		return
	}
	if !mustDisable {
		return
	}

	feed.Disable("too many consecutive fetch failures", time.Now().UTC())
	if err := s.feeds.Update(ctx, feed); err != nil {
		logger.Error("failed to disable feed", "error", err)
		return
	}
	logger.Warn("feed disabled after repeated failures")
}

func (s *UpdateService) recordOutcome(ctx context.Context, update *domain.FeedUpdate) {
	if err := s.updates.Create(ctx, update); err != nil {
		s.logger.Error("failed to record feed update outcome",
			"feed_id", update.FeedID, "status", update.Status, "error", err)
	}
}
