package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"feedreader/internal/config"
	"feedreader/internal/domain"
	"feedreader/internal/fetch"
	"feedreader/internal/service/mocks"
)

type UpdateServiceTestSuite struct {
	suite.Suite

	ctx  context.Context
	ctrl *gomock.Controller

	feeds       *mocks.MockFeedStore
	updates     *mocks.MockFeedUpdateStore
	deleted     *mocks.MockFeedDeletedArticleStore
	users       *mocks.MockUserStore
	articles    *mocks.MockArticleStore
	articleTags *mocks.MockArticleTagStore
	txManager   *mocks.MockTransactionManager
	publisher   *mocks.MockPublisher
	locator     *mocks.MockFeedLocator

	service *UpdateService
	user    *domain.User
}

func TestUpdateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UpdateServiceTestSuite))
}

func (s *UpdateServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())

	s.feeds = mocks.NewMockFeedStore(s.ctrl)
	s.updates = mocks.NewMockFeedUpdateStore(s.ctrl)
	s.deleted = mocks.NewMockFeedDeletedArticleStore(s.ctrl)
	s.users = mocks.NewMockUserStore(s.ctrl)
	s.articles = mocks.NewMockArticleStore(s.ctrl)
	s.articleTags = mocks.NewMockArticleTagStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)
	s.locator = mocks.NewMockFeedLocator(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	articleService := NewArticleService(
		s.articles, s.articleTags, mocks.NewMockTagStore(s.ctrl), s.feeds, s.deleted,
		mocks.NewMockArticleFetchErrorStore(s.ctrl),
		mocks.NewMockPageExtractor(s.ctrl),
		s.txManager, s.publisher, logger,
	)
	s.service = NewUpdateService(
		s.feeds, s.updates, s.deleted, s.users, articleService, s.locator, logger,
		config.UpdateConfig{
			MaxConcurrentFeeds: 4,
			DisableGracePeriod: 7 * 24 * time.Hour,
			KeepFeedUpdatesFor: 60 * 24 * time.Hour,
		},
	)
	s.user = &domain.User{ID: 1, Email: "reader@example.com", WordsPerMinute: 200}
}

func (s *UpdateServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *UpdateServiceTestSuite) TestUpdateFeedNotModified() {
	feed := &domain.Feed{ID: 10, UserID: s.user.ID, FeedURL: "https://example.com/feed.xml", Enabled: true}
	lastModified := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	s.updates.EXPECT().
		LatestSuccess(s.ctx, int64(10)).
		Return(&domain.FeedUpdate{
			FeedID:           10,
			Status:           domain.FeedUpdateSuccess,
			FeedETag:         `"v1"`,
			FeedLastModified: &lastModified,
		}, nil)
	s.locator.EXPECT().
		Locate(s.ctx, feed.FeedURL, fetch.ConditionalHeaders{
			ETag:         `"v1"`,
			LastModified: lastModified.Format(http.TimeFormat),
		}).
		Return(nil, domain.ErrNotModified)
	s.updates.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, update *domain.FeedUpdate) error {
			s.Equal(int64(10), update.FeedID)
			s.Equal(domain.FeedUpdateNotModified, update.Status)
			return nil
		})

	outcome := s.service.UpdateFeed(s.ctx, feed)

	s.Equal(domain.FeedUpdateNotModified, outcome)
}

func (s *UpdateServiceTestSuite) TestUpdateFeedFailureKeepsFeedEnabled() {
	feed := &domain.Feed{ID: 10, UserID: s.user.ID, FeedURL: "https://example.com/feed.xml", Enabled: true}

	s.updates.EXPECT().LatestSuccess(s.ctx, int64(10)).Return(nil, domain.ErrNotFound)
	s.locator.EXPECT().
		Locate(s.ctx, feed.FeedURL, fetch.ConditionalHeaders{}).
		Return(nil, errors.New("status 503"))
	s.updates.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, update *domain.FeedUpdate) error {
			s.Equal(domain.FeedUpdateFailure, update.Status)
			s.Equal("status 503", update.ErrorMessage)
			return nil
		})
	s.updates.EXPECT().MustDisableFeed(s.ctx, int64(10), gomock.Any()).Return(false, nil)

	outcome := s.service.UpdateFeed(s.ctx, feed)

	s.Equal(domain.FeedUpdateFailure, outcome)
	s.True(feed.Enabled)
}

func (s *UpdateServiceTestSuite) TestUpdateFeedDisablesAfterRepeatedFailures() {
	feed := &domain.Feed{ID: 10, UserID: s.user.ID, FeedURL: "https://example.com/feed.xml", Enabled: true}

	s.updates.EXPECT().LatestSuccess(s.ctx, int64(10)).Return(nil, domain.ErrNotFound)
	s.locator.EXPECT().
		Locate(s.ctx, feed.FeedURL, fetch.ConditionalHeaders{}).
		Return(nil, errors.New("status 503"))
	s.updates.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)
	s.updates.EXPECT().MustDisableFeed(s.ctx, int64(10), gomock.Any()).Return(true, nil)
	s.feeds.EXPECT().
		Update(s.ctx, feed).
		DoAndReturn(func(_ context.Context, updated *domain.Feed) error {
			s.False(updated.Enabled)
			s.NotEmpty(updated.DisabledReason)
			s.NotNil(updated.DisabledAt)
			return nil
		})

	outcome := s.service.UpdateFeed(s.ctx, feed)

	s.Equal(domain.FeedUpdateFailure, outcome)
	s.False(feed.Enabled)
}

func (s *UpdateServiceTestSuite) TestUpdateFeedSuppressesDeletedArticles() {
	feed := &domain.Feed{ID: 10, UserID: s.user.ID, FeedURL: "https://example.com/feed.xml", Enabled: true}
	feedData := &domain.FeedData{
		FeedURL:     feed.FeedURL,
		SiteURL:     "https://example.com",
		Description: "fresh description",
		FeedType:    domain.FeedTypeRSS20,
		ETag:        `"v2"`,
		Articles: []domain.ArticleData{
			{Title: "Kept", Link: "https://example.com/kept"},
			{Title: "Deleted by user", Link: "https://example.com/deleted"},
		},
	}

	s.updates.EXPECT().LatestSuccess(s.ctx, int64(10)).Return(nil, domain.ErrNotFound)
	s.locator.EXPECT().
		Locate(s.ctx, feed.FeedURL, fetch.ConditionalHeaders{}).
		Return(feedData, nil)
	s.users.EXPECT().GetByID(s.ctx, s.user.ID).Return(s.user, nil)
	s.deleted.EXPECT().Links(s.ctx, int64(10)).Return([]string{"https://example.com/deleted"}, nil)
	s.feeds.EXPECT().TagIDs(s.ctx, int64(10)).Return(nil, nil)

	s.articles.EXPECT().
		GetByLinks(s.ctx, s.user.ID, []string{"https://example.com/kept"}).
		Return(map[string]*domain.Article{}, nil)
	s.txManager.EXPECT().
		WithTransaction(s.ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
	s.articles.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, article *domain.Article) error {
			s.Equal("Kept", article.Title)
			article.ID = 100
			return nil
		})
	s.publisher.EXPECT().Publish(s.ctx, gomock.Any(), true).Return(nil)
	s.feeds.EXPECT().LinkArticles(s.ctx, int64(10), []int64{100}).Return(nil)
	s.feeds.EXPECT().
		Update(s.ctx, feed).
		DoAndReturn(func(_ context.Context, updated *domain.Feed) error {
			s.Equal("fresh description", updated.Description)
			s.Equal(domain.FeedTypeRSS20, updated.FeedType)
			return nil
		})
	s.updates.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, update *domain.FeedUpdate) error {
			s.Equal(domain.FeedUpdateSuccess, update.Status)
			s.Equal(`"v2"`, update.FeedETag)
			return nil
		})

	outcome := s.service.UpdateFeed(s.ctx, feed)

	s.Equal(domain.FeedUpdateSuccess, outcome)
}

func (s *UpdateServiceTestSuite) TestUpdateFeedCleansUpRetainedArticles() {
	feed := &domain.Feed{
		ID:                   10,
		UserID:               s.user.ID,
		FeedURL:              "https://example.com/feed.xml",
		Enabled:              true,
		ArticleRetentionDays: 30,
	}
	feedData := &domain.FeedData{FeedURL: feed.FeedURL}

	s.updates.EXPECT().LatestSuccess(s.ctx, int64(10)).Return(nil, domain.ErrNotFound)
	s.locator.EXPECT().
		Locate(s.ctx, feed.FeedURL, fetch.ConditionalHeaders{}).
		Return(feedData, nil)
	s.users.EXPECT().GetByID(s.ctx, s.user.ID).Return(s.user, nil)
	s.deleted.EXPECT().Links(s.ctx, int64(10)).Return(nil, nil)
	s.feeds.EXPECT().TagIDs(s.ctx, int64(10)).Return(nil, nil)
	s.feeds.EXPECT().LinkArticles(s.ctx, int64(10), []int64{}).Return(nil)
	s.feeds.EXPECT().Update(s.ctx, feed).Return(nil)
	s.updates.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)
	s.articles.EXPECT().CleanupFeedArticles(s.ctx, int64(10), 30).Return(int64(4), nil)

	outcome := s.service.UpdateFeed(s.ctx, feed)

	s.Equal(domain.FeedUpdateSuccess, outcome)
}

func (s *UpdateServiceTestSuite) TestUpdateDueFeedsCountsOutcomesPerFeed() {
	due := []domain.Feed{
		{ID: 1, UserID: s.user.ID, FeedURL: "https://one.example.com/feed", Enabled: true},
		{ID: 2, UserID: s.user.ID, FeedURL: "https://two.example.com/feed", Enabled: true},
	}

	s.feeds.EXPECT().DueForRefresh(s.ctx, gomock.Any()).Return(due, nil)

	s.updates.EXPECT().LatestSuccess(gomock.Any(), int64(1)).Return(nil, domain.ErrNotFound)
	s.locator.EXPECT().
		Locate(gomock.Any(), "https://one.example.com/feed", fetch.ConditionalHeaders{}).
		Return(nil, domain.ErrNotModified)

	s.updates.EXPECT().LatestSuccess(gomock.Any(), int64(2)).Return(nil, domain.ErrNotFound)
	s.locator.EXPECT().
		Locate(gomock.Any(), "https://two.example.com/feed", fetch.ConditionalHeaders{}).
		Return(nil, errors.New("status 503"))
	s.updates.EXPECT().MustDisableFeed(gomock.Any(), int64(2), gomock.Any()).Return(false, nil)

	// The two feeds are refreshed concurrently, so outcome records can
	// arrive in either order.
	s.updates.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, update *domain.FeedUpdate) error {
			switch update.FeedID {
			case 1:
				s.Equal(domain.FeedUpdateNotModified, update.Status)
			case 2:
				s.Equal(domain.FeedUpdateFailure, update.Status)
			default:
				s.Failf("unexpected feed update", "feed_id=%d", update.FeedID)
			}
			return nil
		}).
		Times(2)

	s.updates.EXPECT().Cleanup(s.ctx, gomock.Any()).Return(int64(0), nil)

	stats, err := s.service.UpdateDueFeeds(s.ctx)

	s.Require().NoError(err)
	s.Equal(2, stats.Due)
	s.Equal(0, stats.Updated)
	s.Equal(1, stats.NotModified)
	s.Equal(1, stats.Failed)
	s.Equal(0, stats.Disabled)
}

func (s *UpdateServiceTestSuite) TestUpdateDueFeedsNothingDue() {
	s.feeds.EXPECT().DueForRefresh(s.ctx, gomock.Any()).Return(nil, nil)
	s.updates.EXPECT().Cleanup(s.ctx, gomock.Any()).Return(int64(0), nil)

	stats, err := s.service.UpdateDueFeeds(s.ctx)

	s.Require().NoError(err)
	s.Equal(0, stats.Due)
}
