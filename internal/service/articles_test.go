package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"feedreader/internal/domain"
	"feedreader/internal/service/mocks"
	"feedreader/testdata/utils"
)

type ArticleServiceTestSuite struct {
	suite.Suite

	ctx  context.Context
	ctrl *gomock.Controller

	articles    *mocks.MockArticleStore
	articleTags *mocks.MockArticleTagStore
	tags        *mocks.MockTagStore
	feeds       *mocks.MockFeedStore
	deleted     *mocks.MockFeedDeletedArticleStore
	fetchErrors *mocks.MockArticleFetchErrorStore
	extractor   *mocks.MockPageExtractor
	txManager   *mocks.MockTransactionManager
	publisher   *mocks.MockPublisher

	service *ArticleService
	user    *domain.User
}

func TestArticleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ArticleServiceTestSuite))
}

func (s *ArticleServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())

	s.articles = mocks.NewMockArticleStore(s.ctrl)
	s.articleTags = mocks.NewMockArticleTagStore(s.ctrl)
	s.tags = mocks.NewMockTagStore(s.ctrl)
	s.feeds = mocks.NewMockFeedStore(s.ctrl)
	s.deleted = mocks.NewMockFeedDeletedArticleStore(s.ctrl)
	s.fetchErrors = mocks.NewMockArticleFetchErrorStore(s.ctrl)
	s.extractor = mocks.NewMockPageExtractor(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.service = NewArticleService(
		s.articles, s.articleTags, s.tags, s.feeds, s.deleted, s.fetchErrors,
		s.extractor, s.txManager, s.publisher, logger,
	)
	s.user = &domain.User{ID: 1, Email: "reader@example.com", WordsPerMinute: 100}
}

func (s *ArticleServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ArticleServiceTestSuite) expectTransaction() {
	s.txManager.EXPECT().
		WithTransaction(s.ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func (s *ArticleServiceTestSuite) TestSaveArticlesEmptyBatch() {
	results, err := s.service.SaveArticles(s.ctx, s.user, nil, nil, domain.ArticleSourceFeed, false)

	s.Require().NoError(err)
	s.Nil(results)
}

func (s *ArticleServiceTestSuite) TestSaveArticlesCreatesNewArticles() {
	records := []domain.ArticleData{
		{Title: "First article", Link: "https://example.com/1", Content: strings.Repeat("word ", 300)},
		{Title: "Second article", Link: "https://example.com/2"},
	}

	s.articles.EXPECT().
		GetByLinks(s.ctx, s.user.ID, []string{"https://example.com/1", "https://example.com/2"}).
		Return(map[string]*domain.Article{}, nil)
	s.expectTransaction()

	var nextID int64
	s.articles.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, article *domain.Article) error {
			nextID++
			article.ID = nextID
			return nil
		}).
		Times(2)
	s.publisher.EXPECT().Publish(s.ctx, gomock.Any(), true).Return(nil).Times(2)

	results, err := s.service.SaveArticles(s.ctx, s.user, records, nil, domain.ArticleSourceFeed, false)

	s.Require().NoError(err)
	s.Require().Len(results, 2)
	s.True(results[0].WasCreated)
	s.Equal("first-article", results[0].Article.Slug)
	s.Equal(domain.ArticleSourceFeed, results[0].Article.InitialSourceType)
	s.Equal(3, results[0].Article.ReadingTime)
	s.Equal(0, results[1].Article.ReadingTime)
}

func (s *ArticleServiceTestSuite) TestSaveArticlesDeduplicatesBatchFirstWins() {
	records := []domain.ArticleData{
		{Title: "Kept title", Link: "https://example.com/dup"},
		{Title: "Dropped title", Link: "https://example.com/dup"},
	}

	s.articles.EXPECT().
		GetByLinks(s.ctx, s.user.ID, []string{"https://example.com/dup"}).
		Return(map[string]*domain.Article{}, nil)
	s.expectTransaction()
	s.articles.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, article *domain.Article) error {
			s.Equal("Kept title", article.Title)
			article.ID = 1
			return nil
		})
	s.publisher.EXPECT().Publish(s.ctx, gomock.Any(), true).Return(nil)

	results, err := s.service.SaveArticles(s.ctx, s.user, records, nil, domain.ArticleSourceFeed, false)

	s.Require().NoError(err)
	s.Len(results, 1)
}

func (s *ArticleServiceTestSuite) TestSaveArticlesMergesNewerRecord() {
	stored := &domain.Article{
		ID:          42,
		UserID:      s.user.ID,
		Title:       "Stored title",
		Slug:        "stored-title",
		Link:        "https://example.com/42",
		Content:     "old content",
		ReadingTime: 0,
		UpdatedAt:   utils.Ptr(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
	record := domain.ArticleData{
		Title:     "Upstream retitled",
		Link:      "https://example.com/42",
		Content:   strings.Repeat("word ", 200),
		UpdatedAt: utils.Ptr(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)),
	}

	s.articles.EXPECT().
		GetByLinks(s.ctx, s.user.ID, []string{record.Link}).
		Return(map[string]*domain.Article{record.Link: stored}, nil)
	s.expectTransaction()
	s.articles.EXPECT().Update(s.ctx, stored).Return(nil)
	s.publisher.EXPECT().Publish(s.ctx, stored, false).Return(nil)

	results, err := s.service.SaveArticles(s.ctx, s.user, []domain.ArticleData{record}, nil, domain.ArticleSourceFeed, false)

	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.True(results[0].WasUpdated)
	s.Equal(record.Content, stored.Content)
	s.Equal("Stored title", stored.Title)
	s.Equal("stored-title", stored.Slug)
	s.Equal(2, stored.ReadingTime)
	s.Equal(record.UpdatedAt, stored.UpdatedAt)
}

func (s *ArticleServiceTestSuite) TestSaveArticlesSkipsStaleRecord() {
	stored := &domain.Article{
		ID:        42,
		UserID:    s.user.ID,
		Link:      "https://example.com/42",
		Content:   "current content",
		UpdatedAt: utils.Ptr(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
	}
	record := domain.ArticleData{
		Link:      "https://example.com/42",
		Content:   "stale content",
		UpdatedAt: utils.Ptr(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
	}

	s.articles.EXPECT().
		GetByLinks(s.ctx, s.user.ID, []string{record.Link}).
		Return(map[string]*domain.Article{record.Link: stored}, nil)
	s.expectTransaction()

	results, err := s.service.SaveArticles(s.ctx, s.user, []domain.ArticleData{record}, nil, domain.ArticleSourceFeed, false)

	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.False(results[0].WasCreated)
	s.False(results[0].WasUpdated)
	s.Equal("current content", stored.Content)
}

func (s *ArticleServiceTestSuite) TestSaveArticlesManualResetsReadState() {
	stored := &domain.Article{
		ID:                42,
		UserID:            s.user.ID,
		Link:              "https://example.com/42",
		Content:           "current content",
		InitialSourceType: domain.ArticleSourceFeed,
		ReadAt:            utils.Ptr(time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)),
		UpdatedAt:         utils.Ptr(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
	}
	record := domain.ArticleData{
		Link:      "https://example.com/42",
		Content:   "current content",
		UpdatedAt: utils.Ptr(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
	}

	s.articles.EXPECT().
		GetByLinks(s.ctx, s.user.ID, []string{record.Link}).
		Return(map[string]*domain.Article{record.Link: stored}, nil)
	s.expectTransaction()
	s.articles.EXPECT().Update(s.ctx, stored).Return(nil)
	s.articleTags.EXPECT().
		Associate(s.ctx, []int64{42}, []int64{5}, domain.TaggingReasonAddedManually, true).
		Return(nil)
	s.publisher.EXPECT().Publish(s.ctx, stored, false).Return(nil)

	results, err := s.service.SaveArticles(s.ctx, s.user, []domain.ArticleData{record}, []int64{5}, domain.ArticleSourceManual, false)

	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.True(results[0].WasUpdated)
	s.Equal(domain.ArticleSourceManual, stored.InitialSourceType)
	s.Nil(stored.ReadAt)
}

func (s *ArticleServiceTestSuite) TestSaveArticlesAssociatesFeedTags() {
	record := domain.ArticleData{Title: "Tagged", Link: "https://example.com/tagged"}

	s.articles.EXPECT().
		GetByLinks(s.ctx, s.user.ID, []string{record.Link}).
		Return(map[string]*domain.Article{}, nil)
	s.expectTransaction()
	s.articles.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, article *domain.Article) error {
			article.ID = 7
			return nil
		})
	s.articleTags.EXPECT().
		Associate(s.ctx, []int64{7}, []int64{3}, domain.TaggingReasonFromFeed, false).
		Return(nil)
	s.publisher.EXPECT().Publish(s.ctx, gomock.Any(), true).Return(nil)

	_, err := s.service.SaveArticles(s.ctx, s.user, []domain.ArticleData{record}, []int64{3}, domain.ArticleSourceFeed, false)

	s.Require().NoError(err)
}

func (s *ArticleServiceTestSuite) TestAddManualArticleSavesExtractedPage() {
	rawURL := "https://example.com/post"
	record := domain.ArticleData{Title: "Extracted post", Link: rawURL, Content: "body"}

	s.tags.EXPECT().
		GetOrCreateFromList(s.ctx, s.user.ID, []string{"go"}).
		Return([]domain.Tag{{ID: 3, Slug: "go"}}, nil)
	s.extractor.EXPECT().FromURL(s.ctx, rawURL).Return(record, nil)
	s.articles.EXPECT().
		GetByLinks(s.ctx, s.user.ID, []string{rawURL}).
		Return(map[string]*domain.Article{}, nil)
	s.expectTransaction()
	s.articles.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, article *domain.Article) error {
			article.ID = 9
			return nil
		})
	s.articleTags.EXPECT().
		Associate(s.ctx, []int64{9}, []int64{3}, domain.TaggingReasonAddedManually, true).
		Return(nil)
	s.publisher.EXPECT().Publish(s.ctx, gomock.Any(), true).Return(nil)

	article, err := s.service.AddManualArticle(s.ctx, s.user, rawURL, []string{"go"})

	s.Require().NoError(err)
	s.Equal(int64(9), article.ID)
	s.Equal("Extracted post", article.Title)
	s.Equal(domain.ArticleSourceManual, article.InitialSourceType)
}

func (s *ArticleServiceTestSuite) TestAddManualArticlePlaceholderOnFetchFailure() {
	rawURL := "https://example.com/broken"
	fetchErr := errors.New("status 503")

	s.tags.EXPECT().
		GetOrCreateFromList(s.ctx, s.user.ID, gomock.Any()).
		Return(nil, nil)
	s.extractor.EXPECT().FromURL(s.ctx, rawURL).Return(domain.ArticleData{}, fetchErr)
	s.articles.EXPECT().
		GetByLinks(s.ctx, s.user.ID, []string{rawURL}).
		Return(map[string]*domain.Article{}, nil).
		Times(2)
	s.expectTransaction()
	s.articles.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, article *domain.Article) error {
			s.Equal(rawURL, article.Title)
			s.Equal(rawURL, article.Link)
			article.ID = 11
			return nil
		})
	s.publisher.EXPECT().Publish(s.ctx, gomock.Any(), true).Return(nil)
	s.fetchErrors.EXPECT().Record(s.ctx, int64(11), "status 503").Return(nil)

	article, err := s.service.AddManualArticle(s.ctx, s.user, rawURL, nil)

	s.Require().NoError(err)
	s.Equal(rawURL, article.Title)
}

func (s *ArticleServiceTestSuite) TestAddManualArticleExistingLinkFailsHard() {
	rawURL := "https://example.com/known"
	fetchErr := errors.New("status 503")

	s.tags.EXPECT().
		GetOrCreateFromList(s.ctx, s.user.ID, gomock.Any()).
		Return(nil, nil)
	s.extractor.EXPECT().FromURL(s.ctx, rawURL).Return(domain.ArticleData{}, fetchErr)
	s.articles.EXPECT().
		GetByLinks(s.ctx, s.user.ID, []string{rawURL}).
		Return(map[string]*domain.Article{rawURL: {ID: 1, Link: rawURL}}, nil)

	article, err := s.service.AddManualArticle(s.ctx, s.user, rawURL, nil)

	s.Require().ErrorIs(err, fetchErr)
	s.Nil(article)
}

func (s *ArticleServiceTestSuite) TestDeleteArticleRecordsFeedMemos() {
	article := &domain.Article{ID: 42, UserID: s.user.ID, Link: "https://example.com/42"}

	s.articles.EXPECT().GetByID(s.ctx, s.user.ID, int64(42)).Return(article, nil)
	s.feeds.EXPECT().
		FeedsForArticle(s.ctx, int64(42)).
		Return([]domain.Feed{{ID: 5}, {ID: 6}}, nil)
	s.expectTransaction()
	s.deleted.EXPECT().Record(s.ctx, int64(5), []string{article.Link}).Return(nil)
	s.deleted.EXPECT().Record(s.ctx, int64(6), []string{article.Link}).Return(nil)
	s.articles.EXPECT().Delete(s.ctx, s.user.ID, int64(42)).Return(nil)

	s.Require().NoError(s.service.DeleteArticle(s.ctx, s.user.ID, 42))
}

func (s *ArticleServiceTestSuite) TestApplyActionMarkRead() {
	article := &domain.Article{ID: 42, UserID: s.user.ID}

	s.articles.EXPECT().GetByID(s.ctx, s.user.ID, int64(42)).Return(article, nil)
	s.articles.EXPECT().Update(s.ctx, article).Return(nil)

	updated, err := s.service.ApplyAction(s.ctx, s.user.ID, 42, domain.ActionMarkRead)

	s.Require().NoError(err)
	s.NotNil(updated.ReadAt)
	s.True(updated.IsRead())
}

func (s *ArticleServiceTestSuite) TestSetArticleTagsReplacesSet() {
	s.articles.EXPECT().
		GetByID(s.ctx, s.user.ID, int64(42)).
		Return(&domain.Article{ID: 42, UserID: s.user.ID}, nil)
	s.tags.EXPECT().
		GetOrCreateFromList(s.ctx, s.user.ID, []string{"go", "databases"}).
		Return([]domain.Tag{{ID: 1, Slug: "go"}, {ID: 2, Slug: "databases"}}, nil)
	s.expectTransaction()
	s.articleTags.EXPECT().
		Associate(s.ctx, []int64{42}, []int64{1, 2}, domain.TaggingReasonAddedManually, true).
		Return(nil)
	s.articleTags.EXPECT().DissociateNotInList(s.ctx, int64(42), []int64{1, 2}).Return(nil)

	s.Require().NoError(s.service.SetArticleTags(s.ctx, s.user.ID, 42, []string{"go", "databases"}))
}
