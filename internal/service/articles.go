package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"feedreader/internal/domain"
	"feedreader/internal/sanitize"
)

// ArticleService is the upsert engine: it resolves batches of normalized
// article records against stored articles by (user, link), merges or
// creates, and maintains tag associations.
type ArticleService struct {
	articles    ArticleStore
	articleTags ArticleTagStore
	tags        TagStore
	feeds       FeedStore
	deleted     FeedDeletedArticleStore
	fetchErrors ArticleFetchErrorStore
	extractor   PageExtractor
	txManager   TransactionManager
	publisher   Publisher
	logger      *slog.Logger
}

func NewArticleService(
	articles ArticleStore,
	articleTags ArticleTagStore,
	tags TagStore,
	feeds FeedStore,
	deleted FeedDeletedArticleStore,
	fetchErrors ArticleFetchErrorStore,
	extractor PageExtractor,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *ArticleService {
	return &ArticleService{
		articles:    articles,
		articleTags: articleTags,
		tags:        tags,
		feeds:       feeds,
		deleted:     deleted,
		fetchErrors: fetchErrors,
		extractor:   extractor,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
	}
}

// SaveArticles persists a batch of records for the user. Records are
// deduplicated by link within the batch, first occurrence wins. Each link
// either creates a new article or merges into the stored one under the
// recency-wins policy; touched articles are associated with tagIDs.
//
// Calling it twice with the same batch leaves the same persisted state.
func (s *ArticleService) SaveArticles(
	ctx context.Context,
	user *domain.User,
	records []domain.ArticleData,
	tagIDs []int64,
	sourceType domain.ArticleSourceType,
	force bool,
) ([]domain.SaveArticleResult, error) {
	if len(records) == 0 {
		return nil, nil
	}

	records = lo.UniqBy(records, func(r domain.ArticleData) string { return r.Link })
	links := lo.Map(records, func(r domain.ArticleData, _ int) string { return r.Link })

	existing, err := s.articles.GetByLinks(ctx, user.ID, links)
	if err != nil {
		return nil, fmt.Errorf("load existing articles: %w", err)
	}

	results := make([]domain.SaveArticleResult, 0, len(records))
	for _, record := range records {
		if stored, ok := existing[record.Link]; ok {
			results = append(results, s.mergeRecord(stored, record, user, sourceType, force))
		} else {
			results = append(results, domain.SaveArticleResult{
				Article:    s.buildArticle(record, user, sourceType),
				WasCreated: true,
			})
		}
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		touched := make([]int64, 0, len(results))
		for i := range results {
			result := &results[i]
			switch {
			case result.WasCreated:
				if err := s.articles.Create(txCtx, result.Article); err != nil {
					return fmt.Errorf("create article %q: %w", result.Article.Link, err)
				}
			case result.WasUpdated:
				if err := s.articles.Update(txCtx, result.Article); err != nil {
					return fmt.Errorf("update article %q: %w", result.Article.Link, err)
				}
			}
			touched = append(touched, result.Article.ID)
		}

		if len(tagIDs) == 0 {
			return nil
		}
		reason := domain.TaggingReasonFromFeed
		readdDeleted := false
		if sourceType == domain.ArticleSourceManual {
			reason = domain.TaggingReasonAddedManually
			readdDeleted = true
		}
		return s.articleTags.Associate(txCtx, touched, tagIDs, reason, readdDeleted)
	})
	if err != nil {
		return nil, err
	}

	s.publishResults(ctx, results)

	return results, nil
}

// AddManualArticle fetches the page at url and saves it as a MANUAL
// article. When the fetch or extraction fails and the link is not already
// stored, a placeholder article is created instead and the failure is
// recorded, so the user keeps a stub to retry from. A link that already
// exists fails hard on fetch errors since nothing new would be created.
func (s *ArticleService) AddManualArticle(ctx context.Context, user *domain.User, rawURL string, tagTitles []string) (*domain.Article, error) {
	tags, err := s.tags.GetOrCreateFromList(ctx, user.ID, tagTitles)
	if err != nil {
		return nil, fmt.Errorf("resolve tags: %w", err)
	}
	tagIDs := lo.Map(tags, func(t domain.Tag, _ int) int64 { return t.ID })

	record, fetchErr := s.extractor.FromURL(ctx, rawURL)
	if fetchErr != nil {
		existing, err := s.articles.GetByLinks(ctx, user.ID, []string{rawURL})
		if err != nil {
			return nil, fmt.Errorf("load existing article: %w", err)
		}
		if len(existing) > 0 {
			return nil, fmt.Errorf("fetch article %q: %w", rawURL, fetchErr)
		}

		s.logger.Warn("article fetch failed, saving placeholder",
			"url", rawURL, "error", fetchErr)
		record = domain.ArticleData{Title: rawURL, Link: rawURL}
	}

	results, err := s.SaveArticles(ctx, user, []domain.ArticleData{record}, tagIDs, domain.ArticleSourceManual, false)
	if err != nil {
		return nil, err
	}
	article := results[0].Article

	if fetchErr != nil {
		if err := s.fetchErrors.Record(ctx, article.ID, fetchErr.Error()); err != nil {
			s.logger.Error("failed to record article fetch error", "article_id", article.ID, "error", err)
		}
	}

	return article, nil
}

// DeleteArticle removes the article. When the article came through feeds,
// a suppression memo is recorded per linked feed first so the next refresh
// does not resurrect it.
func (s *ArticleService) DeleteArticle(ctx context.Context, userID, articleID int64) error {
	article, err := s.articles.GetByID(ctx, userID, articleID)
	if err != nil {
		return err
	}

	feeds, err := s.feeds.FeedsForArticle(ctx, articleID)
	if err != nil {
		return err
	}

	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		for _, feed := range feeds {
			if err := s.deleted.Record(txCtx, feed.ID, []string{article.Link}); err != nil {
				return fmt.Errorf("record deletion memo for feed %d: %w", feed.ID, err)
			}
		}
		return s.articles.Delete(txCtx, userID, articleID)
	})
}

// ApplyAction runs a user action (read/unread/opened/favorite/for-later)
// on one article.
func (s *ArticleService) ApplyAction(ctx context.Context, userID, articleID int64, action domain.ArticleAction) (*domain.Article, error) {
	article, err := s.articles.GetByID(ctx, userID, articleID)
	if err != nil {
		return nil, err
	}

	article.Apply(action, time.Now().UTC())
	if err := s.articles.Update(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// SetArticleTags replaces the article's tag set: missing tags are added
// manually (resurrecting soft-deleted links) and current tags outside the
// new set are soft deleted.
func (s *ArticleService) SetArticleTags(ctx context.Context, userID, articleID int64, tagTitles []string) error {
	if _, err := s.articles.GetByID(ctx, userID, articleID); err != nil {
		return err
	}

	tags, err := s.tags.GetOrCreateFromList(ctx, userID, tagTitles)
	if err != nil {
		return fmt.Errorf("resolve tags: %w", err)
	}
	tagIDs := lo.Map(tags, func(t domain.Tag, _ int) int64 { return t.ID })

	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if len(tagIDs) > 0 {
			err := s.articleTags.Associate(txCtx, []int64{articleID}, tagIDs, domain.TaggingReasonAddedManually, true)
			if err != nil {
				return err
			}
		}
		return s.articleTags.DissociateNotInList(txCtx, articleID, tagIDs)
	})
}

// CleanupFeedArticles drops feed-sourced articles past the feed's
// retention window, skipping anything the user read, saved or flagged.
func (s *ArticleService) CleanupFeedArticles(ctx context.Context, feedID int64, retentionDays int) (int64, error) {
	return s.articles.CleanupFeedArticles(ctx, feedID, retentionDays)
}

func (s *ArticleService) mergeRecord(
	stored *domain.Article,
	record domain.ArticleData,
	user *domain.User,
	sourceType domain.ArticleSourceType,
	force bool,
) domain.SaveArticleResult {
	contentBefore := stored.Content
	changed := stored.MergeData(record, force)

	// A manual re-add always upgrades the source and resets the read
	// state, whatever the recency check said.
	if sourceType == domain.ArticleSourceManual {
		if stored.InitialSourceType != domain.ArticleSourceManual || stored.ReadAt != nil {
			stored.InitialSourceType = domain.ArticleSourceManual
			stored.ReadAt = nil
			changed = true
		}
	}

	if changed && stored.Content != contentBefore {
		stored.ReadingTime = readingTime(stored.Content, user)
	}

	return domain.SaveArticleResult{Article: stored, WasUpdated: changed}
}

func (s *ArticleService) buildArticle(record domain.ArticleData, user *domain.User, sourceType domain.ArticleSourceType) *domain.Article {
	return &domain.Article{
		UserID:             user.ID,
		ExternalArticleID:  record.ExternalArticleID,
		Title:              record.Title,
		Slug:               domain.Slugify(record.Title),
		Summary:            record.Summary,
		Content:            record.Content,
		ReadingTime:        readingTime(record.Content, user),
		Authors:            record.Authors,
		Contributors:       record.Contributors,
		ExternalTags:       record.Tags,
		Annotations:        record.Annotations,
		Link:               record.Link,
		PreviewPictureURL:  record.PreviewPictureURL,
		PreviewPictureAlt:  record.PreviewPictureAlt,
		Language:           record.Language,
		ReadAt:             record.ReadAt,
		IsFavorite:         record.IsFavorite,
		InitialSourceType:  sourceType,
		InitialSourceTitle: record.SourceTitle,
		PublishedAt:        record.PublishedAt,
		UpdatedAt:          record.UpdatedAt,
	}
}

func (s *ArticleService) publishResults(ctx context.Context, results []domain.SaveArticleResult) {
	if s.publisher == nil {
		return
	}
	for _, result := range results {
		if !result.WasCreated && !result.WasUpdated {
			continue
		}
		if err := s.publisher.Publish(ctx, result.Article, result.WasCreated); err != nil {
			s.logger.Error("failed to publish article event",
				"article_id", result.Article.ID, "error", err)
		}
	}
}

func readingTime(content string, user *domain.User) int {
	return sanitize.WordCount(content) / user.ReadingSpeed()
}
