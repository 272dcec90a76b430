package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"feedreader/internal/domain"
	"feedreader/internal/fetch"
	"feedreader/internal/query"
)

type ArticleStore interface {
	GetByID(ctx context.Context, userID, articleID int64) (*domain.Article, error)
	GetByLinks(ctx context.Context, userID int64, links []string) (map[string]*domain.Article, error)
	Create(ctx context.Context, article *domain.Article) error
	Update(ctx context.Context, article *domain.Article) error
	Delete(ctx context.Context, userID, articleID int64) error
	ForReadingList(ctx context.Context, userID int64, node query.Node, direction domain.OrderDirection, page domain.Page) ([]*domain.Article, error)
	Count(ctx context.Context, userID int64, node query.Node) (int64, error)
	CleanupFeedArticles(ctx context.Context, feedID int64, retentionDays int) (int64, error)
}

type TagStore interface {
	GetOrCreateFromList(ctx context.Context, userID int64, titlesOrSlugs []string) ([]domain.Tag, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.Tag, error)
}

type ArticleTagStore interface {
	Associate(ctx context.Context, articleIDs, tagIDs []int64, reason domain.TaggingReason, readdDeleted bool) error
	DissociateNotInList(ctx context.Context, articleID int64, keepTagIDs []int64) error
	Dissociate(ctx context.Context, articleIDs, tagIDs []int64) error
	ListLiveForArticle(ctx context.Context, articleID int64) ([]domain.Tag, error)
}

type FeedStore interface {
	Create(ctx context.Context, feed *domain.Feed) error
	GetByID(ctx context.Context, id int64) (*domain.Feed, error)
	GetByURL(ctx context.Context, userID int64, feedURL string) (*domain.Feed, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.Feed, error)
	Update(ctx context.Context, feed *domain.Feed) error
	Delete(ctx context.Context, id int64) error
	DueForRefresh(ctx context.Context, now time.Time) ([]domain.Feed, error)
	LinkArticles(ctx context.Context, feedID int64, articleIDs []int64) error
	SetTags(ctx context.Context, feedID int64, tagIDs []int64) error
	TagIDs(ctx context.Context, feedID int64) ([]int64, error)
	FeedsForArticle(ctx context.Context, articleID int64) ([]domain.Feed, error)
}

type FeedUpdateStore interface {
	Create(ctx context.Context, update *domain.FeedUpdate) error
	LatestSuccess(ctx context.Context, feedID int64) (*domain.FeedUpdate, error)
	MustDisableFeed(ctx context.Context, feedID int64, since time.Time) (bool, error)
	Cleanup(ctx context.Context, cutoff time.Time) (int64, error)
}

type FeedDeletedArticleStore interface {
	Record(ctx context.Context, feedID int64, links []string) error
	Links(ctx context.Context, feedID int64) ([]string, error)
}

type ReadingListStore interface {
	Create(ctx context.Context, list *domain.ReadingList) error
	GetByID(ctx context.Context, id int64) (*domain.ReadingList, error)
	GetBySlug(ctx context.Context, userID int64, slug string) (*domain.ReadingList, error)
	GetDefault(ctx context.Context, userID int64) (*domain.ReadingList, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.ReadingList, error)
	Update(ctx context.Context, list *domain.ReadingList) error
	Delete(ctx context.Context, id int64) error
	MakeDefault(ctx context.Context, userID, listID int64) error
	AssociateTags(ctx context.Context, listID int64, tagIDs []int64, filterType domain.TagFilterType) error
	DissociateTags(ctx context.Context, listID int64, tagIDs []int64) error
	Tags(ctx context.Context, listID int64) ([]domain.ReadingListTag, error)
}

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type UserRegistrationStore interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type ArticleFetchErrorStore interface {
	Record(ctx context.Context, articleID int64, message string) error
}

// FeedLocator resolves an arbitrary URL into parsed feed data, scanning
// HTML pages for feed links when the URL is not a feed itself.
type FeedLocator interface {
	Locate(ctx context.Context, rawURL string, cond fetch.ConditionalHeaders) (*domain.FeedData, error)
}

// PageExtractor turns an arbitrary article page into a normalized record.
type PageExtractor interface {
	FromURL(ctx context.Context, rawURL string) (domain.ArticleData, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, article *domain.Article, isNew bool) error
	Close() error
}
