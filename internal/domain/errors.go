package domain

import (
	"errors"
	"fmt"
)

// Conflict sentinels. Stores return these so callers can render
// "already exists" instead of a generic validation failure.
var (
	ErrFeedExists        = errors.New("feed already subscribed")
	ErrTagExists         = errors.New("tag already exists")
	ErrArticleExists     = errors.New("article already exists")
	ErrNotFound          = errors.New("not found")
	ErrNotModified       = errors.New("feed not modified")
	ErrDefaultListDelete = errors.New("default reading list cannot be deleted")
)

// NoFeedURLFoundError is returned when an HTML page contains no feed link.
type NoFeedURLFoundError struct {
	PageURL string
}

func (e *NoFeedURLFoundError) Error() string {
	return fmt.Sprintf("no feed url found on page %s", e.PageURL)
}

// FeedCandidate is one feed discovered on an HTML page.
type FeedCandidate struct {
	URL   string
	Title string
}

// MultipleFeedsFoundError carries the ordered candidate list so the caller
// can offer a disambiguation choice.
type MultipleFeedsFoundError struct {
	PageURL    string
	Candidates []FeedCandidate
}

func (e *MultipleFeedsFoundError) Error() string {
	return fmt.Sprintf("found %d feed urls on page %s", len(e.Candidates), e.PageURL)
}

// FeedFileTooBigError is returned when a feed payload exceeds the size ceiling.
type FeedFileTooBigError struct {
	URL  string
	Size int64
}

func (e *FeedFileTooBigError) Error() string {
	return fmt.Sprintf("feed file at %s is too big (%d bytes)", e.URL, e.Size)
}

// ArticleTooBigError is returned when an article page exceeds the size ceiling.
type ArticleTooBigError struct {
	URL  string
	Size int64
}

func (e *ArticleTooBigError) Error() string {
	return fmt.Sprintf("article at %s is too big (%d bytes)", e.URL, e.Size)
}

// InvalidFeedArticleError is returned when a feed entry cannot be turned into
// a valid article, typically because its link cannot be normalized.
type InvalidFeedArticleError struct {
	FeedURL string
	Link    string
	Reason  string
}

func (e *InvalidFeedArticleError) Error() string {
	return fmt.Sprintf("invalid article %q in feed %s: %s", e.Link, e.FeedURL, e.Reason)
}
