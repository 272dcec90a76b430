package domain

import "time"

// ArticleAction is a user-initiated state change on an article.
type ArticleAction string

const (
	ActionMarkRead        ArticleAction = "MARK_READ"
	ActionMarkUnread      ArticleAction = "MARK_UNREAD"
	ActionMarkOpened      ArticleAction = "MARK_OPENED"
	ActionMarkFavorite    ArticleAction = "MARK_FAVORITE"
	ActionUnmarkFavorite  ArticleAction = "UNMARK_FAVORITE"
	ActionMarkForLater    ArticleAction = "MARK_FOR_LATER"
	ActionUnmarkForLater  ArticleAction = "UNMARK_FOR_LATER"
)

// Apply mutates the article according to the action. Unknown actions are
// no-ops.
func (a *Article) Apply(action ArticleAction, now time.Time) {
	switch action {
	case ActionMarkRead:
		a.ReadAt = &now
	case ActionMarkUnread:
		a.ReadAt = nil
	case ActionMarkOpened:
		a.OpenedAt = &now
	case ActionMarkFavorite:
		a.IsFavorite = true
	case ActionUnmarkFavorite:
		a.IsFavorite = false
	case ActionMarkForLater:
		a.IsForLater = true
	case ActionUnmarkForLater:
		a.IsForLater = false
	}
}
