package query

import "feedreader/internal/domain"

// Evaluate runs the predicate tree against an article in memory, using
// LiveTagIDs for the tag clauses. It mirrors the SQL translation so the
// two can be cross-checked.
func Evaluate(node Node, article *domain.Article) bool {
	switch n := node.(type) {
	case nil:
		return true
	case And:
		for _, child := range n.Children {
			if !Evaluate(child, article) {
				return false
			}
		}
		return true
	case Or:
		for _, child := range n.Children {
			if Evaluate(child, article) {
				return true
			}
		}
		return len(n.Children) == 0
	case Not:
		return !Evaluate(n.Child, article)
	case ReadIs:
		return article.IsRead() == n.Read
	case FavoriteIs:
		return article.IsFavorite == n.Favorite
	case ForLaterIs:
		return article.IsForLater == n.ForLater
	case PublishedAfter:
		return article.PublishedAt != nil && article.PublishedAt.After(n.Cutoff)
	case ReadingTimeAtLeast:
		return article.ReadingTime >= n.Minutes
	case ReadingTimeAtMost:
		return article.ReadingTime <= n.Minutes
	case TagsContainAll:
		for _, id := range n.TagIDs {
			if !containsTag(article.LiveTagIDs, id) {
				return false
			}
		}
		return true
	case TagsContainAny:
		for _, id := range n.TagIDs {
			if containsTag(article.LiveTagIDs, id) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func containsTag(tagIDs []int64, id int64) bool {
	for _, tagID := range tagIDs {
		if tagID == id {
			return true
		}
	}
	return false
}
