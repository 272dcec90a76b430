// Package query models reading-list filters as a predicate tree over
// articles. The tree compiles from a reading list's settings, can be
// evaluated in memory and is translated to SQL by the article store.
package query

import (
	"time"

	"feedreader/internal/domain"
)

// Node is one predicate over an article. A nil Node matches everything.
type Node interface {
	isNode()
}

// And matches when every child matches. An empty And matches everything.
type And struct {
	Children []Node
}

// Or matches when at least one child matches.
type Or struct {
	Children []Node
}

// Not inverts its child.
type Not struct {
	Child Node
}

// ReadIs matches on the article's read state.
type ReadIs struct {
	Read bool
}

// FavoriteIs matches on the favorite flag.
type FavoriteIs struct {
	Favorite bool
}

// ForLaterIs matches on the for-later flag.
type ForLaterIs struct {
	ForLater bool
}

// PublishedAfter matches articles published strictly after Cutoff.
// Articles without a publication date never match.
type PublishedAfter struct {
	Cutoff time.Time
}

// ReadingTimeAtLeast matches articles taking at least Minutes to read.
type ReadingTimeAtLeast struct {
	Minutes int
}

// ReadingTimeAtMost matches articles taking at most Minutes to read.
type ReadingTimeAtMost struct {
	Minutes int
}

// TagsContainAll matches articles carrying every listed tag.
type TagsContainAll struct {
	TagIDs []int64
}

// TagsContainAny matches articles carrying at least one listed tag.
type TagsContainAny struct {
	TagIDs []int64
}

func (And) isNode()                {}
func (Or) isNode()                 {}
func (Not) isNode()                {}
func (ReadIs) isNode()             {}
func (FavoriteIs) isNode()         {}
func (ForLaterIs) isNode()         {}
func (PublishedAfter) isNode()     {}
func (ReadingTimeAtLeast) isNode() {}
func (ReadingTimeAtMost) isNode()  {}
func (TagsContainAll) isNode()     {}
func (TagsContainAny) isNode()     {}

// ForReadingList compiles the list's settings into a predicate tree.
// Unset criteria contribute nothing.
func ForReadingList(list *domain.ReadingList, listTags []domain.ReadingListTag, now time.Time) Node {
	var children []Node

	switch list.ReadStatus {
	case domain.ReadStatusOnlyRead:
		children = append(children, ReadIs{Read: true})
	case domain.ReadStatusOnlyUnread:
		children = append(children, ReadIs{Read: false})
	}

	switch list.FavoriteStatus {
	case domain.FavoriteStatusOnlyFavorite:
		children = append(children, FavoriteIs{Favorite: true})
	case domain.FavoriteStatusOnlyNonFavorite:
		children = append(children, FavoriteIs{Favorite: false})
	}

	switch list.ForLaterStatus {
	case domain.ForLaterStatusOnlyForLater:
		children = append(children, ForLaterIs{ForLater: true})
	case domain.ForLaterStatusOnlyNot:
		children = append(children, ForLaterIs{ForLater: false})
	}

	if list.MaxAgeUnit != domain.MaxAgeUnset && list.MaxAgeValue > 0 {
		children = append(children, PublishedAfter{
			Cutoff: maxAgeCutoff(now, list.MaxAgeUnit, list.MaxAgeValue),
		})
	}

	switch list.ReadingTimeOperator {
	case domain.ReadingTimeMoreThan:
		children = append(children, ReadingTimeAtLeast{Minutes: list.ReadingTime})
	case domain.ReadingTimeLessThan:
		children = append(children, ReadingTimeAtMost{Minutes: list.ReadingTime})
	}

	if node := tagsNode(list, listTags); node != nil {
		children = append(children, node)
	}

	return And{Children: children}
}

// tagsNode splits the list's tags into include and exclude sets and
// applies the list's operators: ALL maps to containment, ANY to overlap.
// The exclude set is negated as a whole.
func tagsNode(list *domain.ReadingList, listTags []domain.ReadingListTag) Node {
	var include, exclude []int64
	for _, lt := range listTags {
		switch lt.FilterType {
		case domain.TagFilterInclude:
			include = append(include, lt.TagID)
		case domain.TagFilterExclude:
			exclude = append(exclude, lt.TagID)
		}
	}

	var children []Node
	if len(include) > 0 {
		children = append(children, tagSetNode(list.IncludeTagOperator, include))
	}
	if len(exclude) > 0 {
		children = append(children, Not{Child: tagSetNode(list.ExcludeTagOperator, exclude)})
	}

	switch len(children) {
	case 0:
		return nil
	case 1:
		return children[0]
	default:
		return And{Children: children}
	}
}

func tagSetNode(op domain.TagOperator, tagIDs []int64) Node {
	if op == domain.TagOperatorAny {
		return TagsContainAny{TagIDs: tagIDs}
	}
	return TagsContainAll{TagIDs: tagIDs}
}

func maxAgeCutoff(now time.Time, unit domain.MaxAgeUnit, value int) time.Time {
	switch unit {
	case domain.MaxAgeHours:
		return now.Add(-time.Duration(value) * time.Hour)
	case domain.MaxAgeDays:
		return now.AddDate(0, 0, -value)
	case domain.MaxAgeWeeks:
		return now.AddDate(0, 0, -7*value)
	case domain.MaxAgeMonths:
		return now.AddDate(0, -value, 0)
	default:
		return now
	}
}
