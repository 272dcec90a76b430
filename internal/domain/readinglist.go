package domain

import "time"

// ReadStatus filters articles on whether they were read.
type ReadStatus string

const (
	ReadStatusAll        ReadStatus = "ALL"
	ReadStatusOnlyRead   ReadStatus = "ONLY_READ"
	ReadStatusOnlyUnread ReadStatus = "ONLY_UNREAD"
)

// FavoriteStatus filters articles on the favorite flag.
type FavoriteStatus string

const (
	FavoriteStatusAll             FavoriteStatus = "ALL"
	FavoriteStatusOnlyFavorite    FavoriteStatus = "ONLY_FAVORITE"
	FavoriteStatusOnlyNonFavorite FavoriteStatus = "ONLY_NON_FAVORITE"
)

// ForLaterStatus filters articles on the for-later flag.
type ForLaterStatus string

const (
	ForLaterStatusAll          ForLaterStatus = "ALL"
	ForLaterStatusOnlyForLater ForLaterStatus = "ONLY_FOR_LATER"
	ForLaterStatusOnlyNot      ForLaterStatus = "ONLY_NOT_FOR_LATER"
)

// MaxAgeUnit is the unit of the max-age window. UNSET disables the clause.
type MaxAgeUnit string

const (
	MaxAgeUnset  MaxAgeUnit = "UNSET"
	MaxAgeHours  MaxAgeUnit = "HOURS"
	MaxAgeDays   MaxAgeUnit = "DAYS"
	MaxAgeWeeks  MaxAgeUnit = "WEEKS"
	MaxAgeMonths MaxAgeUnit = "MONTHS"
)

// ReadingTimeOperator compares the article reading time to a threshold.
type ReadingTimeOperator string

const (
	ReadingTimeUnset    ReadingTimeOperator = "UNSET"
	ReadingTimeMoreThan ReadingTimeOperator = "MORE_THAN"
	ReadingTimeLessThan ReadingTimeOperator = "LESS_THAN"
)

// TagOperator decides whether an article must carry all or any of a tag set.
type TagOperator string

const (
	TagOperatorAll TagOperator = "ALL"
	TagOperatorAny TagOperator = "ANY"
)

// TagFilterType splits a reading list's tags into include and exclude sets.
type TagFilterType string

const (
	TagFilterInclude TagFilterType = "INCLUDE"
	TagFilterExclude TagFilterType = "EXCLUDE"
)

// OrderDirection is the presentation order of a reading list.
type OrderDirection string

const (
	OrderAsc  OrderDirection = "ASC"
	OrderDesc OrderDirection = "DESC"
)

// ReadingList is a saved, named filter over a user's articles. Slug is
// unique per user; exactly one list per user is the default.
type ReadingList struct {
	ID                    int64               `db:"id"`
	UserID                int64               `db:"user_id"`
	Title                 string              `db:"title"`
	Slug                  string              `db:"slug"`
	IsDefault             bool                `db:"is_default"`
	EnableReadingOnScroll bool                `db:"enable_reading_on_scroll"`
	AutoRefreshInterval   int                 `db:"auto_refresh_interval"`
	Order                 int                 `db:"list_order"`
	ReadStatus            ReadStatus          `db:"read_status"`
	FavoriteStatus        FavoriteStatus      `db:"favorite_status"`
	ForLaterStatus        ForLaterStatus      `db:"for_later_status"`
	MaxAgeValue           int                 `db:"articles_max_age_value"`
	MaxAgeUnit            MaxAgeUnit          `db:"articles_max_age_unit"`
	ReadingTime           int                 `db:"articles_reading_time"`
	ReadingTimeOperator   ReadingTimeOperator `db:"articles_reading_time_operator"`
	IncludeTagOperator    TagOperator         `db:"include_tag_operator"`
	ExcludeTagOperator    TagOperator         `db:"exclude_tag_operator"`
	OrderDirection        OrderDirection      `db:"order_direction"`
	CreatedAt             time.Time           `db:"created_at"`
	UpdatedAt             time.Time           `db:"updated_at"`
}

// ReadingListTag attaches a tag to a reading list as an include or exclude
// criterion. (reading_list, tag) is unique.
type ReadingListTag struct {
	ReadingListID int64         `db:"reading_list_id"`
	TagID         int64         `db:"tag_id"`
	FilterType    TagFilterType `db:"filter_type"`
}

// Page is a lazy pagination window over an ordered article sequence.
type Page struct {
	Limit  int
	Offset int
}
