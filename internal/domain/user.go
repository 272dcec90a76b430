package domain

import "time"

// DefaultWordsPerMinute is used for reading time estimation when the user
// has no explicit preference.
const DefaultWordsPerMinute = 200

// User owns feeds, articles, tags and reading lists. All uniqueness
// constraints in the model are scoped to a user.
type User struct {
	ID             int64     `db:"id"`
	Email          string    `db:"email"`
	WordsPerMinute int       `db:"words_per_minute"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// ReadingSpeed returns the words-per-minute rate to use for this user.
func (u User) ReadingSpeed() int {
	if u.WordsPerMinute <= 0 {
		return DefaultWordsPerMinute
	}
	return u.WordsPerMinute
}
