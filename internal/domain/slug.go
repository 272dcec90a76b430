package domain

import "github.com/gosimple/slug"

// Slugify builds the canonical slug for tag and article titles. Tags are
// deduplicated on (user, slug), so two titles with the same slug are the
// same tag.
func Slugify(title string) string {
	return slug.Make(title)
}
