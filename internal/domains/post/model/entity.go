package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxPostTextLength caps the body of a post.
const MaxPostTextLength = 500

// Post is a text post, optionally with an image and hashtags. AuthorID
// references a profile, not a user.
type Post struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Text      string    `json:"text"`
	ImagePath *string   `json:"image_path"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Hashtag is a reusable tag shared across posts. Titles are unique.
type Hashtag struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

// ExtractHashtags pulls hashtag titles out of free text. A token counts
// as a hashtag when it starts with '#'; surrounding '#' runs are trimmed
// from the stored title. Duplicates are dropped, first occurrence wins.
func ExtractHashtags(text string) []string {
	var titles []string
	seen := make(map[string]struct{})

	for _, token := range strings.Fields(text) {
		if !strings.HasPrefix(token, "#") {
			continue
		}

		title := strings.Trim(token, "#")
		if title == "" {
			continue
		}

		if _, ok := seen[title]; ok {
			continue
		}
		seen[title] = struct{}{}
		titles = append(titles, title)
	}

	return titles
}
