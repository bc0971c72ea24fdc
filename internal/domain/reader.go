package domain

import "time"

// MaxBookmarkLabelLength limits bookmark labels.
const MaxBookmarkLabelLength = 255

// ReadingProgress is the reader's position in a novel. There is at most one
// per novel.
type ReadingProgress struct {
	NovelID          int64
	CurrentChapterID *int64
	Position         float64
	UpdatedAt        time.Time
}

// Bookmark marks a location inside a chapter.
type Bookmark struct {
	ID        int64
	ChapterID int64
	Location  int
	Label     *string
	Note      *string
	CreatedAt time.Time
}
