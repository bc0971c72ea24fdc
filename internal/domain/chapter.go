package domain

import (
	"strconv"
	"time"
)

// Chapter statuses written by the backend. Clients may store other values.
const (
	ChapterStatusRawOnly    = "raw_only"
	ChapterStatusTranslated = "translated"
)

// Field limits shared by validation and the schema.
const (
	MaxChapterTitleLength  = 500
	MaxSourceURLLength     = 2048
	MaxChapterStatusLength = 30
)

// Chapter is one installment of a novel. Chapters of a novel form a doubly
// linked list ordered by ChapterNo.
type Chapter struct {
	ID            int64
	NovelID       int64
	ChapterNo     int
	Title         *string
	Raw           *string
	Content       *string
	SourceURL     *string
	Status        string
	TranslatedAt  *time.Time
	PrevChapterID *int64
	NextChapterID *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RawText returns the source text or an empty string.
func (c *Chapter) RawText() string {
	if c.Raw == nil {
		return ""
	}
	return *c.Raw
}

// HasContent reports whether the chapter has non-blank translated content.
func (c *Chapter) HasContent() bool {
	return c.Content != nil && !IsBlank(*c.Content)
}

// DisplayTitle returns the title, or "Chapter N" when it is missing.
func (c *Chapter) DisplayTitle() string {
	if c.Title != nil && !IsBlank(*c.Title) {
		return *c.Title
	}
	return "Chapter " + strconv.Itoa(c.ChapterNo)
}

// Text returns the translated content when present, otherwise the raw text.
func (c *Chapter) Text() string {
	if c.Content != nil && *c.Content != "" {
		return *c.Content
	}
	return c.RawText()
}

// StatusFor derives the status of a chapter from its content.
func StatusFor(content *string) string {
	if content != nil && !IsBlank(*content) {
		return ChapterStatusTranslated
	}
	return ChapterStatusRawOnly
}

// ChapterLink is the minimal view of a chapter used to maintain links.
type ChapterLink struct {
	ID        int64
	ChapterNo int
}

// ChapterLinks is the prev/next pair to store for one chapter.
type ChapterLinks struct {
	ID     int64
	PrevID *int64
	NextID *int64
}

// WebPage is the readable text extracted from a chapter page.
type WebPage struct {
	Title string
	Text  string
	URL   string
}
