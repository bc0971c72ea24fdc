package reader

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/asonkiya/novel-chrome-extension/internal/domain"
)

// SaveProgressInput sets the reading position of a novel.
type SaveProgressInput struct {
	NovelID          int64
	CurrentChapterID *int64
	Position         float64
}

// Validate checks all fields and collects all errors.
func (i SaveProgressInput) Validate() error {
	var errs []domain.FieldError
	if i.NovelID <= 0 {
		errs = append(errs, domain.FieldError{Field: "novel_id", Message: "required"})
	}
	if i.CurrentChapterID != nil && *i.CurrentChapterID <= 0 {
		errs = append(errs, domain.FieldError{Field: "current_chapter_id", Message: "must be positive"})
	}
	if math.IsNaN(i.Position) || i.Position < 0 || i.Position > 1 {
		errs = append(errs, domain.FieldError{Field: "position", Message: "must be between 0 and 1"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddBookmarkInput holds the parameters for bookmarking a chapter.
type AddBookmarkInput struct {
	ChapterID int64
	Location  int
	Label     *string
	Note      *string
}

// Validate checks all fields and collects all errors.
func (i AddBookmarkInput) Validate() error {
	var errs []domain.FieldError
	if i.ChapterID <= 0 {
		errs = append(errs, domain.FieldError{Field: "chapter_id", Message: "required"})
	}
	if i.Location < 0 {
		errs = append(errs, domain.FieldError{Field: "location", Message: "must be non-negative"})
	}
	if i.Label != nil && utf8.RuneCountInString(*i.Label) > domain.MaxBookmarkLabelLength {
		errs = append(errs, domain.FieldError{Field: "label", Message: fmt.Sprintf("max %d characters", domain.MaxBookmarkLabelLength)})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
