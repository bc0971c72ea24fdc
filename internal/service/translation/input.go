package translation

import "github.com/asonkiya/novel-chrome-extension/internal/domain"

// TranslateChapterInput selects the chapter to translate. NovelID is
// optional; when set the chapter must belong to that novel.
type TranslateChapterInput struct {
	NovelID   int64
	ChapterID int64
}

// Validate checks all fields and collects all errors.
func (i TranslateChapterInput) Validate() error {
	var errs []domain.FieldError
	if i.ChapterID <= 0 {
		errs = append(errs, domain.FieldError{Field: "chapter_id", Message: "required"})
	}
	if i.NovelID < 0 {
		errs = append(errs, domain.FieldError{Field: "novel_id", Message: "must be positive"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TranslateRangeInput selects chapters fromNo..toNo of a novel. A zero
// bound is open.
type TranslateRangeInput struct {
	NovelID     int64
	FromNo      int
	ToNo        int
	StopOnError bool
}

// Validate checks all fields and collects all errors.
func (i TranslateRangeInput) Validate() error {
	var errs []domain.FieldError
	if i.NovelID <= 0 {
		errs = append(errs, domain.FieldError{Field: "novel_id", Message: "required"})
	}
	if i.FromNo < 0 {
		errs = append(errs, domain.FieldError{Field: "from", Message: "must be non-negative"})
	}
	if i.ToNo < 0 {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must be non-negative"})
	}
	if i.FromNo > 0 && i.ToNo > 0 && i.FromNo > i.ToNo {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not be less than from"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
