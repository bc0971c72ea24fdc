package chapter

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/asonkiya/novel-chrome-extension/internal/domain"
)

// CreateInput holds the parameters for creating a chapter.
type CreateInput struct {
	NovelID   int64
	ChapterNo int
	Title     *string
	Raw       *string
	Content   *string
	SourceURL *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	if i.NovelID <= 0 {
		errs = append(errs, domain.FieldError{Field: "novel_id", Message: "required"})
	}
	if i.ChapterNo < 1 {
		errs = append(errs, domain.FieldError{Field: "chapter_no", Message: "must be at least 1"})
	}
	errs = validateOptional(errs, "title", i.Title, domain.MaxChapterTitleLength)
	errs = validateOptional(errs, "source_url", i.SourceURL, domain.MaxSourceURLLength)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ImportInput creates a chapter from a web page. HTML, when present, is used
// as is and URL only names its origin; otherwise URL is downloaded.
type ImportInput struct {
	NovelID   int64
	ChapterNo int
	URL       string
	HTML      string
	Title     *string
}

// Validate checks all fields and collects all errors.
func (i ImportInput) Validate() error {
	var errs []domain.FieldError
	if i.NovelID <= 0 {
		errs = append(errs, domain.FieldError{Field: "novel_id", Message: "required"})
	}
	if i.ChapterNo < 1 {
		errs = append(errs, domain.FieldError{Field: "chapter_no", Message: "must be at least 1"})
	}
	errs = validateOptional(errs, "title", i.Title, domain.MaxChapterTitleLength)

	switch {
	case domain.IsBlank(i.HTML) && domain.IsBlank(i.URL):
		errs = append(errs, domain.FieldError{Field: "url", Message: "url or html is required"})
	case i.URL != "":
		if utf8.RuneCountInString(i.URL) > domain.MaxSourceURLLength {
			errs = append(errs, domain.FieldError{Field: "url", Message: fmt.Sprintf("max %d characters", domain.MaxSourceURLLength)})
		} else if !isHTTPURL(i.URL) {
			errs = append(errs, domain.FieldError{Field: "url", Message: "must be an http or https url"})
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds a partial chapter update. Nil fields are left unchanged.
type UpdateInput struct {
	ID        int64
	Title     *string
	Raw       *string
	Content   *string
	SourceURL *string
	Status    *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = validateOptional(errs, "title", i.Title, domain.MaxChapterTitleLength)
	errs = validateOptional(errs, "source_url", i.SourceURL, domain.MaxSourceURLLength)
	if i.Status != nil {
		if domain.IsBlank(*i.Status) {
			errs = append(errs, domain.FieldError{Field: "status", Message: "must not be blank"})
		}
		errs = validateOptional(errs, "status", i.Status, domain.MaxChapterStatusLength)
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds the parameters for listing the chapters of a novel.
type ListInput struct {
	NovelID int64
	Limit   int
	Offset  int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.NovelID <= 0 {
		errs = append(errs, domain.FieldError{Field: "novel_id", Message: "required"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("max %d", MaxLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteInput deletes one chapter. A non-zero NovelID restricts the delete
// to chapters of that novel. Rebuild recomputes all links of the novel
// afterwards.
type DeleteInput struct {
	ID      int64
	NovelID int64
	Rebuild bool
}

// DeleteRangeInput deletes the chapters whose chapter_no lies in
// [Start, End]. Reversed bounds are swapped.
type DeleteRangeInput struct {
	NovelID int64
	Start   int
	End     int
	Rebuild bool
}

func validateOptional(errs []domain.FieldError, field string, v *string, max int) []domain.FieldError {
	if v != nil && utf8.RuneCountInString(*v) > max {
		return append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", max)})
	}
	return errs
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
