package novel

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/asonkiya/novel-chrome-extension/internal/domain"
)

// CreateInput holds the parameters for creating a novel. Blank languages
// fall back to the defaults.
type CreateInput struct {
	Name       string
	SourceLang string
	TargetLang string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	errs = validateName(errs, i.Name)
	if !domain.IsBlank(i.SourceLang) {
		errs = validateLang(errs, "source_lang", i.SourceLang)
	}
	if !domain.IsBlank(i.TargetLang) {
		errs = validateLang(errs, "target_lang", i.TargetLang)
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds a partial novel update. Nil fields are left unchanged.
type UpdateInput struct {
	ID         int64
	Name       *string
	SourceLang *string
	TargetLang *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	if i.SourceLang != nil {
		errs = validateLang(errs, "source_lang", *i.SourceLang)
	}
	if i.TargetLang != nil {
		errs = validateLang(errs, "target_lang", *i.TargetLang)
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds the parameters for listing novels.
type ListInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
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

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > domain.MaxNovelNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", domain.MaxNovelNameLength)})
	}
	return errs
}

func validateLang(errs []domain.FieldError, field, code string) []domain.FieldError {
	n := utf8.RuneCountInString(domain.NormalizeLang(code))
	if n < domain.MinLangLength || n > domain.MaxLangLength {
		return append(errs, domain.FieldError{
			Field:   field,
			Message: fmt.Sprintf("must be %d to %d characters", domain.MinLangLength, domain.MaxLangLength),
		})
	}
	return errs
}

func langOr(code, def string) string {
	if domain.IsBlank(code) {
		return def
	}
	return domain.NormalizeLang(code)
}
