package chapter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/asonkiya/novel-chrome-extension/internal/domain"
)

// Import creates a chapter whose raw text is the readable content of a web
// page. The page title is used when no title is given.
func (s *Service) Import(ctx context.Context, input ImportInput) (*domain.Chapter, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	page, err := s.readPage(ctx, input)
	if err != nil {
		return nil, err
	}
	if domain.IsBlank(page.Text) {
		field := "url"
		if input.HTML != "" {
			field = "html"
		}
		return nil, domain.NewValidationError(field, "page has no readable text")
	}

	title := input.Title
	if title == nil && !domain.IsBlank(page.Title) {
		t := truncateRunes(strings.TrimSpace(page.Title), domain.MaxChapterTitleLength)
		title = &t
	}
	var sourceURL *string
	if u := strings.TrimSpace(firstNonEmpty(input.URL, page.URL)); u != "" {
		sourceURL = &u
	}
	raw := page.Text

	return s.Create(ctx, CreateInput{
		NovelID:   input.NovelID,
		ChapterNo: input.ChapterNo,
		Title:     title,
		Raw:       &raw,
		SourceURL: sourceURL,
	})
}

func (s *Service) readPage(ctx context.Context, input ImportInput) (*domain.WebPage, error) {
	if !domain.IsBlank(input.HTML) {
		page, err := s.pages.Extract([]byte(input.HTML), strings.TrimSpace(input.URL))
		if errors.Is(err, domain.ErrPageTooLarge) {
			return nil, domain.NewValidationError("html", "too large")
		}
		if err != nil {
			return nil, domain.NewValidationError("html", "no readable content")
		}
		return page, nil
	}

	page, err := s.pages.Fetch(ctx, strings.TrimSpace(input.URL))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}
	return page, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
