package chapter

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/asonkiya/novel-chrome-extension/internal/domain"
)

var (
	reLineBreak    = regexp.MustCompile(`\r\n?`)
	reInlineSpace  = regexp.MustCompile(`[ \t]+`)
	reBlankLines   = regexp.MustCompile(`\n{3,}`)
	reSentenceStop = regexp.MustCompile(`[.!?][\s\p{Z}]+`)
)

// Format reflows the translated content of a chapter into one sentence per
// paragraph. Returns domain.ErrInvalidState if the chapter is not translated.
func (s *Service) Format(ctx context.Context, id int64) (*domain.Chapter, error) {
	var formatted *domain.Chapter
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		ch, err := s.chapters.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get chapter: %w", err)
		}
		if !ch.HasContent() {
			return fmt.Errorf("chapter %d has no translated content: %w", id, domain.ErrInvalidState)
		}

		formatted, err = s.chapters.UpdateContent(ctx, id, Reflow(*ch.Content))
		if err != nil {
			return fmt.Errorf("update content: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

// Reflow normalizes line breaks and runs of spaces, then places every
// sentence in its own paragraph. The result ends with a newline.
func Reflow(text string) string {
	src := strings.TrimSpace(text)
	src = reLineBreak.ReplaceAllString(src, "\n")
	src = reInlineSpace.ReplaceAllString(src, " ")
	src = strings.TrimSpace(reBlankLines.ReplaceAllString(src, "\n\n"))

	var parts []string
	start := 0
	for _, m := range reSentenceStop.FindAllStringIndex(src, -1) {
		if p := strings.TrimSpace(src[start : m[0]+1]); p != "" {
			parts = append(parts, p)
		}
		start = m[1]
	}
	if last := strings.TrimSpace(src[start:]); last != "" {
		parts = append(parts, last)
	}

	out := reBlankLines.ReplaceAllString(strings.Join(parts, "\n\n"), "\n\n")
	return strings.TrimSpace(out) + "\n"
}
