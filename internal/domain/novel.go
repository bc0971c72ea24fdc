package domain

import (
	"time"

	"github.com/asonkiya/novel-chrome-extension/internal/contextmem"
)

// Default languages of a new novel.
const (
	DefaultSourceLang = "ko"
	DefaultTargetLang = "en"
)

// Field limits shared by validation and the schema.
const (
	MaxNovelNameLength = 255
	MinLangLength      = 2
	MaxLangLength      = 20
)

// Novel is a translated work and the owner of its context memory.
type Novel struct {
	ID         int64
	Name       string
	SourceLang string
	TargetLang string
	Context    contextmem.Document
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
