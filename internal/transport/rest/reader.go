package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/asonkiya/novel-chrome-extension/internal/domain"
	"github.com/asonkiya/novel-chrome-extension/internal/service/reader"
)

// readerService defines the minimal interface needed by ReaderHandler.
type readerService interface {
	GetProgress(ctx context.Context, novelID int64) (*domain.ReadingProgress, error)
	SaveProgress(ctx context.Context, input reader.SaveProgressInput) (*domain.ReadingProgress, error)
	AddBookmark(ctx context.Context, input reader.AddBookmarkInput) (*domain.Bookmark, error)
	ListBookmarks(ctx context.Context, chapterID int64) ([]*domain.Bookmark, error)
	DeleteBookmark(ctx context.Context, id int64) error
}

// ReaderHandler serves reading progress and bookmark endpoints.
type ReaderHandler struct {
	svc readerService
	log *slog.Logger
}

// NewReaderHandler creates a ReaderHandler.
func NewReaderHandler(svc readerService, logger *slog.Logger) *ReaderHandler {
	return &ReaderHandler{svc: svc, log: logger.With("handler", "reader")}
}

type saveProgressRequest struct {
	CurrentChapterID *int64  `json:"current_chapter_id"`
	Position         float64 `json:"position"`
}

type progressResponse struct {
	NovelID          int64      `json:"novel_id"`
	CurrentChapterID *int64     `json:"current_chapter_id"`
	Position         float64    `json:"position"`
	UpdatedAt        *time.Time `json:"updated_at"`
}

type addBookmarkRequest struct {
	Location int     `json:"location"`
	Label    *string `json:"label"`
	Note     *string `json:"note"`
}

type bookmarkResponse struct {
	ID        int64     `json:"id"`
	ChapterID int64     `json:"chapter_id"`
	Location  int       `json:"location"`
	Label     *string   `json:"label"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// GetProgress handles GET /novels/{id}/progress.
func (h *ReaderHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	novelID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	p, err := h.svc.GetProgress(r.Context(), novelID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProgressResponse(p))
}

// SaveProgress handles PUT /novels/{id}/progress.
func (h *ReaderHandler) SaveProgress(w http.ResponseWriter, r *http.Request) {
	novelID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req saveProgressRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.SaveProgress(r.Context(), reader.SaveProgressInput{
		NovelID:          novelID,
		CurrentChapterID: req.CurrentChapterID,
		Position:         req.Position,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProgressResponse(p))
}

// AddBookmark handles POST /chapters/{id}/bookmarks.
func (h *ReaderHandler) AddBookmark(w http.ResponseWriter, r *http.Request) {
	chapterID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req addBookmarkRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	b, err := h.svc.AddBookmark(r.Context(), reader.AddBookmarkInput{
		ChapterID: chapterID,
		Location:  req.Location,
		Label:     req.Label,
		Note:      req.Note,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBookmarkResponse(b))
}

// ListBookmarks handles GET /chapters/{id}/bookmarks.
func (h *ReaderHandler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	chapterID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	list, err := h.svc.ListBookmarks(r.Context(), chapterID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	out := make([]bookmarkResponse, len(list))
	for i, b := range list {
		out[i] = toBookmarkResponse(b)
	}
	writeJSON(w, http.StatusOK, out)
}

// DeleteBookmark handles DELETE /bookmarks/{id}.
func (h *ReaderHandler) DeleteBookmark(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteBookmark(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func toProgressResponse(p *domain.ReadingProgress) progressResponse {
	out := progressResponse{
		NovelID:          p.NovelID,
		CurrentChapterID: p.CurrentChapterID,
		Position:         p.Position,
	}
	if !p.UpdatedAt.IsZero() {
		out.UpdatedAt = &p.UpdatedAt
	}
	return out
}

func toBookmarkResponse(b *domain.Bookmark) bookmarkResponse {
	return bookmarkResponse{
		ID:        b.ID,
		ChapterID: b.ChapterID,
		Location:  b.Location,
		Label:     b.Label,
		Note:      b.Note,
		CreatedAt: b.CreatedAt,
	}
}
