package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/asonkiya/novel-chrome-extension/internal/contextmem"
	"github.com/asonkiya/novel-chrome-extension/internal/domain"
	"github.com/asonkiya/novel-chrome-extension/internal/service/novel"
)

// novelService defines the minimal interface needed by NovelHandler.
type novelService interface {
	Create(ctx context.Context, input novel.CreateInput) (*domain.Novel, error)
	Get(ctx context.Context, id int64) (*domain.Novel, error)
	List(ctx context.Context, input novel.ListInput) ([]*domain.Novel, int, error)
	Update(ctx context.Context, input novel.UpdateInput) (*domain.Novel, error)
	Delete(ctx context.Context, id int64) (*domain.Novel, error)
	GetContext(ctx context.Context, id int64) (contextmem.Document, error)
	ReplaceContext(ctx context.Context, id int64, raw []byte) (contextmem.Document, error)
}

// NovelHandler serves novel and context memory endpoints.
type NovelHandler struct {
	svc novelService
	log *slog.Logger
}

// NewNovelHandler creates a NovelHandler.
func NewNovelHandler(svc novelService, logger *slog.Logger) *NovelHandler {
	return &NovelHandler{svc: svc, log: logger.With("handler", "novel")}
}

type createNovelRequest struct {
	Name       string `json:"name"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type updateNovelRequest struct {
	Name       *string `json:"name"`
	SourceLang *string `json:"source_lang"`
	TargetLang *string `json:"target_lang"`
}

type replaceContextRequest struct {
	ContextJSON json.RawMessage `json:"context_json"`
}

type novelResponse struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	SourceLang  string              `json:"source_lang"`
	TargetLang  string              `json:"target_lang"`
	ContextJSON contextmem.Document `json:"context_json"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type deleteNovelResponse struct {
	OK             bool   `json:"ok"`
	DeletedNovelID int64  `json:"deleted_novel_id"`
	Name           string `json:"name"`
}

// Create handles POST /novels.
func (h *NovelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createNovelRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	n, err := h.svc.Create(r.Context(), novel.CreateInput{
		Name:       req.Name,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toNovelResponse(n))
}

// List handles GET /novels. The total count is sent in X-Total-Count.
func (h *NovelHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit", 0)
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset", 0)
	if !ok {
		return
	}

	novels, total, err := h.svc.List(r.Context(), novel.ListInput{Limit: limit, Offset: offset})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]novelResponse, len(novels))
	for i, n := range novels {
		out[i] = toNovelResponse(n)
	}
	w.Header().Set("X-Total-Count", strconv.Itoa(total))
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /novels/{id}.
func (h *NovelHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	n, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toNovelResponse(n))
}

// Update handles PATCH /novels/{id}.
func (h *NovelHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateNovelRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	n, err := h.svc.Update(r.Context(), novel.UpdateInput{
		ID:         id,
		Name:       req.Name,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toNovelResponse(n))
}

// Delete handles DELETE /novels/{id}. Chapters, progress and bookmarks go
// with the novel.
func (h *NovelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	n, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteNovelResponse{OK: true, DeletedNovelID: n.ID, Name: n.Name})
}

// GetContext handles GET /novels/{id}/context.
func (h *NovelHandler) GetContext(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	doc, err := h.svc.GetContext(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// ReplaceContext handles PUT /novels/{id}/context. The body carries the
// new document under context_json; a missing document resets the memory.
func (h *NovelHandler) ReplaceContext(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req replaceContextRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	doc, err := h.svc.ReplaceContext(r.Context(), id, req.ContextJSON)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func toNovelResponse(n *domain.Novel) novelResponse {
	return novelResponse{
		ID:          n.ID,
		Name:        n.Name,
		SourceLang:  n.SourceLang,
		TargetLang:  n.TargetLang,
		ContextJSON: contextmem.Normalize(n.Context),
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}
