package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/asonkiya/novel-chrome-extension/internal/domain"
	"github.com/asonkiya/novel-chrome-extension/internal/service/chapter"
)

// chapterService defines the minimal interface needed by ChapterHandler.
type chapterService interface {
	Create(ctx context.Context, input chapter.CreateInput) (*domain.Chapter, error)
	Import(ctx context.Context, input chapter.ImportInput) (*domain.Chapter, error)
	Get(ctx context.Context, id int64) (*domain.Chapter, error)
	GetByNo(ctx context.Context, novelID int64, chapterNo int) (*domain.Chapter, error)
	List(ctx context.Context, input chapter.ListInput) ([]*domain.Chapter, int, error)
	Update(ctx context.Context, input chapter.UpdateInput) (*domain.Chapter, error)
	Delete(ctx context.Context, input chapter.DeleteInput) (*domain.Chapter, error)
	DeleteAll(ctx context.Context, novelID int64) (int, error)
	DeleteRange(ctx context.Context, input chapter.DeleteRangeInput) (count, start, end int, err error)
	RebuildLinks(ctx context.Context, novelID int64) (int, error)
	Format(ctx context.Context, id int64) (*domain.Chapter, error)
}

// ChapterHandler serves chapter endpoints.
type ChapterHandler struct {
	svc chapterService
	log *slog.Logger
}

// NewChapterHandler creates a ChapterHandler.
func NewChapterHandler(svc chapterService, logger *slog.Logger) *ChapterHandler {
	return &ChapterHandler{svc: svc, log: logger.With("handler", "chapter")}
}

type createChapterRequest struct {
	ChapterNo int     `json:"chapter_no"`
	Title     *string `json:"title"`
	Raw       *string `json:"raw"`
	Content   *string `json:"content"`
	SourceURL *string `json:"source_url"`
}

type importChapterRequest struct {
	ChapterNo int     `json:"chapter_no"`
	URL       string  `json:"url"`
	HTML      string  `json:"html"`
	Title     *string `json:"title"`
}

type updateChapterRequest struct {
	Title     *string `json:"title"`
	Raw       *string `json:"raw"`
	Content   *string `json:"content"`
	SourceURL *string `json:"source_url"`
	Status    *string `json:"status"`
}

type chapterResponse struct {
	ID            int64      `json:"id"`
	NovelID       int64      `json:"novel_id"`
	ChapterNo     int        `json:"chapter_no"`
	Title         *string    `json:"title"`
	Raw           *string    `json:"raw"`
	Content       *string    `json:"content"`
	SourceURL     *string    `json:"source_url"`
	Status        string     `json:"status"`
	TranslatedAt  *time.Time `json:"translated_at"`
	PrevChapterID *int64     `json:"prev_chapter_id"`
	NextChapterID *int64     `json:"next_chapter_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type chapterListItem struct {
	ID            int64   `json:"id"`
	ChapterNo     int     `json:"chapter_no"`
	Title         *string `json:"title"`
	Status        string  `json:"status"`
	PrevChapterID *int64  `json:"prev_chapter_id"`
	NextChapterID *int64  `json:"next_chapter_id"`
}

type deletedResponse struct {
	OK      bool `json:"ok"`
	Deleted int  `json:"deleted"`
}

type deletedRangeResponse struct {
	OK      bool          `json:"ok"`
	Deleted int           `json:"deleted"`
	Range   rangeResponse `json:"range"`
}

type rangeResponse struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type rebuildResponse struct {
	OK    bool `json:"ok"`
	Count int  `json:"count"`
}

// Create handles POST /novels/{id}/chapters.
func (h *ChapterHandler) Create(w http.ResponseWriter, r *http.Request) {
	novelID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req createChapterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ch, err := h.svc.Create(r.Context(), chapter.CreateInput{
		NovelID:   novelID,
		ChapterNo: req.ChapterNo,
		Title:     req.Title,
		Raw:       req.Raw,
		Content:   req.Content,
		SourceURL: req.SourceURL,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toChapterResponse(ch))
}

// Import handles POST /novels/{id}/chapters/import. The page is either
// posted as html or fetched from url.
func (h *ChapterHandler) Import(w http.ResponseWriter, r *http.Request) {
	novelID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req importChapterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ch, err := h.svc.Import(r.Context(), chapter.ImportInput{
		NovelID:   novelID,
		ChapterNo: req.ChapterNo,
		URL:       req.URL,
		HTML:      req.HTML,
		Title:     req.Title,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toChapterResponse(ch))
}

// List handles GET /novels/{id}/chapters.
func (h *ChapterHandler) List(w http.ResponseWriter, r *http.Request) {
	novelID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit", 0)
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset", 0)
	if !ok {
		return
	}

	chapters, total, err := h.svc.List(r.Context(), chapter.ListInput{NovelID: novelID, Limit: limit, Offset: offset})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]chapterListItem, len(chapters))
	for i, ch := range chapters {
		out[i] = chapterListItem{
			ID:            ch.ID,
			ChapterNo:     ch.ChapterNo,
			Title:         ch.Title,
			Status:        ch.Status,
			PrevChapterID: ch.PrevChapterID,
			NextChapterID: ch.NextChapterID,
		}
	}
	w.Header().Set("X-Total-Count", strconv.Itoa(total))
	writeJSON(w, http.StatusOK, out)
}

// GetByNo handles GET /novels/{id}/chapters/{no}.
func (h *ChapterHandler) GetByNo(w http.ResponseWriter, r *http.Request) {
	novelID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	no, ok := pathInt(w, r, "no")
	if !ok {
		return
	}
	ch, err := h.svc.GetByNo(r.Context(), novelID, no)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toChapterResponse(ch))
}

// Get handles GET /chapters/{id}.
func (h *ChapterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	ch, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toChapterResponse(ch))
}

// Update handles PATCH /chapters/{id}.
func (h *ChapterHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateChapterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ch, err := h.svc.Update(r.Context(), chapter.UpdateInput{
		ID:        id,
		Title:     req.Title,
		Raw:       req.Raw,
		Content:   req.Content,
		SourceURL: req.SourceURL,
		Status:    req.Status,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toChapterResponse(ch))
}

// Delete handles DELETE /chapters/{id}.
func (h *ChapterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	h.delete(w, r, chapter.DeleteInput{ID: id})
}

// DeleteInNovel handles DELETE /novels/{id}/chapters/{chapterID}.
func (h *ChapterHandler) DeleteInNovel(w http.ResponseWriter, r *http.Request) {
	novelID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "chapterID")
	if !ok {
		return
	}
	h.delete(w, r, chapter.DeleteInput{ID: id, NovelID: novelID})
}

func (h *ChapterHandler) delete(w http.ResponseWriter, r *http.Request, input chapter.DeleteInput) {
	rebuild, ok := queryBool(w, r, "rebuild", false)
	if !ok {
		return
	}
	input.Rebuild = rebuild

	if _, err := h.svc.Delete(r.Context(), input); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// DeleteAll handles DELETE /novels/{id}/chapters.
func (h *ChapterHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	novelID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	n, err := h.svc.DeleteAll(r.Context(), novelID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, deletedResponse{OK: true, Deleted: n})
}

// DeleteRange handles DELETE /novels/{id}/chapters/by-no-range. Links are
// rebuilt unless rebuild=false.
func (h *ChapterHandler) DeleteRange(w http.ResponseWriter, r *http.Request) {
	novelID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	q := r.URL.Query()
	if q.Get("start") == "" || q.Get("end") == "" {
		writeError(w, http.StatusBadRequest, "start and end are required")
		return
	}
	start, ok := queryInt(w, r, "start", 0)
	if !ok {
		return
	}
	end, ok := queryInt(w, r, "end", 0)
	if !ok {
		return
	}
	rebuild, ok := queryBool(w, r, "rebuild", true)
	if !ok {
		return
	}

	n, start, end, err := h.svc.DeleteRange(r.Context(), chapter.DeleteRangeInput{
		NovelID: novelID,
		Start:   start,
		End:     end,
		Rebuild: rebuild,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, deletedRangeResponse{
		OK:      true,
		Deleted: n,
		Range:   rangeResponse{Start: start, End: end},
	})
}

// RebuildLinks handles POST /novels/{id}/chapters/rebuild-links.
func (h *ChapterHandler) RebuildLinks(w http.ResponseWriter, r *http.Request) {
	novelID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	n, err := h.svc.RebuildLinks(r.Context(), novelID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, rebuildResponse{OK: true, Count: n})
}

// Format handles POST /chapters/{id}/format.
func (h *ChapterHandler) Format(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	ch, err := h.svc.Format(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toChapterResponse(ch))
}

func toChapterResponse(ch *domain.Chapter) chapterResponse {
	return chapterResponse{
		ID:            ch.ID,
		NovelID:       ch.NovelID,
		ChapterNo:     ch.ChapterNo,
		Title:         ch.Title,
		Raw:           ch.Raw,
		Content:       ch.Content,
		SourceURL:     ch.SourceURL,
		Status:        ch.Status,
		TranslatedAt:  ch.TranslatedAt,
		PrevChapterID: ch.PrevChapterID,
		NextChapterID: ch.NextChapterID,
		CreatedAt:     ch.CreatedAt,
		UpdatedAt:     ch.UpdatedAt,
	}
}
