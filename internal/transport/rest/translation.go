package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/asonkiya/novel-chrome-extension/internal/contextmem"
	"github.com/asonkiya/novel-chrome-extension/internal/service/translation"
)

// translationService defines the minimal interface needed by TranslationHandler.
type translationService interface {
	TranslateChapter(ctx context.Context, input translation.TranslateChapterInput) (*translation.Result, error)
	TranslateRange(ctx context.Context, input translation.TranslateRangeInput) (*translation.RangeResult, error)
	PreviewSlice(ctx context.Context, input translation.TranslateChapterInput) (contextmem.Slice, error)
}

// TranslationHandler serves the translation endpoints.
type TranslationHandler struct {
	svc translationService
	log *slog.Logger
}

// NewTranslationHandler creates a TranslationHandler.
func NewTranslationHandler(svc translationService, logger *slog.Logger) *TranslationHandler {
	return &TranslationHandler{svc: svc, log: logger.With("handler", "translation")}
}

type translateRangeRequest struct {
	From        int  `json:"from"`
	To          int  `json:"to"`
	StopOnError bool `json:"stop_on_error"`
}

type translateResponse struct {
	chapterResponse
	Context contextStatsResponse `json:"context"`
}

type contextStatsResponse struct {
	SliceLocks     int `json:"slice_locks"`
	SliceEntities  int `json:"slice_entities"`
	SkippedUpdates int `json:"skipped_updates"`
	PrunedLocks    int `json:"pruned_locks"`
	PrunedEntities int `json:"pruned_entities"`
}

type rangeItemResponse struct {
	ChapterID int64  `json:"chapter_id"`
	ChapterNo int    `json:"chapter_no"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

type translateRangeResponse struct {
	Translated int                 `json:"translated"`
	Failed     int                 `json:"failed"`
	Skipped    int                 `json:"skipped"`
	Stopped    bool                `json:"stopped"`
	Error      string              `json:"error,omitempty"`
	Items      []rangeItemResponse `json:"items"`
}

// TranslateChapter handles POST /chapters/{id}/translate.
func (h *TranslationHandler) TranslateChapter(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	res, err := h.svc.TranslateChapter(r.Context(), translation.TranslateChapterInput{ChapterID: id})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, translateResponse{
		chapterResponse: toChapterResponse(res.Chapter),
		Context: contextStatsResponse{
			SliceLocks:     res.SliceLocks,
			SliceEntities:  res.SliceEntities,
			SkippedUpdates: res.SkippedUpdates,
			PrunedLocks:    res.Pruned.DroppedLocks,
			PrunedEntities: res.Pruned.DroppedEntities,
		},
	})
}

// PreviewSlice handles GET /chapters/{id}/slice. It shows the context that
// would be sent with the chapter without calling the backend.
func (h *TranslationHandler) PreviewSlice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	slice, err := h.svc.PreviewSlice(r.Context(), translation.TranslateChapterInput{ChapterID: id})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, slice)
}

// TranslateRange handles POST /novels/{id}/translate. A run stopped by a
// failing chapter still reports the chapters finished before it.
func (h *TranslationHandler) TranslateRange(w http.ResponseWriter, r *http.Request) {
	novelID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req translateRangeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.TranslateRange(r.Context(), translation.TranslateRangeInput{
		NovelID:     novelID,
		FromNo:      req.From,
		ToNo:        req.To,
		StopOnError: req.StopOnError,
	})
	if err != nil && res == nil {
		handleError(w, r, h.log, err)
		return
	}

	out := translateRangeResponse{
		Translated: res.Translated,
		Failed:     res.Failed,
		Skipped:    res.Skipped,
		Items:      make([]rangeItemResponse, len(res.Items)),
	}
	if err != nil {
		out.Stopped = true
		out.Error = err.Error()
	}
	for i, it := range res.Items {
		item := rangeItemResponse{ChapterID: it.ChapterID, ChapterNo: it.ChapterNo, Status: "translated"}
		if it.Err != nil {
			item.Status = "failed"
			item.Error = it.Err.Error()
		}
		out.Items[i] = item
	}
	writeJSON(w, http.StatusOK, out)
}
