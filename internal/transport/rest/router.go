package rest

import "net/http"

// Handlers groups everything NewRouter mounts. Metrics may be nil.
type Handlers struct {
	Health      *HealthHandler
	Novels      *NovelHandler
	Chapters    *ChapterHandler
	Translation *TranslationHandler
	Reader      *ReaderHandler
	Export      *ExportHandler
	Metrics     http.Handler
}

// NewRouter registers every API route on a new ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	mux.HandleFunc("POST /novels", h.Novels.Create)
	mux.HandleFunc("GET /novels", h.Novels.List)
	mux.HandleFunc("GET /novels/{id}", h.Novels.Get)
	mux.HandleFunc("PATCH /novels/{id}", h.Novels.Update)
	mux.HandleFunc("DELETE /novels/{id}", h.Novels.Delete)
	mux.HandleFunc("GET /novels/{id}/context", h.Novels.GetContext)
	mux.HandleFunc("PUT /novels/{id}/context", h.Novels.ReplaceContext)

	mux.HandleFunc("POST /novels/{id}/chapters", h.Chapters.Create)
	mux.HandleFunc("POST /novels/{id}/chapters/import", h.Chapters.Import)
	mux.HandleFunc("GET /novels/{id}/chapters", h.Chapters.List)
	mux.HandleFunc("GET /novels/{id}/chapters/{no}", h.Chapters.GetByNo)
	mux.HandleFunc("DELETE /novels/{id}/chapters", h.Chapters.DeleteAll)
	mux.HandleFunc("DELETE /novels/{id}/chapters/by-no-range", h.Chapters.DeleteRange)
	mux.HandleFunc("DELETE /novels/{id}/chapters/{chapterID}", h.Chapters.DeleteInNovel)
	mux.HandleFunc("POST /novels/{id}/chapters/rebuild-links", h.Chapters.RebuildLinks)
	mux.HandleFunc("GET /chapters/{id}", h.Chapters.Get)
	mux.HandleFunc("PATCH /chapters/{id}", h.Chapters.Update)
	mux.HandleFunc("DELETE /chapters/{id}", h.Chapters.Delete)
	mux.HandleFunc("POST /chapters/{id}/format", h.Chapters.Format)

	mux.HandleFunc("POST /chapters/{id}/translate", h.Translation.TranslateChapter)
	mux.HandleFunc("GET /chapters/{id}/slice", h.Translation.PreviewSlice)
	mux.HandleFunc("POST /novels/{id}/translate", h.Translation.TranslateRange)

	mux.HandleFunc("GET /novels/{id}/progress", h.Reader.GetProgress)
	mux.HandleFunc("PUT /novels/{id}/progress", h.Reader.SaveProgress)
	mux.HandleFunc("POST /chapters/{id}/bookmarks", h.Reader.AddBookmark)
	mux.HandleFunc("GET /chapters/{id}/bookmarks", h.Reader.ListBookmarks)
	mux.HandleFunc("DELETE /bookmarks/{id}", h.Reader.DeleteBookmark)

	mux.HandleFunc("GET /novels/{id}/export.json", h.Export.JSON)
	mux.HandleFunc("GET /novels/{id}/export.md", h.Export.Markdown)
	mux.HandleFunc("GET /novels/{id}/export.txt", h.Export.Text)

	return mux
}
