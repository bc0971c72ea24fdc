package rest

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/asonkiya/novel-chrome-extension/internal/service/export"
)

// exportService defines the minimal interface needed by ExportHandler.
type exportService interface {
	Load(ctx context.Context, novelID int64) (*export.Book, error)
}

// ExportHandler serves novel downloads.
type ExportHandler struct {
	svc exportService
	log *slog.Logger
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(svc exportService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{svc: svc, log: logger.With("handler", "export")}
}

type exportResponse struct {
	Novel    exportNovel     `json:"novel"`
	Chapters []exportChapter `json:"chapters"`
}

type exportNovel struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	SourceLang string    `json:"source_lang"`
	TargetLang string    `json:"target_lang"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type exportChapter struct {
	ID        int64   `json:"id"`
	ChapterNo int     `json:"chapter_no"`
	Title     *string `json:"title"`
	SourceURL *string `json:"source_url"`
	Status    string  `json:"status"`
	Text      string  `json:"text"`
}

// JSON handles GET /novels/{id}/export.json.
func (h *ExportHandler) JSON(w http.ResponseWriter, r *http.Request) {
	book, ok := h.load(w, r)
	if !ok {
		return
	}

	out := exportResponse{
		Novel: exportNovel{
			ID:         book.Novel.ID,
			Name:       book.Novel.Name,
			SourceLang: book.Novel.SourceLang,
			TargetLang: book.Novel.TargetLang,
			CreatedAt:  book.Novel.CreatedAt,
			UpdatedAt:  book.Novel.UpdatedAt,
		},
		Chapters: make([]exportChapter, len(book.Chapters)),
	}
	for i, ch := range book.Chapters {
		out.Chapters[i] = exportChapter{
			ID:        ch.ID,
			ChapterNo: ch.ChapterNo,
			Title:     ch.Title,
			SourceURL: ch.SourceURL,
			Status:    ch.Status,
			Text:      ch.Text(),
		}
	}
	w.Header().Set("Content-Disposition", attachment(book.Novel.Name, ".json"))
	writeJSON(w, http.StatusOK, out)
}

// Markdown handles GET /novels/{id}/export.md.
func (h *ExportHandler) Markdown(w http.ResponseWriter, r *http.Request) {
	book, ok := h.load(w, r)
	if !ok {
		return
	}
	writeFile(w, "text/markdown; charset=utf-8", attachment(book.Novel.Name, ".md"), book.Markdown())
}

// Text handles GET /novels/{id}/export.txt.
func (h *ExportHandler) Text(w http.ResponseWriter, r *http.Request) {
	book, ok := h.load(w, r)
	if !ok {
		return
	}
	writeFile(w, "text/plain; charset=utf-8", attachment(book.Novel.Name, ".txt"), book.Text())
}

func (h *ExportHandler) load(w http.ResponseWriter, r *http.Request) (*export.Book, bool) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return nil, false
	}
	book, err := h.svc.Load(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return nil, false
	}
	return book, true
}

func writeFile(w http.ResponseWriter, contentType, disposition, body string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", disposition)
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, body) //nolint:errcheck
}

// attachment builds a Content-Disposition header for a download named
// after the novel.
func attachment(name, ext string) string {
	name = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r < 0x20 {
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	if name == "" {
		name = "novel"
	}
	v := mime.FormatMediaType("attachment", map[string]string{"filename": name + ext})
	if v == "" {
		return `attachment; filename="novel` + ext + `"`
	}
	return v
}
