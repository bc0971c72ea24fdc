package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asonkiya/novel-chrome-extension/internal/adapter/postgres"
	chapterrepo "github.com/asonkiya/novel-chrome-extension/internal/adapter/postgres/chapter"
	novelrepo "github.com/asonkiya/novel-chrome-extension/internal/adapter/postgres/novel"
	readerrepo "github.com/asonkiya/novel-chrome-extension/internal/adapter/postgres/reader"
	"github.com/asonkiya/novel-chrome-extension/internal/adapter/provider/anthropic"
	"github.com/asonkiya/novel-chrome-extension/internal/adapter/provider/echo"
	"github.com/asonkiya/novel-chrome-extension/internal/adapter/provider/openai"
	"github.com/asonkiya/novel-chrome-extension/internal/adapter/provider/webpage"
	"github.com/asonkiya/novel-chrome-extension/internal/config"
	"github.com/asonkiya/novel-chrome-extension/internal/metrics"
	"github.com/asonkiya/novel-chrome-extension/internal/provider"
	"github.com/asonkiya/novel-chrome-extension/internal/service/chapter"
	"github.com/asonkiya/novel-chrome-extension/internal/service/export"
	"github.com/asonkiya/novel-chrome-extension/internal/service/novel"
	"github.com/asonkiya/novel-chrome-extension/internal/service/reader"
	"github.com/asonkiya/novel-chrome-extension/internal/service/translation"
	"github.com/asonkiya/novel-chrome-extension/internal/transport/middleware"
	"github.com/asonkiya/novel-chrome-extension/internal/transport/rest"
)

// Services holds every domain service built on one database.
type Services struct {
	Novels      *novel.Service
	Chapters    *chapter.Service
	Translation *translation.Service
	Reader      *reader.Service
	Export      *export.Service
	Translator  provider.Translator
}

// NewTranslator builds the translation backend selected in cfg.
func NewTranslator(cfg config.TranslationConfig, logger *slog.Logger) (provider.Translator, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return openai.NewTranslator(openai.Config{
			APIKey:      cfg.OpenAIAPIKey,
			Model:       cfg.OpenAIModel,
			BaseURL:     cfg.OpenAIBaseURL,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
			Timeout:     cfg.Timeout,
		}, logger), nil
	case config.ProviderAnthropic:
		return anthropic.NewTranslator(anthropic.Config{
			APIKey:      cfg.AnthropicAPIKey,
			Model:       cfg.AnthropicModel,
			BaseURL:     cfg.AnthropicURL,
			Temperature: float64(cfg.Temperature),
			MaxTokens:   int64(cfg.MaxTokens),
			Timeout:     cfg.Timeout,
		}, logger), nil
	case config.ProviderEcho:
		return echo.NewTranslator(), nil
	default:
		return nil, fmt.Errorf("unknown translation provider %q", cfg.Provider)
	}
}

// NewServices wires repositories and services. rec may be nil.
func NewServices(cfg *config.Config, db postgres.DB, translator provider.Translator, rec *metrics.Metrics, logger *slog.Logger) *Services {
	txm := postgres.NewTxManager(db)

	novels := novelrepo.New(db)
	chapters := chapterrepo.New(db)
	progress := readerrepo.New(db)

	pages := webpage.NewFetcher(webpage.Config{
		Timeout:      cfg.Import.FetchTimeout,
		MaxBodyBytes: cfg.Import.MaxBodyBytes,
		UserAgent:    cfg.Import.UserAgent,
	}, logger)

	opts := translation.Options{
		Slice:       cfg.Context.SliceOptions(),
		Prune:       cfg.Context.PruneOptions(),
		Constraints: cfg.Translation.Constraints,
		Timeout:     cfg.Translation.Timeout,
	}
	var tr *translation.Service
	if rec != nil {
		tr = translation.NewService(logger, novels, chapters, txm, translator, rec, opts)
	} else {
		tr = translation.NewService(logger, novels, chapters, txm, translator, nil, opts)
	}

	return &Services{
		Novels:      novel.NewService(logger, novels, txm),
		Chapters:    chapter.NewService(logger, chapters, novels, txm, pages),
		Translation: tr,
		Reader:      reader.NewService(logger, progress, novels, chapters),
		Export:      export.NewService(logger, novels, chapters),
		Translator:  translator,
	}
}

// NewHandler builds the HTTP API with its middleware chain.
func NewHandler(cfg *config.Config, svc *Services, pool *pgxpool.Pool, rec *metrics.Metrics, logger *slog.Logger) http.Handler {
	handlers := rest.Handlers{
		Health:      rest.NewHealthHandler(postgres.NewProbe(pool), BuildVersion(), svc.Translator.Name()),
		Novels:      rest.NewNovelHandler(svc.Novels, logger),
		Chapters:    rest.NewChapterHandler(svc.Chapters, logger),
		Translation: rest.NewTranslationHandler(svc.Translation, logger),
		Reader:      rest.NewReaderHandler(svc.Reader, logger),
		Export:      rest.NewExportHandler(svc.Export, logger),
	}
	var withMetrics middleware.Middleware
	if rec != nil {
		handlers.Metrics = rec.Handler()
		withMetrics = middleware.Metrics(rec)
	}

	// RequestID must be outermost: Logger and Metrics read r.Pattern from
	// the request the mux sees.
	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		withMetrics,
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.BodyLimit(cfg.Server.MaxBodyBytes),
	)(rest.NewRouter(handlers))
}
