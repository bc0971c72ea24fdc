// Command translate translates a range of chapters of one novel with the
// configured backend, in chapter order, updating the novel's context memory
// after every chapter.
//
// Flags:
//
//	-novel          novel id (required)
//	-from           first chapter_no (default: first chapter)
//	-to             last chapter_no (default: last chapter)
//	-stop-on-error  stop at the first failing chapter
//
// Exit codes: 0 = success, 1 = error or failed chapters, 2 = usage.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/asonkiya/novel-chrome-extension/internal/adapter/postgres"
	"github.com/asonkiya/novel-chrome-extension/internal/app"
	"github.com/asonkiya/novel-chrome-extension/internal/config"
	"github.com/asonkiya/novel-chrome-extension/internal/service/translation"
)

func main() {
	novelID := flag.Int64("novel", 0, "novel id")
	from := flag.Int("from", 0, "first chapter_no (0 = first chapter)")
	to := flag.Int("to", 0, "last chapter_no (0 = last chapter)")
	stopOnError := flag.Bool("stop-on-error", false, "stop at the first failing chapter")
	configPath := flag.String("config", "", "YAML config file (default: $CONFIG_PATH or ./config.yaml)")
	flag.Parse()

	if *novelID <= 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	translator, err := app.NewTranslator(cfg.Translation, logger)
	if err != nil {
		logger.Error("create translator", slog.String("error", err.Error()))
		os.Exit(1)
	}

	svc := app.NewServices(cfg, pool, translator, nil, logger)

	res, err := svc.Translation.TranslateRange(ctx, translation.TranslateRangeInput{
		NovelID:     *novelID,
		FromNo:      *from,
		ToNo:        *to,
		StopOnError: *stopOnError,
	})
	if res != nil {
		for _, it := range res.Items {
			if it.Err != nil {
				fmt.Printf("chapter %d: failed: %v\n", it.ChapterNo, it.Err)
				continue
			}
			fmt.Printf("chapter %d: translated (slice %d locks, %d entities)\n",
				it.ChapterNo, it.Result.SliceLocks, it.Result.SliceEntities)
		}
		fmt.Printf("translated %d, failed %d, skipped %d\n", res.Translated, res.Failed, res.Skipped)
	}
	if err != nil {
		logger.Error("translate range", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if res.Failed > 0 {
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}
