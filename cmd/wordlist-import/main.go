// Command wordlist-import parses an Oxford word-list text file and loads the
// resulting entries, subentries, and parse diagnostics into PostgreSQL.
// It is intended to be run offline, not as part of a server.
//
// Flags:
//
//	--dry-run           parse the word list without writing to DB
//	--wordlist-config   path to pipeline YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/oxford-wordlist/internal/adapter/postgres"
	"github.com/heartmarshall/oxford-wordlist/internal/adapter/postgres/wordentry"
	"github.com/heartmarshall/oxford-wordlist/internal/app"
	"github.com/heartmarshall/oxford-wordlist/internal/app/wordlist"
	"github.com/heartmarshall/oxford-wordlist/internal/config"
)

// Compile-time interface assertion.
var _ wordlist.Repo = (*wordentry.Repo)(nil)

func main() {
	dryRunFlag := flag.Bool("dry-run", false, "parse the word list without writing to DB")
	wordlistConfigFlag := flag.String("wordlist-config", "", "path to pipeline YAML config file")
	flag.Parse()

	// Load app config (for DB connection).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	// Load pipeline config.
	wlCfg, err := wordlist.LoadConfig(*wordlistConfigFlag)
	if err != nil {
		logger.Error("load wordlist config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		wlCfg.DryRun = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := wordentry.New(pool)

	pipeline := wordlist.NewPipeline(logger, repo, *wlCfg)
	if err := pipeline.Run(ctx); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	result := pipeline.Result()
	logger.Info("import finished",
		slog.Int("lines", result.Lines),
		slog.Int("entries", result.Entries),
		slog.Int("subentries", result.Subentries),
		slog.Int("diagnostics", result.Diagnostics),
		slog.Int("inserted", result.Inserted),
		slog.Duration("duration", result.Duration),
	)
}
