package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/rowfix/internal/client/extract"
	"github.com/iudanet/rowfix/internal/models"
	"github.com/iudanet/rowfix/internal/server/handlers"
	"github.com/iudanet/rowfix/internal/server/middleware"
	"github.com/iudanet/rowfix/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "Listen address")
	dbPath := flag.String("db", "rowfix-server.db", "Path to SQLite database")
	seedPath := flag.String("seed", "", "Path to a quarantine CSV to seed on startup")
	seedBaseID := flag.String("seed-base", "demo", "Base id for the seeded dataset")
	seedPending := flag.Bool("seed-pending", false, "Seed with an unmaterialized manifest read model")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	if *seedPath != "" {
		if err := seedFromCSV(ctx, store, *seedPath, *seedBaseID, *seedPending); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed dataset: %v\n", err)
			os.Exit(1)
		}
		logger.Info("dataset seeded", "base_id", *seedBaseID, "file", *seedPath)
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           buildRouter(logger, store),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	logger.Info("server starting", "addr", *addr, "version", Version)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

// buildRouter собирает маршруты и цепочку middleware:
// recovery -> rate limit -> logging (health не логируется)
func buildRouter(logger *slog.Logger, store *sqlite.Storage) http.Handler {
	healthHandler := handlers.NewHealthHandler(store, Version, logger)
	quarantine := handlers.NewQuarantineHandler(logger, store)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)

	mux.HandleFunc("GET /api/v1/bases/{baseId}/manifest", quarantine.GetManifest)
	mux.HandleFunc("POST /api/v1/bases/{baseId}/backfill", quarantine.Backfill)
	mux.HandleFunc("GET /api/v1/bases/{baseId}/versions", quarantine.ListVersions)
	mux.HandleFunc("POST /api/v1/bases/{baseId}/sessions", quarantine.StartSession)
	mux.HandleFunc("POST /api/v1/bases/{baseId}/rows/query", quarantine.QueryRows)
	mux.HandleFunc("POST /api/v1/bases/{baseId}/edits", quarantine.SaveEdits)
	mux.HandleFunc("POST /api/v1/bases/{baseId}/reprocess", quarantine.SubmitReprocess)
	mux.HandleFunc("GET /api/v1/bases/{baseId}/extract", quarantine.DownloadExtract)
	mux.HandleFunc("POST /api/v1/bases/{baseId}/legacy-reprocess", quarantine.LegacyReprocess)
	mux.HandleFunc("POST /api/v1/uploads/reprocess", quarantine.CompatibilityUpload)

	var handler http.Handler = mux
	handler = middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(handler)
	handler = middleware.RateLimitMiddleware(600, time.Minute, logger)(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)
	return handler
}

// seedFromCSV загружает карантинный CSV как новый датасет.
// Колонка row_id (если есть) становится идентификатором строки
// и не попадает в манифест
func seedFromCSV(ctx context.Context, store *sqlite.Storage, path, baseID string, pending bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	parsed, err := extract.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	columns := make([]string, 0, len(parsed.Columns))
	for _, col := range parsed.Columns {
		if col == models.RowIDColumn {
			continue
		}
		columns = append(columns, col)
	}

	rows := make([]models.Row, 0, len(parsed.Rows))
	for _, row := range parsed.Rows {
		values := make(map[string]string, len(columns))
		for _, col := range columns {
			values[col] = row.Values[col]
		}
		rows = append(rows, models.Row{ID: row.ID, Values: values})
	}

	manifest := &models.Manifest{
		BaseID:          baseID,
		RootID:          baseID,
		UploadID:        uuid.NewString(),
		ETag:            uuid.NewString(),
		Columns:         columns,
		EditableColumns: columns,
		TotalRows:       len(rows),
		ShardCount:      1,
	}
	return store.SeedBase(ctx, manifest, rows, pending)
}

func printVersion() {
	fmt.Printf("Rowfix Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
