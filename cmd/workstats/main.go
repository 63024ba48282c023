package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexanderramin/workstats/internal/analysis"
	"github.com/alexanderramin/workstats/internal/cli"
	"github.com/alexanderramin/workstats/internal/config"
	"github.com/alexanderramin/workstats/internal/db"
	"github.com/alexanderramin/workstats/internal/imaging"
	"github.com/alexanderramin/workstats/internal/llm"
	"github.com/alexanderramin/workstats/internal/notify"
	"github.com/alexanderramin/workstats/internal/repository"
	"github.com/alexanderramin/workstats/internal/service"
	"github.com/alexanderramin/workstats/internal/share"
	"github.com/alexanderramin/workstats/internal/webhook"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	loc := cfg.Location()

	var logOut io.Writer
	if cfg.Log {
		logOut = os.Stderr
	}

	opts := []service.Option{service.WithLocation(loc)}
	if logOut != nil {
		opts = append(opts,
			service.WithObserver(service.NewLogUseCaseObserver(logOut)),
			service.WithLogger(slog.New(slog.NewTextHandler(logOut, nil))),
		)
	}

	// Wire storage
	var store repository.BlobStore
	switch cfg.Storage {
	case config.StorageDiskv:
		if err := os.MkdirAll(cfg.DiskvDir, 0o755); err != nil {
			return fmt.Errorf("creating storage directory: %w", err)
		}
		store = repository.NewDiskvBlobStore(cfg.DiskvDir)
	default:
		if err := os.MkdirAll(filepath.Dir(cfg.DB), 0o755); err != nil {
			return fmt.Errorf("creating database directory: %w", err)
		}
		database, err := db.OpenDB(cfg.DB)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		store = repository.NewSQLiteBlobStore(database)
		opts = append(opts, service.WithTransactor(
			repository.NewSQLiteTransactor(db.NewSQLiteUnitOfWork(database))))
	}

	// Wire webhook sync
	var webhookObserver webhook.Observer = webhook.NoopObserver{}
	if logOut != nil {
		webhookObserver = webhook.NewLogObserver(logOut)
	}
	opts = append(opts, service.WithSender(webhook.NewHTTPSender(cfg.WebhookTimeout, webhookObserver)))

	// Wire the model-backed history summary only when the LLM is enabled
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client := llm.NewOllamaClient(llmCfg, observer)
		opts = append(opts, service.WithSummarizer(analysis.NewModelSummarizer(client, loc)))
	}

	ws := service.NewWorkspace(store, opts...)

	app := cli.NewApp(ws)
	app.Location = loc
	app.Compress = imaging.Compress
	app.Copier = share.NewClipboardCopier()
	app.Sharer = share.FallbackSharer{
		Primary: share.NewDirSharer(cfg.ShareDir, nil),
		Copier:  app.Copier,
	}
	if cfg.DesktopNotify {
		app.Notifier = notify.NewDesktopNotifier("WorkStats")
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
