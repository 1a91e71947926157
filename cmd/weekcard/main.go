package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/yuna/weekcard/internal/config"
	"github.com/yuna/weekcard/internal/database"
	"github.com/yuna/weekcard/internal/database/repository"
	"github.com/yuna/weekcard/internal/editor"
	"github.com/yuna/weekcard/internal/persist"
	"github.com/yuna/weekcard/internal/render"
	"github.com/yuna/weekcard/internal/tmpl"
	"github.com/yuna/weekcard/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := config.EnsureProfileID(&cfg); err != nil {
		log.Fatalf("profile id: %v", err)
	}

	logger, err := newLogger(cfg.UI.LogPath)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	extras, err := tmpl.LoadFile(cfg.Editor.TemplatesFile)
	if err != nil {
		log.Fatalf("templates file: %v", err)
	}
	catalog, err := tmpl.NewCatalog(extras...)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	templateID := cfg.Editor.Template
	if len(os.Args) > 1 {
		templateID = os.Args[1]
	}
	t, err := catalog.Resolve(templateID)
	if err != nil {
		log.Fatalf("%v (known: %v)", err, catalog.IDs())
	}

	pm := persist.New(
		repository.NewSnapshotRepo(db),
		t.ID,
		cfg.Editor.ProfileID,
		t.Schema,
		time.Duration(cfg.Editor.AutosaveDelayMS)*time.Millisecond,
		logger,
	)

	ed := editor.New(pm, logger)
	if err := ed.Activate(ctx, t, t.DefaultTheme); err != nil {
		log.Fatalf("activate %q: %v", t.ID, err)
	}

	renderers := render.NewRegistry(render.Options{
		SundayFirst: !cfg.UI.WeekStartsMon,
		DateFormat:  cfg.UI.DateFormat,
	})
	p := tea.NewProgram(tui.New(ctx, ed, renderers, !cfg.UI.WeekStartsMon), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}

	// Flush any pending autosave before the process exits.
	ed.Close(ctx)
}

// newLogger writes structured logs to a file so they never fight the TUI
// for the terminal. An empty path disables logging.
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	return zc.Build()
}
