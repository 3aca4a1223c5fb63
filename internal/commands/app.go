package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/cleared-dev/ledgertree/internal/config"
	"github.com/cleared-dev/ledgertree/internal/logging"
	"github.com/cleared-dev/ledgertree/internal/metrics"
	"github.com/cleared-dev/ledgertree/internal/source"
	"github.com/cleared-dev/ledgertree/internal/workspace"
)

// app is an opened, refreshed workspace with its ambient dependencies.
type app struct {
	root     string
	cfg      *config.Config
	log      *zap.Logger
	registry *prometheus.Registry
	ws       *workspace.Workspace
}

func openApp(ctx context.Context, repoDir string) (*app, error) {
	root, err := filepath.Abs(repoDir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Open(root)
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	tag, err := cfg.Display.Tag()
	if err != nil {
		return nil, err
	}

	src, err := source.New(cfg.Source, root, log)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	ws := workspace.New(
		source.NewLoader(src, src, log, m),
		src,
		workspace.WithLocale(tag),
		workspace.WithLogger(log),
		workspace.WithMetrics(m),
		workspace.WithChangelog(root),
	)
	if err := ws.Refresh(ctx); err != nil {
		return nil, err
	}

	return &app{root: root, cfg: cfg, log: log, registry: reg, ws: ws}, nil
}

func (a *app) close() {
	_ = a.log.Sync()
}
