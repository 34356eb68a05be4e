package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"dockyard/internal/config"
	"dockyard/internal/dock"
	"dockyard/internal/logging"
	"dockyard/internal/persist"
	"dockyard/internal/trace"
	"dockyard/internal/ui"
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

	log, err := logging.New(logging.Resolve(cfg.Log.Development, cfg.Log.Level, cfg.Log.File))
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	tracer, err := trace.New(ctx, trace.Config{
		Endpoint:    cfg.Trace.Endpoint,
		ServiceName: cfg.Trace.ServiceName,
		Insecure:    cfg.Trace.Insecure,
	})
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracer.Shutdown(shutdownCtx); err != nil {
			log.Warn("trace shutdown", zap.Error(err))
		}
	}()

	store, err := persist.NewStore(cfg.Layout.Path,
		persist.WithLogger(log),
		persist.WithTracer(tracer.Tracer()),
	)
	if err != nil {
		return fmt.Errorf("layout store: %w", err)
	}
	layout, source := store.LoadOrDefault(ctx)

	app := ui.NewAppModel(layout, store, tracer, log)
	app.Controllers.Panels.FloatingSize = dock.Vec2{
		X: float32(cfg.UI.FloatingWidth),
		Y: float32(cfg.UI.FloatingHeight),
	}
	if source == persist.SourceDefaultInvalid {
		app.SetStatus("saved layout unreadable, using default (see " + cfg.Log.File + ")")
	} else {
		app.SetStatus("layout: " + source.String())
	}

	log.Info("starting", zap.String("layout", store.Path()), zap.Stringer("source", source))
	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
