package main

import (
	"context"
	"embed"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"VorkathHelper/config"
	"VorkathHelper/i18n"
	"VorkathHelper/ui"
)

//go:embed assets/*
var content embed.FS

const (
	appID          = "io.github.vorkathhelper"
	appName        = "Vorkath Helper"
	appDescription = "Counts attacks since last special and displays next special attack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "err", err)
	}

	cfg, err := config.Load(content, config.Path())
	if err != nil {
		slog.Error("loading config", "err", err)
		os.Exit(1)
	}

	level, err := cfg.Level()
	if err != nil {
		slog.Error("loading config", "err", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
	slog.Info("starting", "name", appName, "description", appDescription, "log_level", level)

	i18n.Init()

	fyneApp := app.NewWithID(appID)
	if iconBytes, err := content.ReadFile("assets/icon.png"); err == nil {
		fyneApp.SetIcon(fyne.NewStaticResource("icon.png", iconBytes))
	} else {
		slog.Warn("failed to load app icon", "err", err)
	}
	fyneApp.Settings().SetTheme(ui.NewOverlayTheme(cfg.Overlay.TextSize))

	a, err := NewAppManager(cfg, content)
	if err != nil {
		slog.Error("creating app", "err", err)
		os.Exit(1)
	}

	w := ui.CreateOverlayWindow(fyneApp, appName, a.Counter(), cfg.Overlay)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	w.SetOnClosed(cancel)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.runFeed(gctx)
	})

	stopped := make(chan struct{})
	go func() {
		select {
		case <-gctx.Done():
			slog.Info("shutting down")
			fyne.Do(fyneApp.Quit)
		case <-stopped:
		}
	}()

	w.ShowAndRun()
	close(stopped)
	cancel()

	a.Shutdown()
	if err := g.Wait(); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}
