// Package main contains the application wiring and the AppManager which
// coordinates the encounter tracker, the event feed, audio and the UI.
//
// Maintenance notes / tips:
//   - Concurrency model: the encounter tracker is owned by a single
//     command-loop goroutine (see `commandLoop`). The feed goroutine only
//     decodes and enqueues; the fyne main loop only renders. Never call
//     tracker methods from anywhere else.
//   - `cmdCh` is a buffered channel. EnqueueCommand drops a command when the
//     channel stays full for a short timeout rather than blocking the feed
//     or the UI.
//   - On shutdown the command loop calls Tracker.Stop before exiting so the
//     indicator is always released.
package main

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"time"

	"fyne.io/fyne/v2"

	"VorkathHelper/alert"
	"VorkathHelper/config"
	"VorkathHelper/control"
	"VorkathHelper/encounter"
	"VorkathHelper/feed"
	"VorkathHelper/i18n"
	"VorkathHelper/sprite"
	"VorkathHelper/ui"
)

// AppManager is the main application struct, holding all state.
type AppManager struct {
	cfg     config.Config
	tracker *encounter.Tracker
	counter *ui.CounterWidget
	icons   *sprite.Manager
	player  *alert.Player

	cmdCh     chan control.Command
	cmdCtx    context.Context
	cmdCancel context.CancelFunc
	loopDone  chan struct{}
}

// NewAppManager creates a new application manager and starts its command loop.
func NewAppManager(cfg config.Config, content embed.FS) (*AppManager, error) {
	files, err := cfg.IconFiles()
	if err != nil {
		return nil, err
	}

	a := &AppManager{
		cfg:      cfg,
		icons:    sprite.NewManager(content, files),
		player:   alert.NewPlayer(cfg.Alert),
		cmdCh:    make(chan control.Command, 256),
		loopDone: make(chan struct{}),
	}
	a.counter = ui.NewCounterWidget(a, cfg.Overlay, a.captions())
	a.tracker = encounter.NewTracker(a.counter, a.icons)
	a.tracker.OnSpecialDue = a.specialDue

	if err := a.player.Init(); err != nil {
		slog.Warn("audio disabled", "err", err)
	}

	a.cmdCtx, a.cmdCancel = context.WithCancel(context.Background())
	go a.commandLoop()

	return a, nil
}

func (a *AppManager) captions() map[fyne.Resource]string {
	captions := make(map[fyne.Resource]string)
	for _, s := range encounter.Specials() {
		icon := a.icons.Icon(s)
		if _, ok := captions[icon]; ok {
			continue
		}
		captions[icon] = fmt.Sprintf(i18n.T("Next special: %s"), i18n.T(s.String()))
	}
	return captions
}

// Counter returns the indicator widget.
func (a *AppManager) Counter() *ui.CounterWidget {
	return a.counter
}

// EnqueueCommand posts a command to the internal command loop.
func (a *AppManager) EnqueueCommand(cmd control.Command) {
	select {
	case a.cmdCh <- cmd:
	case <-a.cmdCtx.Done():
	case <-time.After(150 * time.Millisecond):
		slog.Warn("command queue full, dropping command", "type", cmd.Type)
	}
}

func (a *AppManager) postEvent(ev encounter.Event) {
	a.EnqueueCommand(control.Command{Type: control.CmdEvent, Event: ev})
}

func (a *AppManager) commandLoop() {
	defer close(a.loopDone)
	defer a.tracker.Stop()

	for {
		select {
		case <-a.cmdCtx.Done():
			return
		case cmd := <-a.cmdCh:
			a.apply(cmd)
			if cmd.Reply != nil {
				select {
				case cmd.Reply <- nil:
				default:
				}
			}
		}
	}
}

func (a *AppManager) apply(cmd control.Command) {
	switch cmd.Type {
	case control.CmdEvent:
		a.tracker.Dispatch(cmd.Event)
	case control.CmdReset:
		slog.Info("indicator reset by user")
		a.tracker.Reset()
	default:
		return
	}

	st := a.tracker.State()
	slog.Debug("command applied",
		"type", cmd.Type,
		"kind", cmd.Event.Kind,
		"active", a.tracker.Active(),
		"count", st.AttackCount,
		"special", st.NextSpecial)
}

func (a *AppManager) specialDue(s encounter.Special) {
	slog.Info("special attack due", "special", s)
	if a.cfg.Alert.Enabled {
		a.player.Play(s)
	}
}

// runFeed reads host events until ctx is done. An empty feed path or "-"
// reads stdin; anything else is a file that is followed as it grows.
func (a *AppManager) runFeed(ctx context.Context) error {
	path := a.cfg.FeedPath
	if path == "" || path == "-" {
		slog.Info("reading events from stdin")
		if err := feed.Run(ctx, os.Stdin, a.postEvent); err != nil {
			return fmt.Errorf("stdin feed: %w", err)
		}
		slog.Info("stdin feed closed")
		return nil
	}

	slog.Info("following event file", "path", path)
	if err := feed.Follow(ctx, path, a.postEvent); err != nil {
		return fmt.Errorf("following %s: %w", path, err)
	}
	return nil
}

// Shutdown stops the command loop, which releases the indicator, and
// silences audio. It waits briefly for the loop to exit.
func (a *AppManager) Shutdown() {
	if a.cmdCancel != nil {
		a.cmdCancel()
	}
	select {
	case <-a.loopDone:
	case <-time.After(time.Second):
		slog.Warn("command loop did not stop in time")
	}
	a.player.Close()

	if count, visible := a.counter.Visible(); visible {
		slog.Warn("indicator still visible after shutdown", "count", count)
	}
}
