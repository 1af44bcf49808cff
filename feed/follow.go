package feed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"VorkathHelper/encounter"
)

// Handler receives decoded events in stream order.
type Handler func(encounter.Event)

// Run decodes r until EOF or until ctx is done. Bad lines are logged and
// skipped. A read that is blocked when ctx ends is abandoned.
func Run(ctx context.Context, r io.Reader, fn Handler) error {
	events := make(chan encounter.Event)
	done := make(chan error, 1)

	go func() {
		dec := NewDecoder(r, NewRegistry())
		for {
			ev, err := dec.Next()
			if errors.Is(err, io.EOF) {
				done <- nil
				return
			}
			if errors.Is(err, ErrMalformed) || errors.Is(err, ErrUnknownType) || errors.Is(err, ErrLineTooLong) {
				slog.Warn("skipping feed line", "err", err)
				continue
			}
			if err != nil {
				done <- err
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-done:
			return err
		case ev := <-events:
			fn(ev)
		}
	}
}

// Follow reads the file at path from the start and then keeps reading
// lines appended to it until ctx is done. The file may not exist yet; it
// is picked up when created. A truncated file is re-read from the start.
func Follow(ctx context.Context, path string, fn Handler) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	path = filepath.Clean(path)
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	f := &follower{path: path, registry: NewRegistry(), fn: fn}
	defer f.close()

	if err := f.drain(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			switch {
			case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
				f.close()
			case event.Has(fsnotify.Create):
				f.close()
				if err := f.drain(); err != nil {
					return err
				}
			case event.Has(fsnotify.Write):
				if err := f.drain(); err != nil {
					return err
				}
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("feed watcher error", "path", path, "err", err)
		}
	}
}

type follower struct {
	path     string
	file     *os.File
	offset   int64
	partial  []byte
	skipping bool
	line     int
	registry *Registry
	fn       Handler
}

func (f *follower) close() {
	if f.file != nil {
		f.file.Close()
		f.file = nil
	}
	f.offset = 0
	f.partial = nil
	f.skipping = false
}

func (f *follower) drain() error {
	if f.file == nil {
		file, err := os.Open(f.path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("opening feed %s: %w", f.path, err)
		}
		f.file = file
	}

	info, err := f.file.Stat()
	if err != nil {
		return fmt.Errorf("stat feed %s: %w", f.path, err)
	}
	if info.Size() < f.offset {
		slog.Info("feed truncated, reading from start", "path", f.path)
		if _, err := f.file.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("rewinding feed %s: %w", f.path, err)
		}
		f.offset = 0
		f.partial = nil
		f.skipping = false
	}

	buf := make([]byte, 32*1024)
	for {
		n, err := f.file.Read(buf)
		if n > 0 {
			f.offset += int64(n)
			f.consume(buf[:n])
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading feed %s: %w", f.path, err)
		}
	}
}

func (f *follower) consume(chunk []byte) {
	data := append(f.partial, chunk...)
	for {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			break
		}
		raw := data[:i]
		data = data[i+1:]
		f.line++
		if f.skipping || len(raw) > maxLineSize {
			f.skipping = false
			slog.Warn("skipping feed line", "path", f.path, "err", fmt.Errorf("line %d: %w", f.line, ErrLineTooLong))
			continue
		}
		text := bytes.TrimSpace(raw)
		if len(text) == 0 {
			continue
		}
		ev, err := f.registry.Decode(text, f.line)
		if err != nil {
			slog.Warn("skipping feed line", "path", f.path, "err", err)
			continue
		}
		f.fn(ev)
	}
	if f.skipping || len(data) > maxLineSize {
		f.skipping = true
		f.partial = nil
		return
	}
	f.partial = append([]byte(nil), data...)
}
