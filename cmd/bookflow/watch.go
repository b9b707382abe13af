package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch DIR",
	Short: "Convert PDFs as they appear in a directory",
	Long: `Watch a directory and convert every PDF that is created or rewritten
in it, using the configured formats and output directory.

A file is converted once it has been quiet for watch.debounce, so partially
copied files are not picked up. The config file is reloaded on change.
Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		if fi, err := os.Stat(dir); err != nil {
			return err
		} else if !fi.IsDir() {
			return fmt.Errorf("%s is not a directory", dir)
		}
		if err := cfgManager.Get().Check(); err != nil {
			return err
		}
		cfgManager.WatchConfig()

		return watchDir(cmd.Context(), dir)
	},
}

// watchDir blocks until ctx is done, converting PDFs written in dir
func watchDir(ctx context.Context, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	d := newDebouncer(cfgManager.Get().Watch.Debounce, func(path string) {
		// each conversion sees the config current at that moment
		_ = convertFile(ctx, path, cfgManager.Get())
	})
	defer d.Stop()

	logger.Info("watching for PDFs", "dir", dir, "debounce", cfgManager.Get().Watch.Debounce)
	for {
		select {
		case <-ctx.Done():
			logger.Info("stopped watching", "dir", dir)
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isPDF(event.Name) {
				continue
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) {
				logger.Debug("pdf changed", "path", event.Name, "op", event.Op.String())
				d.Trigger(event.Name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}

// debouncer calls fn for a key once no Trigger for that key has happened
// for delay. Calls for different keys may run concurrently.
type debouncer struct {
	delay time.Duration
	fn    func(key string)

	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(delay time.Duration, fn func(key string)) *debouncer {
	return &debouncer{
		delay:  delay,
		fn:     fn,
		timers: make(map[string]*time.Timer),
	}
}

// Trigger schedules fn for key, postponing any pending call
func (d *debouncer) Trigger(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if t, ok := d.timers[key]; ok && t.Stop() {
		t.Reset(d.delay)
		return
	}

	d.wg.Add(1)
	var t *time.Timer
	t = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()
		d.mu.Lock()
		if d.timers[key] == t {
			delete(d.timers, key)
		}
		stopped := d.stopped
		d.mu.Unlock()
		if !stopped {
			d.fn(key)
		}
	})
	d.timers[key] = t
}

// Stop cancels pending calls and waits for running ones
func (d *debouncer) Stop() {
	d.mu.Lock()
	d.stopped = true
	for key, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, key)
	}
	d.mu.Unlock()

	d.wg.Wait()
}
