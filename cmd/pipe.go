package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rubiojr/tagalog/pkg/config"
	"github.com/rubiojr/tagalog/pkg/log"
	"github.com/rubiojr/tagalog/pkg/tagalog"
	"github.com/urfave/cli/v3"
)

// PipeCommand creates the pipe command
func PipeCommand() *cli.Command {
	return &cli.Command{
		Name:  "pipe",
		Usage: "Log every line read from standard input",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "tag",
				Aliases: []string{"t"},
				Usage:   "Tag to log under. Can be used multiple times",
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "Reload the configuration when the config file changes",
				Value: false,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			applyDebug(c)
			return pipe(ctx, c.String("config"), c.StringSlice("tag"), c.Bool("watch"), os.Stdin)
		},
	}
}

// pipe logs each line of in until EOF or cancellation
func pipe(ctx context.Context, configPath string, tags []string, watch bool, in io.Reader) error {
	l := log.ForService("pipe")

	// Releases the reader goroutine when pipe returns early.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, closeSink, err := openLogger(ctx, cfg)
	if err != nil {
		return fmt.Errorf("opening logger: %w", err)
	}
	defer closeSink()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
		close(lines)
	}()

	// Nil channels block forever, so without --watch the select ignores them.
	var events <-chan fsnotify.Event
	var watchErrs <-chan error
	var watcher *fsnotify.Watcher
	if watch {
		watcher, err = fsnotify.NewWatcher()
		if err != nil {
			l.Warnf("failed to create config file watcher: %v", err)
		} else {
			defer func() {
				if err := watcher.Close(); err != nil {
					l.Warnf("failed to close config file watcher: %v", err)
				}
			}()
			if err := watcher.Add(configPath); err != nil {
				l.Warnf("failed to watch config file %s: %v", configPath, err)
			} else {
				l.Infof("watching config file for changes: %s", configPath)
				events = watcher.Events
				watchErrs = watcher.Errors
			}
		}
	}

	tagArg := tagging(tags)
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil {
					return fmt.Errorf("reading input: %w", err)
				}
				return nil
			}
			if _, err := logger.Log(line, tagArg); err != nil {
				return fmt.Errorf("logging line: %w", err)
			}
		case event, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			// React to write, create, rename, and remove events (editors often use atomic writes)
			if !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)) {
				continue
			}
			l.Debugf("config file changed: %s (event: %s)", event.Name, event.Op.String())

			if event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				time.Sleep(200 * time.Millisecond)
				if _, err := os.Stat(configPath); os.IsNotExist(err) {
					l.Warnf("config file was removed and not replaced, keeping current configuration")
					continue
				}
				if err := watcher.Add(configPath); err != nil {
					l.Warnf("failed to re-add config file to watcher: %v", err)
				}
			} else {
				time.Sleep(100 * time.Millisecond)
			}

			if err := reloadConfig(configPath, logger, cfg.Sink); err != nil {
				l.Errorf("failed to reload configuration: %v", err)
			} else {
				l.Infof("configuration reloaded")
			}
		case err, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			l.Warnf("config file watcher error: %v", err)
		}
	}
}

// reloadConfig loads the config file and swaps it into the logger. The sink
// is left alone; changing it requires a restart.
func reloadConfig(configPath string, logger *tagalog.Logger, current config.SinkConfig) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading new config: %w", err)
	}
	if cfg.Sink != current {
		log.ForService("pipe").Warnf("sink changes take effect on restart")
	}
	logger.SetConfig(cfg.LoggerConfig())
	return nil
}
