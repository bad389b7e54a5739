package cmd

import (
	"context"
	"fmt"

	"github.com/rubiojr/tagalog/pkg/config"
	"github.com/rubiojr/tagalog/pkg/log"
	"github.com/rubiojr/tagalog/pkg/sink"
	"github.com/rubiojr/tagalog/pkg/tagalog"
	"github.com/urfave/cli/v3"
)

// applyDebug turns on diagnostics debug output when --debug is set
func applyDebug(c *cli.Command) {
	if c.Bool("debug") {
		log.SetGlobalDebug(true)
	}
}

// openLogger creates a logger from the config and installs the configured sink.
// The returned function releases the sink.
func openLogger(ctx context.Context, cfg *config.Config) (*tagalog.Logger, func(), error) {
	l := tagalog.New(cfg.LoggerConfig())
	noop := func() {}

	// The file sink is the logger's default; nothing to install.
	if cfg.Sink.Type == "" || cfg.Sink.Type == "file" {
		if fs, ok := l.Sink().(*tagalog.FileSink); ok && log.DebugEnabledFor("cli") {
			log.ForService("cli").Debugf("using file sink %s", fs.Resolve())
		}
		return l, noop, nil
	}

	s, err := sink.New(cfg.Sink.Type, sink.Options{
		Context: ctx,
		Path:    cfg.LogDestination,
		BaseDir: tagalog.DefaultBaseDir(),
		URL:     cfg.Sink.URL,
	})
	if err != nil {
		return nil, noop, err
	}
	if err := l.SetSink(s); err != nil {
		return nil, noop, fmt.Errorf("installing %s sink: %w", cfg.Sink.Type, err)
	}
	log.ForService("cli").Debugf("using %s sink", cfg.Sink.Type)

	return l, func() {
		if err := sink.Close(s); err != nil {
			log.ForService("cli").Warnf("failed to close %s sink: %v", cfg.Sink.Type, err)
		}
	}, nil
}

// tagging converts repeated --tag flags into a Log tagging argument
func tagging(tags []string) any {
	if len(tags) == 0 {
		return nil
	}
	return tags
}
