package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rubiojr/tagalog/pkg/config"
	"github.com/urfave/cli/v3"
)

// LogCommand creates the log command
func LogCommand() *cli.Command {
	return &cli.Command{
		Name:      "log",
		Usage:     "Log a message",
		ArgsUsage: "MESSAGE...",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "tag",
				Aliases: []string{"t"},
				Usage:   "Tag to log under. Can be used multiple times",
			},
			&cli.BoolFlag{
				Name:  "sequence",
				Usage: "Log the arguments as a sequence instead of a single string",
				Value: false,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			applyDebug(c)
			args := c.Args().Slice()
			if len(args) == 0 {
				return fmt.Errorf("a message is required")
			}
			var message any = strings.Join(args, " ")
			if c.Bool("sequence") {
				message = args
			}
			return logMessage(ctx, c.String("config"), message, c.StringSlice("tag"), os.Stderr)
		},
	}
}

// logMessage logs a single message, reporting on w when every tag was filtered out
func logMessage(ctx context.Context, configPath string, message any, tags []string, w io.Writer) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	l, closeSink, err := openLogger(ctx, cfg)
	if err != nil {
		return fmt.Errorf("opening logger: %w", err)
	}
	defer closeSink()

	ok, err := l.Log(message, tagging(tags))
	if err != nil {
		return fmt.Errorf("logging message: %w", err)
	}
	if !ok {
		fmt.Fprintln(w, "skipped")
	}
	return nil
}
