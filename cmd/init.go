package cmd

import (
	"context"
	"fmt"

	"github.com/rubiojr/tagalog/pkg/config"
	"github.com/urfave/cli/v3"
)

// InitCommand creates the init command
func InitCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize configuration",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "destination",
				Usage: "Log file to write to",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return initConfig(c.String("config"), c.String("destination"))
		},
	}
}

// initConfig initializes the configuration file
func initConfig(configPath, destination string) error {
	cfg := config.GetDefaultConfig()
	if destination != "" {
		cfg.LogDestination = destination
	}
	if err := cfg.SaveTemplateConfig(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Printf("Configuration initialized at %s\n", configPath)
	return nil
}
