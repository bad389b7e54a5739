package cmd

import (
	"context"
	"fmt"

	"github.com/rubiojr/tagalog/pkg/config"
	"github.com/urfave/cli/v3"
)

// KillSwitchCommand creates the killswitch command
func KillSwitchCommand() *cli.Command {
	return &cli.Command{
		Name:      "killswitch",
		Usage:     "Turn all logging off or back on",
		ArgsUsage: "on|off",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() == 0 {
				return showKillSwitch(c.String("config"))
			}
			return setKillSwitch(c.String("config"), c.Args().First())
		},
	}
}

func showKillSwitch(configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.KillSwitch {
		fmt.Println("on")
	} else {
		fmt.Println("off")
	}
	return nil
}

func setKillSwitch(configPath, state string) error {
	var on bool
	switch state {
	case "on":
		on = true
	case "off":
		on = false
	default:
		return fmt.Errorf("expected on or off, got %q", state)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg.KillSwitch = on
	if err := cfg.SaveConfig(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Printf("Kill switch %s\n", state)
	return nil
}
