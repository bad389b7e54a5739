package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rubiojr/tagalog/pkg/config"
	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Define styles using lipgloss
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Background(lipgloss.Color("235")).
			Padding(0, 1).
			Margin(0, 0, 1, 0)

	tagStyle = lipgloss.NewStyle().
			Width(20)

	enabledStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("32"))

	disabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("160"))

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			Margin(1, 0, 0, 0)
)

// TagsCommand creates the tags command with subcommands
func TagsCommand() *cli.Command {
	return &cli.Command{
		Name:  "tags",
		Usage: "Manage tags",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List configured tags",
				Action: func(ctx context.Context, c *cli.Command) error {
					return listTags(c.String("config"), os.Stdout)
				},
			},
			{
				Name:      "enable",
				Usage:     "Enable a tag",
				ArgsUsage: "TAG",
				Action: func(ctx context.Context, c *cli.Command) error {
					return setTag(c.String("config"), c.Args().First(), true)
				},
			},
			{
				Name:      "disable",
				Usage:     "Disable a tag",
				ArgsUsage: "TAG",
				Action: func(ctx context.Context, c *cli.Command) error {
					return setTag(c.String("config"), c.Args().First(), false)
				},
			},
		},
	}
}

// listTags prints every configured tag and whether it is logged
func listTags(configPath string, w io.Writer) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	caser := cases.Title(language.English)
	var b strings.Builder
	b.WriteString(titleStyle.Render("Tags"))
	b.WriteString("\n")
	for _, name := range cfg.TagNames() {
		state := disabledStyle.Render(caser.String("disabled"))
		if cfg.Tags[name] {
			state = enabledStyle.Render(caser.String("enabled"))
		}
		b.WriteString(tagStyle.Render(name) + state + "\n")
	}

	note := "Tags not listed here are logged."
	if cfg.KillSwitch {
		note = "Kill switch is on: nothing is logged."
	}
	b.WriteString(noteStyle.Render(note))
	b.WriteString("\n")

	_, err = io.WriteString(w, b.String())
	return err
}

// setTag enables or disables a tag and saves the configuration
func setTag(configPath, name string, enabled bool) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.SetTag(name, enabled); err != nil {
		return err
	}

	if err := cfg.SaveConfig(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	state := "disabled"
	if enabled {
		state = "enabled"
	}
	fmt.Printf("Tag '%s' %s\n", name, state)
	return nil
}
