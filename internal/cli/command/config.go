package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/cribcrack/internal/cli/config"
	"github.com/yndnr/cribcrack/internal/cli/output"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration management",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective configuration",
				Action: configShow,
			},
			{
				Name:   "validate",
				Usage:  "Validate the configuration",
				Action: configValidate,
			},
			{
				Name:   "path",
				Usage:  "Print the default config file path",
				Action: configPath,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	// Nested sections do not fit a two-column table.
	format := output.FormatYAML
	if c.IsSet("output") {
		if format, err = output.ParseFormat(c.String("output")); err != nil {
			return err
		}
		if format == output.FormatTable {
			format = output.FormatYAML
		}
	}
	return output.NewFormatter(format).Format(c.App.Writer, cfg)
}

func configValidate(c *cli.Context) error {
	if _, err := loadConfig(c); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "configuration is valid")
	return nil
}

func configPath(c *cli.Context) error {
	_, err := fmt.Fprintln(c.App.Writer, config.DefaultConfigPath())
	return err
}
