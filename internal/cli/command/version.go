package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/cribcrack/internal/cli/config"
	"github.com/yndnr/cribcrack/internal/cli/output"
	"github.com/yndnr/cribcrack/internal/infra/buildinfo"
)

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Show build information",
		Action: showVersion,
	}
}

func showVersion(c *cli.Context) error {
	name := c.String("output")
	if name == "" {
		name = config.DefaultOutputFormat
	}
	format, err := output.ParseFormat(name)
	if err != nil {
		return err
	}
	return output.NewFormatter(format).Format(c.App.Writer, buildinfo.Get())
}
