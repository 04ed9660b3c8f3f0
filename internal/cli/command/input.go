package command

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

// inputFlags returns the flags selecting where the input text comes from.
// Without either flag the input is read from the arguments, then stdin.
func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "Read the input from `FILE`",
		},
		&cli.StringFlag{
			Name:    "text",
			Aliases: []string{"t"},
			Usage:   "Input text given inline",
		},
	}
}

// watchFlag re-runs a recovery on every change of --file.
var watchFlag = &cli.BoolFlag{
	Name:  "watch",
	Usage: "Re-run the recovery whenever --file changes (requires --file)",
}

// readInput returns the input text and where it was read from.
func readInput(c *cli.Context) (text, source string, err error) {
	file, inline := c.String("file"), c.String("text")
	switch {
	case file != "" && inline != "":
		return "", "", errors.New("--file and --text are mutually exclusive")
	case file != "":
		text, err = readFile(file)
		return text, file, err
	case inline != "":
		return inline, "text", nil
	case c.Args().Present():
		return strings.Join(c.Args().Slice(), " "), "args", nil
	}

	data, err := io.ReadAll(c.App.Reader)
	if err != nil {
		return "", "", fmt.Errorf("read stdin: %w", err)
	}
	return trimInput(string(data)), "stdin", nil
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return trimInput(string(data)), nil
}

// trimInput drops the trailing line break editors and shells append, which
// a strict alphabet would otherwise reject.
func trimInput(s string) string {
	return strings.TrimRight(s, "\r\n")
}
