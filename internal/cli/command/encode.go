package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/cribcrack/internal/cli/config"
	"github.com/yndnr/cribcrack/pkg/alphabet"
)

// EncodeCommand returns the encode subcommand group. It produces
// ciphertext for trying the recovery commands.
func EncodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "encode",
		Usage: "Encipher plaintext",
		Subcommands: []*cli.Command{
			{
				Name:      "shift",
				Usage:     "Encipher with a shift cipher",
				ArgsUsage: "[PLAINTEXT]",
				Flags: append([]cli.Flag{
					&cli.IntFlag{
						Name:     "shift",
						Aliases:  []string{"s"},
						Usage:    "Letters to shift by",
						Required: true,
					},
				}, inputFlags()...),
				Action: encodeShift,
			},
			{
				Name:      "vigenere",
				Usage:     "Encipher with a repeating key",
				ArgsUsage: "[PLAINTEXT]",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "key",
						Aliases:  []string{"k"},
						Usage:    "Repeating key, letters only",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "policy",
						Usage: "Non-letter handling: strict, passthrough",
						Value: config.DefaultPolicy,
					},
				}, inputFlags()...),
				Action: encodeVigenere,
			},
		},
	}
}

func encodeShift(c *cli.Context) error {
	text, _, err := readInput(c)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, alphabet.EncodeShift(text, c.Int("shift")))
	return err
}

func encodeVigenere(c *cli.Context) error {
	key, err := alphabet.ParseKey(c.String("key"))
	if err != nil {
		return err
	}
	policy, err := alphabet.ParsePolicy(c.String("policy"))
	if err != nil {
		return err
	}
	text, _, err := readInput(c)
	if err != nil {
		return err
	}

	out, err := alphabet.EncodeRepeating(text, key, policy)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	_, err = fmt.Fprintln(c.App.Writer, out)
	return err
}
