package command

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/cribcrack/internal/cli/output"
	"github.com/yndnr/cribcrack/internal/core/service"
	"github.com/yndnr/cribcrack/pkg/alphabet"
)

var vigenereBindings = []binding{
	{"crib", "vigenere.crib"},
	{"key-length", "vigenere.key_length"},
	{"policy", "vigenere.policy"},
}

// VigenereCommand returns the repeating-key recovery command.
func VigenereCommand() *cli.Command {
	return &cli.Command{
		Name:      "vigenere",
		Aliases:   []string{"vig"},
		Usage:     "Recover a repeating key of known length from a known plaintext fragment",
		ArgsUsage: "[CIPHERTEXT]",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "crib",
				Usage: "Plaintext fragment known to occur in the message (default \"gingerbread\")",
			},
			&cli.IntFlag{
				Name:    "key-length",
				Aliases: []string{"k"},
				Usage:   "Length of the repeating key (default 4)",
			},
			&cli.StringFlag{
				Name:  "policy",
				Usage: "Non-letter handling: strict rejects them, passthrough copies them (default \"strict\")",
			},
			watchFlag,
		}, inputFlags()...),
		Action: vigenereAction,
	}
}

func vigenereAction(c *cli.Context) error {
	rt, err := setup(c, vigenereBindings...)
	if err != nil {
		return err
	}

	policy, err := alphabet.ParsePolicy(rt.cfg.Vigenere.Policy)
	if err != nil {
		return err
	}

	return rt.execute(c, func(ctx context.Context, cipher, source string) (*output.Report, error) {
		r, err := rt.svc.RecoverKey(ctx, service.KeyRequest{
			Cipher:    cipher,
			Fragment:  rt.cfg.Vigenere.Crib,
			KeyLength: rt.cfg.Vigenere.KeyLength,
			Policy:    policy,
		})
		if err != nil {
			return nil, err
		}
		return output.NewKeyReport(r, source), nil
	})
}
