package command

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/cribcrack/internal/cli/output"
)

var shiftBindings = []binding{
	{"crib", "shift.crib"},
}

// ShiftCommand returns the shift recovery command.
func ShiftCommand() *cli.Command {
	return &cli.Command{
		Name:      "shift",
		Aliases:   []string{"caesar"},
		Usage:     "Recover the shift of a shift cipher from a known plaintext fragment",
		ArgsUsage: "[CIPHERTEXT]",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "crib",
				Usage: "Plaintext fragment known to occur in the message (default \"pumpkin\")",
			},
			watchFlag,
		}, inputFlags()...),
		Action: shiftAction,
	}
}

func shiftAction(c *cli.Context) error {
	rt, err := setup(c, shiftBindings...)
	if err != nil {
		return err
	}

	return rt.execute(c, func(ctx context.Context, cipher, source string) (*output.Report, error) {
		r, err := rt.svc.BreakShift(ctx, cipher, rt.cfg.Shift.Crib)
		if err != nil {
			return nil, err
		}
		return output.NewShiftReport(r, source), nil
	})
}
