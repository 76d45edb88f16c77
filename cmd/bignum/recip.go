package main

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/davecgh/go-spew/spew"
	bignum "github.com/shabbyrobe/go-bignum"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type recipResult struct {
	Quotient  bignum.Int
	Remainder bignum.Int
	Mantissa  []uint64
	Exp       int
}

func newRecipCmd(a *app) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "recip <numer> <denom>",
		Short: "Divide two integers and show the divisor's reciprocal",
		Long: `Divides numer by denom with go-bignum and prints the quotient, the
remainder and the Newton-Raphson reciprocal of denom as limbs and a base-2^64
exponent. Numbers may use any prefix math/big accepts (0x, 0o, 0b).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := recip(args[0], args[1])
			if err != nil {
				return err
			}
			a.logger.Debug("divided",
				zap.String("numer", args[0]),
				zap.String("denom", args[1]),
				zap.Int("mantissa_limbs", len(res.Mantissa)),
				zap.Int("exp", res.Exp))

			out := cmd.OutOrStdout()
			if dump {
				fmt.Fprint(out, spew.Sdump(res))
				return nil
			}
			fmt.Fprintf(out, "quotient:  %s\n", res.Quotient.AsBigInt())
			fmt.Fprintf(out, "remainder: %s\n", res.Remainder.AsBigInt())
			fmt.Fprintf(out, "recip:     %s * 2^(64*%d)\n", formatLimbs(res.Mantissa), res.Exp)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "dump the raw result with go-spew")
	return cmd
}

func recip(numerStr, denomStr string) (recipResult, error) {
	numer, err := parseInt(numerStr)
	if err != nil {
		return recipResult{}, err
	}
	denom, err := parseInt(denomStr)
	if err != nil {
		return recipResult{}, err
	}

	q, r, err := numer.QuoRem(denom)
	if err != nil {
		return recipResult{}, fmt.Errorf("recip: %w", err)
	}
	rc, err := bignum.NewReciprocal(denom)
	if err != nil {
		return recipResult{}, fmt.Errorf("recip: %w", err)
	}
	return recipResult{
		Quotient:  q,
		Remainder: r,
		Mantissa:  rc.Mantissa(),
		Exp:       rc.Exp(),
	}, nil
}

func parseInt(s string) (bignum.Int, error) {
	b, ok := new(big.Int).SetString(strings.ReplaceAll(s, "_", ""), 0)
	if !ok {
		return bignum.Int{}, fmt.Errorf("recip: invalid integer %q", s)
	}
	return bignum.IntFromBigInt(b), nil
}

// formatLimbs renders limbs most significant first, as they would be read.
func formatLimbs(limbs []uint64) string {
	parts := make([]string, len(limbs))
	for i, l := range limbs {
		parts[len(limbs)-1-i] = fmt.Sprintf("0x%016x", l)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
