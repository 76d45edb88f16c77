package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/shabbyrobe/go-bignum/internal/config"
	"github.com/shabbyrobe/go-bignum/internal/fuzz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// errMismatches makes the process exit non-zero after a run that found
// differences from math/big.
var errMismatches = errors.New("differential run found mismatches")

func newFuzzCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fuzz",
		Short: "Check every operation against math/big",
		Long: `Runs each op with random operands through go-bignum and math/big and
compares the results. Settings come from defaults, then --config, then
BIGNUM_* environment variables, then flags.

Example:
  bignum fuzz --ops=quo,rem --iterations=10000 --max-limbs=16 --seed=1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFuzz(cmd)
		},
	}
	config.AddFlags(cmd.Flags())
	return cmd
}

func (a *app) runFuzz(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile, cmd.Flags())
	if err != nil {
		return err
	}
	if cfg.Verbose {
		a.level.SetLevel(zapcore.DebugLevel)
	}

	rc, err := cfg.Runner()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	log := a.logger.With(zap.String("component", "fuzz"))
	if path := cfg.ConfigPath(); path != "" {
		log.Debug("loaded config", zap.String("path", path))
	}

	report, err := fuzz.Run(ctx, rc, log)
	printReport(cmd, report)
	if err != nil {
		return err
	}
	if report.Failures() > 0 {
		return fmt.Errorf("%w: %d failures, rerun with --seed=%d", errMismatches, report.Failures(), report.Seed)
	}
	return nil
}

func printReport(cmd *cobra.Command, report fuzz.Report) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "seed %d\n", report.Seed)
	fmt.Fprintln(w, "OP\tITERATIONS\tFAILURES\tELAPSED")
	for _, op := range report.Ops {
		if op.Op == "" {
			continue // never started
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", op.Op, op.Iterations, op.Failures, op.Elapsed)
	}
	_ = w.Flush()

	for _, op := range report.Ops {
		for _, m := range op.Mismatches {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %v: %s\n", m.Op, m.Operands, m.Err)
		}
	}
}
