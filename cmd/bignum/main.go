package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by the subcommands of one invocation.
type app struct {
	configFile string
	verbose    bool

	level  zap.AtomicLevel
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "bignum",
		Short: "Arbitrary-precision integer and rational toolkit",
		Long: `bignum exercises the go-bignum arithmetic engine.

  fuzz    checks every operation against math/big with random operands
  recip   divides two integers and shows the reciprocal the quotient came from`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "configuration file path (toml, yaml or json)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newFuzzCmd(a))
	root.AddCommand(newRecipCmd(a))
	return root
}

func (a *app) initLogger() error {
	config := zap.NewProductionConfig()
	a.level = config.Level
	if a.verbose {
		a.level.SetLevel(zapcore.DebugLevel)
	}

	var err error
	a.logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
