package fuzz

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	bignum "github.com/shabbyrobe/go-bignum"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MaxRecordedMismatches caps the mismatches kept per op in a Report. Every
// mismatch is still counted and logged.
const MaxRecordedMismatches = 20

// Config controls a differential run.
type Config struct {
	// Iterations is the number of checks per op.
	Iterations int

	// Seed seeds the per-op RNGs. Op i uses Seed+i, so a run is reproducible
	// whatever the worker count.
	Seed int64

	// Ops to run; empty means AllOps.
	Ops []Op

	// Workers bounds the number of ops running at once; 0 means GOMAXPROCS.
	Workers int

	// MaxLimbs bounds operand size.
	MaxLimbs int
}

// Validate checks the configuration for values that cannot run.
func (c Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("fuzz: iterations must be positive, found %d", c.Iterations)
	}
	if c.Workers < 0 {
		return fmt.Errorf("fuzz: workers must not be negative, found %d", c.Workers)
	}
	if c.MaxLimbs <= 0 {
		return fmt.Errorf("fuzz: max limbs must be positive, found %d", c.MaxLimbs)
	}
	return nil
}

// Mismatch is a single failed check.
type Mismatch struct {
	Op       Op
	Operands []string
	Err      string
}

// OpReport summarises one op.
type OpReport struct {
	Op         Op
	Iterations int
	Failures   int
	Elapsed    time.Duration
	Mismatches []Mismatch
}

type Report struct {
	Seed int64
	Ops  []OpReport
}

// Failures is the total failure count over all ops.
func (r Report) Failures() int {
	var n int
	for _, op := range r.Ops {
		n += op.Failures
	}
	return n
}

// Run checks every configured op against math/big. Mismatches are reported,
// not returned as errors; the error is non-nil only if the run could not
// complete, for example because ctx was cancelled.
func Run(ctx context.Context, cfg Config, log *zap.Logger) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	ops := cfg.Ops
	if len(ops) == 0 {
		ops = AllOps
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	log.Info("starting differential run",
		zap.Int64("seed", cfg.Seed),
		zap.Int("iterations", cfg.Iterations),
		zap.Int("ops", len(ops)),
		zap.Int("workers", workers),
		zap.Int("max_limbs", cfg.MaxLimbs))

	report := Report{Seed: cfg.Seed, Ops: make([]OpReport, len(ops))}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, op := range ops {
		i, op := i, op // per-iteration copies (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			rep, err := runOp(gctx, cfg, op, cfg.Seed+int64(i), log)
			report.Ops[i] = rep // each job owns its slot
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return report, err
	}

	log.Info("differential run complete", zap.Int("failures", report.Failures()))
	return report, nil
}

func runOp(ctx context.Context, cfg Config, op Op, seed int64, log *zap.Logger) (OpReport, error) {
	rep := OpReport{Op: op}
	c := &checker{
		rng:      rand.New(rand.NewSource(seed)),
		maxLimbs: cfg.MaxLimbs,
	}

	start := time.Now()

	for i := 0; i < cfg.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			rep.Elapsed = time.Since(start)
			return rep, fmt.Errorf("fuzz: op %s stopped after %d iterations: %w", op, i, err)
		}

		c.reset()
		err := safeCheck(c, op)
		rep.Iterations++
		if err == nil {
			continue
		}

		rep.Failures++
		operands := c.operandStrings()
		log.Warn("mismatch",
			zap.String("op", string(op)),
			zap.Strings("operands", operands),
			zap.Error(err))

		if len(rep.Mismatches) < MaxRecordedMismatches {
			rep.Mismatches = append(rep.Mismatches, Mismatch{Op: op, Operands: operands, Err: err.Error()})
		}
	}

	rep.Elapsed = time.Since(start)
	log.Debug("op complete",
		zap.String("op", string(op)),
		zap.Int("failures", rep.Failures),
		zap.Duration("elapsed", rep.Elapsed))
	return rep, nil
}

// safeCheck turns an invariant panic into a failed check so one defect does
// not take down the whole run. Other panics propagate.
func safeCheck(c *checker, op Op) (err error) {
	defer func() {
		if r := recover(); r != nil {
			var iv *bignum.InvariantViolation
			if e, ok := r.(error); ok && errors.As(e, &iv) {
				err = fmt.Errorf("%s: %w", op, iv)
				return
			}
			panic(r)
		}
	}()
	return c.check(op)
}
