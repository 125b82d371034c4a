// Copyright 2025 The go-parstd Authors. SPDX-License-Identifier: Apache-2.0

// Command parbench benchmarks the parstd range algorithms across execution
// backends.
//
// Usage:
//
//	parbench shift --len 1000000 --n 1000 --backend pool --workers 8
//	parbench rotate --len 1000000 --middle 333333 --backend taskgroup
//	parbench move --len 1000000 --backend sync
//
// Each run is validated against the synchronous reference backend before
// timings are reported.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/parstd/go-parstd/parstd/scratch"
)

var (
	flagBackend string
	flagWorkers int
	flagLen     int
	flagIters   int
	flagVerbose bool

	flagShiftN int
	flagMiddle int

	logger *zap.Logger
)

func main() {
	root := &cobra.Command{
		Use:           "parbench",
		Short:         "Benchmark parallel range algorithms over pluggable execution backends",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if flagVerbose {
				logger, err = zap.NewDevelopment()
			} else {
				logger, err = zap.NewProduction()
			}
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flagBackend, "backend", "pool", "execution backend: pool, taskgroup or sync")
	pf.IntVar(&flagWorkers, "workers", 0, "worker count (0 = GOMAXPROCS)")
	pf.IntVar(&flagLen, "len", 1<<20, "range length in elements")
	pf.IntVar(&flagIters, "iters", 10, "timed iterations")
	pf.BoolVar(&flagVerbose, "verbose", false, "development-style logging")

	shiftCmd := &cobra.Command{
		Use:   "shift",
		Short: "Benchmark ShiftRight",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(benchShift{n: flagShiftN})
		},
	}
	shiftCmd.Flags().IntVar(&flagShiftN, "n", 1<<10, "shift amount")

	rotateCmd := &cobra.Command{
		Use:   "rotate",
		Short: "Benchmark Rotate",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(benchRotate{middle: flagMiddle})
		},
	}
	rotateCmd.Flags().IntVar(&flagMiddle, "middle", 1<<10, "rotation point")

	moveCmd := &cobra.Command{
		Use:   "move",
		Short: "Benchmark Move into a disjoint destination",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(benchMove{buf: new(scratch.Pool[int64])})
		},
	}

	root.AddCommand(shiftCmd, rotateCmd, moveCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "parbench:", err)
		os.Exit(1)
	}
}
