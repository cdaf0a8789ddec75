package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/kernels"
)

var (
	benchPrimesLimit int
	benchMatrixSize  int
	benchFibCount    int
	benchHashIters   int
	benchPiSamples   int
	benchSortSize    int
	benchTextIters   int
)

var benchCmd = &cobra.Command{
	Use:   "bench [primes|matmul|fib|hash|pi|sort|text|all]",
	Short: "Run the numeric benchmark kernels and print timings",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&benchPrimesLimit, "primes-limit", 100000, "upper bound for the prime sieve")
	benchCmd.Flags().IntVar(&benchMatrixSize, "matrix-size", 256, "matrix dimension")
	benchCmd.Flags().IntVar(&benchFibCount, "fib-count", 90, "fibonacci terms")
	benchCmd.Flags().IntVar(&benchHashIters, "hash-iters", 1000000, "hash mixing rounds")
	benchCmd.Flags().IntVar(&benchPiSamples, "pi-samples", 1000000, "monte carlo samples")
	benchCmd.Flags().IntVar(&benchSortSize, "sort-size", 1000000, "sorted array length")
	benchCmd.Flags().IntVar(&benchTextIters, "text-iters", 10000, "text processing rounds")
}

func runBench(cmd *cobra.Command, args []string) error {
	which := "all"
	if len(args) == 1 {
		which = args[0]
	}

	runs := []struct {
		name string
		fn   func() string
	}{
		{"primes", func() string {
			p := kernels.Primes(benchPrimesLimit)
			return fmt.Sprintf("%d primes <= %d", len(p), benchPrimesLimit)
		}},
		{"matmul", func() string {
			m := kernels.MatrixMultiply(benchMatrixSize)
			return fmt.Sprintf("%dx%d product, %d cells", benchMatrixSize, benchMatrixSize, len(m))
		}},
		{"fib", func() string {
			f := kernels.Fibonacci(benchFibCount)
			if len(f) == 0 {
				return "0 terms"
			}
			return fmt.Sprintf("%d terms, last=%d", len(f), f[len(f)-1])
		}},
		{"hash", func() string {
			h := kernels.Hash(benchHashIters)
			return fmt.Sprintf("%d rounds, hash=%08x", benchHashIters, h)
		}},
		{"pi", func() string {
			pi := kernels.EstimatePi(benchPiSamples)
			return fmt.Sprintf("%d samples, pi~=%.6f", benchPiSamples, pi)
		}},
		{"sort", func() string {
			s := kernels.SortArray(benchSortSize)
			if len(s) == 0 {
				return "0 values"
			}
			return fmt.Sprintf("%d values, min=%d max=%d", len(s), s[0], s[len(s)-1])
		}},
		{"text", func() string {
			t := kernels.ProcessText(benchTextIters)
			return fmt.Sprintf("%d rounds, %d chars", benchTextIters, len(t))
		}},
	}

	ran := false
	for _, r := range runs {
		if which != "all" && which != r.name {
			continue
		}
		ran = true

		start := time.Now()
		summary := r.fn()
		fmt.Printf("%-8s %12v  %s\n", r.name, time.Since(start).Round(time.Microsecond), summary)
	}

	if !ran {
		return fmt.Errorf("unknown benchmark %q", which)
	}
	return nil
}
