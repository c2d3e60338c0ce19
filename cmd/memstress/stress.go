package main

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/joshuapare/memkit/mem"
	"github.com/joshuapare/memkit/mem/alloc"
	"github.com/spf13/cobra"
)

var (
	stressWorkers    int
	stressIterations int
	stressMaxSize    int
	stressHold       int
)

func init() {
	cmd := newStressCmd()
	cmd.Flags().IntVar(&stressWorkers, "workers", 4, "Number of concurrent workers")
	cmd.Flags().IntVar(&stressIterations, "iterations", 10000, "Allocations per worker")
	cmd.Flags().IntVar(&stressMaxSize, "max-size", 2048, "Maximum allocation size in bytes")
	cmd.Flags().IntVar(&stressHold, "hold", 16, "Live blocks each worker holds before recycling")
	rootCmd.AddCommand(cmd)
}

func newStressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Run a concurrent allocation workload",
		Long: `The stress command hammers the global composed allocator with random-size
allocations from concurrent workers, then reports traffic statistics.

Example:
  memstress stress
  memstress stress --workers 8 --iterations 100000
  memstress stress --max-size 4096 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStress()
		},
	}
	return cmd
}

// StressReport is the result of one stress run.
type StressReport struct {
	Workers    int
	Iterations int
	MaxSize    int
	Duration   time.Duration
	OpsPerSec  float64

	Allocs            int64
	Frees             int64
	Failed            int64
	OutstandingBytes  int64
	OutstandingBlocks int64
}

func runStress() error {
	if stressWorkers < 1 || stressIterations < 1 || stressMaxSize < 1 || stressHold < 1 {
		return fmt.Errorf("workers, iterations, max-size, and hold must all be positive")
	}

	printVerbose("Starting %d workers x %d iterations, sizes 1..%d\n",
		stressWorkers, stressIterations, stressMaxSize)

	before := alloc.GlobalStats()
	start := time.Now()

	var wg sync.WaitGroup
	for w := 0; w < stressWorkers; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			held := make([]mem.Block, 0, stressHold)
			for i := 0; i < stressIterations; i++ {
				b := alloc.Allocate(1 + rng.Intn(stressMaxSize))
				b.Bytes()[0] = byte(i)
				held = append(held, b)
				if len(held) == stressHold {
					// Free in shuffled order so the stack tier sees
					// out-of-order releases too.
					rng.Shuffle(len(held), func(i, j int) {
						held[i], held[j] = held[j], held[i]
					})
					for _, h := range held {
						alloc.Deallocate(h)
					}
					held = held[:0]
				}
			}
			for _, h := range held {
				alloc.Deallocate(h)
			}
		}(int64(w) + 1)
	}
	wg.Wait()

	elapsed := time.Since(start)
	after := alloc.GlobalStats()

	report := StressReport{
		Workers:    stressWorkers,
		Iterations: stressIterations,
		MaxSize:    stressMaxSize,
		Duration:   elapsed,
		OpsPerSec:  float64(after.Allocs-before.Allocs) / elapsed.Seconds(),

		Allocs:            after.Allocs - before.Allocs,
		Frees:             after.Frees - before.Frees,
		Failed:            after.Failed - before.Failed,
		OutstandingBytes:  after.OutstandingBytes,
		OutstandingBlocks: after.OutstandingBlocks,
	}

	if jsonOut {
		return printJSON(report)
	}

	printInfo("Stress run complete in %s\n\n", report.Duration.Round(time.Millisecond))
	printInfo("  Workers:      %d\n", report.Workers)
	printInfo("  Iterations:   %d per worker\n", report.Iterations)
	printInfo("  Allocations:  %d (%.0f/sec)\n", report.Allocs, report.OpsPerSec)
	printInfo("  Frees:        %d\n", report.Frees)
	printInfo("  Failed:       %d\n", report.Failed)
	printInfo("  Outstanding:  %s in %d blocks\n",
		mem.FormatSize(report.OutstandingBytes), report.OutstandingBlocks)
	return nil
}
