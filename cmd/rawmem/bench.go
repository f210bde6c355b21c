package main

import (
	"fmt"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/pavanmanishd/rawmem"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// sample is a non-POD element: it carries a name and counts its copies.
type sample struct {
	id     int64
	name   string
	copies int
}

func (s *sample) CopyFrom(src *sample) error {
	*s = *src
	s.copies++
	return nil
}

// vec3 declares itself POD.
type vec3 struct{ x, y, z float64 }

func (vec3) CapabilityFacts() rawmem.Facts { return rawmem.PODFacts() }

type benchOptions struct {
	count     int
	chunkSize int
	workers   int
	rounds    int
}

type benchResult struct {
	name    string
	elapsed time.Duration
	metrics rawmem.StorageMetrics
}

func newBenchCmd(logger func() zerolog.Logger) *cobra.Command {
	opts := benchOptions{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time copy and fill into arena storage for POD and non-POD types",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.count <= 0 || opts.workers <= 0 || opts.rounds <= 0 {
				return fmt.Errorf("count, workers and rounds must be positive")
			}
			results, err := runBench(opts, logger())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CASE\tELAPSED\tBYTES\tHEAP SLOTS\tCHUNKS")
			for _, r := range results {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n",
					r.name, r.elapsed, r.metrics.BytesInUse, r.metrics.HeapSlots, r.metrics.NumChunks)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVarP(&opts.count, "count", "n", 4096, "elements per batch")
	cmd.Flags().IntVar(&opts.chunkSize, "chunk-size", rawmem.DefaultChunkSize, "arena chunk size in bytes")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 1, "goroutines sharing one arena")
	cmd.Flags().IntVar(&opts.rounds, "rounds", 10, "batches per worker")
	return cmd
}

type benchCase struct {
	name string
	run  func(s *rawmem.SafeArena, n int) error
}

func benchCases() []benchCase {
	return []benchCase{
		{"copy/vec3", func(s *rawmem.SafeArena, n int) error {
			src := make([]vec3, n)
			dst := rawmem.SafeAcquireSlice[vec3](s, n)
			_, err := rawmem.Copy(rawmem.Begin(src), rawmem.End(src), dst)
			return err
		}},
		{"copy/sample", func(s *rawmem.SafeArena, n int) error {
			src := make([]sample, n)
			dst := rawmem.SafeAcquireSlice[sample](s, n)
			if _, err := rawmem.Copy(rawmem.Begin(src), rawmem.End(src), dst); err != nil {
				return err
			}
			rawmem.DestroyRange(dst)
			return nil
		}},
		{"fill/int64", func(s *rawmem.SafeArena, n int) error {
			return rawmem.Fill(rawmem.SafeAcquireSlice[int64](s, n), 7)
		}},
		{"fill/sample", func(s *rawmem.SafeArena, n int) error {
			dst := rawmem.SafeAcquireSlice[sample](s, n)
			if err := rawmem.Fill(dst, sample{id: 1, name: "fill"}); err != nil {
				return err
			}
			rawmem.DestroyRange(dst)
			return nil
		}},
	}
}

func runBench(opts benchOptions, log zerolog.Logger) ([]benchResult, error) {
	var results []benchResult
	for _, bc := range benchCases() {
		arena := rawmem.NewSafeArena(opts.chunkSize, rawmem.WithLogger(log))

		var wg sync.WaitGroup
		errs := make([]error, opts.workers)
		start := time.Now()
		for w := 0; w < opts.workers; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				for r := 0; r < opts.rounds && errs[w] == nil; r++ {
					errs[w] = bc.run(arena, opts.count)
				}
			}(w)
		}
		wg.Wait()
		elapsed := time.Since(start)

		for _, err := range errs {
			if err != nil {
				arena.Release()
				return nil, fmt.Errorf("%s: %w", bc.name, err)
			}
		}
		m := arena.Metrics()
		arena.Release()

		log.Info().Str("case", bc.name).Dur("elapsed", elapsed).Int("bytes", m.BytesInUse).Msg("bench case done")
		results = append(results, benchResult{name: bc.name, elapsed: elapsed, metrics: m})
	}
	return results, nil
}
