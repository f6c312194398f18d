package main

import (
	"fmt"
	"runtime"

	"github.com/hupe1980/kdgo"
	"github.com/hupe1980/kdgo/pointfile"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newQueryCmd(global *globalOptions) *cobra.Command {
	var (
		output  string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "query <tree> <dataset> <queries>",
		Short: "Answer nearest-neighbor queries, validated against brute force",
		Long: `Query loads a serialized KD-tree, the dataset it was built from, and a
file of query points. Every tree answer is cross-checked against a
brute-force scan of the dataset; any disagreement aborts the run without
writing results. On success, the nearest neighbor's dataset index is
written per query to <queries>.results unless --output is given.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			logger, err := global.newLogger()
			if err != nil {
				return err
			}

			treeRef, datasetPath, queriesPath := args[0], args[1], args[2]
			if output == "" {
				output = queriesPath + ".results"
			}

			points, err := pointfile.ReadPointsFile(datasetPath)
			if err != nil {
				return err
			}

			queries, err := pointfile.ReadPointsFile(queriesPath)
			if err != nil {
				return err
			}

			store, name, err := openStore(ctx, treeRef, global.throttle)
			if err != nil {
				return err
			}

			db, err := kdgo.Load(ctx, store, name,
				kdgo.WithLogger(logger),
				kdgo.WithDataset(points),
			)
			if err != nil {
				return err
			}

			if workers < 1 {
				workers = runtime.NumCPU()
			}

			// The tree is read-only after load, so queries fan out
			// freely; results keep query order by position.
			results := make([]int, len(queries))

			g, _ := errgroup.WithContext(ctx)
			g.SetLimit(workers)

			for i, q := range queries {
				g.Go(func() error {
					best, err := db.VerifiedNearestNeighbor(q)
					if err != nil {
						return fmt.Errorf("query %d: %w", i, err)
					}
					results[i] = best.Index
					return nil
				})
			}

			if err := g.Wait(); err != nil {
				return err
			}

			if err := pointfile.WriteResultsFile(output, results); err != nil {
				return err
			}

			logger.InfoContext(ctx, "queries validated",
				"count", len(queries),
				"results", output,
			)

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "destination for the results file (default <queries>.results)")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent query workers (default GOMAXPROCS)")

	return cmd
}
