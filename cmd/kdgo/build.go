package main

import (
	"github.com/hupe1980/kdgo"
	"github.com/hupe1980/kdgo/persistence"
	"github.com/hupe1980/kdgo/pointfile"
	"github.com/spf13/cobra"
)

func newBuildCmd(global *globalOptions) *cobra.Command {
	var (
		output               string
		compression          string
		keepMedianDuplicates bool
	)

	cmd := &cobra.Command{
		Use:   "build <dataset>",
		Short: "Build a KD-tree from a point dataset and serialize it",
		Long: `Build reads a point dataset (one point per line, coordinates separated
by whitespace and/or commas), builds a balanced KD-tree, and serializes it
next to the dataset as <dataset>.kdtree unless --output is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			logger, err := global.newLogger()
			if err != nil {
				return err
			}

			comp, err := persistence.ParseCompression(compression)
			if err != nil {
				return err
			}

			dataset := args[0]
			if output == "" {
				output = dataset + ".kdtree"
			}

			points, err := pointfile.ReadPointsFile(dataset)
			if err != nil {
				return err
			}
			logger.InfoContext(ctx, "dataset read",
				"path", dataset,
				"count", len(points),
				"dimension", len(points[0]),
			)

			opts := []kdgo.Option{
				kdgo.WithLogger(logger),
				kdgo.WithCompression(comp),
			}
			if keepMedianDuplicates {
				opts = append(opts, kdgo.WithKeepMedianDuplicates())
			}

			db, err := kdgo.Build(points, opts...)
			if err != nil {
				return err
			}

			store, name, err := openStore(ctx, output, global.throttle)
			if err != nil {
				return err
			}

			return db.Save(ctx, store, name)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "destination for the serialized tree (default <dataset>.kdtree)")
	cmd.Flags().StringVar(&compression, "compression", "none", "at-rest compression (none, gzip, lz4)")
	cmd.Flags().BoolVar(&keepMedianDuplicates, "keep-median-duplicates", false, "reproduce the historical median duplication in the right subtree")

	return cmd
}
