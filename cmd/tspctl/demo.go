package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtsp/builder"
)

// Road lengths in metres for sparse demo networks.
const (
	sparseMinRoad = 500
	sparseMaxRoad = 20000
)

func newDemoCmd(a *app) *cobra.Command {
	var (
		n       int
		seed    int64
		density float64
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Scatter random stops over Portugal and solve them",
		Long:  `Scatter random stops over Portugal and solve them.

With --density below 1 the stops have no coordinates and only a random
share of the roads exists, with lengths between 0.5 and 20 km. Sparse
networks show dead ends and missing round trips.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// demo compares every solver unless one is asked for explicitly
			if !cmd.Flags().Changed("algorithm") {
				a.cfg.Algorithm = ""
			}
			g := a.newGraph()
			bopts := []builder.BuilderOption{builder.WithSeed(seed)}
			ctor := builder.GeoScatter(n, builder.DefaultBox)
			if density != 1 {
				bopts = append(bopts, builder.WithUniformWeight(sparseMinRoad, sparseMaxRoad))
				ctor = builder.RandomSparse(n, density)
			}
			if err := builder.Apply(g, bopts, ctor); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d stops, seed %d, %d road links\n",
				g.VertexCount(), seed, g.EdgeCount())

			return a.solve(cmd, g)
		},
	}
	cmd.Flags().IntVar(&n, "n", 8, "number of stops")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().Float64Var(&density, "density", 1, "share of roads kept, in [0, 1]; below 1 builds a sparse network")
	addSolverFlags(cmd, "all")

	return cmd
}
