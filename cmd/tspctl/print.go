package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newPrintCmd(a *app) *cobra.Command {
	var nodes, edges string

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Load a graph and print its adjacency lists and a summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if edges == "" {
				return errors.New("--edges is required")
			}
			g, err := a.loadGraph(nodes, edges)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if _, err = g.WriteTo(out); err != nil {
				return errors.Wrap(err, "print graph")
			}
			s := g.Stats()
			_, err = fmt.Fprintf(out, "%d vertices, %d edges, directed=%t, %d without position, %d isolated\n",
				s.VertexCount, s.EdgeCount, s.Directed, s.UnknownPositions, s.Isolated)

			return errors.Wrap(err, "print summary")
		},
	}
	cmd.Flags().StringVar(&nodes, "nodes", "", "nodes CSV (id,lat,long)")
	cmd.Flags().StringVar(&edges, "edges", "", "edges CSV (from,to,weight[,fromLabel,toLabel])")

	return cmd
}
