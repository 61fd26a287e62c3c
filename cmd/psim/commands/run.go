package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/su45/psim/pkg/mst"
	"github.com/su45/psim/pkg/mst/graphfile"
)

func GetRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <graph-file>",
		Short: "Compute a Minimum Spanning Tree over a graph file",
		Long: `Reads an undirected weighted graph and computes its Minimum Spanning
Tree with Prim's algorithm, either sequentially or across a parallel
process group.

The graph file format is: a first line "nVerts nEdges", followed by
nEdges lines each "u v weight".`,
		Args: cobra.ExactArgs(1),
		RunE: runRun,
	}

	cmd.Flags().IntP("procs", "p", defaultProcs(4), "group size for parallel mode")
	cmd.Flags().StringP("topology", "t", "switch", "topology for parallel mode (bus, switch, mesh1, torus1, mesh2, torus2, tree)")
	cmd.Flags().BoolP("sequential", "s", false, "run sequentially instead of across a process group")
	cmd.Flags().String("snapshot", "", "write the computed MST to this file as cbor")

	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	graphPath := args[0]

	procs, err := cmd.Flags().GetInt("procs")
	if err != nil {
		return err
	}
	topologyName, err := cmd.Flags().GetString("topology")
	if err != nil {
		return err
	}
	sequential, err := cmd.Flags().GetBool("sequential")
	if err != nil {
		return err
	}
	snapshotPath, err := cmd.Flags().GetString("snapshot")
	if err != nil {
		return err
	}

	g, err := graphfile.ParseFile(graphPath)
	if err != nil {
		return err
	}

	var tree []mst.Edge
	if sequential {
		tree = mst.RunSequential(g)
	} else {
		topology, err := lookupTopology(topologyName)
		if err != nil {
			return err
		}
		tree, err = mst.RunParallel(procs, topology, g)
		if err != nil {
			return err
		}
	}

	printTree(tree)

	if snapshotPath != "" {
		if err := graphfile.WriteSnapshotFile(snapshotPath, tree); err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}
	}

	return nil
}

func printTree(tree []mst.Edge) {
	sorted := make([]mst.Edge, len(tree))
	copy(sorted, tree)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Weight < sorted[j].Weight })

	var total int64
	fmt.Println("MST edges (weight):")
	for _, e := range sorted {
		fmt.Printf("%d %d (%d)\n", e.U, e.V, e.Weight)
		total += e.Weight
	}
	fmt.Printf("total weight: %d\n", total)
}
