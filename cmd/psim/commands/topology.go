package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/su45/psim/pkg/group"
)

// topologyCatalogue names the predicates from spec.md §6; BUS and
// SWITCH are kept as separate entries here (both resolving to the
// same predicate) since spec.md §9 preserves them as documentary
// aliases rather than collapsing them.
var topologyCatalogue = map[string]group.Predicate{
	"bus":    group.Bus,
	"switch": group.Switch,
	"mesh1":  group.Mesh1,
	"torus1": group.Torus1,
	"mesh2":  group.Mesh2,
	"torus2": group.Torus2,
	"tree":   group.Tree,
}

func lookupTopology(name string) (group.Predicate, error) {
	t, ok := topologyCatalogue[name]
	if !ok {
		return nil, fmt.Errorf("unknown topology %q (known: bus, switch, mesh1, torus1, mesh2, torus2, tree)", name)
	}
	return t, nil
}

func GetTopologyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topology <name> <i> <j> <p>",
		Short: "Evaluate a topology predicate for a rank pair",
		Long: `Evaluates T(i, j, p) for the named topology and prints true or false.
Known topologies: bus, switch, mesh1, torus1, mesh2, torus2, tree.`,
		Args: cobra.ExactArgs(4),
		RunE: runTopology,
	}
	return cmd
}

func runTopology(cmd *cobra.Command, args []string) error {
	pred, err := lookupTopology(args[0])
	if err != nil {
		return err
	}
	i, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid i: %w", err)
	}
	j, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid j: %w", err)
	}
	p, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Errorf("invalid p: %w", err)
	}
	fmt.Println(pred(i, j, p))
	return nil
}
