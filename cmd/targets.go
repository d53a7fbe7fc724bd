package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skysurvey-tools/authlist/target"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List the available render targets",
	RunE:  runTargets,
}

func runTargets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TARGET\tALIASES\tDESCRIPTION")
	for _, name := range target.List() {
		t, ok := target.Get(name)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.Name(), strings.Join(t.Aliases(), ", "), t.Description())
	}
	return w.Flush()
}
