package cmd

import (
	"github.com/spf13/cobra"
)

var placeCmd = &cobra.Command{
	Use:   "place <after> <node>",
	Short: "Place a node after a placed node and save the catalog",
	Long: `Places node after the given placed node. The node must be enabled there.
When the only route enabling it is a joint one, every member of that route
becomes a predecessor instead. The placement is appended to the catalog's
step log and, when history_db is set, to the placement history.`,
	Args: cobra.ExactArgs(2),
	RunE: runPlace,
}

func init() {
	placeCmd.Flags().Bool("dry-run", false, "check the placement without saving it")
	rootCmd.AddCommand(placeCmd)
}

func runPlace(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	after, node := args[0], args[1]

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	trial := s.net.Clone()
	edges, err := trial.AddConnection(after, node)
	if err != nil {
		return err
	}
	if dryRun {
		s.out.Info("dry run: catalog not changed")
		s.out.Placement(after, node, edges)
		return nil
	}

	edited := s.file.Clone()
	edited.Place(after, node)
	if err := s.commit(edited); err != nil {
		return err
	}
	if err := s.recordPlacement(cmd.Context(), after, node, edges); err != nil {
		return err
	}
	s.out.Placement(after, node, edges)
	return nil
}
