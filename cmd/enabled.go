package cmd

import (
	"github.com/spf13/cobra"
)

var enabledCmd = &cobra.Command{
	Use:   "enabled <branch>",
	Short: "List the nodes that could be placed after a branch",
	Long: `Lists every node enabled at the given placed node, with the routes that
enable it. Placed nodes are left out unless --all is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runEnabled,
}

func init() {
	enabledCmd.Flags().Bool("all", false, "include nodes that are already placed")
	rootCmd.AddCommand(enabledCmd)
}

func runEnabled(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	enabled, err := s.net.EnabledNodes(args[0], !all)
	if err != nil {
		return err
	}
	s.out.Enabled(s.net, args[0], enabled)
	return nil
}
