package cmd

import (
	"github.com/spf13/cobra"
)

var lockedCmd = &cobra.Command{
	Use:   "locked",
	Short: "List abilities and obstacles that cannot be placed anywhere yet",
	Args:  cobra.NoArgs,
	RunE:  runLocked,
}

func init() {
	rootCmd.AddCommand(lockedCmd)
}

func runLocked(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	s.out.Locked(s.net.LockedAbilities(), s.net.LockedObstacles(false), s.net.LockedObstacles(true))
	return nil
}
