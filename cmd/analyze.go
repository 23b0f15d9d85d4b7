package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/puzzplan/internal/telemetry"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Report placements, locks, eclipses, and next steps for the catalog",
	Args:  cobra.NoArgs,
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	r, err := s.net.Analyze()
	if err != nil {
		return err
	}
	_ = s.tel.Record(telemetry.KindAnalysis, "", map[string]int{
		"unlocked_abilities": len(r.UnlockedAbilities),
		"unlocked_obstacles": len(r.UnlockedObstacles),
		"locked_abilities":   len(r.LockedAbilities),
		"locked_obstacles":   len(r.LockedObstacles),
		"candidates":         len(r.NextPlacements),
	})
	s.out.Report(s.net, r)
	return nil
}
