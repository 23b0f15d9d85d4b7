package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/puzzplan/internal/plan"
	"github.com/papapumpkin/puzzplan/internal/telemetry"
)

var speculateCmd = &cobra.Command{
	Use:   "speculate <ability> [after]",
	Short: "Show what placing an ability would newly unlock",
	Long: `Places the ability on a scratch copy of the network and lists the nodes
that become placeable as a result. An ability with prerequisites goes after
the first branch, in canonical order, that holds all of them. One without
prerequisites goes after [after], which defaults to start.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSpeculate,
}

func init() {
	rootCmd.AddCommand(speculateCmd)
}

func runSpeculate(cmd *cobra.Command, args []string) error {
	ability, after := args[0], plan.Start
	if len(args) == 2 {
		after = args[1]
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	opened, err := s.net.Speculate(ability, after)
	if err != nil {
		return err
	}
	_ = s.tel.Record(telemetry.KindSpeculation, ability, map[string]any{
		"after":  after,
		"opened": opened,
	})
	s.out.Speculation(ability, after, opened)
	return nil
}
