package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/puzzplan/internal/telemetry"
)

var defeatsCmd = &cobra.Command{
	Use:   "defeats <ability> <obstacle>...",
	Short: "Record that an ability defeats obstacles and save the catalog",
	Long: `Records that the ability resolves each obstacle on its own, creating the
ability and any obstacles that do not exist yet.

With --joint the arguments are <obstacle> <ability>... instead, and the
abilities resolve the obstacle only together.

Each relationship is appended to the catalog's step log after the
placements made so far, so an ability that becomes eclipsed keeps its
existing placements.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runDefeats,
}

func init() {
	defeatsCmd.Flags().Bool("joint", false, "treat the arguments as <obstacle> <ability>... resolved together")
	rootCmd.AddCommand(defeatsCmd)
}

func runDefeats(cmd *cobra.Command, args []string) error {
	joint, _ := cmd.Flags().GetBool("joint")

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	edited := s.file.Clone()
	if joint {
		edited.AddJoint(args[0], args[1:]...)
	} else {
		for _, o := range args[1:] {
			edited.AddDefeat(args[0], o)
		}
	}
	if err := s.commit(edited); err != nil {
		return err
	}

	if joint {
		_ = s.tel.Record(telemetry.KindDefeats, args[0], map[string]any{"jointly": args[1:]})
		s.out.Success(fmt.Sprintf("%s resolved by %s together", args[0], strings.Join(args[1:], " & ")))
		return nil
	}
	_ = s.tel.Record(telemetry.KindDefeats, args[0], map[string]any{"obstacles": args[1:]})
	s.out.Success(fmt.Sprintf("%s defeats %s", args[0], strings.Join(args[1:], ", ")))
	if eclipsers, ok := s.net.Eclipsed()[args[0]]; ok {
		s.out.Info(fmt.Sprintf("%s is eclipsed by %s", args[0], strings.Join(eclipsers, ", ")))
	}
	return nil
}
