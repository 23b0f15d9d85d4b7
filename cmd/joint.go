package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/puzzplan/internal/plan"
)

var jointCmd = &cobra.Command{
	Use:   "joint <ability>",
	Short: "Suggest where a joint obstacle could unlock an ability",
	Long: `For an ability that needs several prerequisites no single branch holds,
lists every tuple of placed nodes, one per prerequisite, that a joint
obstacle could be placed after.`,
	Args: cobra.ExactArgs(1),
	RunE: runJoint,
}

func init() {
	rootCmd.AddCommand(jointCmd)
}

func runJoint(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	anchors, err := s.net.JointObstacle(args[0])
	if err != nil {
		return err
	}
	node, ok := s.net.Node(args[0])
	if !ok {
		return fmt.Errorf("%w: %s", plan.ErrUnknownNode, args[0])
	}
	s.out.JointAnchors(args[0], node.Requirements.Names(), anchors)
	return nil
}
