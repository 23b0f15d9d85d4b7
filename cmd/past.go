package cmd

import (
	"github.com/spf13/cobra"
)

var pastCmd = &cobra.Command{
	Use:   "past <node>",
	Short: "List a placed node and everything it follows",
	Args:  cobra.ExactArgs(1),
	RunE:  runPast,
}

func init() {
	rootCmd.AddCommand(pastCmd)
}

func runPast(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	past, err := s.net.Past(args[0])
	if err != nil {
		return err
	}
	s.out.Past(args[0], past.Sorted())
	return nil
}
