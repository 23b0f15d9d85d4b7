package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/puzzplan/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "puzzplan",
	Short: "Plan where abilities and obstacles can be placed in a progression",
	Long: `puzzplan checks a catalog of abilities, the obstacles they defeat, and the
placements made so far, and reports what can be placed next, what is locked,
and what each unplaced ability would open up.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.New().Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .puzzplan.yaml)")
	rootCmd.PersistentFlags().String("catalog", "", "catalog file (default puzzplan.toml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	bindFlags()
}

// bindFlags lets the global flags override config file and env values.
func bindFlags() {
	_ = viper.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".puzzplan")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("PUZZPLAN")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()

	if noColor, _ := rootCmd.PersistentFlags().GetBool("no-color"); noColor {
		viper.Set("color", false)
	}
}
