package cli

import (
	"github.com/mgpai22/srtparse/internal/config"
	"github.com/mgpai22/srtparse/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configPath string
	cfg        *config.Config
	logger     *logging.Logger
	v          = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "srtparse",
	Short: "Strict parser and validator for SubRip (SRT) subtitles",
	Long: `srtparse reads SubRip subtitle files and reports each item's index,
timing and text, or the exact line where a file is malformed.

Parsing is strict and stops at the first malformed block.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.SetDefaults(v)
		if err := config.ReadFile(v, configPath); err != nil {
			return err
		}
		loaded, err := config.Load(v)
		if err != nil {
			return err
		}
		cfg = loaded
		logger = logging.NewLogger(cfg.Verbose)
		if v.ConfigFileUsed() != "" {
			logger.Debugw("Loaded config", "path", v.ConfigFileUsed())
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringP("output", "o", "text", "Output format (text, json)")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/srtparse/srtparse.yaml)")

	_ = v.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = v.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
}
