package main

import (
	"github.com/spf13/cobra"

	"rds-pfd/rds_config"
	"rds-pfd/rock-share/base/config"
	"rds-pfd/rock-share/base/logger"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:   "pfd",
	Short: "Partial functional dependency discovery",
	Long: `pfd - partial functional dependency discovery

Finds minimal attribute sets that determine a column for all but a bounded
fraction (g1) of row pairs, using sampled error estimates to avoid exact
computation where possible.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		if err := config.LoadConfig(configDir); err != nil {
			// 命令行发现可以不带配置文件
			if cmd.Name() != discoverCmd.Name() {
				return err
			}
			config.All = config.Default()
		}
		l := config.All.Logger
		logger.InitLogger(l.Level, rds_config.ProjectName, l.Path, l.MaxAge, l.RotationTime, l.RotationSize, config.All.Server.SentryDsn)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", config.DefaultPath, "directory of config.yml")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(discoverCmd)
}
