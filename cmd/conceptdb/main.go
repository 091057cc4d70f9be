// Command conceptdb is a small operations CLI for ConceptDB servers:
// database administration, ad-hoc queries and a local query history.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/9triver/conceptdb/internal/config"
	"github.com/9triver/conceptdb/internal/util"
)

var (
	configFile string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "conceptdb",
	Short:         "ConceptDB command line client",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if configFile != "" {
			cfg, err = config.LoadConfig(configFile)
			if err != nil {
				return err
			}
		} else {
			cfg = &config.Config{}
			config.ApplyDefaults(cfg)
		}
		return util.InitLogger(cfg.LogLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
