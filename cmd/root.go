// SPDX-License-Identifier: GPL-3.0-or-later
package cmd

import (
	"github.com/CrawX/go-mail-agent/config"
	"github.com/CrawX/go-mail-agent/log"

	"github.com/spf13/cobra"
)

var (
	configFile string
	logLevel   string

	conf *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "mailagent",
	Short:         "Send mails over SMTP and fetch mails with their attachments over IMAP",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.InitLogging(logLevel)

		var err error
		conf, err = config.ReadConfig(configFile)
		if err != nil {
			return err
		}

		if conf.Loglevel != nil && !cmd.Flags().Changed("loglevel") {
			log.SetLogLevel(*conf.Loglevel)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config.toml", "TOML or YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "loglevel", "info", "trace, debug, info, warn or error")
}

func Execute() error {
	return rootCmd.Execute()
}
