package cmd

import (
	"fmt"
	"os"

	"abicodec/cli"
	"abicodec/cmd/abicodec/cmd/key"
	"abicodec/log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "abicodec",
	Short: "Serializes and deserializes contract action data.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		levelStr, _ := cmd.Flags().GetString(cli.FlagLogLevel)
		if levelStr == "" {
			levelStr = cli.GetConfig(cmd).LogLevel
		}
		level, err := log.NewLevel(levelStr)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String(cli.FlagHome, "~/.abicodec", "Home directory for the CLI's configuration.")
	rootCmd.PersistentFlags().String(cli.FlagABI, "", "Path to the contract ABI JSON file.")
	rootCmd.PersistentFlags().String(cli.FlagLogLevel, "", "Log level. Overrides the configured value.")
	key.AddCmd(rootCmd)
}
