package cmd

import (
	"encoding/json"
	"fmt"

	"abicodec/cli"

	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <action> <hex>",
	Short: "Decodes hex wire data back into a structured payload.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		contract, err := cli.LoadContract(cmd)
		if err != nil {
			return err
		}
		value, err := contract.DeserializeActionData(args[0], args[1])
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
