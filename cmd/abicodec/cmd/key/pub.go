package key

import (
	"fmt"

	"abicodec/keys"

	"github.com/spf13/cobra"
)

var pubCmd = &cobra.Command{
	Use:   "pub <private-key>",
	Short: "Derives the public key for a private key.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		priv, err := keys.PrivateKeyFromString(args[0])
		if err != nil {
			return err
		}
		pub, err := priv.Public()
		if err != nil {
			return err
		}
		fmt.Println(pub.String())
		if legacy, err := pub.LegacyString(); err == nil {
			fmt.Println(legacy)
		}
		return nil
	},
}

func init() {
	cmd.AddCommand(pubCmd)
}
