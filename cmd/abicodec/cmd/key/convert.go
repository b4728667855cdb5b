package key

import (
	"fmt"

	"abicodec/keys"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <key-or-signature>",
	Short: "Prints every textual form of a key or signature.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := args[0]
		if pub, err := keys.PublicKeyFromString(s); err == nil {
			fmt.Println(pub.String())
			if legacy, err := pub.LegacyString(); err == nil {
				fmt.Println(legacy)
			}
			return nil
		}
		if priv, err := keys.PrivateKeyFromString(s); err == nil {
			fmt.Println(priv.String())
			if legacy, err := priv.LegacyString(); err == nil {
				fmt.Println(legacy)
			}
			return nil
		}
		if sig, err := keys.SignatureFromString(s); err == nil {
			fmt.Println(sig.String())
			return nil
		}
		return errors.Errorf("unrecognized key format %q", s)
	},
}

func init() {
	cmd.AddCommand(convertCmd)
}
