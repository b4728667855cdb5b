package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"abicodec/abi"
	"abicodec/cli"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	encodeAccount string
	encodeAuths   []string
)

var encodeCmd = &cobra.Command{
	Use:   "encode <action> <payload-json>",
	Short: "Encodes an action payload into its hex wire form.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		contract, err := cli.LoadContract(cmd)
		if err != nil {
			return err
		}
		var value interface{}
		if err := json.Unmarshal([]byte(args[1]), &value); err != nil {
			return errors.Wrap(err, "error decoding payload JSON")
		}
		if encodeAccount == "" {
			data, err := contract.SerializeActionData(args[0], value)
			if err != nil {
				return err
			}
			fmt.Println(data)
			return nil
		}
		auths, err := parseAuths(encodeAuths)
		if err != nil {
			return err
		}
		action, err := contract.SerializeAction(encodeAccount, args[0], auths, value)
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(action, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func parseAuths(auths []string) ([]abi.PermissionLevel, error) {
	levels := make([]abi.PermissionLevel, 0, len(auths))
	for _, auth := range auths {
		idx := strings.IndexByte(auth, '@')
		if idx < 0 {
			return nil, errors.Errorf("authorization %q must be actor@permission", auth)
		}
		levels = append(levels, abi.PermissionLevel{
			Actor:      auth[:idx],
			Permission: auth[idx+1:],
		})
	}
	return levels, nil
}

func init() {
	encodeCmd.Flags().StringVar(&encodeAccount, "account", "", "Wraps the payload in a full action for this account.")
	encodeCmd.Flags().StringArrayVar(&encodeAuths, "auth", nil, "Authorization as actor@permission. May be repeated.")
	rootCmd.AddCommand(encodeCmd)
}
