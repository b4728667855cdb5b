package key

import (
	"github.com/spf13/cobra"
)

var cmd = &cobra.Command{
	Use:   "key",
	Short: "Key and signature format utilities.",
}

func AddCmd(root *cobra.Command) {
	root.AddCommand(cmd)
}
