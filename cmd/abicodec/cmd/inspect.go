package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"abicodec/abi"
	"abicodec/cli"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Lists the actions, structs and aliases a contract ABI declares.",
	RunE: func(cmd *cobra.Command, args []string) error {
		contract, err := cli.LoadContract(cmd)
		if err != nil {
			return err
		}

		actionNames := make([]string, 0, len(contract.Actions))
		for name := range contract.Actions {
			actionNames = append(actionNames, name)
		}
		sort.Strings(actionNames)

		fmt.Println("Actions:")
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Action", "Type"})
		for _, name := range actionNames {
			table.Append([]string{name, contract.Actions[name].Name})
		}
		table.Render()

		// The compiled registry also carries the bootstrap primitives;
		// skip those so only schema declarations show.
		bootstrap := abi.NewRegistry()
		fmt.Println("Types:")
		table = tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Type", "Shape", "Definition"})
		for _, name := range contract.Types.Names() {
			if _, ok := bootstrap.Get(name); ok {
				continue
			}
			node, _ := contract.Types.Get(name)
			table.Append([]string{name, node.Role.String(), describeType(node)})
		}
		table.Render()
		return nil
	},
}

func describeType(node *abi.Type) string {
	switch node.Role {
	case abi.RoleAlias:
		return node.Target
	case abi.RoleStruct:
		fields := make([]string, 0, len(node.Fields))
		for _, f := range node.Fields {
			fields = append(fields, f.Name+":"+f.TypeName)
		}
		desc := strings.Join(fields, ", ")
		if node.BaseName != "" {
			desc = "base " + node.BaseName + "; " + desc
		}
		return desc
	default:
		return node.Name
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
