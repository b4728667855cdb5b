package cli

import (
	"io/ioutil"
	"path"
	"path/filepath"

	"abicodec/abi"
	"abicodec/config"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// LoadContract compiles the ABI file named by the --abi flag. Bare
// filenames are resolved against the configured abi_dir; explicit
// paths are used as-is.
func LoadContract(cmd *cobra.Command) (*abi.Contract, error) {
	abiPath, err := cmd.Flags().GetString(FlagABI)
	if err != nil {
		panic(err)
	}
	if abiPath == "" {
		return nil, errors.New("an ABI file is required - pass one with --abi")
	}
	if abiPath == filepath.Base(abiPath) {
		cfg := GetConfig(cmd)
		abiPath = path.Join(config.ExpandHomePath(cfg.ABIDir), abiPath)
	}
	data, err := ioutil.ReadFile(abiPath)
	if err != nil {
		return nil, errors.Wrap(err, "error reading ABI file")
	}
	contract, err := abi.CompileJSON(data)
	if err != nil {
		return nil, errors.Wrapf(err, "error compiling ABI file %s", abiPath)
	}
	return contract, nil
}
