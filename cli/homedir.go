package cli

import (
	"abicodec/config"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func GetHomeDir(cmd *cobra.Command) string {
	homeDirUnexp, err := cmd.Flags().GetString(FlagHome)
	if err != nil {
		panic(err)
	}
	return config.ExpandHomePath(homeDirUnexp)
}

func InitHomeDir(cmd *cobra.Command) (string, error) {
	homeDir := GetHomeDir(cmd)
	exists, err := config.HomeDirExists(homeDir)
	if err != nil {
		return "", err
	}
	if exists {
		return "", errors.New("home directory is already initialized")
	}
	if err := config.InitHomeDir(homeDir); err != nil {
		return "", err
	}
	return homeDir, nil
}

// GetConfig loads the home directory's config file, falling back to
// defaults when the directory has not been initialized.
func GetConfig(cmd *cobra.Command) *config.Config {
	homeDir := GetHomeDir(cmd)
	exists, err := config.HomeDirExists(homeDir)
	if err != nil || !exists {
		cfg := config.DefaultConfig
		return &cfg
	}
	cfg, err := config.ReadConfigFile(homeDir)
	if err != nil {
		fallback := config.DefaultConfig
		return &fallback
	}
	return cfg
}
