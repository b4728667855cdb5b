package config

import (
	"bytes"
	"io"
	"os"
	"path"
	"text/template"

	"github.com/pkg/errors"
)

const ConfigFilename = "config.toml"

const defaultConfigTemplateText = `# abicodec Config File

# Sets the log level. Can be one of the following values:
# - error
# - warn
# - info
# - debug
# - trace
log_level = "{{.LogLevel}}"

# Sets the directory searched for contract ABI files when the
# --abi flag is given a bare filename.
abi_dir = "{{.ABIDir}}"
`

var defaultConfigTemplate *template.Template

func init() {
	tmpl, err := template.New("config").Parse(defaultConfigTemplateText)
	if err != nil {
		panic(err)
	}
	defaultConfigTemplate = tmpl
}

func WriteDefaultConfigFile(homePath string) error {
	var buf bytes.Buffer
	if err := defaultConfigTemplate.Execute(&buf, DefaultConfig); err != nil {
		return errors.Wrap(err, "error rendering default config file")
	}
	f, err := os.OpenFile(path.Join(homePath, ConfigFilename), os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0600)
	if err != nil {
		return errors.Wrap(err, "error opening config file")
	}
	defer f.Close()
	if _, err := io.Copy(f, &buf); err != nil {
		return errors.Wrap(err, "error writing config file")
	}
	return nil
}

func ReadConfigFile(homePath string) (*Config, error) {
	f, err := os.Open(path.Join(homePath, ConfigFilename))
	if err != nil {
		return nil, errors.Wrap(err, "error opening config file")
	}
	defer f.Close()
	return ReadConfig(f)
}
