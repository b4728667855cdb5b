package config

import (
	"io"

	"abicodec/log"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

type Config struct {
	LogLevel string `mapstructure:"log_level"`
	ABIDir   string `mapstructure:"abi_dir"`
}

var DefaultConfig = Config{
	LogLevel: log.LevelInfo.String(),
	ABIDir:   ".",
}

func ReadConfig(r io.Reader) (*Config, error) {
	decoder := toml.NewDecoder(r)
	decoder.SetTagName("mapstructure")
	config := &Config{}
	if err := decoder.Decode(config); err != nil {
		return nil, errors.Wrap(err, "error decoding config file")
	}
	return config, nil
}
