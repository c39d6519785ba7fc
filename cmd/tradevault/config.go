package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/iov-one/tradevault/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	envPrefix      = "TRADEVAULT"
	configFileName = "config.toml"

	flagHome     = "home"
	flagChainID  = "chain-id"
	flagLogLevel = "log-level"
	flagDebug    = "debug"
)

// config is the resolved CLI configuration. Values are taken from flags,
// TRADEVAULT_* environment variables, $HOME/.tradevault/config.toml and
// defaults, in that order.
type config struct {
	Home     string
	ChainID  string
	LogLevel string
	Debug    bool
}

func defaultHome() string {
	return filepath.Join(os.ExpandEnv("$HOME"), ".tradevault")
}

// loadConfig resolves the configuration for cmd. The home directory is
// resolved first, as it holds the configuration file.
func loadConfig(cmd *cobra.Command) (*config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault("home", defaultHome())
	v.SetDefault("log_level", "info")

	bindings := map[string]string{
		"home":      flagHome,
		"chain_id":  flagChainID,
		"log_level": flagLogLevel,
		"debug":     flagDebug,
	}
	for key, name := range bindings {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errors.Wrapf(errors.ErrHuman, "bind %s: %s", name, err)
			}
		}
	}

	path := filepath.Join(v.GetString("home"), configFileName)
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidInput, "cannot read %s: %s", path, err)
		}
	}

	return &config{
		Home:     v.GetString("home"),
		ChainID:  v.GetString("chain_id"),
		LogLevel: v.GetString("log_level"),
		Debug:    v.GetBool("debug"),
	}, nil
}

func (c *config) dbPath() string {
	return filepath.Join(c.Home, "data", "tradevault.db")
}

func (c *config) keyPath(name string) string {
	return filepath.Join(c.Home, "keys", name+".json")
}

// newLogger returns a logger writing to w only the entries at or above level.
func newLogger(w io.Writer, level string) (log.Logger, error) {
	opt, err := log.AllowLevel(level)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	logger := log.NewTMLogger(log.NewSyncWriter(w))
	return log.NewFilter(logger, opt).With("module", "tradevault"), nil
}
