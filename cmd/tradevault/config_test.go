package main

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	home := tempHome(t)
	err := ioutil.WriteFile(filepath.Join(home, configFileName), []byte(`
chain_id = "file-chain"
log_level = "error"
`), 0600)
	require.NoError(t, err)

	cases := map[string]struct {
		env          map[string]string
		args         []string
		wantChainID  string
		wantLogLevel string
	}{
		"config file": {
			wantChainID:  "file-chain",
			wantLogLevel: "error",
		},
		"environment overrides file": {
			env:          map[string]string{"TRADEVAULT_LOG_LEVEL": "debug"},
			wantChainID:  "file-chain",
			wantLogLevel: "debug",
		},
		"flag overrides environment": {
			env:          map[string]string{"TRADEVAULT_CHAIN_ID": "env-chain"},
			args:         []string{"--chain-id", "flag-chain"},
			wantChainID:  "flag-chain",
			wantLogLevel: "error",
		},
		"environment without flag": {
			env:          map[string]string{"TRADEVAULT_CHAIN_ID": "env-chain"},
			wantChainID:  "env-chain",
			wantLogLevel: "error",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			var got *config
			cmd := &cobra.Command{
				Use: "show",
				RunE: func(cmd *cobra.Command, args []string) error {
					var err error
					got, err = loadConfig(cmd)
					return err
				},
			}
			cmd.Flags().String(flagHome, "", "")
			cmd.Flags().String(flagChainID, "", "")
			cmd.Flags().String(flagLogLevel, "", "")
			cmd.SetArgs(append(tc.args, "--home", home))
			require.NoError(t, cmd.Execute())

			assert.Equal(t, home, got.Home)
			assert.Equal(t, tc.wantChainID, got.ChainID)
			assert.Equal(t, tc.wantLogLevel, got.LogLevel)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "error")
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Error("shown", "escrow", "open")
	assert.False(t, strings.Contains(buf.String(), "hidden"))
	assert.Contains(t, buf.String(), "shown")

	_, err = newLogger(&buf, "loud")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out := mustRun(t, tempHome(t), "version")
	assert.True(t, strings.HasPrefix(out, "v0.1.0"), out)
}
