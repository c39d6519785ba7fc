package main

import (
	"fmt"

	tvapp "github.com/iov-one/tradevault/app"
	"github.com/iov-one/tradevault/cmd/tradevault/app"
	"github.com/iov-one/tradevault/errors"
	"github.com/spf13/cobra"
)

const defaultChainID = "tradevault-local"

// NewInitCmd returns the command creating the genesis state.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [genesis.json]",
		Short: "Initialize the local chain",
		Long: `Initialize the local chain from a genesis file.

Without a genesis file a development genesis is used. It creates the mints
ALPHA and BETA, both controlled by the --key owner who also holds the whole
initial supply.

Example:
  $ tradevault keygen
  $ tradevault init --chain-id my-test-chain`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			var gen *tvapp.Genesis
			if len(args) == 1 {
				if gen, err = tvapp.LoadGenesis(args[0]); err != nil {
					return err
				}
				if cfg.ChainID != "" {
					gen.ChainID = cfg.ChainID
				}
			} else {
				key, err := loadKeyFlag(cmd, cfg)
				if err != nil {
					return errors.Wrap(err, "development genesis owner")
				}
				chainID := cfg.ChainID
				if chainID == "" {
					chainID = defaultChainID
				}
				if gen, err = app.DevGenesis(chainID, key.PublicKey().Address()); err != nil {
					return err
				}
			}

			n, err := openNode(cmd, cfg)
			if err != nil {
				return err
			}
			defer n.close()
			if n.chainID != "" {
				return errors.Wrapf(errors.ErrAlreadyExists, "chain %s in %s", n.chainID, cfg.Home)
			}
			status, err := n.Genesis(gen)
			if err != nil {
				return errors.Wrap(err, "genesis")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "chain %s initialized at height %d, app hash %X\n",
				gen.ChainID, status.Height, status.AppHash)
			return nil
		},
	}
	cmd.Flags().String(flagChainID, "", "chain id, overrides the genesis file")
	addKeyFlag(cmd)
	return cmd
}
