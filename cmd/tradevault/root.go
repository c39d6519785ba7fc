package main

import (
	"fmt"

	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/client"
	"github.com/iov-one/tradevault/cmd/tradevault/app"
	"github.com/iov-one/tradevault/errors"
	"github.com/spf13/cobra"
)

// NewRootCmd returns the tradevault command with all sub commands attached.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tradevault",
		Short: "Two party token escrow on a local chain",
		Long: `tradevault keeps a local chain of token accounts and escrows.

Every transaction is signed with a local key, executed in a block of its own
and committed to <home>/data.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String(flagHome, defaultHome(), "directory holding configuration, keys and data")
	root.PersistentFlags().String(flagLogLevel, "info", "log level, for example info or main:info,state:debug")
	root.PersistentFlags().Bool(flagDebug, false, "report errors with their full stack")

	root.AddCommand(
		NewKeygenCmd(),
		NewInitCmd(),
		NewMakeCmd(),
		NewRefundCmd(),
		NewTakeCmd(),
		NewTransferCmd(),
		NewEscrowCmd(),
		NewBalanceCmd(),
		NewDeriveCmd(),
		NewVersionCmd(),
	)
	return root
}

// node is an opened local chain.
type node struct {
	*client.Client
	chainID string
	close   func() error
}

// openNode loads the application from the data directory of cfg.
func openNode(cmd *cobra.Command, cfg *config) (*node, error) {
	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	kv, err := app.CommitKVStore(cfg.dbPath())
	if err != nil {
		return nil, errors.Wrap(err, "open store")
	}
	closeStore := func() error {
		if c, ok := kv.(interface{ Close() error }); ok {
			return c.Close()
		}
		return nil
	}
	base, err := app.NewApplication(app.Name, app.Stack(), app.TxDecoder, kv, logger, cfg.Debug)
	if err != nil {
		closeStore()
		return nil, errors.Wrap(err, "load application")
	}
	return &node{
		Client:  client.NewClient(base),
		chainID: base.GetChainID(),
		close:   closeStore,
	}, nil
}

// withNode runs fn against the local chain, which must be initialized.
func withNode(cmd *cobra.Command, fn func(*config, *node) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	n, err := openNode(cmd, cfg)
	if err != nil {
		return err
	}
	defer n.close()
	if n.chainID == "" {
		return errors.Wrapf(errors.ErrHuman, "chain in %s not initialized, run init first", cfg.Home)
	}
	return fn(cfg, n)
}

// submit signs msg with the key of the --key flag and commits it.
func (n *node) submit(cmd *cobra.Command, cfg *config, msg tradevault.Msg) (*client.CommitResult, error) {
	key, err := loadKeyFlag(cmd, cfg)
	if err != nil {
		return nil, err
	}
	res, err := app.Submit(cmd.Context(), n.Client, n.chainID, key, msg)
	if err != nil {
		return nil, errors.Wrap(err, "transaction rejected")
	}
	if res.Err != nil {
		return nil, errors.Wrapf(res.Err, "transaction failed in block %d", res.Height)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "committed in block %d\n", res.Height)
	return res, nil
}

// addressFlag parses the address given with the named flag.
func addressFlag(cmd *cobra.Command, name string) (tradevault.Address, error) {
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, err
	}
	addr, err := tradevault.ParseAddress(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "--%s", name)
	}
	return addr, nil
}

// NewVersionCmd returns the command printing the application version.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), tradevault.Version())
		},
	}
}
