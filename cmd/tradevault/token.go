package main

import (
	"fmt"

	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/errors"
	"github.com/iov-one/tradevault/x/token"
	"github.com/spf13/cobra"
)

const (
	flagMint   = "mint"
	flagTo     = "to"
	flagAmount = "amount"
	flagOwner  = "owner"
)

// NewTransferCmd returns the command moving tokens between owners.
func NewTransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Send tokens of a mint to another owner",
		Long: `Send tokens from the account of the --key signer to the account of the
recipient. The recipient account is created when missing.

Example:
  $ tradevault transfer --mint <hex> --to <hex> --amount 5000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withNode(cmd, func(cfg *config, n *node) error {
				key, err := loadKeyFlag(cmd, cfg)
				if err != nil {
					return err
				}
				msg := token.TransferMsg{
					Metadata: &tradevault.Metadata{Schema: 1},
					Source:   key.PublicKey().Address(),
				}
				if msg.Mint, err = addressFlag(cmd, flagMint); err != nil {
					return err
				}
				if msg.Destination, err = addressFlag(cmd, flagTo); err != nil {
					return err
				}
				if msg.Amount, err = cmd.Flags().GetUint64(flagAmount); err != nil {
					return err
				}
				_, err = n.submit(cmd, cfg, &msg)
				return err
			})
		},
	}
	addKeyFlag(cmd)
	cmd.Flags().String(flagMint, "", "address of the mint")
	cmd.Flags().String(flagTo, "", "address of the recipient")
	cmd.Flags().Uint64(flagAmount, 0, "amount to send")
	return cmd
}

// NewBalanceCmd returns the command printing the balance of an owner.
func NewBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the balance of an owner in a mint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withNode(cmd, func(cfg *config, n *node) error {
				owner, err := addressFlag(cmd, flagOwner)
				if err != nil {
					return err
				}
				if owner == nil {
					key, err := loadKeyFlag(cmd, cfg)
					if err != nil {
						return errors.Wrap(err, "no --owner given")
					}
					owner = key.PublicKey().Address()
				}
				mint, err := addressFlag(cmd, flagMint)
				if err != nil {
					return err
				}
				addr, err := token.AssociatedAddress(owner, mint)
				if err != nil {
					return err
				}
				amount, err := accountAmount(n, addr)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\n", amount)
				return nil
			})
		},
	}
	addKeyFlag(cmd)
	cmd.Flags().String(flagOwner, "", "address of the owner, defaults to the --key address")
	cmd.Flags().String(flagMint, "", "address of the mint")
	return cmd
}

// accountAmount returns the amount held by the account at addr, or zero if
// there is no such account.
func accountAmount(n *node, addr tradevault.Address) (uint64, error) {
	var acc token.Account
	switch err := n.QueryOne("/accounts", addr, &acc); {
	case err == nil:
		return acc.Amount, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, errors.Wrapf(err, "account %s", addr)
	}
}
