package main

import (
	"encoding/json"
	"fmt"

	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/errors"
	"github.com/iov-one/tradevault/x/escrow"
	"github.com/spf13/cobra"
)

const (
	flagSeed         = "seed"
	flagDeposit      = "deposit"
	flagReceive      = "receive"
	flagMintA        = "mint-a"
	flagMintB        = "mint-b"
	flagMaker        = "maker"
	flagCounterparty = "counterparty"
)

// NewMakeCmd returns the command opening an escrow.
func NewMakeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "make",
		Short: "Open an escrow, depositing mint A and asking for mint B",
		Long: `Open an escrow owned by the --key signer. The deposit of mint A is locked
in a vault until the escrow is refunded or taken.

Example:
  $ tradevault make --seed 42 --deposit 1000 --mint-a <hex> --receive 2000 --mint-b <hex>`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withNode(cmd, func(cfg *config, n *node) error {
				key, err := loadKeyFlag(cmd, cfg)
				if err != nil {
					return err
				}
				msg := escrow.MakeMsg{
					Metadata: &tradevault.Metadata{Schema: 1},
					Maker:    key.PublicKey().Address(),
				}
				flags := cmd.Flags()
				if msg.Seed, err = flags.GetUint64(flagSeed); err != nil {
					return err
				}
				if msg.Deposit, err = flags.GetUint64(flagDeposit); err != nil {
					return err
				}
				if msg.Receive, err = flags.GetUint64(flagReceive); err != nil {
					return err
				}
				if msg.MintA, err = addressFlag(cmd, flagMintA); err != nil {
					return err
				}
				if msg.MintB, err = addressFlag(cmd, flagMintB); err != nil {
					return err
				}
				if msg.Counterparty, err = addressFlag(cmd, flagCounterparty); err != nil {
					return err
				}

				res, err := n.submit(cmd, cfg, &msg)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "escrow %s\n", tradevault.Address(res.Data))
				return nil
			})
		},
	}
	addKeyFlag(cmd)
	cmd.Flags().Uint64(flagSeed, 0, "seed distinguishing escrows of the same maker")
	cmd.Flags().Uint64(flagDeposit, 0, "amount of mint A locked in the escrow")
	cmd.Flags().Uint64(flagReceive, 0, "amount of mint B asked in exchange")
	cmd.Flags().String(flagMintA, "", "address of the deposited mint")
	cmd.Flags().String(flagMintB, "", "address of the requested mint")
	cmd.Flags().String(flagCounterparty, "", "only this address may take the escrow")
	return cmd
}

// NewRefundCmd returns the command closing an escrow of the signer.
func NewRefundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refund",
		Short: "Close an escrow and return the deposit to the maker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withNode(cmd, func(cfg *config, n *node) error {
				key, err := loadKeyFlag(cmd, cfg)
				if err != nil {
					return err
				}
				seed, err := cmd.Flags().GetUint64(flagSeed)
				if err != nil {
					return err
				}
				_, err = n.submit(cmd, cfg, &escrow.RefundMsg{
					Metadata: &tradevault.Metadata{Schema: 1},
					Maker:    key.PublicKey().Address(),
					Seed:     seed,
				})
				return err
			})
		},
	}
	addKeyFlag(cmd)
	cmd.Flags().Uint64(flagSeed, 0, "seed of the escrow")
	return cmd
}

// NewTakeCmd returns the command settling an escrow.
func NewTakeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "take",
		Short: "Pay the asked amount of mint B and receive the deposit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withNode(cmd, func(cfg *config, n *node) error {
				key, err := loadKeyFlag(cmd, cfg)
				if err != nil {
					return err
				}
				maker, err := addressFlag(cmd, flagMaker)
				if err != nil {
					return err
				}
				seed, err := cmd.Flags().GetUint64(flagSeed)
				if err != nil {
					return err
				}
				_, err = n.submit(cmd, cfg, &escrow.TakeMsg{
					Metadata: &tradevault.Metadata{Schema: 1},
					Taker:    key.PublicKey().Address(),
					Maker:    maker,
					Seed:     seed,
				})
				return err
			})
		},
	}
	addKeyFlag(cmd)
	cmd.Flags().String(flagMaker, "", "address of the escrow maker")
	cmd.Flags().Uint64(flagSeed, 0, "seed of the escrow")
	return cmd
}

// escrowView is the printed form of an open escrow.
type escrowView struct {
	Address tradevault.Address `json:"address"`
	Vault   tradevault.Address `json:"vault"`
	Locked  uint64             `json:"locked"`
	*escrow.Escrow
}

// NewEscrowCmd returns the command showing an open escrow.
func NewEscrowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "escrow",
		Short: "Show an open escrow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withNode(cmd, func(cfg *config, n *node) error {
				maker, err := addressFlag(cmd, flagMaker)
				if err != nil {
					return err
				}
				seed, err := cmd.Flags().GetUint64(flagSeed)
				if err != nil {
					return err
				}
				addr, _, err := escrow.EscrowAddress(maker, seed)
				if err != nil {
					return err
				}
				var e escrow.Escrow
				if err := n.QueryOne("/escrows", addr, &e); err != nil {
					return errors.Wrapf(err, "escrow %s", addr)
				}
				vault, err := escrow.VaultAddress(addr, e.MintA)
				if err != nil {
					return err
				}
				locked, err := accountAmount(n, vault)
				if err != nil {
					return err
				}

				raw, err := json.MarshalIndent(escrowView{
					Address: addr,
					Vault:   vault,
					Locked:  locked,
					Escrow:  &e,
				}, "", "  ")
				if err != nil {
					return errors.Wrap(errors.ErrInvalidModel, err.Error())
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(raw))
				return nil
			})
		},
	}
	cmd.Flags().String(flagMaker, "", "address of the escrow maker")
	cmd.Flags().Uint64(flagSeed, 0, "seed of the escrow")
	return cmd
}
