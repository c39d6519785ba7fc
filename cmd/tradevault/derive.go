package main

import (
	"fmt"

	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/x/escrow"
	"github.com/spf13/cobra"
)

// bech32Prefix is the human readable part of printed bech32 addresses.
const bech32Prefix = "tv"

// NewDeriveCmd returns the command computing escrow addresses offline.
func NewDeriveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Compute the escrow and vault addresses of a maker and seed",
		Long: `Compute the escrow address of a maker and seed without reading the chain.
With --mint-a the address of the vault holding the deposit is printed too.

Example:
  $ tradevault derive --maker <hex> --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			maker, err := addressFlag(cmd, flagMaker)
			if err != nil {
				return err
			}
			seed, err := cmd.Flags().GetUint64(flagSeed)
			if err != nil {
				return err
			}
			addr, bump, err := escrow.EscrowAddress(maker, seed)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := printAddress(cmd, "escrow", addr); err != nil {
				return err
			}
			fmt.Fprintf(out, "bump    %d\n", bump)

			mintA, err := addressFlag(cmd, flagMintA)
			if err != nil || mintA == nil {
				return err
			}
			vault, err := escrow.VaultAddress(addr, mintA)
			if err != nil {
				return err
			}
			return printAddress(cmd, "vault", vault)
		},
	}
	cmd.Flags().String(flagMaker, "", "address of the escrow maker")
	cmd.Flags().Uint64(flagSeed, 0, "seed of the escrow")
	cmd.Flags().String(flagMintA, "", "address of the deposited mint")
	return cmd
}

func printAddress(cmd *cobra.Command, label string, addr tradevault.Address) error {
	b32, err := addr.Bech32(bech32Prefix)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-7s %s\n", label, addr)
	fmt.Fprintf(out, "        base58:%s\n", addr.Base58())
	fmt.Fprintf(out, "        bech32:%s\n", b32)
	return nil
}
