package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/iov-one/tradevault/crypto"
	"github.com/iov-one/tradevault/errors"
	"github.com/spf13/cobra"
)

const flagKey = "key"

// keyFile is the on disk form of a local signing key.
type keyFile struct {
	Address    string `json:"address"`
	PrivateKey string `json:"private_key"`
}

func saveKey(path string, key *crypto.PrivateKey) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Wrapf(errors.ErrAlreadyExists, "key file %s", path)
	}
	raw, err := json.MarshalIndent(keyFile{
		Address:    hex.EncodeToString(key.PublicKey().Address()),
		PrivateKey: hex.EncodeToString(key.Ed25519),
	}, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.Wrap(errors.ErrHuman, err.Error())
	}
	if err := ioutil.WriteFile(path, raw, 0600); err != nil {
		return errors.Wrap(errors.ErrHuman, err.Error())
	}
	return nil
}

func loadKey(path string) (*crypto.PrivateKey, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "cannot read key file: %s", err)
	}
	var kf keyFile
	if err := json.Unmarshal(raw, &kf); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "cannot parse key file %s: %s", path, err)
	}
	bz, err := hex.DecodeString(kf.PrivateKey)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "private key of %s: %s", path, err)
	}
	key := &crypto.PrivateKey{Ed25519: bz}
	if _, err := key.Sign([]byte("key check")); err != nil {
		return nil, errors.Wrapf(err, "key file %s", path)
	}
	return key, nil
}

// loadKeyFlag loads the key named by the --key flag of cmd.
func loadKeyFlag(cmd *cobra.Command, cfg *config) (*crypto.PrivateKey, error) {
	name, err := cmd.Flags().GetString(flagKey)
	if err != nil {
		return nil, err
	}
	return loadKey(cfg.keyPath(name))
}

func addKeyFlag(cmd *cobra.Command) {
	cmd.Flags().String(flagKey, "default", "name of the local key signing the transaction")
}

// NewKeygenCmd returns the command creating a local signing key.
func NewKeygenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen [name]",
		Short: "Generate a new local signing key",
		Long: `Generate a new ed25519 key and store it under <home>/keys/<name>.json.

Example:
  $ tradevault keygen alice`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			name := "default"
			if len(args) == 1 {
				name = args[0]
			}
			key := crypto.GenPrivKeyEd25519()
			if err := saveKey(cfg.keyPath(name), key); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", name, key.PublicKey().Address())
			return nil
		},
	}
	return cmd
}
