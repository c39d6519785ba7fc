package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/cmd/tradevault/app"
	"github.com/iov-one/tradevault/errors"
	"github.com/iov-one/tradevault/x/escrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the tradevault command with args against home and returns
// its standard output.
func run(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&logs)
	cmd.SetArgs(append(args, "--home", home))
	err := cmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, home string, args ...string) string {
	t.Helper()
	out, err := run(t, home, args...)
	require.NoError(t, err, "tradevault %s", strings.Join(args, " "))
	return out
}

func tempHome(t *testing.T) string {
	t.Helper()
	home, err := ioutil.TempDir("", "tradevault-cli-")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(home) })
	return home
}

func keyAddress(t *testing.T, home, name string) string {
	t.Helper()
	key, err := loadKey(filepath.Join(home, "keys", name+".json"))
	require.NoError(t, err)
	return key.PublicKey().Address().String()
}

func mustParse(t *testing.T, enc string) tradevault.Address {
	t.Helper()
	addr, err := tradevault.ParseAddress(enc)
	require.NoError(t, err)
	return addr
}

func TestEscrowLifecycle(t *testing.T) {
	home := tempHome(t)
	alpha := app.DevMintAddress("ALPHA").String()
	beta := app.DevMintAddress("BETA").String()

	mustRun(t, home, "keygen", "alice")
	mustRun(t, home, "keygen", "bob")
	_, err := run(t, home, "keygen", "alice")
	assert.True(t, errors.ErrAlreadyExists.Is(err), "unexpected error: %v", err)
	alice := keyAddress(t, home, "alice")
	bob := keyAddress(t, home, "bob")

	_, err = run(t, home, "balance", "--key", "alice", "--mint", alpha)
	assert.True(t, errors.ErrHuman.Is(err), "chain must not be initialized: %v", err)

	out := mustRun(t, home, "init", "--key", "alice", "--chain-id", "cli-test-chain")
	assert.Contains(t, out, "chain cli-test-chain initialized at height 1")
	_, err = run(t, home, "init", "--key", "alice")
	assert.True(t, errors.ErrAlreadyExists.Is(err), "unexpected error: %v", err)

	assert.Equal(t, "1000000\n", mustRun(t, home, "balance", "--key", "alice", "--mint", alpha))
	assert.Equal(t, "0\n", mustRun(t, home, "balance", "--owner", bob, "--mint", beta))

	mustRun(t, home, "transfer", "--key", "alice", "--mint", beta, "--to", bob, "--amount", "5000")
	assert.Equal(t, "5000\n", mustRun(t, home, "balance", "--owner", bob, "--mint", beta))

	out = mustRun(t, home, "make", "--key", "alice", "--seed", "42",
		"--deposit", "1000", "--mint-a", alpha,
		"--receive", "2000", "--mint-b", beta)
	escrowAddr, _, err := escrow.EscrowAddress(mustParse(t, alice), 42)
	require.NoError(t, err)
	assert.Contains(t, out, "escrow "+escrowAddr.String())

	out = mustRun(t, home, "escrow", "--maker", alice, "--seed", "42")
	assert.Contains(t, out, `"locked": 1000`)
	assert.Contains(t, out, `"receive": 2000`)

	out = mustRun(t, home, "derive", "--maker", alice, "--seed", "42")
	assert.Contains(t, out, escrowAddr.String())
	assert.Contains(t, out, "base58:"+escrowAddr.Base58())

	_, err = run(t, home, "take", "--key", "bob", "--maker", alice, "--seed", "43")
	assert.True(t, errors.ErrNotFound.Is(err), "unexpected error: %v", err)

	mustRun(t, home, "take", "--key", "bob", "--maker", alice, "--seed", "42")
	assert.Equal(t, "1000\n", mustRun(t, home, "balance", "--owner", bob, "--mint", alpha))
	assert.Equal(t, "3000\n", mustRun(t, home, "balance", "--owner", bob, "--mint", beta))
	assert.Equal(t, "997000\n", mustRun(t, home, "balance", "--key", "alice", "--mint", beta))

	_, err = run(t, home, "escrow", "--maker", alice, "--seed", "42")
	assert.True(t, errors.ErrNotFound.Is(err), "unexpected error: %v", err)

	mustRun(t, home, "make", "--key", "alice", "--seed", "42",
		"--deposit", "10", "--mint-a", alpha,
		"--receive", "20", "--mint-b", beta)
	mustRun(t, home, "refund", "--key", "alice", "--seed", "42")
	assert.Equal(t, "999000\n", mustRun(t, home, "balance", "--key", "alice", "--mint", alpha))
}
