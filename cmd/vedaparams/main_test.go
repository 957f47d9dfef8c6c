package main

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListCmd(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "main")
	assert.Contains(t, out, "regtest")
	assert.Contains(t, out, "magic=1cbdcb4f")
}

func TestGenesisCmd(t *testing.T) {
	out, err := execute(t, "genesis", "main")
	require.NoError(t, err)
	assert.Contains(t, out, "0000038cab4d0145835a5fe6e0838b4c7860f9d0265ff22501e572186aad1938")
	assert.Contains(t, out, "695d90f6fb3fd759c83f6a62bb096c8827db365757a9c8b6784b7d3019a0ece3")
	assert.Contains(t, out, "coinbase:    04ffff001d010427")
	assert.Contains(t, out, "reward:      0 VEDA")

	_, err = execute(t, "genesis", "mainnet")
	assert.Error(t, err)
}

func TestGenesisCmdAllNetworks(t *testing.T) {
	for _, network := range []string{"main", "test", "regtest"} {
		out, err := execute(t, "genesis", network)
		require.NoError(t, err, network)
		assert.Contains(t, out, "network:     "+network)
		assert.Contains(t, out, "payout:      ")
	}

	out, err := execute(t, "genesis", "main")
	require.NoError(t, err)
	assert.Contains(t, out, "payout:      XjNhiucNscF2jY7Hc2UQ9PcL4f2sWaJwd2")

	out, err = execute(t, "genesis", "regtest")
	require.NoError(t, err)
	assert.Contains(t, out, "reward:      ")
	assert.Contains(t, out, "coinbase:    04ffff001d010427")
}

func TestGenesisCmdExport(t *testing.T) {
	dir, err := ioutil.TempDir("", "vedaparams")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	fn := filepath.Join(dir, "genesis.dat.gz")
	_, err = execute(t, "genesis", "test", "--out", fn)
	require.NoError(t, err)
	_, err = os.Stat(fn)
	assert.NoError(t, err)
}

func TestShowAndSelfTestCmd(t *testing.T) {
	out, err := execute(t, "show", "test")
	require.NoError(t, err)
	assert.Contains(t, out, "SubsidyHalvingInterval")

	out, err = execute(t, "selftest")
	require.NoError(t, err)
	assert.Contains(t, out, "regtest  ok")
}

func TestInitCmd(t *testing.T) {
	dir, err := ioutil.TempDir("", "vedaparams")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	cfgFile := filepath.Join(dir, "config.json")
	cfgJSON := fmt.Sprintf(`{
  "chain": {"network": "regtest"},
  "log": {"log_dir": %q, "log_level": "info", "max_age": 1},
  "datastore": {"dir": %q, "db_type": "memdb"},
  "p2p": {"seeds": "1.2.3.4", "add_peer": ["5.6.7.8:1"], "listen_address": "127.0.0.1"}
}`, filepath.Join(dir, "logs"), filepath.Join(dir, "data"))
	require.NoError(t, ioutil.WriteFile(cfgFile, []byte(cfgJSON), 0644))

	out, err := execute(t, "init", "--config", cfgFile)
	require.NoError(t, err)
	assert.Contains(t, out, "network: regtest")
	assert.Contains(t, out, "latest checkpoint: 0")
	assert.Contains(t, out, "listen:  127.0.0.1:41993")
	assert.Contains(t, out, "seed:    1.2.3.4:41993")
	assert.Contains(t, out, "peer:    5.6.7.8:1")
}

func TestRulesCmd(t *testing.T) {
	out, err := execute(t, "rules", "main", "34140", "--time", "1199145602")
	require.NoError(t, err)
	assert.Contains(t, out, "difficulty:          dark gravity wave")
	assert.Contains(t, out, "bip34:               true")
	assert.Contains(t, out, "masternode payments: true (share 20%)")
	assert.Contains(t, out, "deployment testdummy bit 28 started")
	assert.Contains(t, out, "deployment csv       bit 0  disabled")

	_, err = execute(t, "rules", "main", "-1")
	assert.Error(t, err)
}
