package cmdutils

import (
	"compress/gzip"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vedanetwork/veda-core/config"
	"github.com/vedanetwork/veda-core/wire"
)

func TestGenesisArchive(t *testing.T) {
	dir, err := ioutil.TempDir("", "veda-archive")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	registry := config.NewRegistry()
	main := registry.Params(config.MainNet)
	test := registry.Params(config.TestNet)

	for _, name := range []string{"genesis.dat", "genesis.dat.gz"} {
		fn := filepath.Join(dir, name)
		require.NoError(t, ExportGenesis(main, fn))

		blocks, err := ReadArchive(fn)
		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.Equal(t, main.GenesisHash, wire.BlockHash(&blocks[0].Header))
		assert.Len(t, blocks[0].Transactions, 1)

		assert.NoError(t, VerifyArchive(main, fn))
		assert.Equal(t, config.ErrGenesisMismatch, errors.Cause(VerifyArchive(test, fn)))
	}
}

func TestReadArchiveCorrupt(t *testing.T) {
	dir, err := ioutil.TempDir("", "veda-archive")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	p := config.NewRegistry().Params(config.RegTest)
	fn := filepath.Join(dir, "genesis.dat")
	require.NoError(t, ExportGenesis(p, fn))

	raw, err := ioutil.ReadFile(fn)
	require.NoError(t, err)

	// flip a byte of the recorded hash
	raw[4+8] ^= 0xff
	require.NoError(t, ioutil.WriteFile(fn, raw, 0644))
	_, err = ReadArchive(fn)
	assert.Error(t, err)

	require.NoError(t, ioutil.WriteFile(fn, raw[:20], 0644))
	_, err = ReadArchive(fn)
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.dat")
	require.NoError(t, ioutil.WriteFile(empty, nil, 0644))
	assert.Equal(t, config.ErrGenesisMismatch, errors.Cause(VerifyArchive(p, empty)))
}

func TestExportGenesisGzipComplete(t *testing.T) {
	dir, err := ioutil.TempDir("", "veda-archive")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	p := config.NewRegistry().Params(config.TestNet)
	fn := filepath.Join(dir, "genesis.dat.gz")
	require.NoError(t, ExportGenesis(p, fn))

	fh, err := os.Open(fn)
	require.NoError(t, err)
	defer fh.Close()
	gz, err := gzip.NewReader(fh)
	require.NoError(t, err)

	// reading to the end checks the gzip trailer
	raw, err := ioutil.ReadAll(gz)
	require.NoError(t, err)
	assert.True(t, len(raw) > 4+8+32+80)

	assert.Error(t, ExportGenesis(p, filepath.Join(dir, "missing", "genesis.dat.gz")))
}
