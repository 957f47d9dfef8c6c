package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "veda-config")
	require.NoError(t, err)
	path := filepath.Join(dir, "config.json")
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0600))
	return path, func() { os.RemoveAll(dir) }
}

func TestLoadDefaultConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "main", cfg.Chain.Network)
	assert.Equal(t, "leveldb", cfg.Datastore.DBType)
	assert.Equal(t, "info", cfg.Log.LogLevel)
}

func TestLoadConfigFile(t *testing.T) {
	path, cleanup := writeConfig(t, `{
		"chain": {
			"network": "regtest",
			"add_checkpoints": ["1:`+cpHashA+`"]
		},
		"datastore": {"dir": "/tmp/veda-regtest", "db_type": "memdb"}
	}`)
	defer cleanup()

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "regtest", cfg.Chain.Network)
	assert.Equal(t, "memdb", cfg.Datastore.DBType)
	assert.Equal(t, "/tmp/veda-regtest", cfg.Datastore.Dir)
	// sections missing from the file keep their defaults
	assert.Equal(t, "info", cfg.Log.LogLevel)

	p, err := NewRegistry().Get(cfg.Chain.Network)
	require.NoError(t, err)
	cps, err := cfg.Checkpoints(p)
	require.NoError(t, err)
	require.Len(t, cps, 2)
	assert.EqualValues(t, 1, cps[1].Height)

	cfg.Chain.DisableCheckpoints = true
	cps, err = cfg.Checkpoints(p)
	require.NoError(t, err)
	assert.Nil(t, cps)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		cause   error
	}{
		{"unknown network", `{"chain": {"network": "bogus"}}`, ErrUnknownNetwork},
		{"unknown db type", `{"datastore": {"db_type": "rocksdb"}}`, ErrInvalidDbType},
		{"bad checkpoint", `{"chain": {"network": "main", "add_checkpoints": ["abc"]}}`, ErrInvalidParams},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path, cleanup := writeConfig(t, test.content)
			defer cleanup()

			_, err := LoadConfig(path)
			require.Error(t, err)
			assert.Equal(t, test.cause, errors.Cause(err))
		})
	}

	_, err := LoadConfig(filepath.Join(os.TempDir(), "does-not-exist.json"))
	require.Error(t, err)
}
