package logging

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Level
		err   bool
	}{
		{name: "info", input: "info", want: INFO},
		{name: "mixed case", input: " Debug ", want: DEBUG},
		{name: "warn", input: "warn", want: WARN},
		{name: "unknown", input: "verbose", err: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			lvl, err := ParseLevel(test.input)
			if test.err {
				require.Error(t, err)
				assert.Equal(t, ErrInvalidLevel, errors.Cause(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, lvl)
		})
	}
}

func TestInitWritesFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "veda-logging")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	require.NoError(t, Init(dir, "veda.log", "debug", 1, true))
	CPrint(INFO, "network selected", LogFormat{"network": "regtest"})

	files, err := filepath.Glob(filepath.Join(dir, "veda.log.*"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	content, err := ioutil.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), "network selected")
	assert.Contains(t, string(content), "regtest")
}

func TestInitRejectsBadLevel(t *testing.T) {
	err := Init(os.TempDir(), "veda.log", "loud", 0, true)
	require.Error(t, err)
}

func TestPanicLevel(t *testing.T) {
	DisableCPrint(true)
	defer DisableCPrint(false)

	assert.Panics(t, func() {
		CPrint(PANIC, "genesis mismatch", LogFormat{"network": "main"})
	})
	assert.NotPanics(t, func() {
		CPrint(ERROR, "suppressed", nil)
	})
}
