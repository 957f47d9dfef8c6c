package config

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	cpHashA = "000001ff94b709840c79ac568a4657c5a968555a9d3e38872c37c8ae4c59dda8"
	cpHashB = "0000022b32afc5db0a7f9389fa41fb745c13c851455a40db5a5b7cc90ec6d2d1"
)

func TestParseCheckpoints(t *testing.T) {
	cps, err := ParseCheckpoints(nil)
	require.NoError(t, err)
	assert.Nil(t, cps)

	cps, err = ParseCheckpoints([]string{"100:" + cpHashA, "250:" + cpHashB})
	require.NoError(t, err)
	require.Len(t, cps, 2)
	assert.EqualValues(t, 250, cps[1].Height)
	assert.Equal(t, cpHashB, cps[1].Hash.String())

	for _, bad := range []string{"100", "x:" + cpHashA, "100:", "100:zz", "1:2:3", "1:" + cpHashA[2:], "-1:" + cpHashA} {
		_, err := ParseCheckpoints([]string{bad})
		require.Error(t, err, bad)
		assert.Equal(t, ErrInvalidParams, errors.Cause(err))
	}

	_, err = ParseCheckpoints([]string{"100:" + cpHashA, "100:" + cpHashB})
	assert.Equal(t, ErrInvalidParams, errors.Cause(err))
}

func TestMergeCheckpoints(t *testing.T) {
	p := mainNetParams()
	extra, err := ParseCheckpoints([]string{"500:" + cpHashB, "100:" + cpHashB, "50:" + cpHashA})
	require.NoError(t, err)

	merged, err := MergeCheckpoints(p, extra)
	require.NoError(t, err)
	require.Len(t, merged, 4)
	heights := make([]uint64, len(merged))
	for i, cp := range merged {
		heights[i] = cp.Height
	}
	assert.Equal(t, []uint64{0, 50, 100, 500}, heights)
	// the added checkpoint overrides the hard-coded one
	assert.Equal(t, cpHashB, merged[2].Hash.String())

	// merging never touches the defaults
	assert.Equal(t, cpHashA, p.Checkpoints[1].Hash.String())
}

func TestMergeCheckpointsGenesis(t *testing.T) {
	for _, p := range []*Params{mainNetParams(), testNetParams(), regTestParams()} {
		genesis := p.GenesisHash
		merged, err := MergeCheckpoints(p, []Checkpoint{{Height: 0, Hash: &genesis}})
		require.NoError(t, err, p.Name())
		assert.Equal(t, genesis, *merged[0].Hash, p.Name())

		other, err := ParseCheckpoints([]string{"0:" + cpHashA})
		require.NoError(t, err)
		_, err = MergeCheckpoints(p, other)
		assert.Equal(t, ErrGenesisMismatch, errors.Cause(err), p.Name())
	}

	_, err := MergeCheckpoints(mainNetParams(), []Checkpoint{{Height: 7}})
	assert.Equal(t, ErrInvalidParams, errors.Cause(err))
}
