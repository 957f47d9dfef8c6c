package config

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/vedanetwork/veda-core/wire"
)

// ParseCheckpoints parses checkpoints given as "<height>:<hash>". Naming the
// same height twice is an error.
func ParseCheckpoints(specs []string) ([]Checkpoint, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	checkpoints := make([]Checkpoint, 0, len(specs))
	heights := make(map[uint64]string, len(specs))
	for _, spec := range specs {
		cp, err := parseCheckpoint(spec)
		if err != nil {
			return nil, err
		}
		if prev, ok := heights[cp.Height]; ok {
			return nil, errors.Wrapf(ErrInvalidParams, "checkpoints %q and %q share height %d", prev, spec, cp.Height)
		}
		heights[cp.Height] = spec
		checkpoints = append(checkpoints, cp)
	}
	return checkpoints, nil
}

func parseCheckpoint(spec string) (Checkpoint, error) {
	sep := strings.IndexByte(spec, ':')
	if sep < 0 {
		return Checkpoint{}, errors.Wrapf(ErrInvalidParams, "checkpoint %q is not <height>:<hash>", spec)
	}
	heightStr, hashStr := spec[:sep], spec[sep+1:]

	height, err := strconv.ParseUint(heightStr, 10, 64)
	if err != nil {
		return Checkpoint{}, errors.Wrapf(ErrInvalidParams, "checkpoint %q has a malformed height", spec)
	}
	if len(hashStr) != 2*wire.HashSize {
		return Checkpoint{}, errors.Wrapf(ErrInvalidParams, "checkpoint %q hash must be %d hex digits", spec, 2*wire.HashSize)
	}
	hash, err := wire.NewHashFromStr(hashStr)
	if err != nil {
		return Checkpoint{}, errors.Wrapf(ErrInvalidParams, "checkpoint %q has a malformed hash", spec)
	}
	return Checkpoint{Height: height, Hash: hash}, nil
}

// MergeCheckpoints overlays extra on the hard-coded checkpoints of p and
// returns the result sorted by height. An extra checkpoint replaces the
// hard-coded one at its height. A checkpoint at height 0 must name the genesis
// block of p.
func MergeCheckpoints(p *Params, extra []Checkpoint) ([]Checkpoint, error) {
	byHeight := make(map[uint64]Checkpoint, len(p.Checkpoints)+len(extra))
	for _, cp := range p.Checkpoints {
		byHeight[cp.Height] = cp
	}
	for _, cp := range extra {
		if cp.Hash == nil {
			return nil, errors.Wrapf(ErrInvalidParams, "checkpoint at height %d has no hash", cp.Height)
		}
		if cp.Height == 0 && !cp.Hash.IsEqual(&p.GenesisHash) {
			return nil, errors.Wrapf(ErrGenesisMismatch, "checkpoint 0 %v is not the %s genesis block %v",
				cp.Hash, p.Name(), p.GenesisHash)
		}
		byHeight[cp.Height] = cp
	}

	checkpoints := make([]Checkpoint, 0, len(byHeight))
	for _, cp := range byHeight {
		checkpoints = append(checkpoints, cp)
	}
	sort.Slice(checkpoints, func(i, j int) bool {
		return checkpoints[i].Height < checkpoints[j].Height
	})
	return checkpoints, nil
}
