package blockchain

import (
	"fmt"
	"time"

	"github.com/vedanetwork/veda-core/config"
	"github.com/vedanetwork/veda-core/consensus"
	"github.com/vedanetwork/veda-core/logging"
	"github.com/vedanetwork/veda-core/wire"
)

const secondsPerDay = 24 * 60 * 60

// Checkpointer answers checkpoint queries for one network. The checkpoint list
// is fixed when it is created.
type Checkpointer struct {
	checkpoints         []config.Checkpoint
	checkpointsByHeight map[uint64]*config.Checkpoint
	stats               config.CheckpointStats
}

// NewCheckpointer returns a Checkpointer over checkpoints, which are usually
// the result of config.Config.Checkpoints, with the progress statistics of p.
// The checkpoints must be sorted by height.
func NewCheckpointer(p *config.Params, checkpoints []config.Checkpoint) (*Checkpointer, error) {
	c := &Checkpointer{
		checkpoints:         checkpoints,
		checkpointsByHeight: make(map[uint64]*config.Checkpoint, len(checkpoints)),
		stats:               p.CheckpointStats,
	}
	for i := range checkpoints {
		if i > 0 && checkpoints[i].Height <= checkpoints[i-1].Height {
			return nil, fmt.Errorf("NewCheckpointer checkpoints are not sorted by height")
		}
		c.checkpointsByHeight[checkpoints[i].Height] = &c.checkpoints[i]
	}
	return c, nil
}

// Checkpoints returns a slice of checkpoints (regardless of whether they are
// already known).  When there are no checkpoints for the chain, it will return
// nil.
//
// This function is safe for concurrent access.
func (c *Checkpointer) Checkpoints() []config.Checkpoint {
	return c.checkpoints
}

// HasCheckpoints returns whether this Checkpointer has checkpoints defined.
//
// This function is safe for concurrent access.
func (c *Checkpointer) HasCheckpoints() bool {
	return len(c.checkpoints) > 0
}

// LatestCheckpoint returns the most recent checkpoint (regardless of whether it
// is already known). When there are no defined checkpoints for the active chain
// instance, it will return nil.
//
// This function is safe for concurrent access.
func (c *Checkpointer) LatestCheckpoint() *config.Checkpoint {
	if !c.HasCheckpoints() {
		return nil
	}
	return &c.checkpoints[len(c.checkpoints)-1]
}

// VerifyCheckpoint returns whether the passed block height and hash combination
// match the checkpoint data.  It also returns true if there is no checkpoint
// data for the passed block height.
func (c *Checkpointer) VerifyCheckpoint(height uint64, hash *wire.Hash) bool {
	if !c.HasCheckpoints() {
		return true
	}

	// Nothing to check if there is no checkpoint data for the block height.
	checkpoint, exists := c.checkpointsByHeight[height]
	if !exists {
		return true
	}

	if !checkpoint.Hash.IsEqual(hash) {
		logging.CPrint(logging.WARN, "block does not match checkpoint", logging.LogFormat{
			"height":   height,
			"hash":     hash,
			"expected": checkpoint.Hash,
		})
		return false
	}

	logging.CPrint(logging.INFO, fmt.Sprintf("Verified checkpoint at height %d/block %s", checkpoint.Height, checkpoint.Hash), logging.LogFormat{})
	return true
}

// PreviousCheckpoint returns the highest checkpoint at or below height, or nil
// when height is below the first checkpoint. Forks from before it must be
// rejected.
func (c *Checkpointer) PreviousCheckpoint(height uint64) *config.Checkpoint {
	for i := len(c.checkpoints) - 1; i >= 0; i-- {
		if c.checkpoints[i].Height <= height {
			return &c.checkpoints[i]
		}
	}
	return nil
}

// GuessVerificationProgress estimates the fraction of total verification
// work done once the chain containing chainTxCount transactions, with its tip
// stamped at tipTime, is validated. Work is one unit per transaction up to the
// last checkpoint and consensus.SigCheckVerificationFactor units after it.
func (c *Checkpointer) GuessVerificationProgress(chainTxCount uint64, tipTime time.Time, now time.Time) float64 {
	var workBefore, workAfter float64

	if chainTxCount <= c.stats.TxCount {
		cheapBefore := float64(chainTxCount)
		cheapAfter := float64(c.stats.TxCount - chainTxCount)
		expensiveAfter := daysBetween(c.stats.Time, now.Unix()) * c.stats.TxPerDay
		workBefore = cheapBefore
		workAfter = cheapAfter + expensiveAfter*consensus.SigCheckVerificationFactor
	} else {
		cheapBefore := float64(c.stats.TxCount)
		expensiveBefore := float64(chainTxCount - c.stats.TxCount)
		expensiveAfter := daysBetween(tipTime.Unix(), now.Unix()) * c.stats.TxPerDay
		workBefore = cheapBefore + expensiveBefore*consensus.SigCheckVerificationFactor
		workAfter = expensiveAfter * consensus.SigCheckVerificationFactor
	}

	if workBefore+workAfter == 0 {
		return 0
	}
	return workBefore / (workBefore + workAfter)
}

func daysBetween(from, to int64) float64 {
	if to <= from {
		return 0
	}
	return float64(to-from) / secondsPerDay
}
