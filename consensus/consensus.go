package consensus

import "time"

const (
	// COIN is the number of base units in one VEDA.
	COIN int64 = 100000000

	// MaxMoney is the upper bound of any single amount, also used as a
	// sanity check for genesis rewards.
	MaxMoney = 21000000 * COIN

	// MaxFutureBlockTime is how far a block timestamp may run ahead of
	// network adjusted time.
	MaxFutureBlockTime = 2 * time.Hour

	// SigCheckVerificationFactor weighs transactions after the last
	// checkpoint, which need signature checks, against those before it.
	SigCheckVerificationFactor = 5.0
)

var (
	// GenesisReward is paid by the test network genesis blocks. The main
	// network genesis pays nothing.
	GenesisReward = 200000 * COIN
)
