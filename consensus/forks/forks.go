package forks

import (
	"github.com/vedanetwork/veda-core/config"
)

// DifficultyAlgorithm names the retarget rule in force at a height.
type DifficultyAlgorithm int

const (
	DifficultyBTC DifficultyAlgorithm = iota
	DifficultyKGW
	DifficultyDGW
)

func (a DifficultyAlgorithm) String() string {
	switch a {
	case DifficultyKGW:
		return "kimoto gravity well"
	case DifficultyDGW:
		return "dark gravity wave"
	default:
		return "bitcoin"
	}
}

// GetDifficultyAlgorithm returns the retarget rule for a block at height. A
// network whose KGW height is not below its DGW height never uses KGW.
func GetDifficultyAlgorithm(c *config.ConsensusParams, height int32) DifficultyAlgorithm {
	switch {
	case height >= c.PowDGWHeight:
		return DifficultyDGW
	case height >= c.PowKGWHeight:
		return DifficultyKGW
	default:
		return DifficultyBTC
	}
}

// IsRetargetHeight reports whether the bitcoin rule recalculates the target at
// height. Networks without retargeting never do.
func IsRetargetHeight(c *config.ConsensusParams, height int32) bool {
	if c.PowNoRetargeting {
		return false
	}
	return int64(height)%c.DifficultyAdjustmentInterval() == 0
}

// EnforceBIP34 reports whether coinbases at height must carry the height.
func EnforceBIP34(c *config.ConsensusParams, height int32) bool {
	return c.BIP34Height >= 0 && height >= c.BIP34Height
}

// HalvingCount returns how many times the block subsidy has been halved at
// height.
func HalvingCount(c *config.ConsensusParams, height int32) int32 {
	if height < 0 {
		return 0
	}
	return height / c.SubsidyHalvingInterval
}

// IsMasternodePaymentsStarted reports whether blocks at height pay
// masternodes.
func IsMasternodePaymentsStarted(c *config.ConsensusParams, height int32) bool {
	return height >= c.MasternodePaymentsStartBlock
}

// MaxMasternodePaymentIncreases bounds the masternode share ramp: the share
// starts at 20% of the block value and grows by 5% per step up to 50%.
const MaxMasternodePaymentIncreases = 6

// MasternodePaymentIncreases returns how many masternode share increases apply
// to a block at height. The first one applies above the increase block, and
// each further one a full increase period later.
func MasternodePaymentIncreases(c *config.ConsensusParams, height int32) int32 {
	if height <= c.MasternodePaymentsIncreaseBlock {
		return 0
	}
	n := (height-c.MasternodePaymentsIncreaseBlock-1)/c.MasternodePaymentsIncreasePeriod + 1
	if n > MaxMasternodePaymentIncreases {
		return MaxMasternodePaymentIncreases
	}
	return n
}

// MasternodePaymentPercent returns the masternode share of the block value in
// percent at height.
func MasternodePaymentPercent(c *config.ConsensusParams, height int32) int32 {
	return 20 + 5*MasternodePaymentIncreases(c, height)
}

// IsSuperblockTriggerHeight reports whether a superblock may be created at
// height.
func IsSuperblockTriggerHeight(c *config.ConsensusParams, height int32) bool {
	return height >= c.SuperblockStartBlock && height%c.SuperblockCycle == 0
}

// IsBudgetPaymentBlock reports whether height falls in a budget payment window
// of the legacy budget system, which superblocks replace.
func IsBudgetPaymentBlock(c *config.ConsensusParams, height int32) bool {
	if height < c.BudgetPaymentsStartBlock || height >= c.SuperblockStartBlock {
		return false
	}
	offset := height % c.BudgetPaymentsCycleBlocks
	return offset < c.BudgetPaymentsWindowBlocks
}
