package forks

import (
	"github.com/vedanetwork/veda-core/config"
)

const (
	// VersionBitsTopBits is the required value of the top bits of a block
	// version that signals deployments.
	VersionBitsTopBits uint32 = 0x20000000

	// VersionBitsTopMask masks the top bits of a block version.
	VersionBitsTopMask uint32 = 0xe0000000
)

// TimeState classifies a deployment by median time past alone. Lock-in needs
// block counting over the chain and is left to the validator.
type TimeState int

const (
	TimeDisabled TimeState = iota
	TimeDefined
	TimeStarted
	TimeExpired
)

func (s TimeState) String() string {
	switch s {
	case TimeDefined:
		return "defined"
	case TimeStarted:
		return "started"
	case TimeExpired:
		return "expired"
	default:
		return "disabled"
	}
}

// DeploymentTimeState returns where medianTime falls relative to the vote
// period of deployment id.
func DeploymentTimeState(c *config.ConsensusParams, id config.DeploymentID, medianTime int64) TimeState {
	d := &c.Deployments[id]
	switch {
	case d.Disabled():
		return TimeDisabled
	case medianTime >= d.Timeout:
		return TimeExpired
	case medianTime >= d.StartTime:
		return TimeStarted
	default:
		return TimeDefined
	}
}

// DeploymentMask returns the block version bit of deployment id.
func DeploymentMask(c *config.ConsensusParams, id config.DeploymentID) uint32 {
	return uint32(1) << c.Deployments[id].Bit
}

// SignalsDeployment reports whether a block version votes for id.
func SignalsDeployment(c *config.ConsensusParams, id config.DeploymentID, version int32) bool {
	v := uint32(version)
	return v&VersionBitsTopMask == VersionBitsTopBits && v&DeploymentMask(c, id) != 0
}

// DeploymentPeriodStart returns the first height of the signalling window
// containing height.
func DeploymentPeriodStart(c *config.ConsensusParams, id config.DeploymentID, height int32) int32 {
	window := int32(c.DeploymentWindow(id))
	return height - height%window
}
