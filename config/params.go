package config

import (
	"math/big"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vedanetwork/veda-core/wire"
)

// Network is the closed set of chains this node knows how to run.
type Network uint8

const (
	MainNet Network = iota
	TestNet
	RegTest

	numNetworks
)

var networkNames = [numNetworks]string{
	MainNet: "main",
	TestNet: "test",
	RegTest: "regtest",
}

// String returns the network id used on the command line and in config files.
func (n Network) String() string {
	if n >= numNetworks {
		return "unknown"
	}
	return networkNames[n]
}

// Networks returns every supported network in declaration order.
func Networks() []Network {
	return []Network{MainNet, TestNet, RegTest}
}

// ParseNetwork maps a network id to its Network. Any name other than "main",
// "test" and "regtest" is a configuration error naming the offending value.
func ParseNetwork(name string) (Network, error) {
	for n, s := range networkNames {
		if s == name {
			return Network(n), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownNetwork, "unknown chain %q", name)
}

// DeploymentID indexes the version-bits deployments of ConsensusParams.
type DeploymentID int

const (
	DeploymentTestDummy DeploymentID = iota
	DeploymentCSV
	DeploymentDIP0001

	// DefinedDeployments is the number of currently defined deployments.
	// It must always come last.
	DefinedDeployments
)

var deploymentNames = [DefinedDeployments]string{
	DeploymentTestDummy: "testdummy",
	DeploymentCSV:       "csv",
	DeploymentDIP0001:   "dip0001",
}

func (id DeploymentID) String() string {
	if id < 0 || id >= DefinedDeployments {
		return "unknown"
	}
	return deploymentNames[id]
}

// DeploymentNeverActive is used as both start and timeout of a deployment that
// is disabled on a network.
const DeploymentNeverActive int64 = 9999999999

// Deployment defines a version-bits rule change vote.
type Deployment struct {
	// Bit is the bit position in the block version that signals support.
	Bit uint8

	// StartTime is the median time past at which voting begins.
	StartTime int64

	// Timeout is the median time past after which the vote fails.
	Timeout int64

	// Window and Threshold override the network wide confirmation window
	// and activation threshold when non-zero.
	Window    uint32
	Threshold uint32
}

// Disabled reports whether both ends of the vote are the never-active sentinel.
func (d *Deployment) Disabled() bool {
	return d.StartTime == DeploymentNeverActive && d.Timeout == DeploymentNeverActive
}

// Checkpoint identifies a known good point in the block chain.
type Checkpoint struct {
	Height uint64
	Hash   *wire.Hash
}

// CheckpointStats are the aggregates recorded at the last checkpoint and used
// to estimate sync progress.
type CheckpointStats struct {
	// Time is the UNIX timestamp of the last checkpoint block.
	Time int64
	// TxCount is the number of transactions between genesis and the last
	// checkpoint.
	TxCount uint64
	// TxPerDay is the estimated transaction rate after the checkpoint.
	TxPerDay float64
}

// DNSSeed is a (label, host) pair handed to the seed resolver.
type DNSSeed struct {
	Name string
	Host string
}

func (d DNSSeed) String() string {
	return d.Host
}

// Base58Prefixes holds the address version bytes of one network.
type Base58Prefixes struct {
	PubKeyHash   byte
	ScriptHash   byte
	SecretKey    byte
	ExtPublicKey [4]byte
	ExtSecretKey [4]byte
}

// NetworkIdentity keeps peers and addresses of different networks apart.
type NetworkIdentity struct {
	Name             string
	MessageStart     [wire.MessageStartSize]byte
	DefaultPort      string
	PruneAfterHeight uint64
	Base58Prefixes   Base58Prefixes
	HDCoinType       uint32
	DNSSeeds         []DNSSeed
	AlertPubKey      string
	SporkPubKey      string
}

// Net returns the numeric form of MessageStart.
func (id *NetworkIdentity) Net() wire.BitcoinNet {
	return wire.NetFromMessageStart(id.MessageStart)
}

// ConsensusParams are the rules every participant of a network must agree on.
type ConsensusParams struct {
	SubsidyHalvingInterval int32

	MasternodePaymentsStartBlock     int32
	MasternodePaymentsIncreaseBlock  int32
	MasternodePaymentsIncreasePeriod int32
	MasternodeMinimumConfirmations   int32
	InstantSendKeepLock              int32

	BudgetPaymentsStartBlock       int32
	BudgetPaymentsCycleBlocks      int32
	BudgetPaymentsWindowBlocks     int32
	BudgetProposalEstablishingTime time.Duration
	SuperblockStartBlock           int32
	SuperblockCycle                int32
	GovernanceMinQuorum            int32
	GovernanceFilterElements       int32

	MajorityEnforceBlockUpgrade int32
	MajorityRejectBlockOutdated int32
	MajorityWindow              int32

	// BIP34Height is -1 when the height-in-coinbase rule is not known to be
	// active.
	BIP34Height int32
	BIP34Hash   wire.Hash

	PowLimit                    *big.Int
	PowLimitBits                uint32
	PowTargetTimespan           time.Duration
	PowTargetSpacing            time.Duration
	PowAllowMinDifficultyBlocks bool
	PowNoRetargeting            bool
	PowKGWHeight                int32
	PowDGWHeight                int32

	// MaxTimeDrift bounds how far a block timestamp may run ahead of
	// network adjusted time.
	MaxTimeDrift time.Duration

	RuleChangeActivationThreshold uint32
	MinerConfirmationWindow       uint32
	Deployments                   [DefinedDeployments]Deployment

	HashGenesisBlock   wire.Hash
	MinimumChainWork   wire.Hash
	DefaultAssumeValid wire.Hash
}

// DeploymentWindow returns the signalling window of a deployment.
func (c *ConsensusParams) DeploymentWindow(id DeploymentID) uint32 {
	if w := c.Deployments[id].Window; w != 0 {
		return w
	}
	return c.MinerConfirmationWindow
}

// DeploymentThreshold returns the number of signalling blocks within the
// window needed to lock a deployment in.
func (c *ConsensusParams) DeploymentThreshold(id DeploymentID) uint32 {
	if th := c.Deployments[id].Threshold; th != 0 {
		return th
	}
	return c.RuleChangeActivationThreshold
}

// DifficultyAdjustmentInterval is the number of blocks in one retarget period.
func (c *ConsensusParams) DifficultyAdjustmentInterval() int64 {
	return int64(c.PowTargetTimespan / c.PowTargetSpacing)
}

// NodePolicy holds node behaviour that differs per network but is not part of
// consensus.
type NodePolicy struct {
	MaxTipAge                  time.Duration
	DelayGetHeadersTime        time.Duration
	MiningRequiresPeers        bool
	DefaultConsistencyChecks   bool
	RequireStandard            bool
	MineBlocksOnDemand         bool
	TestnetToBeDeprecatedField bool
	PoolMaxTransactions        int
	FulfilledRequestExpireTime time.Duration
}

// GenesisCheck pins the expected genesis identity of a network. Nil fields
// are not checked.
type GenesisCheck struct {
	Hash       *wire.Hash
	MerkleRoot *wire.Hash
}

// Params bundles everything a node needs to know about one network. A Params
// value is built once by the registry and is read-only afterwards.
type Params struct {
	Network   Network
	Identity  NetworkIdentity
	Consensus ConsensusParams
	Policy    NodePolicy

	Genesis      GenesisInputs
	GenesisBlock *wire.MsgBlock
	GenesisHash  wire.Hash
	GenesisCheck GenesisCheck

	Checkpoints     []Checkpoint
	CheckpointStats CheckpointStats
}

// Name returns the network id string, e.g. "main".
func (p *Params) Name() string {
	return p.Identity.Name
}

// LatestCheckpoint returns the highest hard-coded checkpoint, or nil.
func (p *Params) LatestCheckpoint() *Checkpoint {
	if len(p.Checkpoints) == 0 {
		return nil
	}
	return &p.Checkpoints[len(p.Checkpoints)-1]
}

// IsTestNetwork reports whether the network is meant for development only.
func (p *Params) IsTestNetwork() bool {
	return p.Network != MainNet
}

// newHashFromStr converts the passed big-endian hex string into a wire.Hash.
// It only differs from the one available in wire in that it panics on an
// error since it will only (and must only) be called with hard-coded, and
// therefore known good, hashes.
func newHashFromStr(hexStr string) *wire.Hash {
	hash, err := wire.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}

// hexToBig converts a hard-coded big-endian hex string into a big.Int and
// panics on malformed input.
func hexToBig(hexStr string) *big.Int {
	n, ok := new(big.Int).SetString(strings.TrimPrefix(hexStr, "0x"), 16)
	if !ok {
		panic("invalid hex in source file: " + hexStr)
	}
	return n
}
