package config

import (
	"github.com/btcsuite/btcd/blockchain"
	"github.com/pkg/errors"
	"github.com/vedanetwork/veda-core/wire"
	"gopkg.in/fatih/set.v0"
)

// SelfTest rebuilds the genesis block of p and checks it against the pinned
// hash and merkle root, then checks the internal consistency of the rest of
// the bundle. A non-nil error means the node must not start on p.
func SelfTest(p *Params) error {
	if err := checkGenesis(p); err != nil {
		return err
	}
	if err := checkConsensus(&p.Consensus); err != nil {
		return errors.Wrapf(err, "network %s", p.Name())
	}
	if err := checkIdentity(&p.Identity); err != nil {
		return errors.Wrapf(err, "network %s", p.Name())
	}
	if err := checkCheckpoints(p); err != nil {
		return errors.Wrapf(err, "network %s", p.Name())
	}
	return nil
}

func checkGenesis(p *Params) error {
	block, err := CreateGenesisBlock(p.Genesis)
	if err != nil {
		return errors.Wrapf(err, "network %s", p.Name())
	}
	if len(block.Transactions) != 1 {
		return errors.Wrapf(ErrGenesisMismatch, "network %s: %d transactions", p.Name(), len(block.Transactions))
	}
	if block.Header.PrevBlock != (wire.Hash{}) {
		return errors.Wrapf(ErrGenesisMismatch, "network %s: previous block is not null", p.Name())
	}

	hash := wire.BlockHash(&block.Header)
	if hash != p.GenesisHash {
		return errors.Wrapf(ErrGenesisMismatch, "network %s: rebuilt hash %v, stored %v",
			p.Name(), hash, p.GenesisHash)
	}

	check := p.GenesisCheck
	if check.MerkleRoot != nil && !check.MerkleRoot.IsEqual(&block.Header.MerkleRoot) {
		return errors.Wrapf(ErrGenesisMismatch, "network %s: merkle root %v, expected %v",
			p.Name(), block.Header.MerkleRoot, check.MerkleRoot)
	}
	if check.Hash != nil {
		if !check.Hash.IsEqual(&hash) {
			return errors.Wrapf(ErrGenesisMismatch, "network %s: hash %v, expected %v",
				p.Name(), hash, check.Hash)
		}
		if err := checkProofOfWork(&hash, block.Header.Bits, &p.Consensus); err != nil {
			return errors.Wrapf(err, "network %s", p.Name())
		}
	}
	return nil
}

// checkProofOfWork makes sure hash meets the target encoded in bits and that
// the target does not exceed the network limit.
func checkProofOfWork(hash *wire.Hash, bits uint32, c *ConsensusParams) error {
	target := blockchain.CompactToBig(bits)
	if target.Sign() <= 0 {
		return errors.Wrapf(ErrGenesisMismatch, "target %064x is not positive", target)
	}
	if target.Cmp(c.PowLimit) > 0 {
		return errors.Wrapf(ErrGenesisMismatch, "target %064x above pow limit %064x", target, c.PowLimit)
	}
	if blockchain.HashToBig(hash).Cmp(target) > 0 {
		return errors.Wrapf(ErrGenesisMismatch, "hash %v above target %064x", hash, target)
	}
	return nil
}

func checkConsensus(c *ConsensusParams) error {
	if c.SubsidyHalvingInterval <= 0 {
		return errors.Wrap(ErrInvalidParams, "subsidy halving interval must be positive")
	}
	if c.PowTargetSpacing <= 0 || c.PowTargetTimespan < c.PowTargetSpacing {
		return errors.Wrapf(ErrInvalidParams, "bad pow timing %v/%v", c.PowTargetTimespan, c.PowTargetSpacing)
	}
	if c.PowLimit == nil || c.PowLimit.Sign() <= 0 {
		return errors.Wrap(ErrInvalidParams, "pow limit must be positive")
	}
	if blockchain.CompactToBig(c.PowLimitBits).Cmp(c.PowLimit) > 0 {
		return errors.Wrapf(ErrInvalidParams, "pow limit bits %08x exceed pow limit", c.PowLimitBits)
	}
	if c.RuleChangeActivationThreshold > c.MinerConfirmationWindow {
		return errors.Wrapf(ErrInvalidParams, "activation threshold %d above confirmation window %d",
			c.RuleChangeActivationThreshold, c.MinerConfirmationWindow)
	}
	if c.MajorityEnforceBlockUpgrade > c.MajorityWindow || c.MajorityRejectBlockOutdated > c.MajorityWindow {
		return errors.Wrapf(ErrInvalidParams, "majority thresholds %d/%d above window %d",
			c.MajorityEnforceBlockUpgrade, c.MajorityRejectBlockOutdated, c.MajorityWindow)
	}
	if c.SuperblockStartBlock <= c.BudgetPaymentsStartBlock {
		return errors.Wrapf(ErrInvalidParams, "superblock start %d not above budget start %d",
			c.SuperblockStartBlock, c.BudgetPaymentsStartBlock)
	}

	bits := set.New(set.NonThreadSafe)
	for id := DeploymentID(0); id < DefinedDeployments; id++ {
		d := &c.Deployments[id]
		if c.DeploymentThreshold(id) > c.DeploymentWindow(id) {
			return errors.Wrapf(ErrInvalidParams, "deployment %s threshold %d above window %d",
				id, c.DeploymentThreshold(id), c.DeploymentWindow(id))
		}
		if !d.Disabled() && d.StartTime >= d.Timeout {
			return errors.Wrapf(ErrInvalidParams, "deployment %s starts at %d, not before timeout %d",
				id, d.StartTime, d.Timeout)
		}
		if d.Bit >= 29 {
			return errors.Wrapf(ErrInvalidParams, "deployment %s uses reserved bit %d", id, d.Bit)
		}
		if bits.Has(d.Bit) {
			return errors.Wrapf(ErrInvalidParams, "deployment %s reuses bit %d", id, d.Bit)
		}
		bits.Add(d.Bit)
	}
	return nil
}

func checkIdentity(id *NetworkIdentity) error {
	if id.MessageStart == [wire.MessageStartSize]byte{} {
		return errors.Wrap(ErrInvalidParams, "message start is empty")
	}
	if id.DefaultPort == "" {
		return errors.Wrap(ErrInvalidParams, "default port is empty")
	}

	prefixes := id.Base58Prefixes
	seen := set.New(set.NonThreadSafe)
	for _, kind := range []struct {
		name  string
		bytes []byte
	}{
		{"pubkey hash", []byte{prefixes.PubKeyHash}},
		{"script hash", []byte{prefixes.ScriptHash}},
		{"secret key", []byte{prefixes.SecretKey}},
		{"extended public key", prefixes.ExtPublicKey[:]},
		{"extended secret key", prefixes.ExtSecretKey[:]},
	} {
		key := string(kind.bytes)
		if seen.Has(key) {
			return errors.Wrapf(ErrInvalidParams, "%s prefix %x is not unique", kind.name, kind.bytes)
		}
		seen.Add(key)
	}

	for _, seed := range id.DNSSeeds {
		if seed.Host == "" {
			return errors.Wrapf(ErrInvalidParams, "dns seed %q has no host", seed.Name)
		}
	}
	return nil
}

func checkCheckpoints(p *Params) error {
	for i := 1; i < len(p.Checkpoints); i++ {
		if p.Checkpoints[i].Height <= p.Checkpoints[i-1].Height {
			return errors.Wrapf(ErrInvalidParams, "checkpoint %d at height %d is not above %d",
				i, p.Checkpoints[i].Height, p.Checkpoints[i-1].Height)
		}
	}
	for _, cp := range p.Checkpoints {
		if cp.Hash == nil {
			return errors.Wrapf(ErrInvalidParams, "checkpoint at height %d has no hash", cp.Height)
		}
		if cp.Height == 0 && p.GenesisCheck.Hash != nil && !cp.Hash.IsEqual(&p.GenesisHash) {
			return errors.Wrapf(ErrGenesisMismatch, "checkpoint 0 %v is not the genesis block %v", cp.Hash, p.GenesisHash)
		}
	}
	return nil
}
