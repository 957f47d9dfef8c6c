package vedautil

import (
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/vedanetwork/veda-core/config"
)

const coinbaseMaturity = 100

// ChainCfg converts p into the parameter struct the btcsuite codecs expect.
// The result is not registered with chaincfg.
func ChainCfg(p *config.Params) *chaincfg.Params {
	c := &p.Consensus
	prefixes := p.Identity.Base58Prefixes

	seeds := make([]chaincfg.DNSSeed, len(p.Identity.DNSSeeds))
	for i, seed := range p.Identity.DNSSeeds {
		seeds[i] = chaincfg.DNSSeed{Host: seed.Host}
	}
	checkpoints := make([]chaincfg.Checkpoint, len(p.Checkpoints))
	for i, cp := range p.Checkpoints {
		checkpoints[i] = chaincfg.Checkpoint{Height: int32(cp.Height), Hash: cp.Hash}
	}
	genesisHash := p.GenesisHash

	params := &chaincfg.Params{
		Name:                          p.Name(),
		Net:                           p.Identity.Net(),
		DefaultPort:                   p.Identity.DefaultPort,
		DNSSeeds:                      seeds,
		GenesisBlock:                  p.GenesisBlock,
		GenesisHash:                   &genesisHash,
		PowLimit:                      c.PowLimit,
		PowLimitBits:                  c.PowLimitBits,
		BIP0034Height:                 c.BIP34Height,
		CoinbaseMaturity:              coinbaseMaturity,
		SubsidyReductionInterval:      c.SubsidyHalvingInterval,
		TargetTimespan:                c.PowTargetTimespan,
		TargetTimePerBlock:            c.PowTargetSpacing,
		RetargetAdjustmentFactor:      4,
		ReduceMinDifficulty:           c.PowAllowMinDifficultyBlocks,
		GenerateSupported:             p.Policy.MineBlocksOnDemand,
		Checkpoints:                   checkpoints,
		RuleChangeActivationThreshold: c.RuleChangeActivationThreshold,
		MinerConfirmationWindow:       c.MinerConfirmationWindow,
		RelayNonStdTxs:                !p.Policy.RequireStandard,
		PubKeyHashAddrID:              prefixes.PubKeyHash,
		ScriptHashAddrID:              prefixes.ScriptHash,
		PrivateKeyID:                  prefixes.SecretKey,
		HDPrivateKeyID:                prefixes.ExtSecretKey,
		HDPublicKeyID:                 prefixes.ExtPublicKey,
		HDCoinType:                    p.Identity.HDCoinType,
	}
	params.Deployments[chaincfg.DeploymentTestDummy] = deployment(c, config.DeploymentTestDummy)
	params.Deployments[chaincfg.DeploymentCSV] = deployment(c, config.DeploymentCSV)
	return params
}

func deployment(c *config.ConsensusParams, id config.DeploymentID) chaincfg.ConsensusDeployment {
	d := c.Deployments[id]
	return chaincfg.ConsensusDeployment{
		BitNumber:  d.Bit,
		StartTime:  uint64(d.StartTime),
		ExpireTime: uint64(d.Timeout),
	}
}
