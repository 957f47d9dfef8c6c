package config

import (
	"math/big"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/vedanetwork/veda-core/consensus"
)

// regressionPowLimit is the highest proof of work value a block can have for
// the regression test network. It is the value 2^255 - 1.
var regressionPowLimit = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(1))

// regTestDeploymentTimeout keeps every regtest vote open.
const regTestDeploymentTimeout int64 = 999999999999

func regTestParams() *Params {
	powLimit := new(big.Int).Set(regressionPowLimit)
	genesis := genesisInputs(1417713337, 1096447, 0x207fffff, 1, consensus.GenesisReward)
	genesisBlock := mustCreateGenesisBlock(genesis)

	p := &Params{
		Network: RegTest,
		Identity: NetworkIdentity{
			Name:             RegTest.String(),
			MessageStart:     [4]byte{0xfc, 0xc1, 0xb7, 0xdc},
			DefaultPort:      "41993",
			PruneAfterHeight: 1000,
			Base58Prefixes:   testBase58Prefixes,
			HDCoinType:       HDCoinTypeTestNet,
		},
		Consensus: ConsensusParams{
			SubsidyHalvingInterval: 150,

			MasternodePaymentsStartBlock:     240,
			MasternodePaymentsIncreaseBlock:  350,
			MasternodePaymentsIncreasePeriod: 10,
			MasternodeMinimumConfirmations:   1,
			InstantSendKeepLock:              6,

			BudgetPaymentsStartBlock:       1000,
			BudgetPaymentsCycleBlocks:      50,
			BudgetPaymentsWindowBlocks:     10,
			BudgetProposalEstablishingTime: 20 * time.Minute,
			SuperblockStartBlock:           1500,
			SuperblockCycle:                10,
			GovernanceMinQuorum:            1,
			GovernanceFilterElements:       100,

			MajorityEnforceBlockUpgrade: 750,
			MajorityRejectBlockOutdated: 950,
			MajorityWindow:              1000,

			// BIP34 has not necessarily activated on regtest.
			BIP34Height: -1,

			PowLimit:                    powLimit,
			PowLimitBits:                blockchain.BigToCompact(powLimit),
			PowTargetTimespan:           24 * time.Hour,
			PowTargetSpacing:            90 * time.Second,
			PowAllowMinDifficultyBlocks: true,
			PowNoRetargeting:            true,
			PowKGWHeight:                15200,
			PowDGWHeight:                34140,
			MaxTimeDrift:                consensus.MaxFutureBlockTime,

			RuleChangeActivationThreshold: 108, // 75% of 144
			MinerConfirmationWindow:       144,
			Deployments: [DefinedDeployments]Deployment{
				DeploymentTestDummy: {
					Bit:       28,
					StartTime: 0,
					Timeout:   regTestDeploymentTimeout,
				},
				DeploymentCSV: {
					Bit:       0,
					StartTime: 0,
					Timeout:   regTestDeploymentTimeout,
				},
				DeploymentDIP0001: {
					Bit:       1,
					StartTime: 0,
					Timeout:   regTestDeploymentTimeout,
				},
			},
		},
		Policy: NodePolicy{
			MaxTipAge:                  6 * time.Hour,
			DelayGetHeadersTime:        0,
			MiningRequiresPeers:        false,
			DefaultConsistencyChecks:   true,
			RequireStandard:            false,
			MineBlocksOnDemand:         true,
			TestnetToBeDeprecatedField: false,
			FulfilledRequestExpireTime: 5 * time.Minute,
		},
		Genesis:      genesis,
		GenesisBlock: genesisBlock,
		Checkpoints: []Checkpoint{
			{0, newHashFromStr("13c7f6f7798b0fc512bfde9d92bfa9257dcecb349fd0045fd4dfbf4d572fcbdb")},
		},
	}
	p.setGenesisHash()
	return p
}
