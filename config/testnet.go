package config

import (
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/vedanetwork/veda-core/consensus"
)

// HDCoinTypeTestNet is the BIP44 coin type shared by every test network.
const HDCoinTypeTestNet uint32 = 1

var testBase58Prefixes = Base58Prefixes{
	PubKeyHash:   140, // addresses start with 'y'
	ScriptHash:   19,  // script addresses start with '8' or '9'
	SecretKey:    239, // private keys start with '9' or 'c'
	ExtPublicKey: [4]byte{0x04, 0x35, 0x87, 0xcf},
	ExtSecretKey: [4]byte{0x04, 0x35, 0x83, 0x94},
}

func testNetParams() *Params {
	powLimit := hexToBig(mainPowLimitHex)
	genesis := genesisInputs(1390666206, 3861367235, 0x1e0ffff0, 1, consensus.GenesisReward)
	genesisBlock := mustCreateGenesisBlock(genesis)

	p := &Params{
		Network: TestNet,
		Identity: NetworkIdentity{
			Name:             TestNet.String(),
			MessageStart:     [4]byte{0xce, 0xe2, 0xca, 0xff},
			DefaultPort:      "31967",
			PruneAfterHeight: 1000,
			Base58Prefixes:   testBase58Prefixes,
			HDCoinType:       HDCoinTypeTestNet,
			DNSSeeds: []DNSSeed{
				{"vedadot.io", "testnet-seed.vedadot.io"},
				{"masternode.io", "test.dnsseed.masternode.io"},
			},
			AlertPubKey: "04517d8a699cb43d3938d7b24faaff7cda448ca4ea267723ba614784de661949bf632d6304316b244646dea079735b9a6fc4af804efb4752075b9fe2245e14e412",
			SporkPubKey: "046f78dcf911fbd61910136f7f0f8d90578f68d0b3ac973b5040fb7afb501b5939f39b108b0569dca71488f5bbf498d92e4d1194f6f941307ffd95f75e76869f0e",
		},
		Consensus: ConsensusParams{
			SubsidyHalvingInterval: 210240,

			// MasternodePaymentsStartBlock only has to stay below the
			// increase block.
			MasternodePaymentsStartBlock:     4010,
			MasternodePaymentsIncreaseBlock:  4030,
			MasternodePaymentsIncreasePeriod: 10,
			MasternodeMinimumConfirmations:   1,
			InstantSendKeepLock:              6,

			BudgetPaymentsStartBlock:       4100,
			BudgetPaymentsCycleBlocks:      50,
			BudgetPaymentsWindowBlocks:     10,
			BudgetProposalEstablishingTime: 20 * time.Minute,
			SuperblockStartBlock:           4200, // must be above BudgetPaymentsStartBlock
			SuperblockCycle:                24,   // hourly superblocks
			GovernanceMinQuorum:            1,
			GovernanceFilterElements:       500,

			MajorityEnforceBlockUpgrade: 51,
			MajorityRejectBlockOutdated: 75,
			MajorityWindow:              100,

			BIP34Height: 1,
			BIP34Hash:   *newHashFromStr("0000047d24635e347be3aaaeb66c26be94901a2f962feccd4f95090191f208c1"),

			PowLimit:                    powLimit,
			PowLimitBits:                blockchain.BigToCompact(powLimit),
			PowTargetTimespan:           24 * time.Hour,
			PowTargetSpacing:            90 * time.Second,
			PowAllowMinDifficultyBlocks: true,
			PowNoRetargeting:            false,
			PowKGWHeight:                4001, // nPowKGWHeight >= nPowDGWHeight means "no KGW"
			PowDGWHeight:                4001,
			MaxTimeDrift:                consensus.MaxFutureBlockTime,

			RuleChangeActivationThreshold: 1512, // 75% for testchains
			MinerConfirmationWindow:       2016,
			Deployments: [DefinedDeployments]Deployment{
				DeploymentTestDummy: {
					Bit:       28,
					StartTime: 1199145601, // January 1, 2008
					Timeout:   1230767999, // December 31, 2008
				},
				DeploymentCSV: {
					Bit:       0,
					StartTime: 1506556800, // September 28th, 2017
					Timeout:   1538092800, // September 28th, 2018
				},
				DeploymentDIP0001: {
					Bit:       1,
					StartTime: 1505692800, // Sep 18th, 2017
					Timeout:   1537228800, // Sep 18th, 2018
					Window:    100,
					Threshold: 50, // 50% of 100
				},
			},
		},
		Policy: NodePolicy{
			MaxTipAge:                  0x7fffffff * time.Second,
			DelayGetHeadersTime:        24 * time.Hour,
			MiningRequiresPeers:        true,
			DefaultConsistencyChecks:   false,
			RequireStandard:            false,
			MineBlocksOnDemand:         false,
			TestnetToBeDeprecatedField: true,
			PoolMaxTransactions:        3,
			FulfilledRequestExpireTime: 5 * time.Minute,
		},
		Genesis:      genesis,
		GenesisBlock: genesisBlock,
		GenesisCheck: GenesisCheck{
			MerkleRoot: newHashFromStr("c0c21155ac25dc46c79294698f5f52b7ca41e13dd14c0ef045c3a5e8c0d7d9e2"),
		},
		Checkpoints: []Checkpoint{
			{0, newHashFromStr("00000741b645d3fc16a05f555adcca84674c162704b1ece207ffcb394e90dcc4")},
		},
		CheckpointStats: CheckpointStats{
			Time:     1521799201,
			TxCount:  0,
			TxPerDay: 500,
		},
	}
	p.setGenesisHash()
	return p
}
