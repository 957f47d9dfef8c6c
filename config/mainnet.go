package config

import (
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/vedanetwork/veda-core/consensus"
)

const (
	mainPowLimitHex = "00000fffff000000000000000000000000000000000000000000000000000000"

	// HDCoinTypeMainNet is the BIP44 coin type of the main network.
	HDCoinTypeMainNet uint32 = 5
)

func mainNetParams() *Params {
	powLimit := hexToBig(mainPowLimitHex)
	genesis := genesisInputs(1524601800, 561576, 0x1e0ffff0, 1, 0)
	genesisBlock := mustCreateGenesisBlock(genesis)

	p := &Params{
		Network: MainNet,
		Identity: NetworkIdentity{
			Name:             MainNet.String(),
			MessageStart:     [4]byte{0x1c, 0xbd, 0xcb, 0x4f},
			DefaultPort:      "21967",
			PruneAfterHeight: 100000,
			Base58Prefixes: Base58Prefixes{
				PubKeyHash:   76,  // addresses start with 'X'
				ScriptHash:   16,  // script addresses start with '7'
				SecretKey:    204, // private keys start with '7' or 'X'
				ExtPublicKey: [4]byte{0x04, 0x88, 0xb2, 0x1e},
				ExtSecretKey: [4]byte{0x04, 0x88, 0xad, 0xe4},
			},
			HDCoinType: HDCoinTypeMainNet,
			DNSSeeds: []DNSSeed{
				{"206.189.30.217", "206.189.30.217"},
				{"50.63.160.147", "50.63.160.147"},
				{"167.99.234.99", "167.99.234.99"},
				{"206.81.6.102", "206.81.6.102"},
				{"206.81.6.137", "206.81.6.137"},
				{"206.81.6.156", "206.81.6.156"},
				{"206.81.14.0", "206.81.14.0"},
				{"206.81.14.25", "206.81.14.25"},
				{"206.81.14.70", "206.81.14.70"},
				{"206.81.1.43", "206.81.1.43"},
				{"206.81.1.45", "206.81.1.45"},
			},
			AlertPubKey: "04b36556d4e6822708431cce73eaf447a0ec89a8ae6eb48aa412cb5b56bb6410acaa7cda7000e270b9900eb77667bb421728cab77e720c7ca2118150430c4f418a",
			SporkPubKey: "04549ac134f694c0243f503e8c8a9a986f5de6610049c40b07816809b0d1d06a21b07be27b9bb555931773f62ba6cf35a25fd52f694d4e1106ccd237a7bb899fdd",
		},
		Consensus: ConsensusParams{
			SubsidyHalvingInterval: 210240, // one halving every ~1 year

			MasternodePaymentsStartBlock:     100,
			MasternodePaymentsIncreaseBlock:  158000,
			MasternodePaymentsIncreasePeriod: 576 * 30,
			MasternodeMinimumConfirmations:   15,
			InstantSendKeepLock:              24,

			BudgetPaymentsStartBlock:       328008,
			BudgetPaymentsCycleBlocks:      16616, // ~(60*24*30)/2.6
			BudgetPaymentsWindowBlocks:     100,
			BudgetProposalEstablishingTime: 24 * time.Hour,
			SuperblockStartBlock:           614820,
			SuperblockCycle:                16616,
			GovernanceMinQuorum:            10,
			GovernanceFilterElements:       20000,

			MajorityEnforceBlockUpgrade: 750,
			MajorityRejectBlockOutdated: 950,
			MajorityWindow:              1000,

			BIP34Height: 1,
			BIP34Hash:   *newHashFromStr("000007d91d1254d60e2dd1ae580383070a4ddffa4c64c2eeb4a2f9ecc0414343"),

			PowLimit:                    powLimit,
			PowLimitBits:                blockchain.BigToCompact(powLimit),
			PowTargetTimespan:           30 * time.Minute,
			PowTargetSpacing:            90 * time.Second,
			PowAllowMinDifficultyBlocks: false,
			PowNoRetargeting:            false,
			PowKGWHeight:                15200,
			PowDGWHeight:                34140,
			MaxTimeDrift:                consensus.MaxFutureBlockTime,

			RuleChangeActivationThreshold: 1916, // 95% of 2016
			MinerConfirmationWindow:       2016,
			Deployments: [DefinedDeployments]Deployment{
				DeploymentTestDummy: {
					Bit:       28,
					StartTime: 1199145601, // January 1, 2008
					Timeout:   1230767999, // December 31, 2008
				},
				DeploymentCSV: {
					Bit:       0,
					StartTime: DeploymentNeverActive,
					Timeout:   DeploymentNeverActive,
				},
				DeploymentDIP0001: {
					Bit:       1,
					StartTime: DeploymentNeverActive,
					Timeout:   DeploymentNeverActive,
					Window:    4032,
					Threshold: 3226, // 80% of 4032
				},
			},
		},
		Policy: NodePolicy{
			MaxTipAge:                  6 * time.Hour,
			DelayGetHeadersTime:        24 * time.Hour,
			MiningRequiresPeers:        true,
			DefaultConsistencyChecks:   false,
			RequireStandard:            true,
			MineBlocksOnDemand:         false,
			TestnetToBeDeprecatedField: false,
			PoolMaxTransactions:        3,
			FulfilledRequestExpireTime: time.Hour,
		},
		Genesis:      genesis,
		GenesisBlock: genesisBlock,
		GenesisCheck: GenesisCheck{
			Hash:       newHashFromStr("0000038cab4d0145835a5fe6e0838b4c7860f9d0265ff22501e572186aad1938"),
			MerkleRoot: newHashFromStr("695d90f6fb3fd759c83f6a62bb096c8827db365757a9c8b6784b7d3019a0ece3"),
		},
		Checkpoints: []Checkpoint{
			{0, newHashFromStr("0000038cab4d0145835a5fe6e0838b4c7860f9d0265ff22501e572186aad1938")},
			{100, newHashFromStr("000001ff94b709840c79ac568a4657c5a968555a9d3e38872c37c8ae4c59dda8")},
		},
		CheckpointStats: CheckpointStats{
			Time:     1524601800,
			TxCount:  0,
			TxPerDay: 5000,
		},
	}
	p.setGenesisHash()
	return p
}
