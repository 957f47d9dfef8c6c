package config

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vedanetwork/veda-core/consensus"
	"github.com/vedanetwork/veda-core/wire"
)

func mustHash(t *testing.T, s string) wire.Hash {
	h, err := wire.NewHashFromStr(s)
	require.NoError(t, err)
	return *h
}

func TestGenesisCoinbase(t *testing.T) {
	block, err := CreateGenesisBlock(genesisInputs(1524601800, 561576, 0x1e0ffff0, 1, 0))
	require.NoError(t, err)
	require.Len(t, block.Transactions, 1)

	tx := block.Transactions[0]
	assert.EqualValues(t, 1, tx.Version)
	assert.EqualValues(t, 0, tx.LockTime)
	require.Len(t, tx.TxIn, 1)
	require.Len(t, tx.TxOut, 1)

	in := tx.TxIn[0]
	assert.Equal(t, wire.Hash{}, in.PreviousOutPoint.Hash)
	assert.EqualValues(t, wire.MaxPrevOutIndex, in.PreviousOutPoint.Index)
	assert.EqualValues(t, wire.MaxTxInSequenceNum, in.Sequence)

	wantSigScript := "04ffff001d010427" + hex.EncodeToString([]byte(genesisCoinbaseMessage))
	assert.Equal(t, wantSigScript, hex.EncodeToString(in.SignatureScript))

	out := tx.TxOut[0]
	assert.EqualValues(t, 0, out.Value)
	assert.Equal(t, "41"+genesisPayoutPubKey+"ac", hex.EncodeToString(out.PkScript))

	assert.Equal(t, wire.Hash{}, block.Header.PrevBlock)
	assert.Equal(t, tx.TxHash(), block.Header.MerkleRoot)
}

func TestGenesisBlocks(t *testing.T) {
	tests := []struct {
		name   string
		inputs GenesisInputs
		merkle string
		hash   string
	}{
		{
			name:   "main",
			inputs: genesisInputs(1524601800, 561576, 0x1e0ffff0, 1, 0),
			merkle: "695d90f6fb3fd759c83f6a62bb096c8827db365757a9c8b6784b7d3019a0ece3",
			hash:   "0000038cab4d0145835a5fe6e0838b4c7860f9d0265ff22501e572186aad1938",
		},
		{
			name:   "test",
			inputs: genesisInputs(1390666206, 3861367235, 0x1e0ffff0, 1, 200000*consensus.COIN),
			merkle: "c0c21155ac25dc46c79294698f5f52b7ca41e13dd14c0ef045c3a5e8c0d7d9e2",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			first, err := CreateGenesisBlock(test.inputs)
			require.NoError(t, err)
			second, err := CreateGenesisBlock(test.inputs)
			require.NoError(t, err)

			assert.Equal(t, mustHash(t, test.merkle), first.Header.MerkleRoot)
			assert.Equal(t, first.Header.MerkleRoot, second.Header.MerkleRoot)
			assert.Equal(t, wire.BlockHash(&first.Header), wire.BlockHash(&second.Header))
			if test.hash != "" {
				assert.Equal(t, mustHash(t, test.hash), wire.BlockHash(&first.Header))
			}
		})
	}
}

func TestGenesisHeaderFields(t *testing.T) {
	in := genesisInputs(1417713337, 1096447, 0x207fffff, 1, consensus.GenesisReward)
	block, err := CreateGenesisBlock(in)
	require.NoError(t, err)

	assert.EqualValues(t, 1, block.Header.Version)
	assert.EqualValues(t, 1417713337, block.Header.Timestamp.Unix())
	assert.EqualValues(t, 0x207fffff, block.Header.Bits)
	assert.EqualValues(t, 1096447, block.Header.Nonce)
	assert.EqualValues(t, consensus.GenesisReward, block.Transactions[0].TxOut[0].Value)

	// the same coinbase as main except for the reward
	main, err := CreateGenesisBlock(genesisInputs(1524601800, 561576, 0x1e0ffff0, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, main.Transactions[0].TxIn[0].SignatureScript, block.Transactions[0].TxIn[0].SignatureScript)
	assert.NotEqual(t, main.Header.MerkleRoot, block.Header.MerkleRoot)
}

func TestCreateGenesisBlockErrors(t *testing.T) {
	in := genesisInputs(1524601800, 561576, 0x1e0ffff0, 1, -1)
	_, err := CreateGenesisBlock(in)
	require.Error(t, err)

	in.Reward = consensus.MaxMoney + 1
	_, err = CreateGenesisBlock(in)
	require.Error(t, err)
}

func TestGenesisPayoutScript(t *testing.T) {
	_, err := GenesisPayoutScript("not hex")
	require.Error(t, err)

	script, err := GenesisPayoutScript(genesisPayoutPubKey)
	require.NoError(t, err)
	assert.Len(t, script, 67)
}

func TestCalcMerkleRoot(t *testing.T) {
	assert.Equal(t, wire.Hash{}, CalcMerkleRoot(nil))

	main := mainNetParams()
	root := CalcMerkleRoot(main.GenesisBlock.Transactions)
	assert.Equal(t, main.GenesisBlock.Header.MerkleRoot, root)
}
