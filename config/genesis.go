package config

import (
	"encoding/hex"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/txscript"
	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btcutil"
	"github.com/pkg/errors"
	"github.com/vedanetwork/veda-core/consensus"
	"github.com/vedanetwork/veda-core/wire"
)

const (
	genesisCoinbaseMessage = "I create veda coin 04/24/2018 20:30:00."

	genesisPayoutPubKey = "0426d1c5aac0e7b98f37f5f8ca10a18bb915820516723a727093cca65108ac24cdf3467ff06a39ad388ccc3d83802c85df73dba14e3db3835cec6892b9647e92fa"

	// genesisCoinbaseBits is pushed first in the genesis coinbase, it is the
	// compact difficulty of the original bitcoin genesis block.
	genesisCoinbaseBits = 486604799

	// genesisExtraNonce is pushed as a one byte data push, not as OP_4.
	genesisExtraNonce = 4
)

// GenesisInputs are the values a genesis block is derived from.
type GenesisInputs struct {
	Message      string
	PayoutScript []byte
	Time         int64
	Nonce        uint32
	Bits         uint32
	Version      int32
	Reward       int64
}

// genesisInputs returns the inputs shared by every network with the
// network specific header fields filled in.
func genesisInputs(unixTime int64, nonce, bits uint32, version int32, reward int64) GenesisInputs {
	return GenesisInputs{
		Message:      genesisCoinbaseMessage,
		PayoutScript: mustGenesisPayoutScript(),
		Time:         unixTime,
		Nonce:        nonce,
		Bits:         bits,
		Version:      version,
		Reward:       reward,
	}
}

// GenesisPayoutScript returns the pay-to-pubkey script of a genesis output.
func GenesisPayoutScript(pubKeyHex string) ([]byte, error) {
	pubKey, err := hex.DecodeString(pubKeyHex)
	if err != nil {
		return nil, errors.Wrap(err, "decode genesis payout key")
	}
	return txscript.NewScriptBuilder().
		AddData(pubKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
}

func mustGenesisPayoutScript() []byte {
	script, err := GenesisPayoutScript(genesisPayoutPubKey)
	if err != nil {
		panic(err)
	}
	return script
}

// genesisCoinbaseScript builds the signature script of the genesis coinbase:
// push(486604799) push([4]) push(message).
func genesisCoinbaseScript(message string) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddInt64(genesisCoinbaseBits).
		AddOps([]byte{txscript.OP_DATA_1, genesisExtraNonce}).
		AddData([]byte(message)).
		Script()
}

// CreateGenesisBlock builds the coinbase-only block that anchors a chain. The
// coinbase output can never be spent since it did not originally exist in the
// database. The same inputs always produce the same block.
func CreateGenesisBlock(in GenesisInputs) (*wire.MsgBlock, error) {
	if in.Reward < 0 || in.Reward > consensus.MaxMoney {
		return nil, errors.Wrapf(ErrInvalidGenesis, "reward %d out of range", in.Reward)
	}
	sigScript, err := genesisCoinbaseScript(in.Message)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidGenesis, "coinbase script: %v", err)
	}

	coinbase := btcwire.NewMsgTx(1)
	prevOut := btcwire.NewOutPoint(&wire.Hash{}, wire.MaxPrevOutIndex)
	coinbase.AddTxIn(btcwire.NewTxIn(prevOut, sigScript, nil))
	coinbase.AddTxOut(btcwire.NewTxOut(in.Reward, in.PayoutScript))

	txs := []*wire.MsgTx{coinbase}
	return &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    in.Version,
			PrevBlock:  wire.Hash{},
			MerkleRoot: CalcMerkleRoot(txs),
			Timestamp:  time.Unix(in.Time, 0),
			Bits:       in.Bits,
			Nonce:      in.Nonce,
		},
		Transactions: txs,
	}, nil
}

// mustCreateGenesisBlock is only called with hard-coded inputs.
func mustCreateGenesisBlock(in GenesisInputs) *wire.MsgBlock {
	block, err := CreateGenesisBlock(in)
	if err != nil {
		panic(err)
	}
	return block
}

// CalcMerkleRoot returns the root of the transaction merkle tree of txs.
func CalcMerkleRoot(txs []*wire.MsgTx) wire.Hash {
	if len(txs) == 0 {
		return wire.Hash{}
	}
	utxs := make([]*btcutil.Tx, len(txs))
	for i, tx := range txs {
		utxs[i] = btcutil.NewTx(tx)
	}
	store := blockchain.BuildMerkleTreeStore(utxs, false)
	return *store[len(store)-1]
}

// setGenesisHash records the identity of the already built genesis block.
func (p *Params) setGenesisHash() {
	p.GenesisHash = wire.BlockHash(&p.GenesisBlock.Header)
	p.Consensus.HashGenesisBlock = p.GenesisHash
}
