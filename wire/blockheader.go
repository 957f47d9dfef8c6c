package wire

import (
	"bytes"
	"encoding/binary"

	"github.com/bitbandi/go-x11"
	btcwire "github.com/btcsuite/btcd/wire"
)

type (
	BlockHeader = btcwire.BlockHeader
	MsgBlock    = btcwire.MsgBlock
	MsgTx       = btcwire.MsgTx
	TxIn        = btcwire.TxIn
	TxOut       = btcwire.TxOut
	OutPoint    = btcwire.OutPoint
	BitcoinNet  = btcwire.BitcoinNet
)

const (
	// BlockHeaderPayload is the serialized size of a block header.
	BlockHeaderPayload = btcwire.MaxBlockHeaderPayload

	// MaxPrevOutIndex marks the null outpoint of a coinbase input.
	MaxPrevOutIndex = btcwire.MaxPrevOutIndex

	// MaxTxInSequenceNum is the final sequence number of an input.
	MaxTxInSequenceNum = btcwire.MaxTxInSequenceNum

	// MessageStartSize is the length of the network magic prefix.
	MessageStartSize = 4
)

// HeaderBytes returns the 80-byte serialization the block identity hash is
// computed over.
func HeaderBytes(h *BlockHeader) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(BlockHeaderPayload)
	if err := h.Serialize(&buf); err != nil {
		return nil, err
	}
	if buf.Len() != BlockHeaderPayload {
		return nil, errHeaderSize
	}
	return buf.Bytes(), nil
}

// BlockHash computes the block identifier hash for the given block header.
// Unlike transaction ids it is X11, not double sha256.
func BlockHash(h *BlockHeader) Hash {
	buf, err := HeaderBytes(h)
	if err != nil {
		// Serializing into a bytes.Buffer never fails for a well formed header.
		panic(err)
	}
	return X11Hash(buf)
}

// X11Hash returns the first 32 bytes of the chained X11 digest of b.
func X11Hash(b []byte) Hash {
	var out Hash
	// The hasher keeps intermediate state, so a fresh one is used per call.
	x11.New().Hash(b, out[:])
	return out
}

// NetFromMessageStart converts the on-wire magic bytes into the numeric
// network identifier used by the message codec.
func NetFromMessageStart(magic [MessageStartSize]byte) BitcoinNet {
	return BitcoinNet(binary.LittleEndian.Uint32(magic[:]))
}
