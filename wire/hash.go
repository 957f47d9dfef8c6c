package wire

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// HashSize of array used to store hashes.
const HashSize = chainhash.HashSize

type Hash = chainhash.Hash

// NewHashFromStr creates a Hash from a byte-reversed hex string.
func NewHashFromStr(hash string) (*Hash, error) {
	return chainhash.NewHashFromStr(hash)
}

// DoubleHashH calculates hash(hash(b)) and returns the resulting bytes as a
// Hash. Transaction ids and merkle nodes use it.
func DoubleHashH(b []byte) Hash {
	return chainhash.DoubleHashH(b)
}
