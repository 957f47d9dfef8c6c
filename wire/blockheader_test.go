package wire

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHeader() *BlockHeader {
	merkle, _ := NewHashFromStr("695d90f6fb3fd759c83f6a62bb096c8827db365757a9c8b6784b7d3019a0ece3")
	return &BlockHeader{
		Version:    1,
		MerkleRoot: *merkle,
		Timestamp:  time.Unix(1524601800, 0),
		Bits:       0x1e0ffff0,
		Nonce:      561576,
	}
}

func TestHeaderBytes(t *testing.T) {
	buf, err := HeaderBytes(testHeader())
	require.NoError(t, err)
	require.Len(t, buf, BlockHeaderPayload)

	// version, little endian
	assert.Equal(t, []byte{1, 0, 0, 0}, buf[:4])
	// null previous block
	assert.Equal(t, make([]byte, HashSize), buf[4:36])
	// bits, little endian
	assert.Equal(t, []byte{0xf0, 0xff, 0x0f, 0x1e}, buf[72:76])
}

func TestBlockHashDeterministic(t *testing.T) {
	h := testHeader()
	first := BlockHash(h)
	second := BlockHash(h)
	assert.Equal(t, first, second)

	h.Nonce++
	assert.NotEqual(t, first, BlockHash(h))

	buf, err := HeaderBytes(testHeader())
	require.NoError(t, err)
	assert.NotEqual(t, DoubleHashH(buf), first)
}

func TestNetFromMessageStart(t *testing.T) {
	tests := []struct {
		name  string
		magic [MessageStartSize]byte
		want  BitcoinNet
	}{
		{"bitcoin main", [4]byte{0xf9, 0xbe, 0xb4, 0xd9}, 0xd9b4bef9},
		{"veda main", [4]byte{0x1c, 0xbd, 0xcb, 0x4f}, 0x4fcbbd1c},
		{"veda regtest", [4]byte{0xfc, 0xc1, 0xb7, 0xdc}, 0xdcb7c1fc},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, NetFromMessageStart(test.magic), test.name)
	}
}
