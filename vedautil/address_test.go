package vedautil

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcutil"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vedanetwork/veda-core/config"
)

func codec(t *testing.T, name string) *Codec {
	p, err := config.NewRegistry().Get(name)
	require.NoError(t, err)
	return NewCodec(p)
}

func TestAddressPrefixes(t *testing.T) {
	pkHash := bytes.Repeat([]byte{0x42}, 20)

	tests := []struct {
		network string
		prefix  string
	}{
		{"main", "X"},
		{"test", "y"},
		{"regtest", "y"},
	}
	for _, test := range tests {
		c := codec(t, test.network)
		addr, err := c.EncodePubKeyHash(pkHash)
		require.NoError(t, err)
		assert.Equal(t, test.prefix, addr[:1], test.network)

		decoded, err := c.DecodeAddress(addr)
		require.NoError(t, err)
		assert.Equal(t, pkHash, decoded.ScriptAddress())
		assert.Equal(t, addr, decoded.EncodeAddress())
	}

	_, err := codec(t, "main").EncodePubKeyHash([]byte{1, 2, 3})
	assert.Equal(t, ErrInvalidAddress, errors.Cause(err))
}

func TestScriptAddress(t *testing.T) {
	c := codec(t, "main")
	script := []byte{0x51}
	addr, err := c.EncodeScript(script)
	require.NoError(t, err)
	assert.Equal(t, "7", addr[:1])

	decoded, err := c.DecodeAddress(addr)
	require.NoError(t, err)
	_, ok := decoded.(*btcutil.AddressScriptHash)
	assert.True(t, ok)
	assert.Equal(t, btcutil.Hash160(script), decoded.ScriptAddress())
}

func TestDecodeAddressWrongNetwork(t *testing.T) {
	mainAddr, err := codec(t, "main").EncodePubKeyHash(make([]byte, 20))
	require.NoError(t, err)

	_, err = codec(t, "test").DecodeAddress(mainAddr)
	assert.Equal(t, ErrWrongNetwork, errors.Cause(err))

	_, err = codec(t, "main").DecodeAddress("not-an-address")
	assert.Equal(t, ErrInvalidAddress, errors.Cause(err))
}

func TestGenesisPayoutAddress(t *testing.T) {
	tests := []struct {
		network string
		prefix  string
	}{
		{"main", "X"},
		{"test", "y"},
		{"regtest", "y"},
	}
	for _, test := range tests {
		c := codec(t, test.network)
		addr, err := c.GenesisPayoutAddress()
		require.NoError(t, err, test.network)
		assert.Equal(t, test.prefix, addr[:1], test.network)

		decoded, err := c.DecodeAddress(addr)
		require.NoError(t, err, test.network)
		pubKey := c.params.Genesis.PayoutScript[1 : len(c.params.Genesis.PayoutScript)-1]
		assert.Equal(t, btcutil.Hash160(pubKey), decoded.ScriptAddress(), test.network)
	}

	addr, err := codec(t, "main").GenesisPayoutAddress()
	require.NoError(t, err)
	assert.Equal(t, "XjNhiucNscF2jY7Hc2UQ9PcL4f2sWaJwd2", addr)

	// the payout key is not a point on the curve
	pubKey := codec(t, "main").params.Genesis.PayoutScript[1:66]
	_, err = codec(t, "main").EncodePubKey(pubKey)
	assert.Equal(t, ErrInvalidAddress, errors.Cause(err))
}

func TestEncodeWIF(t *testing.T) {
	priv := chainhash.DoubleHashB([]byte("veda wif"))
	for _, network := range []string{"main", "test"} {
		c := codec(t, network)
		encoded, err := c.EncodeWIF(priv, true)
		require.NoError(t, err)

		wif, err := btcutil.DecodeWIF(encoded)
		require.NoError(t, err)
		assert.True(t, wif.IsForNet(c.net), network)
		assert.True(t, wif.CompressPubKey)
		assert.Equal(t, priv, wif.PrivKey.Serialize())
	}

	_, err := codec(t, "main").EncodeWIF([]byte{1}, true)
	assert.Equal(t, ErrInvalidAddress, errors.Cause(err))
}

func TestAccountKey(t *testing.T) {
	seed := bytes.Repeat([]byte{0x07}, 32)

	mainKey, err := codec(t, "main").AccountKey(seed, 0)
	require.NoError(t, err)
	testKey, err := codec(t, "test").AccountKey(seed, 0)
	require.NoError(t, err)
	regKey, err := codec(t, "regtest").AccountKey(seed, 0)
	require.NoError(t, err)

	assert.True(t, mainKey.IsPrivate())
	assert.Equal(t, "xprv", mainKey.String()[:4])
	assert.Equal(t, "tprv", testKey.String()[:4])
	assert.NotEqual(t, mainKey.String()[4:], testKey.String()[4:])
	assert.Equal(t, testKey.String(), regKey.String())
	assert.Equal(t, uint8(3), mainKey.Depth())

	other, err := codec(t, "main").AccountKey(seed, 1)
	require.NoError(t, err)
	assert.NotEqual(t, mainKey.String(), other.String())
}

func TestChainCfg(t *testing.T) {
	p, err := config.NewRegistry().Get("main")
	require.NoError(t, err)

	net := ChainCfg(p)
	assert.Equal(t, "main", net.Name)
	assert.Equal(t, p.Identity.Net(), net.Net)
	assert.Equal(t, "21967", net.DefaultPort)
	assert.Equal(t, p.GenesisHash, *net.GenesisHash)
	assert.Equal(t, byte(76), net.PubKeyHashAddrID)
	assert.Equal(t, uint32(5), net.HDCoinType)
	assert.Equal(t, int32(1), net.BIP0034Height)
	assert.Len(t, net.DNSSeeds, 11)
	assert.Len(t, net.Checkpoints, 2)
	assert.Equal(t, int32(100), net.Checkpoints[1].Height)
}
