package vedautil

import (
	"github.com/btcsuite/btcd/btcec"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcutil"
	"github.com/btcsuite/btcutil/base58"
	"github.com/btcsuite/btcutil/hdkeychain"
	"github.com/pkg/errors"
	"github.com/vedanetwork/veda-core/config"
	"golang.org/x/crypto/ripemd160"
)

var (
	ErrInvalidAddress = errors.New("invalid address")
	ErrWrongNetwork   = errors.New("address belongs to a different network")
)

// Codec encodes and decodes addresses and keys with the version bytes of one
// network.
type Codec struct {
	params *config.Params
	net    *chaincfg.Params
}

// NewCodec returns the codec of p.
func NewCodec(p *config.Params) *Codec {
	return &Codec{params: p, net: ChainCfg(p)}
}

// EncodePubKeyHash returns the pay-to-pubkey-hash address of a 20 byte hash.
func (c *Codec) EncodePubKeyHash(pkHash []byte) (string, error) {
	addr, err := btcutil.NewAddressPubKeyHash(pkHash, c.net)
	if err != nil {
		return "", errors.Wrap(ErrInvalidAddress, err.Error())
	}
	return addr.EncodeAddress(), nil
}

// EncodePubKey returns the pay-to-pubkey-hash address of a serialized public
// key.
func (c *Codec) EncodePubKey(pubKey []byte) (string, error) {
	if _, err := btcec.ParsePubKey(pubKey, btcec.S256()); err != nil {
		return "", errors.Wrap(ErrInvalidAddress, err.Error())
	}
	return c.EncodePubKeyHash(btcutil.Hash160(pubKey))
}

// EncodeScript returns the pay-to-script-hash address of a redeem script.
func (c *Codec) EncodeScript(script []byte) (string, error) {
	addr, err := btcutil.NewAddressScriptHashFromHash(btcutil.Hash160(script), c.net)
	if err != nil {
		return "", errors.Wrap(ErrInvalidAddress, err.Error())
	}
	return addr.EncodeAddress(), nil
}

// DecodeAddress parses a base58 address and makes sure it belongs to the
// codec network.
func (c *Codec) DecodeAddress(addr string) (btcutil.Address, error) {
	decoded, netID, err := base58.CheckDecode(addr)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidAddress, "%s: %v", addr, err)
	}
	if len(decoded) != ripemd160.Size {
		return nil, errors.Wrapf(ErrInvalidAddress, "%s: payload length %d", addr, len(decoded))
	}

	prefixes := c.params.Identity.Base58Prefixes
	switch netID {
	case prefixes.PubKeyHash:
		return btcutil.NewAddressPubKeyHash(decoded, c.net)
	case prefixes.ScriptHash:
		return btcutil.NewAddressScriptHashFromHash(decoded, c.net)
	default:
		return nil, errors.Wrapf(ErrWrongNetwork, "%s has version %d on %s", addr, netID, c.params.Name())
	}
}

// EncodeWIF exports a 32 byte private key in wallet import format.
func (c *Codec) EncodeWIF(privKey []byte, compress bool) (string, error) {
	if len(privKey) != btcec.PrivKeyBytesLen {
		return "", errors.Wrapf(ErrInvalidAddress, "private key length %d", len(privKey))
	}
	priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), privKey)
	wif, err := btcutil.NewWIF(priv, c.net, compress)
	if err != nil {
		return "", err
	}
	return wif.String(), nil
}

// AccountKey derives the BIP44 account key m/44'/coin_type'/account' from a
// wallet seed, serialized with the network extended key version.
func (c *Codec) AccountKey(seed []byte, account uint32) (*hdkeychain.ExtendedKey, error) {
	master, err := hdkeychain.NewMaster(seed, c.net)
	if err != nil {
		return nil, err
	}
	key := master
	for _, i := range []uint32{44, c.params.Identity.HDCoinType, account} {
		key, err = key.Child(hdkeychain.HardenedKeyStart + i)
		if err != nil {
			return nil, err
		}
	}
	return key, nil
}

// GenesisPayoutAddress returns the pay-to-pubkey-hash address of the key the
// genesis coinbase pays to. The key is hashed as pushed; it is not required to
// be a valid curve point.
func (c *Codec) GenesisPayoutAddress() (string, error) {
	pushes, err := txscript.PushedData(c.params.Genesis.PayoutScript)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidAddress, "genesis payout script: %v", err)
	}
	if len(pushes) != 1 || len(pushes[0]) == 0 {
		return "", errors.Wrapf(ErrInvalidAddress, "genesis payout script has %d pushes", len(pushes))
	}
	return c.EncodePubKeyHash(btcutil.Hash160(pushes[0]))
}
