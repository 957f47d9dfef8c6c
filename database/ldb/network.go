package ldb

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/vedanetwork/veda-core/config"
	"github.com/vedanetwork/veda-core/logging"
	"github.com/vedanetwork/veda-core/wire"
)

var (
	networkKey = []byte("NETWORK")

	ErrNetworkMismatch = errors.New("data directory belongs to a different network")
	ErrNoNetworkRecord = errors.New("data directory has no network record")
	errBadRecord       = errors.New("malformed network record")
)

// NetworkRecord identifies the network a data directory was created for.
type NetworkRecord struct {
	Name         string
	MessageStart [wire.MessageStartSize]byte
	GenesisHash  wire.Hash
}

// Length = 4(MessageStart) + 32(GenesisHash) + len(Name)
const networkRecordMinSize = wire.MessageStartSize + wire.HashSize

func newNetworkRecord(p *config.Params) *NetworkRecord {
	return &NetworkRecord{
		Name:         p.Name(),
		MessageStart: p.Identity.MessageStart,
		GenesisHash:  p.GenesisHash,
	}
}

func (r *NetworkRecord) bytes() []byte {
	buf := make([]byte, networkRecordMinSize+len(r.Name))
	copy(buf, r.MessageStart[:])
	copy(buf[wire.MessageStartSize:], r.GenesisHash[:])
	copy(buf[networkRecordMinSize:], r.Name)
	return buf
}

func decodeNetworkRecord(data []byte) (*NetworkRecord, error) {
	if len(data) <= networkRecordMinSize {
		return nil, errors.Wrapf(errBadRecord, "length %d", len(data))
	}
	r := &NetworkRecord{Name: string(data[networkRecordMinSize:])}
	copy(r.MessageStart[:], data[:wire.MessageStartSize])
	copy(r.GenesisHash[:], data[wire.MessageStartSize:networkRecordMinSize])
	return r, nil
}

func (r *NetworkRecord) matches(other *NetworkRecord) bool {
	return r.Name == other.Name &&
		bytes.Equal(r.MessageStart[:], other.MessageStart[:]) &&
		r.GenesisHash.IsEqual(&other.GenesisHash)
}

// FetchNetwork returns the stored network record.
func (db *ChainDb) FetchNetwork() (*NetworkRecord, error) {
	data, err := db.stor.Get(networkKey, nil)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNoNetworkRecord
		}
		return nil, err
	}
	return decodeNetworkRecord(data)
}

// CheckNetwork makes sure the data directory belongs to p. A fresh writable
// directory is stamped with p on first use.
func (db *ChainDb) CheckNetwork(p *config.Params) error {
	want := newNetworkRecord(p)
	stored, err := db.FetchNetwork()
	switch {
	case err == ErrNoNetworkRecord && !db.readonly:
		batch := new(leveldb.Batch)
		batch.Put(networkKey, want.bytes())
		if err = db.stor.Write(batch, nil); err != nil {
			return errors.Wrap(err, "write network record")
		}
		logging.CPrint(logging.INFO, "data directory initialized", logging.LogFormat{
			"path":    db.path,
			"network": want.Name,
			"genesis": want.GenesisHash.String(),
		})
		return nil
	case err != nil:
		return err
	}

	if !stored.matches(want) {
		return errors.Wrapf(ErrNetworkMismatch, "%s holds %s (genesis %v), node runs %s (genesis %v)",
			db.path, stored.Name, stored.GenesisHash, want.Name, want.GenesisHash)
	}
	return nil
}
