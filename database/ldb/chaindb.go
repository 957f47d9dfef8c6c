package ldb

import (
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

const (
	DBTypeLevelDB = "leveldb"
	DBTypeMemDB   = "memdb"
)

var ErrUnknownDbType = errors.New("unknown database type")

// ChainDb is the key value store of a node data directory.
type ChainDb struct {
	stor     *leveldb.DB
	path     string
	readonly bool
}

// OpenDB opens the store at path. A missing leveldb directory is created
// unless readonly is set. memdb ignores path and keeps everything in memory.
func OpenDB(dbType, path string, readonly bool) (*ChainDb, error) {
	var (
		stor *leveldb.DB
		err  error
	)
	switch dbType {
	case DBTypeLevelDB:
		stor, err = leveldb.OpenFile(path, &opt.Options{
			ReadOnly:       readonly,
			ErrorIfMissing: readonly,
		})
	case DBTypeMemDB:
		stor, err = leveldb.Open(storage.NewMemStorage(), nil)
	default:
		return nil, errors.Wrapf(ErrUnknownDbType, "%q", dbType)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "open %s at %s", dbType, path)
	}
	return &ChainDb{stor: stor, path: path, readonly: readonly}, nil
}

// Close releases the underlying store.
func (db *ChainDb) Close() error {
	return db.stor.Close()
}

// Path returns the directory the store was opened at.
func (db *ChainDb) Path() string {
	return db.path
}

func isNotFound(err error) bool {
	return err == leveldb.ErrNotFound
}
