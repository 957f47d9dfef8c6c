package cmdutils

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/vedanetwork/veda-core/config"
	"github.com/vedanetwork/veda-core/logging"
	"github.com/vedanetwork/veda-core/wire"
)

// Each archived block is framed as
// size(4) | height(8) | hash(32) | serialized block
// where size counts everything after itself.

func encodeBlock(writer io.Writer, height uint64, block *wire.MsgBlock) error {
	hash := wire.BlockHash(&block.Header)
	var raw bytes.Buffer
	if err := block.Serialize(&raw); err != nil {
		return err
	}

	sizeBuf := make([]byte, 4)
	binary.BigEndian.PutUint32(sizeBuf, uint32(8+len(hash)+raw.Len()))
	heightBuf := make([]byte, 8)
	binary.BigEndian.PutUint64(heightBuf, height)

	if _, err := writer.Write(sizeBuf); err != nil {
		return err
	}
	if _, err := writer.Write(heightBuf); err != nil {
		return err
	}
	if _, err := writer.Write(hash[:]); err != nil {
		return err
	}
	_, err := writer.Write(raw.Bytes())
	return err
}

func decodeBlock(reader io.Reader) (uint64, *wire.MsgBlock, error) {
	sizeBuf := make([]byte, 4)
	if _, err := io.ReadFull(reader, sizeBuf); err != nil {
		return 0, nil, err
	}
	size := binary.BigEndian.Uint32(sizeBuf)
	if size < 8+wire.HashSize+wire.BlockHeaderPayload {
		return 0, nil, fmt.Errorf("frame size %d too small", size)
	}

	data := make([]byte, size)
	if _, err := io.ReadFull(reader, data); err != nil {
		return 0, nil, err
	}
	height := binary.BigEndian.Uint64(data[0:8])
	var hash wire.Hash
	copy(hash[:], data[8:8+wire.HashSize])

	block := new(wire.MsgBlock)
	if err := block.Deserialize(bytes.NewReader(data[8+wire.HashSize:])); err != nil {
		return 0, nil, err
	}
	if got := wire.BlockHash(&block.Header); got != hash {
		return 0, nil, fmt.Errorf("hash mismatched %s, %s", hash, got)
	}
	return height, block, nil
}

// ExportGenesis writes the genesis block of p into the specified file,
// truncating any data already present in the file. A ".gz" suffix gzips the
// output.
func ExportGenesis(p *config.Params, fn string) error {
	fh, err := os.OpenFile(fn, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer fh.Close()

	var writer io.Writer = fh
	var gz *gzip.Writer
	if strings.HasSuffix(fn, ".gz") {
		gz = gzip.NewWriter(fh)
		writer = gz
	}
	if err = encodeBlock(writer, 0, p.GenesisBlock); err != nil {
		return err
	}
	if gz != nil {
		if err = gz.Close(); err != nil {
			return errors.Wrapf(err, "flush %s", fn)
		}
	}
	if err = fh.Sync(); err != nil {
		return err
	}

	logging.CPrint(logging.INFO, "exported genesis block", logging.LogFormat{
		"file":    fn,
		"network": p.Name(),
		"hash":    p.GenesisHash.String(),
	})
	return nil
}

// ReadArchive returns the blocks of an archive written by ExportGenesis in
// height order.
func ReadArchive(fn string) ([]*wire.MsgBlock, error) {
	fh, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	var reader io.Reader = fh
	if strings.HasSuffix(fn, ".gz") {
		if reader, err = gzip.NewReader(fh); err != nil {
			return nil, err
		}
	}

	var blocks []*wire.MsgBlock
	for {
		height, block, err := decodeBlock(reader)
		if err == io.EOF {
			return blocks, nil
		}
		if err != nil {
			return nil, fmt.Errorf("at block %d: %v", len(blocks), err)
		}
		if height != uint64(len(blocks)) {
			return nil, fmt.Errorf("height mismatched %d, expect %d", height, len(blocks))
		}
		blocks = append(blocks, block)
	}
}

// VerifyArchive checks that the archive in fn starts with the genesis block
// of p.
func VerifyArchive(p *config.Params, fn string) error {
	blocks, err := ReadArchive(fn)
	if err != nil {
		return err
	}
	if len(blocks) == 0 {
		return errors.Wrapf(config.ErrGenesisMismatch, "%s is empty", fn)
	}
	if hash := wire.BlockHash(&blocks[0].Header); hash != p.GenesisHash {
		return errors.Wrapf(config.ErrGenesisMismatch, "%s starts with %v, %s genesis is %v",
			fn, hash, p.Name(), p.GenesisHash)
	}
	return nil
}
