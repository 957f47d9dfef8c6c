package wire

import (
	"errors"
)

var (
	errHeaderSize = errors.New("serialized block header has unexpected size")
)
