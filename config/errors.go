package config

import (
	"errors"
)

var (
	ErrUnknownNetwork  = errors.New("unknown network")
	ErrAlreadySelected = errors.New("a different network is already selected")
	ErrGenesisMismatch = errors.New("genesis block does not match the hard-coded value")
	ErrInvalidGenesis  = errors.New("invalid genesis inputs")
	ErrInvalidParams   = errors.New("invalid network parameters")
	ErrInvalidDbType   = errors.New("invalid datastore type")
)
