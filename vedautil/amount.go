package vedautil

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vedanetwork/veda-core/consensus"
)

const amountUnit = "VEDA"

var ErrInvalidAmount = errors.New("invalid amount")

// Amount is a quantity of base units, 1e-8 VEDA each.
type Amount int64

// ParseAmount parses a VEDA denominated decimal string such as "1.5".
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidAmount, "%q", s)
	}
	units := d.Shift(8)
	if !units.Equal(units.Truncate(0)) {
		return 0, errors.Wrapf(ErrInvalidAmount, "%q has more than 8 decimals", s)
	}
	if units.Sign() < 0 || units.GreaterThan(decimal.New(consensus.MaxMoney, 0)) {
		return 0, errors.Wrapf(ErrInvalidAmount, "%q out of range", s)
	}
	return Amount(units.IntPart()), nil
}

// ToVeda returns the amount in whole VEDA.
func (a Amount) ToVeda() decimal.Decimal {
	return decimal.New(int64(a), -8)
}

func (a Amount) String() string {
	return a.ToVeda().String() + " " + amountUnit
}
