// Copyright (c) 2026 The coinuri developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinutil

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/coinkit/coinuri/coins"
)

var (
	// ErrAmountNotNumeric describes an error where an amount string can
	// not be parsed because it is not a plain decimal number.  Exponent
	// notation is intentionally not supported.
	ErrAmountNotNumeric = errors.New("amount is not a valid decimal number")

	// ErrAmountTooPrecise describes an error where an amount string has
	// more significant decimal places than the atomic unit of the coin
	// can represent.
	ErrAmountTooPrecise = errors.New("amount has too many decimal places")

	// ErrAmountOutOfRange describes an error where an amount string
	// represents a value that does not fit the amount type.
	ErrAmountOutOfRange = errors.New("amount is out of range")
)

// Amount represents a quantity of a coin counted in its atomic unit.  The
// value of one coin in atoms is determined by the unit exponent of the
// associated coin type, so amounts of different coin types must not be
// compared directly.
type Amount int64

// Sign returns -1 when the amount is negative, 0 when it is zero, and +1
// when it is positive.
func (a Amount) Sign() int {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return 1
	}
	return 0
}

// pow10 returns 10^exp for the small exponents used by coin types.
func pow10(exp uint8) int64 {
	result := int64(1)
	for i := uint8(0); i < exp; i++ {
		result *= 10
	}
	return result
}

// ParseAmount parses a decimal string into an exact amount of atomic units
// of the provided coin type.  The parse is exact: a fractional component
// with more significant digits than the coin's unit exponent fails with
// ErrAmountTooPrecise rather than rounding.  A leading minus sign is
// accepted so callers can inspect the sign of the result.
func ParseAmount(coin *coins.CoinType, s string) (Amount, error) {
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	if s == "" {
		return 0, ErrAmountNotNumeric
	}

	whole, frac := s, ""
	if dot := strings.IndexByte(s, '.'); dot != -1 {
		whole, frac = s[:dot], s[dot+1:]
		if strings.IndexByte(frac, '.') != -1 {
			return 0, ErrAmountNotNumeric
		}
	}
	if whole == "" && frac == "" {
		return 0, ErrAmountNotNumeric
	}

	// Digits beyond the unit exponent are only acceptable when they are
	// all zero since they carry no value.
	exp := int(coin.UnitExponent)
	if len(frac) > exp {
		if strings.Trim(frac[exp:], "0") != "" {
			return 0, fmt.Errorf("%w: %d digits exceed exponent %d",
				ErrAmountTooPrecise, len(frac), exp)
		}
		frac = frac[:exp]
	}

	var wholeUnits uint64
	if whole != "" {
		var err error
		wholeUnits, err = strconv.ParseUint(whole, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, ErrAmountOutOfRange
			}
			return 0, ErrAmountNotNumeric
		}
	}

	var fracUnits uint64
	if frac != "" {
		var err error
		fracUnits, err = strconv.ParseUint(frac, 10, 64)
		if err != nil {
			return 0, ErrAmountNotNumeric
		}
		// Scale the fractional digits up to the atomic unit, e.g. "5"
		// after the dot is 5*10^(exp-1) atoms.
		fracUnits *= uint64(pow10(uint8(exp - len(frac))))
	}

	unitsPerCoin := uint64(pow10(coin.UnitExponent))
	if wholeUnits > (math.MaxInt64-fracUnits)/unitsPerCoin {
		return 0, ErrAmountOutOfRange
	}
	atoms := int64(wholeUnits*unitsPerCoin + fracUnits)
	if negative {
		atoms = -atoms
	}
	return Amount(atoms), nil
}

// FormatAmount returns the fixed-point decimal representation of the
// provided amount in whole coins of the provided coin type.  No exponent
// notation is ever produced and insignificant trailing zeros of the
// fractional component are trimmed, so for an 8 digit exponent 6000000
// atoms format as "0.06" and 0 atoms format as "0".
func FormatAmount(coin *coins.CoinType, amount Amount) string {
	atoms := int64(amount)
	var sign string
	if atoms < 0 {
		sign = "-"
		atoms = -atoms
	}

	unitsPerCoin := pow10(coin.UnitExponent)
	whole := atoms / unitsPerCoin
	frac := atoms % unitsPerCoin
	if frac == 0 {
		return sign + strconv.FormatInt(whole, 10)
	}

	fracStr := fmt.Sprintf("%0*d", int(coin.UnitExponent), frac)
	fracStr = strings.TrimRight(fracStr, "0")
	return sign + strconv.FormatInt(whole, 10) + "." + fracStr
}
