// Copyright (c) 2026 The coinuri developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coins

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateCoin describes an error where a coin type cannot be
	// registered because another coin type with the same symbol has
	// already been registered.
	ErrDuplicateCoin = errors.New("duplicate coin type")
)

// CoinType defines a supported currency along with the parameters that are
// needed to recognize its payment URIs and addresses.  These values are
// well-defined and unique per currency and network.
type CoinType struct {
	// Name defines a human-readable identifier for the currency.
	Name string

	// Symbol defines the ticker symbol for the currency.  It must be
	// unique across all registered coin types.
	Symbol string

	// UriScheme defines the scheme prefix used by payment URIs for the
	// currency.  Multiple coin types may share the same scheme, for
	// example a currency and its test network.  The order in which such
	// coin types are registered decides which one an ambiguous address
	// resolves to.
	UriScheme string

	// UnitExponent defines the number of decimal places between the
	// currency unit and its atomic unit.  For example, an exponent of 8
	// means 1 coin is 1e8 atoms.
	UnitExponent uint8

	// PubKeyHashAddrID is the magic prefix bytes for pay-to-pubkey-hash
	// addresses.  It is only used by coin types whose addresses are
	// base58 encoded.
	PubKeyHashAddrID [2]byte

	// ScriptHashAddrID is the magic prefix bytes for pay-to-script-hash
	// addresses.  It is only used by coin types whose addresses are
	// base58 encoded.
	ScriptHashAddrID [2]byte

	// Bech32HRP is the human-readable part for bech32 encoded segwit
	// addresses.  A coin type with a non-empty value uses bech32
	// addresses exclusively.
	Bech32HRP string
}

// String returns the name of the coin type.
func (c *CoinType) String() string {
	return c.Name
}

var (
	// registeredCoins houses all registered coin types in registration
	// order.
	registeredCoins []*CoinType

	// schemeIdx maps a URI scheme to the coin types that claim it, in
	// registration order.
	schemeIdx = make(map[string][]*CoinType)

	// symbolIdx maps a ticker symbol to its registered coin type.
	symbolIdx = make(map[string]*CoinType)
)

// Register adds the provided coin type to the registry.  The registration
// order is significant: when several coin types share a URI scheme, address
// resolution tries them in this order and binds to the first match.
//
// An error is returned when a coin type with the same symbol has already
// been registered.
func Register(coin *CoinType) error {
	if _, ok := symbolIdx[coin.Symbol]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCoin, coin.Symbol)
	}
	registeredCoins = append(registeredCoins, coin)
	schemeIdx[coin.UriScheme] = append(schemeIdx[coin.UriScheme], coin)
	symbolIdx[coin.Symbol] = coin
	return nil
}

// mustRegister performs the same function as Register except it panics on
// failure.  It is only used to register the standard coin types at package
// init time since errors there indicate a programming mistake.
func mustRegister(coin *CoinType) {
	if err := Register(coin); err != nil {
		panic(fmt.Sprintf("failed to register coin type: %v", err))
	}
}

// CandidatesForScheme returns the coin types that claim the provided URI
// scheme in registration order.  The scheme is matched case sensitively.
// The returned slice is a copy and may be modified by the caller.
//
// The order of the returned candidates is a caller-visible tie-break: an
// address that is valid under more than one of them resolves to the
// earliest match.
func CandidatesForScheme(scheme string) []*CoinType {
	candidates := schemeIdx[scheme]
	if len(candidates) == 0 {
		return nil
	}
	result := make([]*CoinType, len(candidates))
	copy(result, candidates)
	return result
}

// BySymbol returns the registered coin type with the provided ticker symbol
// or nil when no such coin type has been registered.
func BySymbol(symbol string) *CoinType {
	return symbolIdx[symbol]
}

// Registered returns all registered coin types in registration order.  The
// returned slice is a copy and may be modified by the caller.
func Registered() []*CoinType {
	result := make([]*CoinType, len(registeredCoins))
	copy(result, registeredCoins)
	return result
}
