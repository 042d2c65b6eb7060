// Copyright (c) 2026 The coinuri developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinutil

import (
	"errors"
	"fmt"

	"github.com/decred/base58"
	"github.com/decred/dcrd/bech32"
	"github.com/decred/dcrd/crypto/ripemd160"

	"github.com/coinkit/coinuri/coins"
)

var (
	// ErrChecksumMismatch describes an error where decoding failed due
	// to a bad checksum.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrUnknownAddressType describes an error where an address can not be
	// decoded as a specific address type due to the string encoding
	// beginning with unrecognized values that identify the network and
	// type.
	ErrUnknownAddressType = errors.New("unknown address type")
)

// Address is an interface type for any type of destination a payment may be
// made to.  This includes pay-to-pubkey-hash (P2PKH), pay-to-script-hash
// (P2SH), and native segwit (P2WPKH/P2WSH) addresses.
type Address interface {
	// String returns the string encoding of the address.
	String() string

	// Address returns the string encoding of the payment address.
	Address() string

	// Coin returns the coin type the address belongs to.
	Coin() *coins.CoinType
}

// DecodeAddress decodes the string encoding of an address and returns the
// Address if it is a valid encoding for a known address type of the
// provided coin.
//
// Coin types with a bech32 human-readable part use native segwit addresses
// exclusively, all others use base58 encoded addresses with two byte
// version prefixes.
func DecodeAddress(addr string, coin *coins.CoinType) (Address, error) {
	if coin.Bech32HRP != "" {
		return decodeSegWitAddress(addr, coin)
	}

	// Switch on the decoded prefix to determine the type.
	decoded, addrID, err := base58.CheckDecode(addr)
	if err != nil {
		if errors.Is(err, base58.ErrChecksum) {
			return nil, ErrChecksumMismatch
		}
		return nil, fmt.Errorf("decoded address is of unknown format: %v",
			err)
	}

	switch addrID {
	case coin.PubKeyHashAddrID:
		return NewAddressPubKeyHash(decoded, coin)

	case coin.ScriptHashAddrID:
		return NewAddressScriptHashFromHash(decoded, coin)

	default:
		return nil, ErrUnknownAddressType
	}
}

// decodeSegWitAddress decodes a version 0 witness address and validates it
// against the human-readable part of the provided coin.
func decodeSegWitAddress(addr string, coin *coins.CoinType) (Address, error) {
	hrp, data, err := bech32.Decode(addr)
	if err != nil {
		return nil, fmt.Errorf("decoded address is of unknown format: %v",
			err)
	}
	if hrp != coin.Bech32HRP {
		return nil, ErrUnknownAddressType
	}
	if len(data) < 1 {
		return nil, ErrUnknownAddressType
	}

	// The first data element is the witness version.  Only version 0 is
	// currently supported.
	version := data[0]
	if version != 0 {
		return nil, ErrUnknownAddressType
	}

	// The remaining elements are the witness program with 5 bits per
	// element.
	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("decoded address is of unknown format: %v",
			err)
	}
	return NewAddressSegWit(version, program, coin)
}

// AddressPubKeyHash is an Address for a pay-to-pubkey-hash (P2PKH)
// payment.
type AddressPubKeyHash struct {
	hash [ripemd160.Size]byte
	coin *coins.CoinType
}

// NewAddressPubKeyHash returns a new AddressPubKeyHash.  pkHash must be 20
// bytes.
func NewAddressPubKeyHash(pkHash []byte, coin *coins.CoinType) (*AddressPubKeyHash, error) {
	if len(pkHash) != ripemd160.Size {
		return nil, errors.New("pkHash must be 20 bytes")
	}
	addr := &AddressPubKeyHash{coin: coin}
	copy(addr.hash[:], pkHash)
	return addr, nil
}

// Address returns the string encoding of a pay-to-pubkey-hash address.
//
// Part of the Address interface.
func (a *AddressPubKeyHash) Address() string {
	return base58.CheckEncode(a.hash[:], a.coin.PubKeyHashAddrID)
}

// String returns the string encoding of the address.
//
// Part of the Address interface.
func (a *AddressPubKeyHash) String() string {
	return a.Address()
}

// Coin returns the coin type the address belongs to.
//
// Part of the Address interface.
func (a *AddressPubKeyHash) Coin() *coins.CoinType {
	return a.coin
}

// Hash160 returns the underlying bytes of the pubkey hash.
func (a *AddressPubKeyHash) Hash160() *[ripemd160.Size]byte {
	return &a.hash
}

// AddressScriptHash is an Address for a pay-to-script-hash (P2SH) payment.
type AddressScriptHash struct {
	hash [ripemd160.Size]byte
	coin *coins.CoinType
}

// NewAddressScriptHashFromHash returns a new AddressScriptHash from an
// already computed script hash.  scriptHash must be 20 bytes.
func NewAddressScriptHashFromHash(scriptHash []byte, coin *coins.CoinType) (*AddressScriptHash, error) {
	if len(scriptHash) != ripemd160.Size {
		return nil, errors.New("scriptHash must be 20 bytes")
	}
	addr := &AddressScriptHash{coin: coin}
	copy(addr.hash[:], scriptHash)
	return addr, nil
}

// Address returns the string encoding of a pay-to-script-hash address.
//
// Part of the Address interface.
func (a *AddressScriptHash) Address() string {
	return base58.CheckEncode(a.hash[:], a.coin.ScriptHashAddrID)
}

// String returns the string encoding of the address.
//
// Part of the Address interface.
func (a *AddressScriptHash) String() string {
	return a.Address()
}

// Coin returns the coin type the address belongs to.
//
// Part of the Address interface.
func (a *AddressScriptHash) Coin() *coins.CoinType {
	return a.coin
}

// Hash160 returns the underlying bytes of the script hash.
func (a *AddressScriptHash) Hash160() *[ripemd160.Size]byte {
	return &a.hash
}

// AddressSegWit is an Address for a native segwit payment.  Version 0
// witness programs of 20 bytes (P2WPKH) and 32 bytes (P2WSH) are
// supported.
type AddressSegWit struct {
	version byte
	program []byte
	coin    *coins.CoinType
}

// NewAddressSegWit returns a new AddressSegWit.  The witness version must
// be 0 and the program must be 20 or 32 bytes.
func NewAddressSegWit(version byte, program []byte, coin *coins.CoinType) (*AddressSegWit, error) {
	if version != 0 {
		return nil, ErrUnknownAddressType
	}
	if len(program) != 20 && len(program) != 32 {
		return nil, ErrUnknownAddressType
	}
	addr := &AddressSegWit{
		version: version,
		program: make([]byte, len(program)),
		coin:    coin,
	}
	copy(addr.program, program)
	return addr, nil
}

// Address returns the bech32 string encoding of the witness address.
//
// Part of the Address interface.
func (a *AddressSegWit) Address() string {
	converted, err := bech32.ConvertBits(a.program, 8, 5, true)
	if err != nil {
		return ""
	}
	encoded, err := bech32.Encode(a.coin.Bech32HRP,
		append([]byte{a.version}, converted...))
	if err != nil {
		return ""
	}
	return encoded
}

// String returns the string encoding of the address.
//
// Part of the Address interface.
func (a *AddressSegWit) String() string {
	return a.Address()
}

// Coin returns the coin type the address belongs to.
//
// Part of the Address interface.
func (a *AddressSegWit) Coin() *coins.CoinType {
	return a.coin
}

// WitnessProgram returns a copy of the witness program of the address.
func (a *AddressSegWit) WitnessProgram() []byte {
	program := make([]byte, len(a.program))
	copy(program, a.program)
	return program
}
