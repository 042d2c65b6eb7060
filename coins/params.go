// Copyright (c) 2026 The coinuri developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coins

// Decred defines the coin parameters for the main Decred network.
var Decred = &CoinType{
	Name:             "Decred",
	Symbol:           "DCR",
	UriScheme:        "decred",
	UnitExponent:     8,
	PubKeyHashAddrID: [2]byte{0x07, 0x3f}, // starts with Ds
	ScriptHashAddrID: [2]byte{0x07, 0x1a}, // starts with Dc
}

// DecredTestNet defines the coin parameters for the Decred test network.
// It shares the decred URI scheme with the main network, so mainnet is
// tried first when resolving addresses.
var DecredTestNet = &CoinType{
	Name:             "Decred Testnet",
	Symbol:           "TDCR",
	UriScheme:        "decred",
	UnitExponent:     8,
	PubKeyHashAddrID: [2]byte{0x0f, 0x21}, // starts with Ts
	ScriptHashAddrID: [2]byte{0x0e, 0xfc}, // starts with Tc
}

// DecredSimNet defines the coin parameters for the Decred simulation
// network.
var DecredSimNet = &CoinType{
	Name:             "Decred Simnet",
	Symbol:           "SDCR",
	UriScheme:        "decred",
	UnitExponent:     8,
	PubKeyHashAddrID: [2]byte{0x0e, 0x91}, // starts with Ss
	ScriptHashAddrID: [2]byte{0x0e, 0x6c}, // starts with Sc
}

// Bitcoin defines the coin parameters for the main Bitcoin network.  Only
// native segwit (bech32) addresses are supported.
var Bitcoin = &CoinType{
	Name:         "Bitcoin",
	Symbol:       "BTC",
	UriScheme:    "bitcoin",
	UnitExponent: 8,
	Bech32HRP:    "bc",
}

// BitcoinTestNet defines the coin parameters for the Bitcoin test network.
// It shares the bitcoin URI scheme with the main network.
var BitcoinTestNet = &CoinType{
	Name:         "Bitcoin Testnet",
	Symbol:       "TBTC",
	UriScheme:    "bitcoin",
	UnitExponent: 8,
	Bech32HRP:    "tb",
}

func init() {
	// Main networks are registered before their test networks so that
	// shared-scheme address resolution prefers them.
	mustRegister(Decred)
	mustRegister(DecredTestNet)
	mustRegister(DecredSimNet)
	mustRegister(Bitcoin)
	mustRegister(BitcoinTestNet)
}
