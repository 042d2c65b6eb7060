// Copyright (c) 2026 The coinuri developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package coinutil provides currency-bound convenience types.

# Addresses

The Address interface provides an abstraction of a payment destination.
DecodeAddress validates the string encoding of an address against a
specific coin type and produces the concrete address type it encodes,
either a base58 pay-to-pubkey-hash or pay-to-script-hash address, or a
bech32 native segwit address for coin types that define a human-readable
part.

# Amounts

The Amount type counts currency in the atomic unit of its coin type.
ParseAmount converts a decimal string into an Amount without any loss of
precision, refusing strings finer than the coin permits, and FormatAmount
converts back to a trimmed fixed-point decimal string.
*/
package coinutil
