// Copyright (c) 2026 The coinuri developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinuri

import (
	"net/url"
	"strings"

	"github.com/coinkit/coinuri/coinutil"
)

// encodedSpace is the escape sequence spaces are encoded as.  The +
// produced by standard query escaping is not used since not every consumer
// treats + as a space in path-like contexts.
const encodedSpace = "%20"

// Build returns the canonical payment request URI for the provided fields.
// The address is mandatory and determines the scheme through its coin
// type.  The amount, label, and message are optional: a nil amount and
// empty strings are omitted from the result.  Fields are always emitted in
// the order amount, label, message.
//
// A nil address or a negative amount fails with ErrInvalidArgument before
// any formatting takes place.
func Build(addr coinutil.Address, amount *coinutil.Amount, label, message string) (string, error) {
	if addr == nil {
		return "", uriError(ErrInvalidArgument, "address must not be nil")
	}
	if amount != nil && amount.Sign() < 0 {
		return "", uriError(ErrInvalidArgument, "amount must not be negative")
	}

	coin := addr.Coin()
	var b strings.Builder
	b.WriteString(coin.UriScheme)
	b.WriteString(":")
	b.WriteString(addr.Address())

	wroteQuery := false
	writeSeparator := func() {
		if wroteQuery {
			b.WriteString("&")
		} else {
			b.WriteString("?")
			wroteQuery = true
		}
	}

	if amount != nil {
		writeSeparator()
		b.WriteString(FieldAmount)
		b.WriteString("=")
		b.WriteString(coinutil.FormatAmount(coin, *amount))
	}
	if label != "" {
		writeSeparator()
		b.WriteString(FieldLabel)
		b.WriteString("=")
		b.WriteString(escapeField(label))
	}
	if message != "" {
		writeSeparator()
		b.WriteString(FieldMessage)
		b.WriteString("=")
		b.WriteString(escapeField(message))
	}
	return b.String(), nil
}

// escapeField percent-encodes the UTF-8 bytes of a free-text field value,
// encoding spaces as %20 rather than +.
func escapeField(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", encodedSpace)
}
