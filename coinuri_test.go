// Copyright (c) 2026 The coinuri developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinuri

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/coinkit/coinuri/coins"
	"github.com/coinkit/coinuri/coinutil"
)

// Addresses used throughout the tests.  All of them are real addresses for
// their respective networks.
const (
	mainNetP2PKH = "DsUZxxoHJSty8DCfwfartwTYbuhmVct7tJu"
	mainNetP2SH  = "DcuQKx8BES9wU7C6Q5VmLBjw436r27hayjS"
	testNetP2PKH = "TsmWaPM77WSyA3aiQ2Q1KnwGDVWvEkhip23"
	simNetP2PKH  = "Sspzuh5xuvqxccYLWJDJjCtqp166NRxcaPB"
	btcP2WPKH    = "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"
	btcTestP2WSH = "tb1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3q0sl5k7"
)

// TestParse ensures payment URIs parse as intended, including all of the
// failure modes.
func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		coin        *coins.CoinType // coin type restriction, or nil
		input       string
		err         error // expected error kind, nil for success
		wantCoin    *coins.CoinType
		wantAddr    string // expected address encoding, "" when absent
		wantAmount  string // formatted expected amount, "" when absent
		wantLabel   string
		wantMessage string
		wantR       string
	}{{
		name:     "mainnet address only",
		input:    "decred:" + mainNetP2PKH,
		wantCoin: coins.Decred,
		wantAddr: mainNetP2PKH,
	}, {
		name:     "mainnet p2sh address only",
		input:    "decred:" + mainNetP2SH,
		wantCoin: coins.Decred,
		wantAddr: mainNetP2SH,
	}, {
		name:     "double slash scheme form",
		input:    "decred://" + mainNetP2PKH,
		wantCoin: coins.Decred,
		wantAddr: mainNetP2PKH,
	}, {
		name:        "all known fields",
		input:       "decred:" + mainNetP2PKH + "?amount=0.06&label=Tom%20%26%20Jerry&message=test%20payment",
		wantCoin:    coins.Decred,
		wantAddr:    mainNetP2PKH,
		wantAmount:  "0.06",
		wantLabel:   "Tom & Jerry",
		wantMessage: "test payment",
	}, {
		name:     "testnet address resolves under shared scheme",
		input:    "decred:" + testNetP2PKH,
		wantCoin: coins.DecredTestNet,
		wantAddr: testNetP2PKH,
	}, {
		name:     "simnet address resolves under shared scheme",
		input:    "decred:" + simNetP2PKH,
		wantCoin: coins.DecredSimNet,
		wantAddr: simNetP2PKH,
	}, {
		name:     "bitcoin segwit address",
		input:    "bitcoin:" + btcP2WPKH,
		wantCoin: coins.Bitcoin,
		wantAddr: btcP2WPKH,
	}, {
		name:     "bitcoin testnet address resolves under shared scheme",
		input:    "bitcoin:" + btcTestP2WSH,
		wantCoin: coins.BitcoinTestNet,
		wantAddr: btcTestP2WSH,
	}, {
		name:     "supplied coin accepts matching address",
		coin:     coins.DecredTestNet,
		input:    "decred:" + testNetP2PKH,
		wantCoin: coins.DecredTestNet,
		wantAddr: testNetP2PKH,
	}, {
		name:  "supplied coin rejects other network address",
		coin:  coins.Decred,
		input: "decred:" + testNetP2PKH,
		err:   ErrInvalidAddress,
	}, {
		name:  "supplied coin rejects other scheme",
		coin:  coins.Decred,
		input: "bitcoin:" + btcP2WPKH,
		err:   ErrUnsupportedScheme,
	}, {
		name:  "unknown scheme",
		input: "parkbyte:PMockAddressxxxxxxxxxxxxxxxxxxxxxx",
		err:   ErrUnsupportedScheme,
	}, {
		name:  "scheme lookup is case sensitive",
		input: "DECRED:" + mainNetP2PKH,
		err:   ErrUnsupportedScheme,
	}, {
		name:  "no scheme separator",
		input: mainNetP2PKH,
		err:   ErrInvalidSyntax,
	}, {
		name:  "scheme with invalid character",
		input: "de cred:" + mainNetP2PKH,
		err:   ErrInvalidSyntax,
	}, {
		name:  "empty input",
		input: "",
		err:   ErrInvalidSyntax,
	}, {
		name:  "too many question marks",
		input: "decred:" + mainNetP2PKH + "?amount=1?label=x",
		err:   ErrInvalidSyntax,
	}, {
		name:  "pair without separator",
		input: "decred:" + mainNetP2PKH + "?amount",
		err:   ErrInvalidSyntax,
	}, {
		name:  "pair with empty name",
		input: "decred:" + mainNetP2PKH + "?=1",
		err:   ErrInvalidSyntax,
	}, {
		name:  "duplicate amount with identical values",
		input: "decred:" + mainNetP2PKH + "?amount=1&amount=1",
		err:   ErrDuplicateField,
	}, {
		name:  "duplicate label with different values",
		input: "decred:" + mainNetP2PKH + "?label=a&label=b",
		err:   ErrDuplicateField,
	}, {
		name:  "address query field collides with address token",
		input: "decred:" + mainNetP2PKH + "?address=" + mainNetP2PKH,
		err:   ErrDuplicateField,
	}, {
		name:  "unknown required field",
		input: "decred:" + mainNetP2PKH + "?req-expires=600",
		err:   ErrRequiredFieldUnknown,
	}, {
		name:  "unknown required field with known suffix",
		input: "decred:" + mainNetP2PKH + "?req-label=x",
		err:   ErrRequiredFieldUnknown,
	}, {
		name:  "non-numeric amount",
		input: "decred:" + mainNetP2PKH + "?amount=abc",
		err:   ErrInvalidAmount,
	}, {
		name:  "exponent notation amount",
		input: "decred:" + mainNetP2PKH + "?amount=1e5",
		err:   ErrInvalidAmount,
	}, {
		name:  "amount with too many decimal places",
		input: "decred:" + mainNetP2PKH + "?amount=0.123456789",
		err:   ErrAmountTooPrecise,
	}, {
		name:  "negative amount",
		input: "decred:" + mainNetP2PKH + "?amount=-1",
		err:   ErrNegativeAmount,
	}, {
		name:  "bad address",
		input: "decred:NotAValidAddress",
		err:   ErrInvalidAddress,
	}, {
		name:  "no address and no payment request url",
		input: "decred:",
		err:   ErrMissingDestination,
	}, {
		name:  "no address and no payment request url with query",
		input: "decred:?label=hello",
		err:   ErrMissingDestination,
	}, {
		name:  "payment request url only",
		input: "decred:?r=https://example.com/pay",
		wantR: "https://example.com/pay",
	}, {
		name:       "payment request url with amount and supplied coin",
		coin:       coins.Decred,
		input:      "decred:?amount=1&r=https://example.com/pay",
		wantCoin:   coins.Decred,
		wantAmount: "1",
		wantR:      "https://example.com/pay",
	}, {
		name:  "amount without resolvable coin",
		input: "decred:?amount=1&r=https://example.com/pay",
		err:   ErrAmbiguousCurrency,
	}, {
		name:     "trailing question mark",
		input:    "decred:" + mainNetP2PKH + "?",
		wantCoin: coins.Decred,
		wantAddr: mainNetP2PKH,
	}, {
		name:       "trailing ampersand",
		input:      "decred:" + mainNetP2PKH + "?amount=1&",
		wantCoin:   coins.Decred,
		wantAddr:   mainNetP2PKH,
		wantAmount: "1",
	}, {
		name:        "empty valued field is skipped",
		input:       "decred:" + mainNetP2PKH + "?label=&message=hi",
		wantCoin:    coins.Decred,
		wantAddr:    mainNetP2PKH,
		wantMessage: "hi",
	}, {
		name:       "field names are case insensitive",
		input:      "decred:" + mainNetP2PKH + "?AMOUNT=1&Label=hi",
		wantCoin:   coins.Decred,
		wantAddr:   mainNetP2PKH,
		wantAmount: "1",
		wantLabel:  "hi",
	}, {
		name:      "plus decodes to space in free text",
		input:     "decred:" + mainNetP2PKH + "?label=Tom+Jerry",
		wantCoin:  coins.Decred,
		wantAddr:  mainNetP2PKH,
		wantLabel: "Tom Jerry",
	}, {
		name:  "invalid percent encoding",
		input: "decred:" + mainNetP2PKH + "?label=%zz",
		err:   ErrInvalidSyntax,
	}}

	for _, test := range tests {
		uri, err := Parse(test.coin, test.input)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: unexpected error -- got %v, want %v", test.name,
				err, test.err)
			continue
		}
		if err != nil {
			continue
		}

		if uri.Coin() != test.wantCoin {
			t.Errorf("%s: unexpected coin type -- got %v, want %v",
				test.name, uri.Coin(), test.wantCoin)
			continue
		}

		var gotAddr string
		if addr := uri.Address(); addr != nil {
			gotAddr = addr.Address()
		}
		if gotAddr != test.wantAddr {
			t.Errorf("%s: unexpected address -- got %q, want %q", test.name,
				gotAddr, test.wantAddr)
			continue
		}

		var gotAmount string
		if amount, ok := uri.Amount(); ok {
			gotAmount = coinutil.FormatAmount(uri.Coin(), amount)
		}
		if gotAmount != test.wantAmount {
			t.Errorf("%s: unexpected amount -- got %q, want %q", test.name,
				gotAmount, test.wantAmount)
			continue
		}

		if uri.Label() != test.wantLabel {
			t.Errorf("%s: unexpected label -- got %q, want %q", test.name,
				uri.Label(), test.wantLabel)
			continue
		}
		if uri.Message() != test.wantMessage {
			t.Errorf("%s: unexpected message -- got %q, want %q", test.name,
				uri.Message(), test.wantMessage)
			continue
		}
		if uri.PaymentRequestURL() != test.wantR {
			t.Errorf("%s: unexpected payment request url -- got %q, want %q",
				test.name, uri.PaymentRequestURL(), test.wantR)
			continue
		}
	}
}

// TestParseUnknownFields ensures unknown fields without the req- prefix are
// retained verbatim and are accessible by name in parse order.
func TestParseUnknownFields(t *testing.T) {
	input := "decred:" + mainNetP2PKH + "?somethingyoudontunderstand=50" +
		"&somethingelseyoudont=999&label=both"
	uri, err := ParseString(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	value, ok := uri.Get("somethingyoudontunderstand")
	if !ok || value != "50" {
		t.Fatalf("unexpected unknown field value -- got %v (present=%v), "+
			"want %q", value, ok, "50")
	}
	value, ok = uri.Get("somethingelseyoudont")
	if !ok || value != "999" {
		t.Fatalf("unexpected unknown field value -- got %v (present=%v), "+
			"want %q", value, ok, "999")
	}

	wantNames := []string{FieldAddress, "somethingyoudontunderstand",
		"somethingelseyoudont", FieldLabel}
	gotNames := uri.FieldNames()
	if len(gotNames) != len(wantNames) {
		t.Fatalf("unexpected field names: %s", spew.Sdump(gotNames))
	}
	for i, want := range wantNames {
		if gotNames[i] != want {
			t.Fatalf("unexpected field name at %d -- got %q, want %q", i,
				gotNames[i], want)
		}
	}
}

// TestParseTypedAccessors ensures the typed accessors return the values
// with their proper types.
func TestParseTypedAccessors(t *testing.T) {
	input := "decred:" + mainNetP2PKH + "?amount=1.5"
	uri, err := ParseString(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	value, ok := uri.Get(FieldAddress)
	if !ok {
		t.Fatal("address field not present")
	}
	if _, ok := value.(coinutil.Address); !ok {
		t.Fatalf("address field has unexpected type %T", value)
	}

	value, ok = uri.Get(FieldAmount)
	if !ok {
		t.Fatal("amount field not present")
	}
	amount, ok := value.(coinutil.Amount)
	if !ok {
		t.Fatalf("amount field has unexpected type %T", value)
	}
	if amount != coinutil.Amount(150000000) {
		t.Fatalf("unexpected amount -- got %d, want %d", amount, 150000000)
	}
}
