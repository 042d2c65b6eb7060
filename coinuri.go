// Copyright (c) 2026 The coinuri developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinuri

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/coinkit/coinuri/coins"
	"github.com/coinkit/coinuri/coinutil"
)

// These constants define the field names recognized by the parser.  Any
// other name without the req- prefix is retained verbatim as an opaque
// string field.
const (
	// FieldAddress is the field the validated address is stored under.
	// It is populated from the address part of the URI, not from a query
	// parameter.
	FieldAddress = "address"

	// FieldAmount is the name of the amount field.
	FieldAmount = "amount"

	// FieldLabel is the name of the label field.
	FieldLabel = "label"

	// FieldMessage is the name of the message field.
	FieldMessage = "message"

	// FieldPaymentRequestURL is the name of the field carrying the URL a
	// payment request may be fetched from.  Fetching it is outside the
	// scope of this package.
	FieldPaymentRequestURL = "r"
)

// requiredPrefix marks fields the producer insists the consumer must
// understand.  No such fields are currently understood, so any field with
// this prefix fails the parse.
const requiredPrefix = "req-"

// fieldValue is the sum of the types a parsed field may hold.  Using a
// closed set of value types keeps the typed accessors free of caller-side
// type assertions.
type fieldValue interface {
	fieldValue()
}

type addressValue struct {
	addr coinutil.Address
}

type amountValue struct {
	amount coinutil.Amount
}

type stringValue struct {
	str string
}

func (addressValue) fieldValue() {}
func (amountValue) fieldValue()  {}
func (stringValue) fieldValue()  {}

// fieldStore is an insertion-ordered write-once mapping from field name to
// field value.  Each name may be stored at most once.
type fieldStore struct {
	names  []string
	values map[string]fieldValue
}

func newFieldStore() fieldStore {
	return fieldStore{values: make(map[string]fieldValue)}
}

// put stores the value against the name checking for duplication.  This
// avoids address field overwrite and similar attacks where a repeated
// field silently replaces an earlier one.
func (s *fieldStore) put(name string, value fieldValue) error {
	if _, ok := s.values[name]; ok {
		return uriError(ErrDuplicateField,
			fmt.Sprintf("'%s' is duplicated, URI is invalid", name))
	}
	s.names = append(s.names, name)
	s.values[name] = value
	return nil
}

func (s *fieldStore) get(name string) (fieldValue, bool) {
	value, ok := s.values[name]
	return value, ok
}

// ParsedURI is the result of successfully parsing a payment request URI.
// It is immutable once constructed and therefore safe for concurrent
// read-only use.
type ParsedURI struct {
	coin   *coins.CoinType
	fields fieldStore
}

// ParseString attempts to parse the input as a payment request URI for any
// registered coin type.  See Parse for details.
func ParseString(input string) (*ParsedURI, error) {
	return Parse(nil, input)
}

// Parse attempts to parse the input as a payment request URI of the form
//
//	scheme:<address>?<name1>=<value1>&<name2>=<value2>
//
// The non-standard scheme://<address> form produced by some services is
// accepted as well.  When coin is nil the scheme is resolved through the
// registry and every coin type claiming it is a candidate for address
// validation; otherwise parsing is restricted to the provided coin type.
//
// Address resolution tries the candidates in registration order and binds
// to the first one the address validates under.  NOTE: this is a known
// ambiguity.  When several coin types share a scheme and an address is
// valid under more than one of them, the earliest registered candidate
// silently wins even though the URI may have been produced for a later
// one.  The behavior is deliberate and callers relying on a specific coin
// type must pass it explicitly.
//
// All failures are returned as an Error whose underlying ErrorKind
// identifies the precise reason.  No partial result is ever returned.
func Parse(coin *coins.CoinType, input string) (*ParsedURI, error) {
	if coin == nil {
		log.Debugf("Attempting to parse '%s' for any coin type", input)
	} else {
		log.Debugf("Attempting to parse '%s' for %s", input, coin.Name)
	}

	scheme, ok := splitScheme(input)
	if !ok {
		return nil, uriError(ErrInvalidSyntax,
			"unrecognizable URI format: "+input)
	}

	// Determine the candidate coin types and the canonical scheme to
	// strip from the front of the input.
	var candidates []*coins.CoinType
	if coin == nil {
		candidates = coins.CandidatesForScheme(scheme)
		if len(candidates) == 0 {
			return nil, uriError(ErrUnsupportedScheme,
				"unsupported URI scheme: "+scheme)
		}
		scheme = candidates[0].UriScheme
	} else {
		candidates = []*coins.CoinType{coin}
		scheme = coin.UriScheme
	}

	var rest string
	switch {
	case strings.HasPrefix(input, scheme+"://"):
		rest = input[len(scheme)+3:]
	case strings.HasPrefix(input, scheme+":"):
		rest = input[len(scheme)+1:]
	default:
		return nil, uriError(ErrUnsupportedScheme,
			"unsupported URI scheme: "+scheme)
	}

	// Split off the address from the rest of the query parameters.
	parts := strings.Split(rest, "?")
	if len(parts) > 2 {
		return nil, uriError(ErrInvalidSyntax,
			"too many question marks in URI '"+input+"'")
	}
	addressToken := parts[0] // may be empty
	var pairTokens []string
	if len(parts) == 2 {
		pairTokens = splitPairTokens(parts[1])
	}

	uri := &ParsedURI{fields: newFieldStore(), coin: coin}

	// Parse the address if any and bind the coin type to whichever
	// candidate validates it first.
	if addressToken != "" {
		var addr coinutil.Address
		for _, candidate := range candidates {
			decoded, err := coinutil.DecodeAddress(addressToken, candidate)
			if err != nil {
				continue
			}
			addr = decoded
			break
		}
		if addr == nil {
			return nil, uriError(ErrInvalidAddress,
				"bad address: "+addressToken)
		}
		if err := uri.fields.put(FieldAddress, addressValue{addr}); err != nil {
			return nil, err
		}
		uri.coin = addr.Coin()
	}

	if err := uri.parsePairs(pairTokens); err != nil {
		return nil, err
	}

	if addressToken == "" && uri.PaymentRequestURL() == "" {
		return nil, uriError(ErrMissingDestination,
			"no address and no r= parameter found")
	}
	return uri, nil
}

// splitScheme returns the scheme-like prefix of the input, that is the
// part before the first colon, when there is one and it satisfies the URI
// grammar of a scheme: a letter followed by letters, digits, and the
// characters +, -, and .
func splitScheme(input string) (string, bool) {
	sep := strings.IndexByte(input, ':')
	if sep < 1 {
		return "", false
	}
	scheme := input[:sep]
	for i := 0; i < len(scheme); i++ {
		c := scheme[i]
		switch {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return "", false
		}
	}
	return scheme, true
}

// splitPairTokens splits the query part into '<name>=<value>' tokens.
// Trailing empty tokens are dropped so that inputs such as 'addr?' and
// 'addr?amount=1&' parse the same as their counterparts without the
// trailing separator.
func splitPairTokens(query string) []string {
	tokens := strings.Split(query, "&")
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

// parsePairs decodes the '<name>=<value>' tokens into the field store.
func (u *ParsedURI) parsePairs(tokens []string) error {
	for _, token := range tokens {
		sep := strings.IndexByte(token, '=')
		if sep == -1 {
			return uriError(ErrInvalidSyntax,
				"malformed URI - no separator in '"+token+"'")
		}
		if sep == 0 {
			return uriError(ErrInvalidSyntax,
				"malformed URI - empty field name in '"+token+"'")
		}
		name := strings.ToLower(token[:sep])
		value := token[sep+1:]

		switch {
		case name == FieldAmount:
			if err := u.parseAmountField(value); err != nil {
				return err
			}

		case strings.HasPrefix(name, requiredPrefix):
			// A required field that is not known.
			return uriError(ErrRequiredFieldUnknown,
				"'"+name+"' is required but not known, this URI is not valid")

		default:
			// Known fields and unknown fields that are optional.  An
			// empty value is a no-op field and is not stored at all.
			if value == "" {
				continue
			}
			decoded, err := url.QueryUnescape(value)
			if err != nil {
				return uriError(ErrInvalidSyntax,
					"malformed URI - invalid percent encoding in '"+token+"'")
			}
			if err := u.fields.put(name, stringValue{decoded}); err != nil {
				return err
			}
		}
	}
	return nil
}

// parseAmountField decodes the raw amount value through the resolved coin
// type and stores it.  The raw value is never URL decoded; an amount is a
// plain decimal number with an optional fractional component.
func (u *ParsedURI) parseAmountField(value string) error {
	if u.coin == nil {
		return uriError(ErrAmbiguousCurrency,
			"no coin type resolved to decode amount '"+value+"'")
	}
	amount, err := coinutil.ParseAmount(u.coin, value)
	if err != nil {
		if errors.Is(err, coinutil.ErrAmountTooPrecise) {
			return uriError(ErrAmountTooPrecise,
				"'"+value+"' has too many decimal places")
		}
		return uriError(ErrInvalidAmount,
			"'"+value+"' is not a valid amount")
	}
	if amount.Sign() < 0 {
		return uriError(ErrNegativeAmount,
			"'"+value+"' negative amount specified")
	}
	return u.fields.put(FieldAmount, amountValue{amount})
}

// Coin returns the coin type the URI was resolved to, or nil when the URI
// carries no address and no coin type was supplied to Parse.
func (u *ParsedURI) Coin() *coins.CoinType {
	return u.coin
}

// Address returns the validated address from the URI, or nil when the URI
// does not carry one.  A URI without an address is possible when an r=
// payment request parameter is specified, though this form is not
// recommended since older wallets do not understand it.
func (u *ParsedURI) Address() coinutil.Address {
	value, ok := u.fields.get(FieldAddress)
	if !ok {
		return nil
	}
	av, ok := value.(addressValue)
	if !ok {
		return nil
	}
	return av.addr
}

// Amount returns the amount from the URI in atomic units of the resolved
// coin type.  The second return value reports whether an amount field was
// present.
func (u *ParsedURI) Amount() (coinutil.Amount, bool) {
	value, ok := u.fields.get(FieldAmount)
	if !ok {
		return 0, false
	}
	av, ok := value.(amountValue)
	if !ok {
		return 0, false
	}
	return av.amount, true
}

// Label returns the label from the URI, or the empty string when none was
// present.  Empty-valued fields are never stored, so the empty string
// means absent.
func (u *ParsedURI) Label() string {
	return u.stringField(FieldLabel)
}

// Message returns the message from the URI, or the empty string when none
// was present.
func (u *ParsedURI) Message() string {
	return u.stringField(FieldMessage)
}

// PaymentRequestURL returns the URL where a payment request may be
// fetched, or the empty string when none was present.
func (u *ParsedURI) PaymentRequestURL() string {
	return u.stringField(FieldPaymentRequestURL)
}

func (u *ParsedURI) stringField(name string) string {
	value, ok := u.fields.get(name)
	if !ok {
		return ""
	}
	sv, ok := value.(stringValue)
	if !ok {
		return ""
	}
	return sv.str
}

// Get returns the value of the field with the provided name.  The value is
// a coinutil.Address for the address field, a coinutil.Amount for the
// amount field, and a URL-decoded string for everything else.  The second
// return value reports whether the field was present.
func (u *ParsedURI) Get(name string) (any, bool) {
	value, ok := u.fields.get(name)
	if !ok {
		return nil, false
	}
	switch v := value.(type) {
	case addressValue:
		return v.addr, true
	case amountValue:
		return v.amount, true
	case stringValue:
		return v.str, true
	}
	return nil, false
}

// FieldNames returns the names of all stored fields in the order they were
// parsed.  The returned slice is a copy and may be modified by the caller.
func (u *ParsedURI) FieldNames() []string {
	names := make([]string, len(u.fields.names))
	copy(names, u.fields.names)
	return names
}

// String returns a human-readable dump of the parsed fields for debug
// purposes.  Use ToURIString for the canonical URI form.
func (u *ParsedURI) String() string {
	var b strings.Builder
	b.WriteString("ParsedURI[")
	for i, name := range u.fields.names {
		if i > 0 {
			b.WriteString(",")
		}
		value, _ := u.Get(name)
		fmt.Fprintf(&b, "'%s'='%v'", name, value)
	}
	b.WriteString("]")
	return b.String()
}

// ToURIString returns the canonical string form of the parsed URI.  It
// fails when the URI carries no address since the canonical form requires
// one.
func (u *ParsedURI) ToURIString() (string, error) {
	var amount *coinutil.Amount
	if a, ok := u.Amount(); ok {
		amount = &a
	}
	return Build(u.Address(), amount, u.Label(), u.Message())
}
