// Package card classifies and validates payment card numbers.
//
// A candidate number passes through four checks in order: a format guard
// (ASCII digits only, fits in 64 bits), issuer classification from the
// leading digits, a per-network length check, and the Luhn checksum. The
// pipeline short-circuits on the first failure and every input maps to
// exactly one outcome.
//
// Usage: construct via Parse at trust boundaries; the zero Card is not a
// valid card.
//
//	c, err := card.Parse("4111111111111111")
//	if err != nil {
//	    // one of ErrInvalidFormat, ErrUnknownIssuer, ErrInvalidLength, ErrInvalidLuhn
//	}
//	c.Issuer() // card.Visa
//	c.PAN()    // 4111111111111111
//
// Parse is a pure function with no shared state; calls may run concurrently.
package card

import (
	"errors"
	"strconv"
)

// Validation failures, in pipeline order. They are mutually exclusive: the
// earliest applicable check wins.
//
//   - ErrInvalidFormat: non-digit character, empty input, or the digit
//     sequence overflows 64 bits
//   - ErrUnknownIssuer: fewer than 12 digits, a leading zero, or a prefix no
//     network claims
//   - ErrInvalidLength: network identified but the digit count is outside
//     its accepted set
//   - ErrInvalidLuhn: length accepted but the checksum fails
var (
	ErrInvalidFormat = errors.New("card number is not a plain digit string")
	ErrUnknownIssuer = errors.New("card number matches no known issuer")
	ErrInvalidLength = errors.New("card number length is invalid for its issuer")
	ErrInvalidLuhn   = errors.New("card number fails the luhn checksum")
)

const (
	// minPANDigits is the shortest PAN any supported network issues.
	// Shorter digit strings are rejected before the table is consulted.
	minPANDigits = 12
	// maxPANDigits is the longest PAN any supported network issues.
	maxPANDigits = 19
	// iinDigits is the widest prefix any classification rule needs.
	iinDigits = 8
)

// Card is a validated payment card number: the PAN and its classified
// network. Constructed only by Parse; immutable afterwards.
type Card struct {
	pan    uint64
	issuer Issuer
}

// PAN returns the full card number as an unsigned integer.
func (c Card) PAN() uint64 {
	return c.pan
}

// Issuer returns the network classified from the card's leading digits.
func (c Card) Issuer() Issuer {
	return c.issuer
}

// IssuerName returns the display name of the card's network.
func (c Card) IssuerName() string {
	return c.issuer.Name()
}

// Parse validates a card number. The input must be ASCII digits with no
// separators; spaces and dashes are rejected as ErrInvalidFormat.
func Parse(s string) (Card, error) {
	// ParseUint admits no sign, no separators and no non-digit runes, so a
	// successful parse doubles as the all-digits check.
	pan, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return Card{}, ErrInvalidFormat
	}

	if len(s) < minPANDigits || s[0] == '0' {
		return Card{}, ErrUnknownIssuer
	}

	// len(s) >= 12 here, so the maximal IIN prefix is always present.
	var iin uint32
	for _, c := range []byte(s[:iinDigits]) {
		iin = iin*10 + uint32(c-'0')
	}

	issuer := classify(iin)
	if issuer == IssuerUnknown {
		return Card{}, ErrUnknownIssuer
	}

	if !issuer.lengthValid(len(s)) {
		return Card{}, ErrInvalidLength
	}

	if !Luhn(s) {
		return Card{}, ErrInvalidLuhn
	}

	return Card{pan: pan, issuer: issuer}, nil
}
