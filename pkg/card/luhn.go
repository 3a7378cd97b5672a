package card

// Luhn reports whether a digit string passes the Luhn checksum. Digits are
// walked right to left; every second digit is doubled, with 9 subtracted when
// the doubled value exceeds 9, and the string is valid when the sum is a
// multiple of 10. Every digit is visited exactly once regardless of outcome,
// so the cost depends only on the input length.
//
// The input must contain only ASCII decimal digits; Parse guarantees this
// before calling.
func Luhn(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// CheckDigit returns the digit that, appended to the given digit string,
// produces a Luhn-valid sequence. Exactly one such digit exists for any
// prefix, which is what lets the checksum catch single-digit typos.
func CheckDigit(digits string) byte {
	// The appended digit lands in the odd (undoubled) position, shifting the
	// doubling parity of every existing digit by one.
	sum := 0
	double := true
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return byte('0' + (10-sum%10)%10)
}
