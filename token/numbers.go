package token

// IsNumber reports whether an atom reads as a number: an optional sign,
// decimal digits with an optional fraction, and an optional exponent, or a
// 0x / 0o / 0b prefixed integer.  At least one digit must precede or follow
// the decimal point.
func IsNumber(v string) bool {
	i := 0
	n := len(v)
	if i < n && (v[i] == '+' || v[i] == '-') {
		i++
	}
	if i+1 < n && v[i] == '0' {
		switch v[i+1] {
		case 'x', 'X':
			return allIn(v[i+2:], isHexDigit)
		case 'o', 'O':
			return allIn(v[i+2:], func(c byte) bool { return c >= '0' && c <= '7' })
		case 'b', 'B':
			return allIn(v[i+2:], func(c byte) bool { return c == '0' || c == '1' })
		}
	}
	digits := 0
	for i < n && isDigit(v[i]) {
		i++
		digits++
	}
	if i < n && v[i] == '.' {
		i++
		for i < n && isDigit(v[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < n && (v[i] == 'e' || v[i] == 'E') {
		i++
		if i < n && (v[i] == '+' || v[i] == '-') {
			i++
		}
		exp := 0
		for i < n && isDigit(v[i]) {
			i++
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == n
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func allIn(v string, f func(byte) bool) bool {
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		if !f(v[i]) {
			return false
		}
	}
	return true
}
