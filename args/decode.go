package args

import "math"

// Permissive numeric decoding in the C atoi/atof tradition: leading
// whitespace is skipped, an optional sign and the longest valid numeric
// prefix are consumed, and anything else yields zero. Decode failures are
// never parse errors; a validator is the place to insist on well-formed
// numbers.

// atoi decodes a decimal integer prefix. The accumulator saturates at the
// int32 bounds instead of wrapping.
func atoi(s string) int32 {
	i := skipSpace(s, 0)

	negative := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		negative = s[i] == '-'
		i++
	}

	var result int64
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		result = result*10 + int64(c-'0')
		if result > math.MaxInt32+1 {
			// Far enough past the bound that sign no longer matters.
			result = math.MaxInt32 + 1
			break
		}
	}

	if negative {
		result = -result
	}
	if result > math.MaxInt32 {
		return math.MaxInt32
	}
	if result < math.MinInt32 {
		return math.MinInt32
	}
	return int32(result)
}

// atof decodes a decimal float prefix: digits, at most one decimal point
// and an optional exponent.
func atof(s string) float32 {
	i := skipSpace(s, 0)

	negative := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		negative = s[i] == '-'
		i++
	}

	var mantissa float64
	sawDigit := false
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		mantissa = mantissa*10 + float64(c-'0')
		sawDigit = true
	}

	if i < len(s) && s[i] == '.' {
		i++
		place := 1.0
		for ; i < len(s); i++ {
			c := s[i]
			if c < '0' || c > '9' {
				break
			}
			place *= 10
			mantissa += float64(c-'0') / place
			sawDigit = true
		}
	}

	if !sawDigit {
		return 0
	}

	// Exponent only counts when at least one digit follows the marker;
	// otherwise "1e" decodes as plain 1 with the tail ignored.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		expNegative := false
		if j < len(s) && (s[j] == '-' || s[j] == '+') {
			expNegative = s[j] == '-'
			j++
		}
		exp := 0
		expDigits := false
		for ; j < len(s); j++ {
			c := s[j]
			if c < '0' || c > '9' {
				break
			}
			exp = exp*10 + int(c-'0')
			expDigits = true
			if exp > 1000 {
				break
			}
		}
		if expDigits {
			if expNegative {
				exp = -exp
			}
			mantissa *= math.Pow(10, float64(exp))
		}
	}

	if negative {
		mantissa = -mantissa
	}
	return float32(mantissa)
}

func skipSpace(s string, i int) int {
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			i++
		default:
			return i
		}
	}
	return i
}
