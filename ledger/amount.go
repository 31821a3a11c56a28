package ledger

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Decimals is the number of fractional digits carried by a scaled amount.
const Decimals = 9

// Denominator converts a whole-token amount to its scaled representation.
var Denominator = new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil)

// maxSaneAmount is the largest scaled value a single input entry may carry.
// A raw amount above one billion tokens almost always means a missing decimal
// point in the source data, so it is rejected outright.
var maxSaneAmount = new(big.Int).Mul(Denominator, Denominator)

// ParseAmount converts a decimal token amount into its scaled integer form.
// Grouping separators (commas and underscores) are stripped, an optional
// exponent (100e3 shorthand) is honoured, and fractional digits beyond the
// supported precision are truncated toward zero. The conversion is exact
// string arithmetic; no floating point is involved.
func ParseAmount(value string) (*big.Int, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	cleaned = strings.ReplaceAll(cleaned, "_", "")
	if cleaned == "" {
		return nil, fmt.Errorf("amount is empty")
	}

	negative := false
	switch cleaned[0] {
	case '-':
		negative = true
		cleaned = cleaned[1:]
	case '+':
		cleaned = cleaned[1:]
	}

	exponent := 0
	base := cleaned
	if idx := strings.IndexAny(cleaned, "eE"); idx != -1 {
		parsed, err := strconv.Atoi(strings.TrimSpace(cleaned[idx+1:]))
		if err != nil {
			return nil, fmt.Errorf("invalid exponent in amount %q", value)
		}
		exponent = parsed
		base = cleaned[:idx]
	}

	intPart := base
	fracPart := ""
	if idx := strings.Index(base, "."); idx != -1 {
		intPart = base[:idx]
		fracPart = base[idx+1:]
		if strings.Contains(fracPart, ".") {
			return nil, fmt.Errorf("invalid amount %q", value)
		}
	}

	digits := intPart + fracPart
	if digits == "" || strings.Trim(digits, "0123456789") != "" {
		return nil, fmt.Errorf("invalid amount %q", value)
	}

	amt, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", value)
	}

	// The decimal point sits len(fracPart) digits from the right; the
	// exponent shifts it further. Bring the result to Decimals places.
	shift := Decimals - len(fracPart) + exponent
	if shift >= 0 {
		amt.Mul(amt, pow10(shift))
	} else {
		amt.Quo(amt, pow10(-shift))
	}
	if negative {
		amt.Neg(amt)
	}
	return amt, nil
}

// FormatAmount renders a scaled amount with exactly Decimals fractional
// digits, e.g. 80500000000 -> "80.500000000".
func FormatAmount(amt *big.Int) string {
	if amt == nil {
		return "0." + strings.Repeat("0", Decimals)
	}
	sign := ""
	abs := new(big.Int).Abs(amt)
	if amt.Sign() < 0 {
		sign = "-"
	}
	whole, frac := new(big.Int).QuoRem(abs, Denominator, new(big.Int))
	return fmt.Sprintf("%s%s.%0*d", sign, whole.String(), Decimals, frac)
}

// FormatAmountTrimmed renders a scaled amount with trailing fractional zeros
// removed, e.g. 80500000000 -> "80.5" and 80000000000 -> "80".
func FormatAmountTrimmed(amt *big.Int) string {
	out := FormatAmount(amt)
	out = strings.TrimRight(out, "0")
	return strings.TrimSuffix(out, ".")
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
