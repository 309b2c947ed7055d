package analyzer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Normalize converts a raw cell value to a float64. It never fails: nil cells,
// blanks, NaN markers and unparseable text all come back as 0.
//
// Text values are cleaned before parsing: surrounding whitespace is trimmed,
// currency symbols and internal whitespace are stripped, and comma decimal
// separators are rewritten to periods. The comma rewrite means a value like
// "1,234" parses as 1.234 — thousands separators are not disambiguated.
func Normalize(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		if math.IsNaN(v) {
			return 0
		}
		return v
	case float32:
		if math.IsNaN(float64(v)) {
			return 0
		}
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		return parseCleaned(v)
	default:
		// Uncommon numeric types (int32, uint, json.Number, ...) stringify
		// to plain digits and parse fine; anything else degrades to 0.
		return parseCleaned(fmt.Sprint(v))
	}
}

// currencySymbols are stripped from text cells before numeric parsing.
const currencySymbols = "€$£¥₹"

func parseCleaned(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || strings.ContainsRune(currencySymbols, r) {
			return -1
		}
		return r
	}, s)
	s = strings.ReplaceAll(s, ",", ".")

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
