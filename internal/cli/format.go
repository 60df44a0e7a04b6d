// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/theirongolddev/moneymirror/internal/model"
)

// DefaultCurrency is used when no currency is configured or the configured
// code is unknown.
const DefaultCurrency = "INR"

var (
	fmtMu       sync.RWMutex
	fmtCurrency = money.GetCurrency(DefaultCurrency)
	fmtDecimals = 2

	titleCaser = cases.Title(language.English)

	// go-money formats int64 minor units; larger amounts take the string path.
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = decimal.NewFromInt(-math.MaxInt64)
)

// SetCurrency configures the currency and number of decimal places used by
// FormatCurrency. Unknown codes fall back to DefaultCurrency; negative
// decimals are treated as 0.
func SetCurrency(code string, decimals int) {
	c := money.GetCurrency(strings.ToUpper(strings.TrimSpace(code)))
	if c == nil {
		c = money.GetCurrency(DefaultCurrency)
	}
	if decimals < 0 {
		decimals = 0
	}

	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtCurrency = c
	fmtDecimals = decimals
}

// CurrencyCode returns the active ISO currency code.
func CurrencyCode() string {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	return fmtCurrency.Code
}

// FormatCurrency renders an amount with the active currency's symbol,
// thousands grouping and the configured decimal places.
// e.g., 1234.5 -> "₹1,234.50"
func FormatCurrency(d decimal.Decimal) string {
	fmtMu.RLock()
	c, places := fmtCurrency, fmtDecimals
	fmtMu.RUnlock()

	minor := d.Shift(int32(places)).Round(0)
	if minor.GreaterThan(maxMinor) || minor.LessThan(minMinor) {
		return formatLargeMinor(minor, places, c)
	}
	f := money.NewFormatter(places, c.Decimal, c.Thousand, c.Grapheme, c.Template)
	return f.Format(minor.IntPart())
}

// formatLargeMinor lays out a whole number of minor units the same way
// money.Formatter does, without going through int64.
func formatLargeMinor(minor decimal.Decimal, places int, c *money.Currency) string {
	digits := minor.Abs().String()
	if len(digits) <= places {
		digits = strings.Repeat("0", places-len(digits)+1) + digits
	}
	cut := len(digits) - places
	s := groupDigits(digits[:cut], c.Thousand)
	if places > 0 {
		s += c.Decimal + digits[cut:]
	}
	s = strings.Replace(c.Template, "1", s, 1)
	s = strings.Replace(s, "$", c.Grapheme, 1)
	if minor.IsNegative() {
		s = "-" + s
	}
	return s
}

// groupDigits inserts sep every three digits from the right.
func groupDigits(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}

	var result strings.Builder
	remainder := len(digits) % 3
	if remainder > 0 {
		result.WriteString(digits[:remainder])
	}
	for i := remainder; i < len(digits); i += 3 {
		if result.Len() > 0 {
			result.WriteString(sep)
		}
		result.WriteString(digits[i : i+3])
	}
	return result.String()
}

// FormatSignedCurrency prefixes income with '+' and expense with '-'.
func FormatSignedCurrency(d decimal.Decimal, kind model.Kind) string {
	if kind == model.Income {
		return "+" + FormatCurrency(d)
	}
	return "-" + FormatCurrency(d)
}

// FormatPercent formats a whole percentage.
// e.g., 30 -> "30%"
func FormatPercent(p int) string {
	return strconv.Itoa(p) + "%"
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	if n < 0 {
		return "-" + groupDigits(s[1:], ",")
	}
	return groupDigits(s, ",")
}

// FormatKind returns a display label for a transaction kind.
// e.g., "expense" -> "Expense"
func FormatKind(k model.Kind) string {
	return titleCaser.String(string(k))
}

// FormatDay renders a YYYY-MM-DD key as a short day label, e.g. "18 Mar".
// Unparseable keys are returned unchanged.
func FormatDay(dayKey string) string {
	t, err := time.Parse(model.DayLayout, dayKey)
	if err != nil {
		return dayKey
	}
	return t.Format("2 Jan")
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// ConicGradient renders slices as a CSS conic-gradient background value.
// With no slices it returns the neutral fill.
func ConicGradient(slices []model.Slice) string {
	if len(slices) == 0 {
		return "#222"
	}
	parts := make([]string, len(slices))
	for i, s := range slices {
		parts[i] = s.Color + " " + pct(s.StartPct) + " " + pct(s.EndPct)
	}
	return "conic-gradient(" + strings.Join(parts, ", ") + ")"
}

func pct(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64) + "%"
}
