// AngelaMos | 2026
// money.go

// Package money implements the currency handling used across the ledger:
// lossy free-text parsing, Indian-grouped rupee formatting, and the derived
// total/given/left calculation.
package money

import (
	"math"
	"strconv"
	"strings"
)

const symbol = "₹ "

// Parse strips every character except digits and '.' and parses the result
// as a float. Empty or unparseable input yields 0. A minus sign is stripped,
// not treated as a sign, so the result is never negative. Malformed input
// like "12a3" therefore parses to 123; this is lossy by contract, not a
// validation step.
func Parse(text string) float64 {
	var b strings.Builder
	dots := 0
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.':
			// Everything from a second dot onward is discarded, matching
			// leading-prefix float parsing.
			if dots == 1 {
				return parseOrZero(b.String())
			}
			dots++
			b.WriteRune(r)
		}
	}
	return parseOrZero(b.String())
}

func parseOrZero(s string) float64 {
	if s == "" || s == "." {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return n
}

// Format renders n as a rupee display string with Indian digit grouping
// (1,00,000) and zero decimal places. Rounding applies to the display only;
// callers keep the full-precision value.
func Format(n float64) string {
	neg := n < 0
	rounded := int64(math.Round(math.Abs(n)))

	grouped := groupIndian(strconv.FormatInt(rounded, 10))
	if neg {
		return symbol + "-" + grouped
	}
	return symbol + grouped
}

// groupIndian inserts commas per the en-IN convention: the last three digits
// form one group, every preceding pair forms another.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)

	return strings.Join(groups, ",") + "," + tail
}

// Delta is the derived financial state of a project: the signed outstanding
// amount plus the display strings for all three figures.
type Delta struct {
	LeftAmount   float64
	LeftDisplay  string
	TotalDisplay string
	GivenDisplay string
}

// ComputeDelta derives left = total - given. LeftAmount keeps its sign so
// callers can test "fully paid" (LeftAmount <= 0); the display value clamps
// at zero and never shows a negative balance.
func ComputeDelta(total, given float64) Delta {
	left := total - given

	return Delta{
		LeftAmount:   left,
		LeftDisplay:  Format(math.Max(0, left)),
		TotalDisplay: Format(total),
		GivenDisplay: Format(given),
	}
}
