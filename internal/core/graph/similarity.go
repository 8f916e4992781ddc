package graph

import (
	"regexp"
	"strconv"
	"strings"
)

var plotPattern = regexp.MustCompile(`plot\s*(\d+)`)

// AddressesSimilar reports whether two addresses point at the same plot.
// Both addresses must carry a plot number; letter suffixes like 45A/45B
// are ignored. Anything else is treated as distinct.
func AddressesSimilar(a, b string) bool {
	plotA, okA := plotNumber(a)
	plotB, okB := plotNumber(b)
	return okA && okB && plotA == plotB
}

func plotNumber(address string) (int, bool) {
	match := plotPattern.FindStringSubmatch(strings.ToLower(address))
	if match == nil {
		return 0, false
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// SamePhone compares phone numbers on digits only.
func SamePhone(a, b string) bool {
	return NormalizePhone(a) == NormalizePhone(b)
}

func NormalizePhone(phone string) string {
	var sb strings.Builder
	for _, c := range phone {
		if c >= '0' && c <= '9' {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}
