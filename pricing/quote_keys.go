package pricing

import (
	"sort"
	"strings"

	"courierbilling/models"
)

// FindBestMatchingKey resolves a quotation cell for (region, weight-bracket
// label). Labels are free-form strings, so the lookup degrades through
// normalized variants before giving up: exact match, space removal, gm/g
// substitution, case folding, then bare-number containment. Returns the
// stored price string, or "" when nothing matches.
func FindBestMatchingKey(rates models.QuotationRates, region, label string) string {
	regionRates, ok := rates[region]
	if !ok || len(regionRates) == 0 {
		return ""
	}

	if price, ok := regionRates[label]; ok {
		return price
	}

	keys := make([]string, 0, len(regionRates))
	for k := range regionRates {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	normalizers := []func(string) string{
		stripSpaces,
		func(s string) string { return unitNorm(stripSpaces(s)) },
		func(s string) string { return strings.ToLower(unitNorm(stripSpaces(s))) },
	}
	for _, norm := range normalizers {
		want := norm(label)
		for _, k := range keys {
			if norm(k) == want {
				return regionRates[k]
			}
		}
	}

	if num := digitRun(label); num != "" {
		for _, k := range keys {
			if strings.Contains(k, num) {
				return regionRates[k]
			}
		}
	}

	return ""
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// unitNorm collapses "gm" onto "g" so "100 gm" and "100 g" agree.
func unitNorm(s string) string {
	s = strings.ReplaceAll(s, "gm", "g")
	return strings.ReplaceAll(s, "GM", "G")
}

// digitRun extracts the first run of digits in the label.
func digitRun(s string) string {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start == -1 {
				start = i
			}
			continue
		}
		if start != -1 {
			return s[start:i]
		}
	}
	if start != -1 {
		return s[start:]
	}
	return ""
}
