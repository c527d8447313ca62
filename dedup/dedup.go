// Package dedup finds near-duplicate client names. Normalization is used
// for grouping only and never mutates stored names.
package dedup

import (
	"sort"
	"strings"
	"time"
)

// legal-entity suffixes stripped during normalization; בעמ is the Hebrew
// equivalent of Ltd. after its quote mark has been removed
var legalSuffixes = []string{"ltd", "inc", "llc", "בעמ"}

// quote-like marks vanish entirely so בע"מ collapses to בעמ; the other
// punctuation becomes a space so Tel-Aviv and Tel Aviv meet at one key
const (
	quoteMarks = "'\"`" + "׳״"
	separators = ".,-_"
)

// NameUsage is one distinct raw client-name spelling with its usage stats
type NameUsage struct {
	Name     string    `json:"name"`
	Count    int       `json:"count"`
	LastUsed time.Time `json:"last_used"`
}

// Group is a set of raw spellings that normalize to the same key. Derived
// on demand, never persisted.
type Group struct {
	NormalizedName string      `json:"normalized_name"`
	Variants       []NameUsage `json:"variants"`
	TotalCount     int         `json:"total_count"`
}

// Normalize canonicalizes a client name for duplicate detection: lowercase,
// punctuation and whitespace runs collapsed, legal-entity suffixes stripped.
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range s {
		switch {
		case strings.ContainsRune(quoteMarks, r):
			// dropped
		case strings.ContainsRune(separators, r):
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	fields := strings.Fields(b.String())
	// strip trailing legal-entity tokens, possibly more than one ("acme ltd inc")
	for len(fields) > 1 {
		last := fields[len(fields)-1]
		stripped := false
		for _, suf := range legalSuffixes {
			if last == suf {
				fields = fields[:len(fields)-1]
				stripped = true
				break
			}
		}
		if !stripped {
			break
		}
	}
	return strings.Join(fields, " ")
}

// GroupDuplicates buckets distinct raw names by normalized key and reports
// only keys with two or more spellings, ordered by total usage (desc).
func GroupDuplicates(usages []NameUsage) []Group {
	byKey := make(map[string][]NameUsage)
	order := make([]string, 0)
	for _, u := range usages {
		key := Normalize(u.Name)
		if key == "" {
			continue
		}
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		byKey[key] = append(byKey[key], u)
	}

	groups := make([]Group, 0)
	for _, key := range order {
		variants := byKey[key]
		if len(variants) < 2 {
			continue
		}
		total := 0
		for _, v := range variants {
			total += v.Count
		}
		// most used spelling first inside the group
		sort.SliceStable(variants, func(i, j int) bool { return variants[i].Count > variants[j].Count })
		groups = append(groups, Group{NormalizedName: key, Variants: variants, TotalCount: total})
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].TotalCount > groups[j].TotalCount })
	return groups
}
