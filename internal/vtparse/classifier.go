package vtparse

import "strings"

// classify identifies a raw sequence's ControlSequenceType and parses its
// parameter list, per spec.md §4.2: look up the catalog bucket named by
// raw's last rune, then scan that bucket in registration order for the
// first pattern that matches. The sequence is UNKNOWN if no bucket exists
// for its final rune, or if every rule in that bucket fails to match.
//
// Grounded on the teacher's internal/detect/engine.go Find method: iterate
// compiled rules in order, first usable match wins.
func classify(raw string) (ControlSequenceType, []string) {
	if raw == "" {
		return ControlUnknown, nil
	}
	runes := []rune(raw)
	final := runes[len(runes)-1]

	bucket := getCatalog().buckets[final]
	for _, r := range bucket {
		m := r.re.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		return r.kind, parseParameters(m)
	}
	return ControlUnknown, nil
}

// parseParameters turns a regex submatch's first capturing group into the
// parameter list spec.md §4.2 describes: split on ';', or an empty slice
// if the group is empty or the pattern had no capturing group.
func parseParameters(m []string) []string {
	if len(m) < 2 || m[1] == "" {
		return nil
	}
	return strings.Split(m[1], ";")
}
