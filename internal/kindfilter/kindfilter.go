// Package kindfilter decides whether a classified control-sequence kind
// should reach IPC subscribers and the debug log.
package kindfilter

import (
	"fmt"
	"path"
	"strings"
)

// Filter matches a ControlSequenceType name against glob-style allow and
// deny lists. Deny takes priority over allow: an entry that matches both
// lists is denied. An empty allow list means "allow everything not
// denied".
//
// Grounded on the teacher's internal/allowlist/allowlist.go Match:
// glob-pattern matching via path.Match against a single command name.
// Generalized here from "match one argv0" to "match a kind name against
// two lists instead of one, with deny taking priority".
type Filter struct {
	allow []string
	deny  []string
}

// New validates and compiles allow/deny glob lists.
func New(allow, deny []string) (*Filter, error) {
	for _, p := range allow {
		if _, err := path.Match(p, "PROBE"); err != nil {
			return nil, fmt.Errorf("kindfilter: invalid allow pattern %q: %w", p, err)
		}
	}
	for _, p := range deny {
		if _, err := path.Match(p, "PROBE"); err != nil {
			return nil, fmt.Errorf("kindfilter: invalid deny pattern %q: %w", p, err)
		}
	}
	return &Filter{allow: allow, deny: deny}, nil
}

// Allowed reports whether kind should pass the filter.
func (f *Filter) Allowed(kind string) bool {
	if f == nil {
		return true
	}
	kind = strings.TrimSpace(kind)
	if matchAny(f.deny, kind) {
		return false
	}
	if len(f.allow) == 0 {
		return true
	}
	return matchAny(f.allow, kind)
}

func matchAny(patterns []string, kind string) bool {
	for _, p := range patterns {
		if ok, _ := path.Match(p, kind); ok {
			return true
		}
	}
	return false
}
