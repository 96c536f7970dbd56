package afl

import (
	"strings"
	"unicode"
)

// seedName holds the lineage fields encoded in an AFL queue or crash file name.
type seedName struct {
	ID         string // numeric id field
	Src        string // raw src/orig field, possibly "a+b" for splices
	Op         string // mutation operator, empty when absent
	NonCrashID string // aurora only: suffix after "op:<name>_"
}

// parsePlain matches the AFL / AFL++ grammar:
//
//	id:<digits>[,sig:<digits>][,time:<digits>][,execs:<digits>],(src|orig):<token>
//	    [,time:<digits>][,execs:<digits>][,op:<token>]
//
// The src token cannot contain ':'. The op field runs to the end of the
// name and cannot contain whitespace. Only its first comma-separated
// token is the operator; trailing fields such as ",pos:0", ",rep:4" or
// ",+cov" are ignored, so "op:colorization,pos:0" yields "colorization".
func parsePlain(name string) (seedName, bool) {
	return parseWith(name, []string{"sig", "time", "execs"}, plainTail)
}

// parseAurora matches the aurora grammar:
//
//	id:<digits>[,sig:<digits>],(src|orig):<token>[,op:<name>[_<non-crash-id>]]
//
// The operator name cannot contain '_'. Everything after the first '_' is
// the non-crash id, which cannot contain whitespace.
func parseAurora(name string) (seedName, bool) {
	return parseWith(name, []string{"sig"}, auroraTail)
}

// tailFunc matches what follows the src token and fills in the op fields.
type tailFunc func(s string, out *seedName) bool

func parseWith(name string, headKeys []string, tail tailFunc) (seedName, bool) {
	var out seedName

	sc := scanner{s: name}
	if !sc.literal("id:") {
		return out, false
	}
	id, ok := sc.digits()
	if !ok {
		return out, false
	}
	out.ID = id

	for _, key := range headKeys {
		sc.optionalNumber(key)
	}

	if !sc.literal(",src:") && !sc.literal(",orig:") {
		return out, false
	}

	// src is [^:]+ and greedy: try the longest candidate first and shrink
	// until the remainder matches the tail grammar.
	rest := sc.s
	limit := strings.IndexByte(rest, ':')
	if limit < 0 {
		limit = len(rest)
	}
	for end := limit; end >= 1; end-- {
		candidate := out
		if tail(rest[end:], &candidate) {
			candidate.Src = rest[:end]
			return candidate, true
		}
	}
	return out, false
}

func plainTail(s string, out *seedName) bool {
	sc := scanner{s: s}
	sc.optionalNumber("time")
	sc.optionalNumber("execs")
	if sc.s == "" {
		return true
	}
	if !sc.literal(",op:") {
		return false
	}
	if !nonSpace(sc.s) {
		return false
	}
	op, _, _ := strings.Cut(sc.s, ",")
	if op == "" {
		return false
	}
	out.Op = op
	return true
}

func auroraTail(s string, out *seedName) bool {
	if s == "" {
		return true
	}
	sc := scanner{s: s}
	if !sc.literal(",op:") {
		return false
	}
	op, suffix, hasSuffix := strings.Cut(sc.s, "_")
	if op == "" {
		return false
	}
	if hasSuffix && !nonSpace(suffix) {
		return false
	}
	out.Op = op
	out.NonCrashID = suffix
	return true
}

// nonSpace reports whether s is non-empty and free of whitespace.
func nonSpace(s string) bool {
	return s != "" && !strings.ContainsFunc(s, unicode.IsSpace)
}

// scanner consumes a file name from the left.
type scanner struct {
	s string
}

func (sc *scanner) literal(prefix string) bool {
	if !strings.HasPrefix(sc.s, prefix) {
		return false
	}
	sc.s = sc.s[len(prefix):]
	return true
}

func (sc *scanner) digits() (string, bool) {
	n := countDigits(sc.s)
	if n == 0 {
		return "", false
	}
	d := sc.s[:n]
	sc.s = sc.s[n:]
	return d, true
}

// optionalNumber consumes ",<key>:<digits>" when present.
func (sc *scanner) optionalNumber(key string) {
	prefix := "," + key + ":"
	if !strings.HasPrefix(sc.s, prefix) {
		return
	}
	rest := sc.s[len(prefix):]
	n := countDigits(rest)
	if n == 0 {
		return
	}
	sc.s = rest[n:]
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}
