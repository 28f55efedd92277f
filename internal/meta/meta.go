// Package meta validates VCF meta-information ("##") lines against a
// fixed registry of per-key structural rules.
package meta

import (
	"fmt"
	"strings"
)

// Line is a meta-information line split into its key and value.
type Line struct {
	Key   string
	Value string
	// Attributes holds the comma-separated entries inside <...>, or the
	// raw value for simple key=value lines.
	Attributes []string
	// Enclosed is true when the value was a <...> attribute list.
	Enclosed bool
}

// Parse decomposes a "##"-prefixed line. ok is false when the line does
// not start with "##" or has no '='.
func Parse(line string) (l Line, ok bool) {
	rest, ok := strings.CutPrefix(line, "##")
	if !ok {
		return Line{}, false
	}
	key, value, ok := strings.Cut(rest, "=")
	if !ok {
		return Line{}, false
	}
	l = Line{Key: key, Value: value}
	if body, isList := enclosed(value); isList {
		l.Attributes = splitAttributes(body)
		l.Enclosed = true
	} else {
		l.Attributes = []string{value}
	}
	return l, true
}

// Error describes a meta-information line that failed its key's rule.
type Error struct {
	Key    string
	Rule   string
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Rule
	}
	return fmt.Sprintf("%s (%s)", e.Rule, e.Detail)
}

// Validate checks a single line that begins with "##". Lines whose key is
// not in the registry, or that carry no '=' at all, are accepted.
func Validate(line string) error {
	if !strings.HasPrefix(line, "##") {
		return &Error{Rule: "Unknown header format", Detail: "line must start with ##"}
	}
	l, ok := Parse(line)
	if !ok {
		return nil
	}
	rule, _ := Lookup(l.Key)
	if detail := rule.Check(l); detail != "" {
		return &Error{Key: l.Key, Rule: rule.Name, Detail: detail}
	}
	return nil
}
