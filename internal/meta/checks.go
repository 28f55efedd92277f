package meta

import "strings"

// The structural checks below are the building blocks every Rule is
// composed from. Each one inspects a single piece of a meta-information
// line and can be tested on its own.

// enclosed returns the text between a leading '<' and a trailing '>'.
func enclosed(value string) (string, bool) {
	if len(value) < 2 || value[0] != '<' || value[len(value)-1] != '>' {
		return "", false
	}
	return value[1 : len(value)-1], true
}

// splitAttributes splits an attribute list on commas that are not inside
// double quotes.
func splitAttributes(body string) []string {
	var attrs []string
	inQuotes := false
	start := 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				attrs = append(attrs, body[start:i])
				start = i + 1
			}
		}
	}
	return append(attrs, body[start:])
}

// pair splits a key=value attribute on its first '='.
func pair(attr string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(attr, "=")
	return key, value, ok && key != ""
}

// expect reports whether attr is key=value with the given key and a value
// accepted by check.
func expect(attr, key string, check func(string) bool) bool {
	k, v, ok := pair(attr)
	return ok && k == key && check(v)
}

// quoted reports whether v is a non-empty string wrapped in double quotes
// with no quotes inside.
func quoted(v string) bool {
	return len(v) >= 3 && v[0] == '"' && v[len(v)-1] == '"' &&
		!strings.Contains(v[1:len(v)-1], `"`)
}

// identifier reports whether v is a non-empty value without commas.
func identifier(v string) bool {
	return v != "" && !strings.Contains(v, ",")
}

func digits(v string) bool {
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		if v[i] < '0' || v[i] > '9' {
			return false
		}
	}
	return true
}

// number reports whether v is a valid INFO/FORMAT Number: ".", a single
// digit, A, G, R, U, or an optionally negative integer.
func number(v string) bool {
	if len(v) == 1 && strings.Contains(".AGRU", v) {
		return true
	}
	return digits(strings.TrimPrefix(v, "-"))
}

var validTypes = map[string]bool{
	"Integer":   true,
	"Float":     true,
	"Flag":      true,
	"Character": true,
	"String":    true,
}

func valueType(v string) bool {
	return validTypes[v]
}
