// Package token provides predicates over single VCF tokens.
package token

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ConversionError reports a token that should have parsed as a number but did not.
type ConversionError struct {
	Token string
	Type  string // "integer" or "float"
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%q is not a valid %s", e.Token, e.Type)
}

// ParseInt parses a whole token as a base-10 integer. Only a leading '-'
// is allowed as a sign.
func ParseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || strings.HasPrefix(s, "+") {
		return 0, &ConversionError{Token: s, Type: "integer"}
	}
	return n, nil
}

// ParseFloat parses a whole token as a finite decimal number, e.g. "30",
// "-0.5", ".5" or "1.2e-3". Hex floats, digit separators, NaN and Inf are
// rejected, as is a leading '+'.
func ParseFloat(s string) (float64, error) {
	if !isDecimal(s) {
		return 0, &ConversionError{Token: s, Type: "float"}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, &ConversionError{Token: s, Type: "float"}
	}
	return f, nil
}

// isDecimal reports whether s is [-]mantissa[(e|E)[+-]digits], where the
// mantissa is digits with an optional '.' and at least one digit overall.
func isDecimal(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		exp := s[i+1:]
		if exp != "" && (exp[0] == '+' || exp[0] == '-') {
			exp = exp[1:]
		}
		if !isDigits(exp) {
			return false
		}
		s = s[:i]
	}
	intPart, frac, hasDot := strings.Cut(s, ".")
	if !hasDot {
		return isDigits(s)
	}
	if intPart == "" && frac == "" {
		return false
	}
	return (intPart == "" || isDigits(intPart)) && (frac == "" || isDigits(frac))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsNonNegativeInteger reports whether s is one or more decimal digits.
func IsNonNegativeInteger(s string) bool {
	return isDigits(s)
}

// IsIntegerList reports whether s is a comma-separated list of non-negative integers.
func IsIntegerList(s string) bool {
	for _, part := range strings.Split(s, ",") {
		if !isDigits(part) {
			return false
		}
	}
	return true
}

// IsFloat reports whether s is an optionally signed decimal number
// such as "1", "-0.5", "+.25". Exponents are not accepted.
func IsFloat(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	intPart, frac, hasDot := strings.Cut(s, ".")
	if !hasDot {
		return isDigits(s)
	}
	return (intPart == "" || isDigits(intPart)) && isDigits(frac)
}

// IsBoolean reports whether s is "0" or "1".
func IsBoolean(s string) bool {
	return s == "0" || s == "1"
}

// IsBases reports whether s is a non-empty run of A, C, G, T or N in either case.
func IsBases(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A', 'C', 'G', 'T', 'N', 'a', 'c', 'g', 't', 'n':
		default:
			return false
		}
	}
	return true
}

// isAllele reports whether s is an allele index or the missing marker.
func isAllele(s string) bool {
	return s == "." || isDigits(s)
}

// IsGenotype reports whether s is a haploid or diploid genotype call,
// e.g. "0", ".", "0/1", "1|1", "./.".
func IsGenotype(s string) bool {
	i := strings.IndexAny(s, "/|")
	if i < 0 {
		return isAllele(s)
	}
	return isAllele(s[:i]) && isAllele(s[i+1:])
}

// IsAltAllele reports whether s is a single ALT allele: a run of
// A, C, G, T, N or '*', or a symbolic allele such as "<DEL>".
func IsAltAllele(s string) bool {
	if len(s) >= 3 && s[0] == '<' && s[len(s)-1] == '>' {
		return !strings.Contains(s[1:len(s)-1], ">")
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A', 'C', 'G', 'T', 'N', '*':
		default:
			return false
		}
	}
	return true
}

// IsAltList reports whether every comma-separated element of s is a valid ALT allele.
func IsAltList(s string) bool {
	for _, alt := range strings.Split(s, ",") {
		if !IsAltAllele(alt) {
			return false
		}
	}
	return true
}
