package meta

import "strings"

// Rule checks a parsed meta-information line. It returns a non-empty
// detail when the line is malformed.
type Rule struct {
	// Name is the failure reason reported when the rule rejects a line.
	Name  string
	check func(l Line) (detail string)
}

// Check returns "" when l satisfies the rule.
func (r Rule) Check(l Line) string {
	return r.check(l)
}

// registry maps recognized keys to their rules. It is never written after init.
var registry = map[string]Rule{
	"fileformat": {Name: "Invalid file format version", check: checkFileFormat},
	"INFO":       {Name: "Invalid INFO or FORMAT line", check: checkInfoFormat},
	"FORMAT":     {Name: "Invalid INFO or FORMAT line", check: checkInfoFormat},
	"FILTER":     {Name: "Invalid FILTER line", check: checkDescribed},
	"contig":     {Name: "Invalid contig line", check: checkContig},
	"ALT":        {Name: "Invalid ALT line", check: checkDescribed},
	"SAMPLE":     {Name: "Invalid SAMPLE line", check: acceptAny},
	"PEDIGREE":   {Name: "Invalid PEDIGREE line", check: acceptAny},
}

// permissive is applied to every key the registry does not know.
var permissive = Rule{Name: "unrecognized meta-information line", check: acceptAny}

// Lookup returns the rule registered for key. Unknown keys get the
// permissive rule and ok == false.
func Lookup(key string) (rule Rule, ok bool) {
	if r, found := registry[key]; found {
		return r, true
	}
	return permissive, false
}

func acceptAny(Line) string { return "" }

// checkFileFormat accepts VCFv<digits>.<digits> and nothing else.
func checkFileFormat(l Line) string {
	version, ok := strings.CutPrefix(l.Value, "VCFv")
	if !ok {
		return "version must start with VCFv"
	}
	major, minor, ok := strings.Cut(version, ".")
	if !ok || !digits(major) || !digits(minor) {
		return "version must be <major>.<minor>"
	}
	return ""
}

func checkInfoFormat(l Line) string {
	if !l.Enclosed {
		return "attributes must be enclosed in <>"
	}
	attrs := l.Attributes
	if len(attrs) < 4 {
		return "expected ID, Number, Type and Description"
	}
	switch {
	case !expect(attrs[0], "ID", identifier):
		return "first attribute must be ID"
	case !expect(attrs[1], "Number", number):
		return "second attribute must be a valid Number"
	case !expect(attrs[2], "Type", valueType):
		return "third attribute must be Type=Integer|Float|Flag|Character|String"
	case !expect(attrs[3], "Description", quoted):
		return "fourth attribute must be a quoted, non-empty Description"
	}
	for _, attr := range attrs[4:] {
		if _, v, ok := pair(attr); !ok || !quoted(v) {
			return "extra attribute " + attr + " must be key=\"value\""
		}
	}
	return ""
}

// checkDescribed handles the ID,Description shape shared by FILTER and ALT.
func checkDescribed(l Line) string {
	if !l.Enclosed {
		return "attributes must be enclosed in <>"
	}
	attrs := l.Attributes
	switch {
	case len(attrs) != 2:
		return "expected exactly ID and Description"
	case !expect(attrs[0], "ID", identifier):
		return "first attribute must be ID"
	case !expect(attrs[1], "Description", quoted):
		return "Description must be quoted and non-empty"
	}
	return ""
}


// checkContig requires ID first; a length given second must be numeric.
// Anything after that is left alone.
func checkContig(l Line) string {
	if !l.Enclosed {
		return "attributes must be enclosed in <>"
	}
	attrs := l.Attributes
	if !expect(attrs[0], "ID", identifier) {
		return "first attribute must be ID"
	}
	if len(attrs) > 1 {
		if k, v, _ := pair(attrs[1]); k == "length" && !digits(v) {
			return "length must be a non-negative integer"
		}
	}
	return ""
}
