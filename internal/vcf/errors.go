package vcf

import "fmt"

// Kind classifies a validation failure.
type Kind int

const (
	// StructuralError is a line in a position the file layout does not allow.
	StructuralError Kind = iota + 1
	// SchemaError is a recognized meta-information line with the wrong attribute shape.
	SchemaError
	// FieldError is a data record column whose value breaks its format rule.
	FieldError
	// CardinalityError is a sample column whose value count differs from FORMAT.
	CardinalityError
	// ConversionError is a token that should be numeric but does not parse.
	ConversionError
)

func (k Kind) String() string {
	switch k {
	case StructuralError:
		return "StructuralError"
	case SchemaError:
		return "SchemaError"
	case FieldError:
		return "FieldError"
	case CardinalityError:
		return "CardinalityError"
	case ConversionError:
		return "ConversionError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ValidationError is the first violation found in a file.
type ValidationError struct {
	Kind Kind
	Line int    // 1-based line number, 0 when the failure is not tied to a line
	Rule string // human-readable rule that was violated
	Text string // offending raw text, if any
	Err  error  // underlying cause, if any
}

func (e *ValidationError) Error() string {
	msg := e.Rule
	if e.Text != "" {
		msg = fmt.Sprintf("%s: %s", e.Rule, e.Text)
	}
	if e.Line == 0 {
		return "vcf validation error: " + msg
	}
	return fmt.Sprintf("vcf validation error at line %d: %s", e.Line, msg)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newError(kind Kind, rule, text string) *ValidationError {
	return &ValidationError{Kind: kind, Rule: rule, Text: text}
}
