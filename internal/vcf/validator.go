package vcf

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/farmerpiki/genomic-validator/internal/meta"
)

// Summary describes a validated file.
type Summary struct {
	Lines     int
	MetaLines int
	Records   int
	Samples   []string
}

// Validator checks a stream of VCF lines in a single forward pass.
type Validator struct {
	logger *zap.Logger
}

// NewValidator creates a validator that logs nothing.
func NewValidator() *Validator {
	return &Validator{logger: zap.NewNop()}
}

// SetLogger sets the logger for debug and info messages.
func (v *Validator) SetLogger(l *zap.Logger) {
	v.logger = l
}

// pass is the state carried from one line to the next.
type pass struct {
	headerSeen bool
	summary    Summary
}

// Validate reads src to the end and returns nil if every line is valid.
// The first violation stops the pass and is returned as a
// *ValidationError. Errors from src itself are returned wrapped.
//
// Lines must appear as meta-information lines ("##"), then exactly one
// column header line ("#CHROM ..."), then data records.
func (v *Validator) Validate(src LineSource) (Summary, error) {
	var p pass

	for {
		line, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return p.summary, fmt.Errorf("read input: %w", err)
		}
		p.summary.Lines++

		if err := v.step(&p, line); err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) && verr.Line == 0 {
				verr.Line = line.Number
			}
			v.logger.Debug("validation failed",
				zap.Int("line", line.Number),
				zap.Error(err))
			return p.summary, err
		}
	}

	if !p.headerSeen {
		return p.summary, newError(StructuralError, "Missing column header line", "")
	}

	v.logger.Info("vcf valid",
		zap.Int("lines", p.summary.Lines),
		zap.Int("meta_lines", p.summary.MetaLines),
		zap.Int("records", p.summary.Records),
		zap.Int("samples", len(p.summary.Samples)))

	return p.summary, nil
}

// step classifies one line and routes it to its validator.
func (v *Validator) step(p *pass, line Line) error {
	text := line.Text

	switch {
	case strings.HasPrefix(text, "##"):
		if p.headerSeen {
			return newError(StructuralError, "Meta-information line after column header", text)
		}
		v.logger.Debug("meta-information line", zap.Int("line", line.Number))
		if err := meta.Validate(text); err != nil {
			e := newError(SchemaError, err.Error(), text)
			e.Err = err
			return e
		}
		p.summary.MetaLines++

	case strings.HasPrefix(text, "#"):
		if p.headerSeen {
			return newError(StructuralError, "Duplicate column header line", text)
		}
		v.logger.Debug("column header line", zap.Int("line", line.Number))
		h, err := ParseHeader(text)
		if err != nil {
			return err
		}
		p.headerSeen = true
		p.summary.Samples = h.Samples()

	case !p.headerSeen:
		return newError(StructuralError, "Unexpected line format", text)

	default:
		if err := ValidateRecord(text); err != nil {
			return err
		}
		p.summary.Records++
	}

	return nil
}

// ValidateReader validates the VCF text read from r.
func (v *Validator) ValidateReader(r io.Reader) (Summary, error) {
	src, err := NewReader(r)
	if err != nil {
		return Summary{}, err
	}
	defer src.Close()
	return v.Validate(src)
}
