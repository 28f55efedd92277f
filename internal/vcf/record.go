package vcf

import (
	"strings"

	"github.com/farmerpiki/genomic-validator/internal/token"
)

// Record is one data line split into its tab-delimited columns.
type Record struct {
	Chrom  string
	Pos    string
	ID     string
	Ref    string
	Alt    string
	Qual   string
	Filter string
	Info   string

	// Format is the FORMAT column; HasFormat is false when the line has
	// only the eight mandatory columns.
	Format    string
	HasFormat bool
	Samples   []string
}

// SplitRecord splits a data line on tabs. It fails when fewer than eight
// columns are present.
func SplitRecord(line string) (*Record, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < len(mandatoryColumns) {
		return nil, newError(FieldError, "Invalid data line (not enough fields)", line)
	}

	r := &Record{
		Chrom:  fields[0],
		Pos:    fields[1],
		ID:     fields[2],
		Ref:    fields[3],
		Alt:    fields[4],
		Qual:   fields[5],
		Filter: fields[6],
		Info:   fields[7],
	}
	if len(fields) > len(mandatoryColumns) {
		r.Format = fields[8]
		r.HasFormat = true
		r.Samples = fields[9:]
	}
	return r, nil
}

// ValidateRecord checks one data line. Columns are checked left to right
// and the first violation is returned.
func ValidateRecord(line string) error {
	r, err := SplitRecord(line)
	if err != nil {
		return err
	}
	return r.Validate()
}

// Validate checks every column of the record, then its genotype block.
func (r *Record) Validate() error {
	checks := []func() error{
		r.checkChrom,
		r.checkPos,
		r.checkID,
		r.checkRef,
		r.checkAlt,
		r.checkQual,
		r.checkFilter,
		r.checkInfo,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}

	if r.HasFormat {
		return ValidateGenotypes(r.Format, r.Samples)
	}
	return nil
}

func (r *Record) checkChrom() error {
	if r.Chrom == "" {
		return newError(FieldError, "Invalid CHROM field", r.Chrom)
	}
	if !IsHumanChromosome(r.Chrom) {
		return newError(FieldError, "Non-human chromosome found", r.Chrom)
	}
	return nil
}

func (r *Record) checkPos() error {
	pos, err := token.ParseInt(r.Pos)
	if err != nil {
		return conversionError("Invalid POS field (not an integer)", r.Pos, err)
	}
	if pos <= 0 {
		return newError(FieldError, "Invalid POS field", r.Pos)
	}
	return nil
}

func (r *Record) checkID() error {
	if r.ID == "" {
		return newError(FieldError, "Invalid ID field", r.ID)
	}
	return nil
}

func (r *Record) checkRef() error {
	if !token.IsBases(r.Ref) {
		return newError(FieldError, "Invalid REF field", r.Ref)
	}
	return nil
}

func (r *Record) checkAlt() error {
	if !token.IsAltList(r.Alt) {
		return newError(FieldError, "Invalid ALT field", r.Alt)
	}
	return nil
}

func (r *Record) checkQual() error {
	if r.Qual == "." {
		return nil
	}
	qual, err := token.ParseFloat(r.Qual)
	if err != nil {
		return conversionError("Invalid QUAL field (not a float)", r.Qual, err)
	}
	if qual < 0 {
		return newError(FieldError, "Invalid QUAL field", r.Qual)
	}
	return nil
}

func (r *Record) checkFilter() error {
	if r.Filter == "" {
		return newError(FieldError, "Invalid FILTER field", r.Filter)
	}
	return nil
}

func (r *Record) checkInfo() error {
	if r.Info == "" {
		return newError(FieldError, "Invalid INFO field", r.Info)
	}
	return nil
}

func conversionError(rule, text string, err error) *ValidationError {
	e := newError(ConversionError, rule, text)
	e.Err = err
	return e
}
