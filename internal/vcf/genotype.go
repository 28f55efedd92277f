package vcf

import (
	"fmt"
	"strings"

	"github.com/farmerpiki/genomic-validator/internal/token"
)

// Descriptor is a FORMAT code with the check its sample values must pass.
type Descriptor struct {
	Code  string
	Label string
	Check func(string) bool
}

func nonEmpty(s string) bool { return s != "" }

// descriptors is the fixed table of FORMAT codes whose values are checked.
// Codes not listed here are accepted without looking at their values.
var descriptors = newDescriptorTable(
	Descriptor{"GT", "genotype", token.IsGenotype},
	Descriptor{"DP", "read depth", token.IsNonNegativeInteger},
	Descriptor{"GQ", "genotype quality", token.IsNonNegativeInteger},
	Descriptor{"AD", "allele depth", token.IsIntegerList},
	Descriptor{"PL", "phred-scaled genotype likelihoods", token.IsIntegerList},
	Descriptor{"MQ", "mapping quality", token.IsNonNegativeInteger},
	Descriptor{"SB", "strand bias", token.IsIntegerList},
	Descriptor{"MQ0", "MQ0 read count", token.IsNonNegativeInteger},
	Descriptor{"HRun", "homopolymer run length", token.IsNonNegativeInteger},
	Descriptor{"AF", "allele frequency", token.IsFloat},
	Descriptor{"AC", "allele count", token.IsNonNegativeInteger},
	Descriptor{"AN", "total allele number", token.IsNonNegativeInteger},
	Descriptor{"BaseQRankSum", "base quality rank sum", token.IsFloat},
	Descriptor{"ReadPosRankSum", "read position rank sum", token.IsFloat},
	Descriptor{"FS", "Fisher strand bias", token.IsFloat},
	Descriptor{"SOR", "strand odds ratio", token.IsFloat},
	Descriptor{"MQRankSum", "mapping quality rank sum", token.IsFloat},
	Descriptor{"QD", "quality by depth", token.IsFloat},
	Descriptor{"RPA", "repeat unit count", token.IsIntegerList},
	Descriptor{"RU", "repeat unit", nonEmpty},
	Descriptor{"STR", "short tandem repeat flag", token.IsBoolean},
)

func newDescriptorTable(ds ...Descriptor) map[string]Descriptor {
	table := make(map[string]Descriptor, len(ds))
	for _, d := range ds {
		table[d.Code] = d
	}
	return table
}

// LookupDescriptor returns the descriptor registered for code.
func LookupDescriptor(code string) (Descriptor, bool) {
	d, ok := descriptors[code]
	return d, ok
}

// ValidateGenotypes checks each sample column against the FORMAT column:
// every sample must have one colon-separated value per descriptor, and
// each value must pass its descriptor's check.
func ValidateGenotypes(format string, samples []string) error {
	codes := strings.Split(format, ":")

	for i, sample := range samples {
		values := strings.Split(sample, ":")
		if len(values) != len(codes) {
			return newError(CardinalityError,
				fmt.Sprintf("Sample data does not match FORMAT descriptors (sample %d has %d values, FORMAT %s has %d)",
					i+1, len(values), format, len(codes)),
				sample)
		}

		for j, code := range codes {
			d, known := LookupDescriptor(code)
			if !known {
				continue
			}
			if !d.Check(values[j]) {
				return newError(FieldError,
					fmt.Sprintf("Invalid %s data for %s in sample %d", d.Label, code, i+1),
					values[j])
			}
		}
	}

	return nil
}
