package vcf

import "strconv"

// humanChromosomes holds the accepted CHROM names: 1-22, X, Y and MT,
// plus the UCSC-style chr1-chr22, chrX, chrY and chrM.
var humanChromosomes = newChromosomeSet()

func newChromosomeSet() map[string]struct{} {
	set := make(map[string]struct{}, 50)
	for i := 1; i <= 22; i++ {
		n := strconv.Itoa(i)
		set[n] = struct{}{}
		set["chr"+n] = struct{}{}
	}
	for _, name := range []string{"X", "Y", "MT", "chrX", "chrY", "chrM"} {
		set[name] = struct{}{}
	}
	return set
}

// IsHumanChromosome reports whether chrom is on the human allow-list.
func IsHumanChromosome(chrom string) bool {
	_, ok := humanChromosomes[chrom]
	return ok
}
