package seq

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	bioseq "github.com/shenwei356/bio/seq"
)

const stop = '*'

// Translate converts a nucleotide sequence to its amino acid sequence using table. Translation reads
// through stop codons, which appear as '*'. RNA input is accepted. A trailing partial codon is ignored.
// Ambiguous codons translate to the amino acid they all share, or 'X' when they disagree.
// Characters outside the IUPAC nucleotide alphabet are an error.
func Translate(dna string, table Table) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(dna))
	s = strings.ReplaceAll(s, "U", "T")

	if rem := len(s) % 3; rem != 0 {
		log.Debug().Int("length", len(s)).Int("ignored", rem).Msg("sequence length is not a multiple of three")
		s = s[:len(s)-rem]
	}
	if s == "" {
		return "", nil
	}

	nucleotides, err := bioseq.NewSeq(bioseq.DNAredundant, []byte(s))
	if err != nil {
		return "", fmt.Errorf("invalid nucleotide sequence: %w", err)
	}
	protein, err := nucleotides.Translate(table.ID, 1, false, false, true, false)
	if err != nil {
		return "", err
	}
	return string(protein.Seq), nil
}

// TranslateToStop is Translate truncated before the first stop codon.
func TranslateToStop(dna string, table Table) (string, error) {
	protein, err := Translate(dna, table)
	if err != nil {
		return "", err
	}
	if i := strings.IndexByte(protein, stop); i >= 0 {
		return protein[:i], nil
	}
	return protein, nil
}
