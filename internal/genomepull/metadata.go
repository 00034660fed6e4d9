package genomepull

import (
	"strings"

	"genomepull/internal/entrez"
)

// deriveGname strips the version suffix from an accession to form
// the on-disk file stem: "GCA_000123456.1" -> "GCA_000123456".
func deriveGname(accession string) string {
	if i := strings.LastIndex(accession, "."); i > 0 {
		return accession[:i]
	}
	return accession
}

// deriveLabel abbreviates an organism name to its genus initial,
// e.g. ("Pectobacterium carotovorum", "SCC1") -> "P. carotovorum SCC1".
// A missing strain just shortens the label.
func deriveLabel(organism, strain string) string {
	fields := strings.Fields(organism)
	if len(fields) == 0 {
		return strings.TrimSpace(strain)
	}

	parts := []string{fields[0][:1] + "."}
	parts = append(parts, fields[1:]...)
	if strain != "" {
		parts = append(parts, strain)
	}

	return strings.Join(parts, " ")
}

// organismName is the full organism name written to classes.txt:
// the species name plus the strain when one is declared.
func organismName(sum entrez.DocSummary) string {
	if sum.Strain == "" {
		return sum.SpeciesName
	}
	return sum.SpeciesName + " " + sum.Strain
}
