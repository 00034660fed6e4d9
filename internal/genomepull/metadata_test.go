package genomepull

import (
	"testing"

	"genomepull/internal/entrez"
)

func Test_deriveGname(t *testing.T) {
	tests := []struct {
		name      string
		accession string
		want      string
	}{
		{
			"strips version suffix",
			"GCA_000123456.1",
			"GCA_000123456",
		},
		{
			"strips only the last dot",
			"GCA_000123456.1.2",
			"GCA_000123456.1",
		},
		{
			"no version suffix",
			"GCA_000123456",
			"GCA_000123456",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deriveGname(tt.accession); got != tt.want {
				t.Errorf("deriveGname() = %q, want %q", got, tt.want)
			}
		})
	}
}

func Test_deriveLabel(t *testing.T) {
	tests := []struct {
		name     string
		organism string
		strain   string
		want     string
	}{
		{
			"species and strain",
			"Pectobacterium carotovorum",
			"SCC1",
			"P. carotovorum SCC1",
		},
		{
			"missing strain",
			"Pectobacterium carotovorum",
			"",
			"P. carotovorum",
		},
		{
			"subspecies tokens kept",
			"Pectobacterium carotovorum subsp. brasiliense",
			"1692",
			"P. carotovorum subsp. brasiliense 1692",
		},
		{
			"single-token organism",
			"Pectobacterium",
			"X1",
			"P. X1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deriveLabel(tt.organism, tt.strain); got != tt.want {
				t.Errorf("deriveLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func Test_organismName(t *testing.T) {
	withStrain := entrez.DocSummary{SpeciesName: "Pectobacterium carotovorum", Strain: "SCC1"}
	if got := organismName(withStrain); got != "Pectobacterium carotovorum SCC1" {
		t.Errorf("organismName() = %q", got)
	}

	noStrain := entrez.DocSummary{SpeciesName: "Pectobacterium carotovorum"}
	if got := organismName(noStrain); got != "Pectobacterium carotovorum" {
		t.Errorf("organismName() = %q", got)
	}
}
