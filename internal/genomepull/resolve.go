package genomepull

import (
	"context"
	"errors"
	"fmt"
)

// insdcLinkName marks the canonical assembly-to-nucleotide linkset.
// Other linksets (wgsmaster, refseq) carry different record sets.
const insdcLinkName = "assembly_nuccore_insdc"

// ErrMissingLinkGroup is returned when an assembly has no INSDC
// nucleotide linkset.
var ErrMissingLinkGroup = errors.New("no INSDC nucleotide linkset")

// resolveAssemblies flattens the assembly ids linked from each
// genome id. The same assembly can be linked from several genome
// entries; it is kept once, in first-seen order.
func (p *Pipeline) resolveAssemblies(ctx context.Context, genomeIDs []string) ([]string, error) {
	var ids []string
	seen := make(map[string]bool)

	for _, gid := range genomeIDs {
		sets, err := p.api.Link(ctx, genomeDB, assemblyDB, gid)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve assemblies of genome %s: %w", gid, err)
		}

		for _, set := range sets {
			for _, id := range set.IDs {
				if seen[id] {
					continue
				}
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	return ids, nil
}

// resolveContigs returns the nucleotide ids of the assembly's INSDC
// contig linkset. The linkset's length is the assembly's expected
// contig count.
func (p *Pipeline) resolveContigs(ctx context.Context, assemblyID string) ([]string, error) {
	sets, err := p.api.Link(ctx, assemblyDB, nuccoreDB, assemblyID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve contigs of assembly %s: %w", assemblyID, err)
	}

	for _, set := range sets {
		if set.Name == insdcLinkName {
			return set.IDs, nil
		}
	}

	return nil, fmt.Errorf("assembly %s: %w", assemblyID, ErrMissingLinkGroup)
}
