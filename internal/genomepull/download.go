package genomepull

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"genomepull/internal/fasta"
)

// CountMismatchError reports a download that returned the wrong
// number of sequence records for an assembly.
type CountMismatchError struct {
	AssemblyID string
	Want, Got  int
}

// Error implements the error interface.
func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("assembly %s: got %d records, want %d", e.AssemblyID, e.Got, e.Want)
}

// downloadAssembly fetches an assembly's contigs as one batched
// FASTA request, retrying until the record count matches the
// expected contig count or MaxAttempts is exhausted. Mismatched
// attempts are kept in failDir for inspection. Whatever the last
// attempt returned is written to the assembly's output file either
// way, so a failed assembly's file may be incomplete, not absent.
// Returns whether the download completed.
func (p *Pipeline) downloadAssembly(ctx context.Context, asm *Assembly, genusDir, failDir string) bool {
	var records []fasta.Record
	success := false

	for attempt := 0; attempt < p.conf.MaxAttempts && !success; attempt++ {
		body, err := p.api.Fetch(ctx, nuccoreDB, asm.ContigIDs, "fasta")
		if err != nil {
			stderr.Printf("attempt %d for assembly %s: %v", attempt, asm.ID, err)
			continue
		}

		recs, err := fasta.Parse(bytes.NewReader(body))
		if err != nil {
			stderr.Printf("attempt %d for assembly %s: %v", attempt, asm.ID, err)
			continue
		}
		records = recs

		if len(recs) == asm.ExpectedContigs {
			success = true
			break
		}

		// wrong record count: quarantine this attempt and retry
		mismatch := &CountMismatchError{AssemblyID: asm.ID, Want: asm.ExpectedContigs, Got: len(recs)}
		stderr.Printf("attempt %d: %v", attempt, mismatch)

		diagnostic := filepath.Join(failDir, fmt.Sprintf("%s_%d_failed.fasta", asm.ID, attempt))
		if err := fasta.WriteFile(diagnostic, recs); err != nil {
			stderr.Printf("failed to write %s: %v", diagnostic, err)
		}
	}

	if !success {
		stderr.Printf("download failed for assembly %s (%s) after %d attempts", asm.ID, asm.Gname, p.conf.MaxAttempts)
	}

	out := filepath.Join(genusDir, asm.Gname+".fasta")
	if err := fasta.WriteFile(out, records); err != nil {
		stderr.Printf("failed to write %s: %v", out, err)
		return false
	}

	return success
}
