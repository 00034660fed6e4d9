// Package genomepull discovers every genome assembly of a bacterial
// genus through Entrez and downloads each assembly's INSDC contigs
// to a per-assembly FASTA file.
package genomepull

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"genomepull/config"
	"genomepull/internal/entrez"

	"github.com/spf13/cobra"
	"gopkg.in/cheggaaa/pb.v1"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Entrez database names used by the pipeline.
const (
	genomeDB   = "genome"
	assemblyDB = "assembly"
	nuccoreDB  = "nuccore"
)

// searcher is the slice of the Entrez client the pipeline uses.
// *entrez.Client satisfies it; tests substitute fakes.
type searcher interface {
	Search(ctx context.Context, db, term string) (int, []string, error)
	Link(ctx context.Context, fromDB, toDB, id string) ([]entrez.LinkSet, error)
	Summary(ctx context.Context, db, id string) (entrez.DocSummary, error)
	Fetch(ctx context.Context, db string, ids []string, rettype string) ([]byte, error)
}

// Assembly is one genome assembly discovered for the genus, with
// everything needed to download and name its sequence file.
type Assembly struct {
	// ID is the opaque Entrez assembly identifier
	ID string

	// Gname is the on-disk file stem: the accession without its
	// trailing .<version>
	Gname string

	// Organism is the full species name from the document summary
	Organism string

	// Label is the short form, e.g. "P. carotovorum SCC1"
	Label string

	// ContigIDs are the nucleotide ids of the assembly's contigs
	ContigIDs []string

	// ExpectedContigs is the contig count declared at discovery
	// time; a download is complete only when it returns this many
	// records
	ExpectedContigs int
}

// Report summarizes one pipeline run.
type Report struct {
	Genus      string
	Discovered int
	Downloaded int
	Failed     []string // assembly ids whose downloads never completed
}

// Pipeline chains the Entrez lookups for a single genus.
type Pipeline struct {
	genus string
	conf  *config.Config
	api   searcher
}

// New returns a pipeline for genus using the settings in conf.
func New(genus string, conf *config.Config, api searcher) *Pipeline {
	return &Pipeline{genus: genus, conf: conf, api: api}
}

// DownloadCmd takes a cobra command (with its flags) and runs Download.
func DownloadCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		stderr.Fatalln("\nno genus passed.")
	}
	genus := args[0]

	conf := config.New()
	if err := conf.Validate(); err != nil {
		stderr.Fatalln(err)
	}

	client := entrez.NewClient(entrez.Config{
		BaseURL: conf.BaseURL,
		Email:   conf.Email,
		Tool:    conf.Tool,
		APIKey:  conf.APIKey,
		Verbose: conf.Verbose,
	}, conf.RateLimit, time.Duration(conf.TimeoutSeconds)*time.Second)

	report, err := New(genus, conf, client).Run(context.Background())
	if err != nil {
		stderr.Fatalln(err)
	}

	stderr.Printf(
		"%s: %d assemblies discovered, %d downloaded, %d failed",
		report.Genus, report.Discovered, report.Downloaded, len(report.Failed),
	)
	for _, id := range report.Failed {
		stderr.Printf("  failed: assembly %s", id)
	}
}

// Run executes the full pipeline: search, assembly resolution,
// contig resolution, metadata, then per-assembly downloads. Remote
// failures before the download stage abort the run; download
// failures are reported and skipped.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	term := fmt.Sprintf("%s AND bacteria[Organism]", p.genus)
	count, genomeIDs, err := p.api.Search(ctx, genomeDB, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search the genome db for %s: %w", p.genus, err)
	}
	stderr.Printf("%d genome entries for %s", count, p.genus)

	asmIDs, err := p.resolveAssemblies(ctx, genomeIDs)
	if err != nil {
		return nil, err
	}

	// label/classes write order is sorted assembly id order, so the
	// outputs of two runs over the same remote data are identical
	sort.Strings(asmIDs)

	assemblies := make([]*Assembly, 0, len(asmIDs))
	for _, id := range asmIDs {
		asm, err := p.describeAssembly(ctx, id)
		if err != nil {
			return nil, err
		}
		assemblies = append(assemblies, asm)
	}

	genusDir, failDir, err := makeOutDirs(p.conf.Out, p.genus)
	if err != nil {
		return nil, err
	}
	if err := writeLabelFiles(genusDir, assemblies); err != nil {
		return nil, err
	}

	var bar *pb.ProgressBar
	if p.conf.Progress {
		bar = pb.StartNew(len(assemblies))
	}

	report := &Report{Genus: p.genus, Discovered: len(assemblies)}
	for _, asm := range assemblies {
		if p.downloadAssembly(ctx, asm, genusDir, failDir) {
			report.Downloaded++
		} else {
			report.Failed = append(report.Failed, asm.ID)
		}
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}

	return report, nil
}

// describeAssembly resolves one assembly's contig ids and metadata.
func (p *Pipeline) describeAssembly(ctx context.Context, id string) (*Assembly, error) {
	contigs, err := p.resolveContigs(ctx, id)
	if err != nil {
		return nil, err
	}

	sum, err := p.api.Summary(ctx, assemblyDB, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch the summary of assembly %s: %w", id, err)
	}

	return &Assembly{
		ID:              id,
		Gname:           deriveGname(sum.Accession),
		Organism:        organismName(sum),
		Label:           deriveLabel(sum.SpeciesName, sum.Strain),
		ContigIDs:       contigs,
		ExpectedContigs: len(contigs),
	}, nil
}
