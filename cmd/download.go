package cmd

import (
	"strings"

	"genomepull/internal/genomepull"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// downloadCmd is for pulling every assembly of a genus down from Entrez.
var downloadCmd = &cobra.Command{
	Use:                        "download [genus]",
	Short:                      "Download all genome assemblies of a bacterial genus",
	Run:                        genomepull.DownloadCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  genomepull download Pectobacterium -e you@example.org -o ./genomes",
	Long: `Query the NCBI genome database for [genus], resolve every linked assembly
to its INSDC contig sequences, and download each assembly to a FASTA file.

Each assembly is written to <out>/<genus>/<accession>.fasta along with
labels.txt and classes.txt mapping accessions to organism names. Downloads
whose record count doesn't match the assembly's contig count are retried;
partial attempts are kept under <out>/failures for inspection.

NCBI requires a contact email with every request. Set one with --email or
the GENOMEPULL_EMAIL environment variable.`,
	Aliases: []string{"dl", "pull"},
}

// set flags
func init() {
	downloadCmd.Flags().StringP("out", "o", ".", "output root directory")
	downloadCmd.Flags().StringP("email", "e", "", "contact email sent with every Entrez request (required)")
	downloadCmd.Flags().String("tool", "genomepull", "tool name sent with every Entrez request")
	downloadCmd.Flags().String("api-key", "", "NCBI API key (raises the request rate NCBI allows)")
	downloadCmd.Flags().Int("max-attempts", 20, "download attempts per assembly before giving up")
	downloadCmd.Flags().Float64("rate", 3, "maximum Entrez requests per second")
	downloadCmd.Flags().Int("timeout", 30, "per-request timeout in seconds")
	downloadCmd.Flags().Bool("progress", true, "show a per-assembly progress bar")
	downloadCmd.Flags().BoolP("verbose", "v", false, "log every Entrez round-trip")

	viper.BindPFlag("out", downloadCmd.Flags().Lookup("out"))
	viper.BindPFlag("email", downloadCmd.Flags().Lookup("email"))
	viper.BindPFlag("tool", downloadCmd.Flags().Lookup("tool"))
	viper.BindPFlag("api-key", downloadCmd.Flags().Lookup("api-key"))
	viper.BindPFlag("max-attempts", downloadCmd.Flags().Lookup("max-attempts"))
	viper.BindPFlag("rate", downloadCmd.Flags().Lookup("rate"))
	viper.BindPFlag("timeout", downloadCmd.Flags().Lookup("timeout"))
	viper.BindPFlag("progress", downloadCmd.Flags().Lookup("progress"))
	viper.BindPFlag("verbose", downloadCmd.Flags().Lookup("verbose"))

	viper.SetEnvPrefix("genomepull")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(downloadCmd)
}
