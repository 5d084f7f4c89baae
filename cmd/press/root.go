package main

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bytepress/press/codecs"
)

var (
	// Global flags.
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "press",
	Short: "Compress and decompress data with a uniform codec interface",
	Long: `Press wraps ` + strings.Join(codecs.Names(), ", ") + ` behind one
command-line surface.

Examples:
  # Compress a file with zstd at level 10
  press compress zstd -i report.csv -o report.csv.zst --level 10

  # Decompress from stdin to stdout
  cat report.csv.zst | press decompress zstd > report.csv

  # Compress an object straight out of Cloud Storage
  press compress gzip -i gs://my-bucket/report.csv -o report.csv.gz`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress the summary line")
}

// newLogger builds the CLI logger. Verbose runs get development output
// on stderr, everything else stays silent.
func newLogger() (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
