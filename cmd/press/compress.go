package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bytepress/press"
	"github.com/bytepress/press/codecs"
)

var compressCmd = &cobra.Command{
	Use:   "compress <codec>",
	Short: "Compress a file or stdin",
	Long: `Compress data with the named codec.

Supported codecs: ` + strings.Join(codecs.Names(), ", ") + `

Examples:
  # Compress a file with the codec's default level
  press compress gzip -i report.csv -o report.csv.gz

  # Pipe through zstd at level 15
  cat report.csv | press compress zstd --level 15 > report.csv.zst`,
	Args: cobra.ExactArgs(1),
	RunE: runCompress,
}

var (
	inputPath  string
	outputPath string
	level      int
)

func init() {
	compressCmd.Flags().StringVarP(&inputPath, "input", "i", "", "input file, gs:// object, or stdin if omitted")
	compressCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file, or stdout if omitted")
	compressCmd.Flags().IntVarP(&level, "level", "l", -1, "compression level (codec default if omitted)")
	rootCmd.AddCommand(compressCmd)
}

func runCompress(cmd *cobra.Command, args []string) error {
	codec, ok := codecs.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown codec %q (supported: %s)", args[0], strings.Join(codecs.Names(), ", "))
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	in, err := openInput(cmd.Context(), inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := openOutput(outputPath)
	if err != nil {
		return err
	}

	lvl := codec.DefaultLevel()
	if level >= 0 {
		lvl = level
	}
	logger.Debug("compressing",
		zap.String("codec", codec.Name()),
		zap.Int("level", lvl),
	)

	start := time.Now()
	counted := &countWriter{w: out}
	cw, err := codec.NewWriter(counted, lvl)
	if err != nil {
		out.Close()
		return &press.CompressionError{Codec: codec.Name(), Err: err}
	}
	read, err := io.Copy(cw, in)
	if err == nil {
		err = cw.Close()
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return &press.CompressionError{Codec: codec.Name(), Err: err}
	}

	report(codec.Name(), "compressed", read, counted.n, time.Since(start))
	return nil
}

// report prints the summary line on stderr so piped output stays clean.
func report(codec, verb string, in, out int64, elapsed time.Duration) {
	if quiet {
		return
	}
	ratio := 0.0
	if in > 0 {
		ratio = float64(out) / float64(in)
	}
	fmt.Fprintf(os.Stderr, "%s: %s %d bytes to %d bytes (ratio %.3f) in %s\n",
		codec, verb, in, out, ratio, elapsed.Round(time.Millisecond))
}
