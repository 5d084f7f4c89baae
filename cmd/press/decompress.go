package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bytepress/press"
	"github.com/bytepress/press/codecs"
)

var decompressCmd = &cobra.Command{
	Use:   "decompress <codec>",
	Short: "Decompress a file or stdin",
	Long: `Decompress data with the named codec.

Supported codecs: ` + strings.Join(codecs.Names(), ", ") + `

Examples:
  # Decompress a file
  press decompress gzip -i report.csv.gz -o report.csv

  # Pipe from stdin to stdout
  cat report.csv.zst | press decompress zstd > report.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runDecompress,
}

var (
	dInputPath  string
	dOutputPath string
)

func init() {
	decompressCmd.Flags().StringVarP(&dInputPath, "input", "i", "", "input file, gs:// object, or stdin if omitted")
	decompressCmd.Flags().StringVarP(&dOutputPath, "output", "o", "", "output file, or stdout if omitted")
	rootCmd.AddCommand(decompressCmd)
}

func runDecompress(cmd *cobra.Command, args []string) error {
	codec, ok := codecs.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown codec %q (supported: %s)", args[0], strings.Join(codecs.Names(), ", "))
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	in, err := openInput(cmd.Context(), dInputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := openOutput(dOutputPath)
	if err != nil {
		return err
	}

	logger.Debug("decompressing", zap.String("codec", codec.Name()))

	start := time.Now()
	counted := &countWriter{w: out}
	read := &countReader{r: in}
	cr, err := codec.NewReader(read)
	if err != nil {
		out.Close()
		return &press.DecompressionError{Codec: codec.Name(), Err: err}
	}
	_, err = io.Copy(counted, cr)
	if err == nil {
		err = cr.Close()
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return &press.DecompressionError{Codec: codec.Name(), Err: err}
	}

	report(codec.Name(), "decompressed", read.n, counted.n, time.Since(start))
	return nil
}

// countReader tracks how many compressed bytes the codec consumed.
type countReader struct {
	r io.Reader
	n int64
}

func (c *countReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
