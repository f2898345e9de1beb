// Command hllcount estimates the number of distinct words in its input with a HyperLogLog sketch.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/keilerkonzept/hll"
)

const (
	hashMurmur3 = "murmur3"
	hashXXHash  = "xxhash"
)

var errUnknownHash = errors.New("unknown hash function")

func main() {
	if err := newRootCommand(os.Stdin).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(stdin io.Reader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hllcount [file...]",
		Short: "Estimate the number of distinct words in files or stdin",
		Long: `hllcount feeds every whitespace-separated word of the named files
(or stdin when none are given) through a HyperLogLog sketch and prints
the estimated number of distinct words.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			return run(cfg, args, stdin, cmd.OutOrStdout(), logger)
		},
	}
	registerFlags(cmd.Flags())
	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newHash(name string, seed uint32) (hll.HashFunc[string], error) {
	switch name {
	case hashMurmur3:
		return hll.Murmur3String(seed), nil
	case hashXXHash:
		return hll.XXHash32String(seed), nil
	}
	return nil, fmt.Errorf("%w: %q", errUnknownHash, name)
}

func run(cfg *config, files []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	seed := cfg.Seed
	if cfg.RandomSeed {
		seed = rand.Uint32()
	}

	hash, err := newHash(cfg.Hash, seed)
	if err != nil {
		return err
	}

	sketch, err := hll.New(uint8(cfg.Precision), hash)
	if err != nil {
		return err
	}

	var n int
	switch {
	case cfg.Sequence > 0:
		for i := range cfg.Sequence {
			sketch.Add(strconv.Itoa(i))
		}
		n = cfg.Sequence
	case len(files) == 0:
		if n, err = addWords(sketch, stdin); err != nil {
			return fmt.Errorf("stdin: %w", err)
		}
	default:
		for _, name := range files {
			k, err := addFile(sketch, name)
			if err != nil {
				return err
			}
			n += k
		}
	}

	logger.Debug("sketch filled",
		"elements", n,
		"hash", cfg.Hash,
		"seed", seed,
		"precision", sketch.Precision(),
		"registers", sketch.RegisterCount(),
		"size", humanize.Bytes(uint64(sketch.SizeBytes())),
		"raw_estimate", sketch.RawEstimate(),
	)

	_, err = fmt.Fprintf(stdout, "Cardinality: %g\n", sketch.Cardinality())
	return err
}

func addFile(sketch *hll.Sketch[string], name string) (int, error) {
	f, err := os.Open(name)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n, err := addWords(sketch, f)
	if err != nil {
		return n, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}

// addWords adds every whitespace-separated word read from r and returns how many it added.
func addWords(sketch *hll.Sketch[string], r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var n int
	for scanner.Scan() {
		sketch.Add(scanner.Text())
		n++
	}
	return n, scanner.Err()
}
