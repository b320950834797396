// Command mutagen is the CLI for the mutation-annotation pipeline.
// It provides commands for finalising annotation files (validate and
// rename associations), checking files for parse damage, and resolving
// amino-acid positions to genomic coordinates.
package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"

	"github.com/seqcurate/mutagen/core/backtrack"
	"github.com/seqcurate/mutagen/core/errors"
	"github.com/seqcurate/mutagen/core/grammar"
	"github.com/seqcurate/mutagen/core/rename"
	"github.com/seqcurate/mutagen/internal/logging"
	"github.com/seqcurate/mutagen/internal/validation"
)

const version = "0.1.0"

// CLI defines the command-line interface for mutagen.
var CLI struct {
	// Global flags
	Verbose bool `short:"v" help:"Enable debug logging"`
	LogJSON bool `name:"log-json" help:"Emit logs as JSON"`

	Finalise  FinaliseCmd  `cmd:"" help:"Validate an annotation file, rename associations and re-emit it"`
	Check     CheckCmd     `cmd:"" help:"Parse an annotation file and report incomplete records"`
	Backtrack BacktrackCmd `cmd:"" help:"Resolve an amino-acid position to genomic coordinates"`
	Codons    CodonsCmd    `cmd:"" help:"List DNA codons for a one-letter amino-acid code"`
	Version   VersionCmd   `cmd:"" help:"Print version information"`
}

// FinaliseCmd validates, renames and re-emits an annotation file.
type FinaliseCmd struct {
	Input        string `short:"i" required:"" help:"Input annotation file" type:"existingfile"`
	Associations string `short:"a" help:"JSON association-rename mapping" type:"existingfile"`
	Output       string `short:"o" required:"" help:"Output path (must not exist)" type:"path"`
	Compress     bool   `help:"Write xz-compressed output"`
}

func (c *FinaliseCmd) Run() error {
	runID := uuid.New().String()

	if err := validation.ValidateInputFile(c.Input); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	if c.Associations != "" {
		if err := validation.ValidateInputFile(c.Associations); err != nil {
			return fmt.Errorf("invalid mapping file: %w", err)
		}
	}
	if err := validation.ValidateOutputPath(c.Output); err != nil {
		return fmt.Errorf("invalid output: %w", err)
	}

	data, err := os.ReadFile(c.Input)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	sum := blake3.Sum256(data)
	logging.Info("input_loaded",
		"run_id", runID,
		"path", c.Input,
		"bytes", len(data),
		"blake3", hex.EncodeToString(sum[:]),
	)

	records, err := grammar.Parse(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse input: %w", err)
	}
	incomplete := 0
	for _, rec := range records {
		if !rec.Complete() {
			incomplete++
		}
	}
	logging.ParseSummary(c.Input, len(records), incomplete, "run_id", runID)

	set := rename.MappingSet{}
	if c.Associations != "" {
		set, err = rename.LoadMappings(c.Associations)
		if err != nil {
			return err
		}
	}

	finalised, err := rename.ApplyAll(set, records)
	if err != nil {
		var verr *errors.ValidationError
		if errors.As(err, &verr) {
			logging.RecordFailure(verr.Scope, err, "run_id", runID)
		}
		return err
	}

	if err := writeLines(c.Output, grammar.Write(finalised), c.Compress); err != nil {
		return err
	}

	fmt.Printf("Finalised: %s\n", c.Input)
	fmt.Printf("  Records: %d\n", len(finalised))
	fmt.Printf("  BLAKE3 (input): %s\n", hex.EncodeToString(sum[:]))
	fmt.Printf("  Output: %s\n", c.Output)
	return nil
}

// CheckCmd parses a file and reports where records are damaged.
type CheckCmd struct {
	Input string `arg:"" help:"Input annotation file" type:"existingfile"`
}

func (c *CheckCmd) Run() error {
	if err := validation.ValidateInputFile(c.Input); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	file, err := os.Open(c.Input)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer file.Close()

	records, err := grammar.Parse(file)
	if err != nil {
		return fmt.Errorf("failed to parse input: %w", err)
	}

	fmt.Printf("Checking: %s\n\n", c.Input)
	incomplete := 0
	for _, rec := range records {
		holes := rec.Holes()
		if len(holes) == 0 {
			fmt.Printf("  [OK]   %s\n", rec.Protein)
			continue
		}
		incomplete++
		fmt.Printf("  [FAIL] %s\n", rec.Protein)
		for _, h := range holes {
			fmt.Printf("         - %s\n", h)
		}
	}

	fmt.Printf("\n%d record(s), %d incomplete\n", len(records), incomplete)
	if incomplete > 0 {
		return fmt.Errorf("%d incomplete record(s)", incomplete)
	}
	return nil
}

// BacktrackCmd resolves one amino-acid position to genomic coordinates.
type BacktrackCmd struct {
	Accession string `arg:"" help:"UniProtKB/Swiss-Prot accession"`
	Position  int    `arg:"" help:"0-based amino-acid position"`
	Cache     string `help:"SQLite lookup cache path" type:"path"`
	BaseURL   string `name:"base-url" hidden:"" help:"Coordinates service root"`
}

func (c *BacktrackCmd) Run() error {
	var opts []backtrack.Option
	if c.BaseURL != "" {
		opts = append(opts, backtrack.WithBaseURL(c.BaseURL))
	}
	if c.Cache != "" {
		cache, err := backtrack.OpenCache(c.Cache)
		if err != nil {
			return err
		}
		defer cache.Close()
		opts = append(opts, backtrack.WithCache(cache))
	}
	client := backtrack.NewClient(opts...)

	codon, err := client.Locate(context.Background(), c.Accession, c.Position)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			logging.LookupResult(c.Accession, c.Position, false)
			return fmt.Errorf("no unambiguous codon location for %s position %d", c.Accession, c.Position)
		}
		return err
	}
	logging.LookupResult(c.Accession, c.Position, true)

	strand := "forward"
	if !codon.Forward {
		strand = "reverse"
	}
	fmt.Printf("Codon location: %s position %d\n", c.Accession, c.Position)
	fmt.Printf("  Contig: %s\n", codon.Contig)
	fmt.Printf("  Transcript: %s\n", codon.Transcript)
	fmt.Printf("  Strand: %s\n", strand)
	fmt.Printf("  Genomic: %d-%d\n", codon.Start, codon.Stop)
	fmt.Printf("  Transcript coords: %d-%d\n", codon.TStart, codon.TStop)
	return nil
}

// CodonsCmd lists the codons encoding an amino acid.
type CodonsCmd struct {
	Acid string `arg:"" help:"One-letter amino-acid code"`
	Mito bool   `help:"Use the vertebrate mitochondrial table"`
}

func (c *CodonsCmd) Run() error {
	if len(c.Acid) != 1 {
		return fmt.Errorf("expected a one-letter amino-acid code, got %q", c.Acid)
	}
	acid := strings.ToUpper(c.Acid)[0]
	codons := backtrack.CodonsFor(acid, c.Mito)
	if codons == nil {
		return fmt.Errorf("unknown amino-acid code: %q", c.Acid)
	}
	table := "standard"
	if c.Mito {
		table = "vertebrate mitochondrial"
	}
	fmt.Printf("Codons for %c (%s table):\n", acid, table)
	for _, codon := range codons {
		fmt.Printf("  %s\n", codon)
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("mutagen %s\n", version)
	return nil
}

// writeLines creates path (refusing to overwrite) and writes one line
// per entry, optionally xz-compressed.
func writeLines(path string, lines []string, compress bool) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer file.Close()

	var w io.Writer = file
	var xzWriter *xz.Writer
	if compress {
		xzWriter, err = xz.NewWriter(file)
		if err != nil {
			return fmt.Errorf("failed to create xz writer: %w", err)
		}
		w = xzWriter
	}

	buf := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := buf.WriteString(line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := buf.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	if xzWriter != nil {
		if err := xzWriter.Close(); err != nil {
			return fmt.Errorf("failed to finish xz stream: %w", err)
		}
	}
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("mutagen"),
		kong.Description("Curated protein-mutation annotation toolkit"),
		kong.UsageOnError(),
	)

	level := logging.LevelInfo
	if CLI.Verbose {
		level = logging.LevelDebug
	}
	format := logging.FormatText
	if CLI.LogJSON {
		format = logging.FormatJSON
	}
	logging.InitLogger(level, format)

	ctx.FatalIfErrorf(ctx.Run())
}
