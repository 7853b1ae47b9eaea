package cli

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/adamlewis-97/timestableworksheet/internal/model"
)

// ParseFlags parses command-line arguments and returns a RunnerConfig.
// Returns nil config and prints help if no arguments or --help is provided.
func ParseFlags() (*RunnerConfig, error) {
	if len(os.Args) < 2 {
		return nil, nil // No args = use GUI
	}

	if os.Args[1] == "help" || os.Args[1] == "--help" || os.Args[1] == "-h" {
		PrintUsage()
		return nil, nil
	}

	cfg := &RunnerConfig{
		Count: 20,
	}
	var tablesArg string

	fs := flag.NewFlagSet("timestableworksheet", flag.ContinueOnError)

	// Generation flags
	fs.StringVar(&tablesArg, "t", "", "Times tables to practise, comma-separated (required)")
	fs.StringVar(&tablesArg, "tables", "", "Times tables to practise, comma-separated (required)")
	fs.IntVar(&cfg.Count, "n", cfg.Count, "Number of questions (1-99)")
	fs.IntVar(&cfg.Count, "count", cfg.Count, "Number of questions (1-99)")
	fs.BoolVar(&cfg.WithDivision, "d", false, "Mix in division questions")
	fs.BoolVar(&cfg.WithDivision, "division", false, "Mix in division questions")
	fs.Int64Var(&cfg.Seed, "seed", 0, "Random seed for reproducible sheets (0 = from the clock)")

	// Output flags
	fs.StringVar(&cfg.OutputPDF, "o", "", "Save worksheet PDF to file")
	fs.StringVar(&cfg.OutputPDF, "output", "", "Save worksheet PDF to file")
	fs.StringVar(&cfg.OutputCSV, "csv", "", "Save answer key CSV to file")
	fs.StringVar(&cfg.OutputTXT, "txt", "", "Save text worksheet to file")
	fs.BoolVar(&cfg.SaveAll, "save", false, "Save PDF, CSV and TXT with date-stamped names")
	fs.BoolVar(&cfg.ShowAnswers, "answers", false, "Print the answer key after the worksheet")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	// Validate: tables are the one required input
	if tablesArg == "" {
		fmt.Fprintf(os.Stderr, "Error: must provide -t <tables> to generate a worksheet\n\n")
		PrintUsage()
		return nil, fmt.Errorf("missing required flags")
	}

	tables, err := parseTables(tablesArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, err
	}
	cfg.Tables = tables

	return cfg, nil
}

// parseTables parses a comma-separated list like "2,5,10" into a sorted,
// deduplicated set of table multipliers.
func parseTables(s string) ([]int, error) {
	seen := make(map[int]bool)
	tables := make([]int, 0, 8)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid table %q: not a number", part)
		}
		if n < model.MinTable || n > model.MaxTable {
			return nil, fmt.Errorf("table %d out of range, must be between %d and %d",
				n, model.MinTable, model.MaxTable)
		}
		if !seen[n] {
			seen[n] = true
			tables = append(tables, n)
		}
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("no tables selected")
	}
	sort.Ints(tables)
	return tables, nil
}

// PrintUsage prints the help message.
func PrintUsage() {
	fmt.Fprintf(os.Stderr, `Times Tables Worksheet Tool

Usage: timestableworksheet [flags]
       timestableworksheet help    (show this message)

GENERATION:
  -t, -tables <list>       Times tables to practise, comma-separated (required)
  -n, -count <num>         Number of questions, 1-99 (default: 20)
  -d, -division            Mix in division questions
  -seed <num>              Random seed for reproducible sheets

OUTPUT:
  -o, -output <file>       Save worksheet PDF to file
  -csv <file>              Save answer key CSV to file
  -txt <file>              Save text worksheet to file
  -save                    Save PDF, CSV and TXT under worksheets/ with
                           date-stamped names
  -answers                 Print the answer key after the worksheet
  -v, -verbose             Verbose output

EXAMPLES:
  # Print a 10 question worksheet for the 2, 5 and 10 times tables
  timestableworksheet -t 2,5,10 -n 10

  # Mixed multiplication and division, save the printable PDF
  timestableworksheet -t 3,4,6 -n 30 -d -o practice.pdf

  # Save the full date-stamped set under worksheets/
  timestableworksheet -t 7,8,9 -n 40 -save

  # Reproducible sheet with the answer key on stdout
  timestableworksheet -t 12 -n 20 -seed 42 -answers

`)
}
