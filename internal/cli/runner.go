package cli

import (
	"fmt"

	"github.com/adamlewis-97/timestableworksheet/internal/drill"
	"github.com/adamlewis-97/timestableworksheet/internal/export"
	"github.com/adamlewis-97/timestableworksheet/internal/format"
	"github.com/adamlewis-97/timestableworksheet/internal/layout"
	"github.com/adamlewis-97/timestableworksheet/internal/model"
)

// RunnerConfig holds all CLI options for one generation run.
type RunnerConfig struct {
	// Generation
	Tables       []int
	Count        int
	WithDivision bool
	Seed         int64 // 0 = seed from the clock

	// Output
	OutputPDF   string
	OutputCSV   string
	OutputTXT   string
	SaveAll     bool
	ShowAnswers bool
	Verbose     bool
}

// Validate checks the generation parameters.
func (c *RunnerConfig) Validate() error {
	if len(c.Tables) == 0 {
		return fmt.Errorf("no tables selected")
	}
	for _, n := range c.Tables {
		if n < model.MinTable || n > model.MaxTable {
			return fmt.Errorf("table %d out of range, must be between %d and %d",
				n, model.MinTable, model.MaxTable)
		}
	}
	if c.Count < layout.MinQuestions || c.Count > layout.MaxQuestions {
		return fmt.Errorf("question count must be between %d and %d",
			layout.MinQuestions, layout.MaxQuestions)
	}
	return nil
}

// GenerateRunner generates one worksheet, prints it to stdout and writes the
// requested export files.
func GenerateRunner(cfg RunnerConfig) (*model.Worksheet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	gen := drill.New()
	if cfg.Seed != 0 {
		gen = drill.NewWithSeed(cfg.Seed)
	}

	if cfg.Verbose {
		fmt.Printf("Generating %d questions from tables %v (division: %v)\n",
			cfg.Count, cfg.Tables, cfg.WithDivision)
	}

	ws := gen.Worksheet(cfg.Tables, cfg.Count, cfg.WithDivision)
	plan := layout.PrintLayout(len(ws.Questions))

	fmt.Println(format.FormatWorksheet(&ws, plan.Columns))
	if cfg.ShowAnswers {
		fmt.Println(format.FormatAnswerKey(&ws, plan.Columns))
	}

	if err := writeExports(cfg, &ws, plan); err != nil {
		return &ws, err
	}
	return &ws, nil
}

// writeExports writes every requested output file. With SaveAll, unset paths
// fall back to date-stamped names under the default export directory.
func writeExports(cfg RunnerConfig, ws *model.Worksheet, plan layout.PrintPlan) error {
	pdfPath, csvPath, txtPath := cfg.OutputPDF, cfg.OutputCSV, cfg.OutputTXT
	if cfg.SaveAll {
		if pdfPath == "" {
			pdfPath = export.BuildPath(export.DefaultDir, export.DefaultBase, ".pdf", ws.CreatedAt)
		}
		if csvPath == "" {
			csvPath = export.BuildPath(export.DefaultDir, "answers", ".csv", ws.CreatedAt)
		}
		if txtPath == "" {
			txtPath = export.BuildPath(export.DefaultDir, export.DefaultBase, ".txt", ws.CreatedAt)
		}
	}

	if pdfPath != "" {
		if err := export.EnsureDir(pdfPath); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		if err := export.WritePDF(pdfPath, ws, plan); err != nil {
			return fmt.Errorf("save PDF: %w", err)
		}
		if cfg.Verbose {
			fmt.Printf("Worksheet saved to: %s\n", pdfPath)
		}
	}

	if csvPath != "" {
		if err := export.EnsureDir(csvPath); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		if err := export.WriteCSV(csvPath, ws); err != nil {
			return fmt.Errorf("save CSV: %w", err)
		}
		if cfg.Verbose {
			fmt.Printf("Answer key saved to: %s\n", csvPath)
		}
	}

	if txtPath != "" {
		if err := export.EnsureDir(txtPath); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		if err := export.WriteTXT(txtPath, ws, plan.Columns); err != nil {
			return fmt.Errorf("save TXT: %w", err)
		}
		if cfg.Verbose {
			fmt.Printf("Text worksheet saved to: %s\n", txtPath)
		}
	}

	return nil
}
