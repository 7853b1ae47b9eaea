package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/adamlewis-97/timestableworksheet/internal/model"
)

var csvHeaders = []string{
	"number",
	"question",
	"answer",
	"kind",
}

// WriteCSV writes the answer key as a semicolon-separated CSV file, one row
// per question in worksheet order. An existing file at path is replaced.
func WriteCSV(path string, ws *model.Worksheet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'
	defer w.Flush()

	if err := w.Write(csvHeaders); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for i, q := range ws.Questions {
		row := []string{
			strconv.Itoa(i + 1),
			q.Text,
			strconv.Itoa(q.Answer),
			q.Kind.String(),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	return nil
}
