package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/adamlewis-97/timestableworksheet/internal/format"
	"github.com/adamlewis-97/timestableworksheet/internal/model"
)

// WriteTXT writes the worksheet followed by its answer key as formatted text.
func WriteTXT(path string, ws *model.Worksheet, columns int) error {
	var b strings.Builder
	b.WriteString(format.FormatWorksheet(ws, columns))
	b.WriteString("\n")
	b.WriteString(format.FormatAnswerKey(ws, columns))

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write txt file: %w", err)
	}
	return nil
}
