package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultDir is where exports land when no explicit path is given.
const DefaultDir = "worksheets"

// DefaultBase is the filename stem for exported sheets.
const DefaultBase = "worksheet"

// DateStamp returns the date embedded in export filenames, ISO "2006-01-02".
func DateStamp(t time.Time) string {
	return t.Format("2006-01-02")
}

// BuildPath returns a path of the form dir/base_DATE.ext, e.g.
// worksheets/worksheet_2026-03-14.pdf. Exporting twice on the same day
// replaces the earlier file.
func BuildPath(dir, base, ext string, t time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s%s", base, DateStamp(t), ext))
}

// EnsureDir creates the directory component of path (equivalent to mkdir -p)
// with mode 0755. It is a no-op if the directory already exists.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}
