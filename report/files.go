package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/oasflat/flatten"
	"github.com/erraggy/oasflat/internal/fileutil"
)

// DefaultBaseName is the file name stem used by WriteFiles callers that do
// not choose one.
const DefaultBaseName = "parameters_full"

// Files names the pair of files written by WriteFiles.
type Files struct {
	Markdown string `json:"markdown" yaml:"markdown"`
	CSV      string `json:"csv" yaml:"csv"`
}

// WriteFiles writes records to <dir>/<base>.md and <dir>/<base>.csv,
// creating dir if needed. Files are written owner read/write only.
func WriteFiles(dir, base string, records []flatten.ParameterRecord) (Files, error) {
	if base == "" {
		base = DefaultBaseName
	}
	if err := fileutil.EnsureDir(dir); err != nil {
		return Files{}, fmt.Errorf("report: creating output directory: %w", err)
	}

	files := Files{
		Markdown: filepath.Join(dir, base+".md"),
		CSV:      filepath.Join(dir, base+".csv"),
	}

	var md, csv bytes.Buffer
	if err := WriteMarkdown(&md, records); err != nil {
		return Files{}, err
	}
	if err := WriteCSV(&csv, records); err != nil {
		return Files{}, err
	}
	if err := os.WriteFile(files.Markdown, md.Bytes(), fileutil.OwnerReadWrite); err != nil {
		return Files{}, fmt.Errorf("report: writing %s: %w", files.Markdown, err)
	}
	if err := os.WriteFile(files.CSV, csv.Bytes(), fileutil.OwnerReadWrite); err != nil {
		return Files{}, fmt.Errorf("report: writing %s: %w", files.CSV, err)
	}
	return files, nil
}
