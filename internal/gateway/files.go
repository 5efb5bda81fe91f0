package gateway

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"ecommerce-analytics/internal/domain"
)

// Output file names written under the result directory.
const (
	ProfilesFile     = "rfm_profiles.csv"
	SegmentsFile     = "rfm_segments.csv"
	ManifestFile     = "run_manifest.json"
	KPISummaryFile   = "kpi_summary.json"
	TransactionsFile = "transactions_clean.csv"
)

// FileResultWriter writes run results as CSV and JSON files into a directory.
type FileResultWriter struct {
	dir    string
	logger zerolog.Logger
}

// NewFileResultWriter creates a writer for dir. The directory is created on
// first write.
func NewFileResultWriter(dir string, logger zerolog.Logger) *FileResultWriter {
	return &FileResultWriter{dir: dir, logger: logger}
}

// SaveRFM writes the profile table, the segment report and the run manifest.
func (w *FileResultWriter) SaveRFM(ctx context.Context, result *domain.RFMResult) error {
	if err := w.writeFile(ProfilesFile, func(out io.Writer) error {
		return WriteProfiles(out, result.Profiles)
	}); err != nil {
		return err
	}
	if err := w.writeFile(SegmentsFile, func(out io.Writer) error {
		return WriteSegmentReport(out, result.Report)
	}); err != nil {
		return err
	}
	if err := w.writeFile(ManifestFile, func(out io.Writer) error {
		return writeJSON(out, result.Manifest)
	}); err != nil {
		return err
	}
	w.logger.Debug().Str("dir", w.dir).Str("run_id", result.Manifest.RunID).Msg("rfm results written")
	return nil
}

// SaveKPI writes every KPI table and the headline summary.
func (w *FileResultWriter) SaveKPI(ctx context.Context, report *domain.KPIReport) error {
	for _, table := range kpiTables {
		write := table.write
		if err := w.writeFile(table.name, func(out io.Writer) error {
			return write(out, report)
		}); err != nil {
			return err
		}
	}
	if err := w.writeFile(KPISummaryFile, func(out io.Writer) error {
		return writeJSON(out, report.Summary)
	}); err != nil {
		return err
	}
	w.logger.Debug().Str("dir", w.dir).Str("tables", kpiTableNames()).Msg("kpi results written")
	return nil
}

// SaveTransactions writes the cleaned transaction table.
func (w *FileResultWriter) SaveTransactions(ctx context.Context, transactions []domain.Transaction) error {
	return w.writeFile(TransactionsFile, func(out io.Writer) error {
		return WriteTransactions(out, transactions)
	})
}

func (w *FileResultWriter) writeFile(name string, write func(io.Writer) error) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", w.dir, err)
	}
	path := filepath.Join(w.dir, name)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	buf := bufio.NewWriter(file)
	if err := write(buf); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
