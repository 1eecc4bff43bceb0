package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mfcalc/fund-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for a format name no formatter handles.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// ResolveFormatter looks up a formatter and enriches the error with the
// available names and aliases.
func ResolveFormatter(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// WriteReport formats results and writes them to w.
func WriteReport(w io.Writer, results *domain.BatchResult, format string) error {
	f, err := ResolveFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write %s report: %w", f.Name(), err)
	}
	return nil
}

// WriteReportFile writes a formatted report to filename.
func WriteReportFile(filename string, results *domain.BatchResult, format string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	if err := WriteReport(file, results, format); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Extension returns the conventional file extension for a format.
func Extension(format string) string {
	switch n := NormalizeFormatName(format); {
	case strings.Contains(n, "csv"):
		return "csv"
	case n == "json" || n == "html":
		return n
	default:
		return "txt"
	}
}

// SaveConfiguration writes a configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
