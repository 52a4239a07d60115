package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/osse101/FrostPlanner_Go/internal/domain"
)

// FormatOf picks the parser for path by extension
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s: %s", domain.ErrInvalidInput, ErrMsgUnsupportedFormat, path)
	}
}

// LoadFile parses the catalog file at path
func LoadFile(path string) ([]domain.Plant, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	if format == FormatYAML {
		return ParseYAML(f)
	}
	return ParseCSV(f)
}
