package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
)

// Formats lists every format accepted on the command line. Only JSON is
// implemented; the rest fall back to JSON with a logged warning.
var Formats = []string{"json", "csv", "html"}

// ValidateFormat rejects format values before any tracing work happens.
func ValidateFormat(format string) error {
	for _, known := range Formats {
		if format == known {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q (choose from json, csv, html)", format)
}

// Results serializes results as indented JSON and writes them to path, or
// to w when path is empty.
func Results(w io.Writer, results interface{}, format, path string) error {
	if results == nil {
		log.Warn("no results to export")
		return nil
	}

	if format != "json" {
		log.Warnf("format %s not yet implemented, exporting JSON", format)
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing results: %w", err)
	}
	data = append(data, '\n')

	if path != "" {
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		log.Infof("results exported to %s", path)
		return nil
	}

	_, err = w.Write(data)
	return err
}
