package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Table is a parsed CSV file: the header in file order plus one map per row.
// Values stay as text; type coercion is the loader's concern.
type Table struct {
	Columns []string
	Rows    []map[string]string
}

func ReadTable(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("file %s has no header row", path)
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			row[col] = record[i]
		}
		rows = append(rows, row)
	}

	return &Table{Columns: header, Rows: rows}, nil
}
