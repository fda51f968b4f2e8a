package render

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSV writes a header line followed by one record per row
func CSV(w io.Writer, headers []string, rows [][]string) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write(headers); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	if err := csvWriter.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write csv rows: %w", err)
	}

	return nil
}
