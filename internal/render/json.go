package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// orderedRow marshals as a JSON object whose keys keep the header order
type orderedRow struct {
	keys   []string
	values []string
}

func (r orderedRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// JSON writes an array of objects keyed by header
func JSON(w io.Writer, headers []string, rows [][]string) error {
	objects := make([]orderedRow, 0, len(rows))
	for _, row := range rows {
		objects = append(objects, orderedRow{keys: headers, values: padRow(row, len(headers))})
	}
	return writeJSON(w, objects)
}

// JSONArray writes an array of value arrays without keys
func JSONArray(w io.Writer, headers []string, rows [][]string) error {
	values := make([][]string, 0, len(rows))
	for _, row := range rows {
		values = append(values, padRow(row, len(headers)))
	}
	return writeJSON(w, values)
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func padRow(row []string, n int) []string {
	if len(row) >= n {
		return row[:n]
	}
	padded := make([]string, n)
	copy(padded, row)
	return padded
}
