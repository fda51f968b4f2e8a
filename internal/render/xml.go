package render

import (
	"encoding/xml"
	"fmt"
	"io"
)

// XML writes
//
//	<table><headers><header>id</header>...</headers><row><id>1</id>...</row></table>
//
// Header names are used as element names inside each row.
func XML(w io.Writer, headers []string, rows [][]string) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")

	table := xml.StartElement{Name: xml.Name{Local: "table"}}
	headersElem := xml.StartElement{Name: xml.Name{Local: "headers"}}
	rowElem := xml.StartElement{Name: xml.Name{Local: "row"}}

	if err := encoder.EncodeToken(table); err != nil {
		return fmt.Errorf("failed to encode xml: %w", err)
	}

	if err := encoder.EncodeToken(headersElem); err != nil {
		return fmt.Errorf("failed to encode xml: %w", err)
	}
	for _, header := range headers {
		if err := encoder.EncodeElement(header, xml.StartElement{Name: xml.Name{Local: "header"}}); err != nil {
			return fmt.Errorf("failed to encode xml header: %w", err)
		}
	}
	if err := encoder.EncodeToken(headersElem.End()); err != nil {
		return fmt.Errorf("failed to encode xml: %w", err)
	}

	for _, row := range rows {
		if err := encoder.EncodeToken(rowElem); err != nil {
			return fmt.Errorf("failed to encode xml: %w", err)
		}
		for i, value := range padRow(row, len(headers)) {
			if err := encoder.EncodeElement(value, xml.StartElement{Name: xml.Name{Local: headers[i]}}); err != nil {
				return fmt.Errorf("failed to encode xml row: %w", err)
			}
		}
		if err := encoder.EncodeToken(rowElem.End()); err != nil {
			return fmt.Errorf("failed to encode xml: %w", err)
		}
	}

	if err := encoder.EncodeToken(table.End()); err != nil {
		return fmt.Errorf("failed to encode xml: %w", err)
	}
	if err := encoder.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
