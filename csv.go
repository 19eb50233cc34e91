package odp

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"
)

// CSVHeader is the header row written by WriteApplicationsCSV.
var CSVHeader = []string{
	"inventionTitle",
	"applicationNumberText",
	"filingDate",
	"applicationTypeLabelName",
	"publicationCategoryBag",
	"applicationStatusDescriptionText",
	"applicationStatusDate",
	"firstInventorName",
}

// WriteApplicationsCSV writes one row of key metadata per wrapper, after a
// header row. Wrappers without metadata are skipped. Rows end in CRLF.
func WriteApplicationsCSV(w io.Writer, wrappers []PatentFileWrapper) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, wrapper := range wrappers {
		meta := wrapper.ApplicationMetaData
		if meta == nil {
			continue
		}
		row := []string{
			deref(meta.InventionTitle),
			wrapper.ApplicationNumber(),
			EncodeDate(meta.FilingDate),
			deref(meta.ApplicationTypeLabelName),
			strings.Join(meta.PublicationCategoryBag, "|"),
			deref(meta.ApplicationStatusDescriptionText),
			EncodeDate(meta.ApplicationStatusDate),
			deref(meta.FirstInventorName),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ApplicationsCSV returns the CSV written by WriteApplicationsCSV as a string.
func ApplicationsCSV(wrappers []PatentFileWrapper) (string, error) {
	var buf bytes.Buffer
	if err := WriteApplicationsCSV(&buf, wrappers); err != nil {
		return "", err
	}
	return buf.String(), nil
}
