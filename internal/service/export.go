package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/flowtel/admin-backend/internal/model"
)

// exportHeader is the column order of the meeting-request CSV export.
var exportHeader = []string{"Name", "Email", "Phone", "Date", "Time", "Status", "Message", "Created At"}

// WriteCSV streams the requests as CSV with a header row. Field quoting and
// escaping follow RFC 4180.
func WriteCSV(w io.Writer, requests []model.MeetingRequest) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, m := range requests {
		row := []string{
			m.ClientName,
			m.ClientEmail,
			m.ClientPhone,
			m.Date,
			m.Time,
			string(m.Status),
			m.Message,
			m.CreatedAt.Format("1/2/2006"),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFileName names the download after the active tab and today's date,
// e.g. meeting-requests-pending-2026-08-30.csv.
func ExportFileName(tab string, now time.Time) string {
	if tab == "" {
		tab = "all"
	}
	return fmt.Sprintf("meeting-requests-%s-%s.csv", tab, now.Format(model.DateLayout))
}
