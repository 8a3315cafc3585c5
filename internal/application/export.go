package application

import (
	"bytes"

	"github.com/rentora/admin-cli/internal/domain"
)

// ExportColumns is the fixed header order of exported artifacts.
var ExportColumns = []string{
	"Name",
	"Email",
	"Phone",
	"Role",
	"Status",
	"Joined Date",
	"Address Line 1",
	"City",
	"State",
	"Pincode",
}

const joinedDateLayout = "2006-01-02"

// ExportCSV serializes visible records into UTF-8 delimited text: one
// header row, one row per record in the given order, every field quoted
// with embedded quotes doubled. Writing the artifact anywhere is the
// caller's concern.
func ExportCSV(records []domain.Record) []byte {
	var buf bytes.Buffer

	writeCSVRow(&buf, ExportColumns)
	for _, record := range records {
		writeCSVRow(&buf, []string{
			record.Name,
			record.Email,
			record.Phone,
			record.Role,
			record.Status.Label(),
			joinedDate(record),
			record.Address.Line1,
			record.Address.City,
			record.Address.State,
			record.Address.Pincode,
		})
	}

	return buf.Bytes()
}

func writeCSVRow(buf *bytes.Buffer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		for _, r := range field {
			if r == '"' {
				buf.WriteByte('"')
			}
			buf.WriteRune(r)
		}
		buf.WriteByte('"')
	}
	buf.WriteByte('\n')
}

func joinedDate(record domain.Record) string {
	if record.CreatedAt.IsZero() {
		return ""
	}

	return record.CreatedAt.Format(joinedDateLayout)
}
