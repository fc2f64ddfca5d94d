package enums

import "fmt"

// ReportFormat selects the encoding of an exported analytics report.
type ReportFormat string

const (
	ReportFormatCSV   ReportFormat = "csv"
	ReportFormatExcel ReportFormat = "excel"
	ReportFormatPDF   ReportFormat = "pdf"
)

var validReportFormats = []ReportFormat{
	ReportFormatCSV,
	ReportFormatExcel,
	ReportFormatPDF,
}

// String implements fmt.Stringer.
func (f ReportFormat) String() string {
	return string(f)
}

// IsValid reports whether the value is a known ReportFormat.
func (f ReportFormat) IsValid() bool {
	for _, candidate := range validReportFormats {
		if candidate == f {
			return true
		}
	}
	return false
}

// Extension returns the download file extension including the dot.
func (f ReportFormat) Extension() string {
	switch f {
	case ReportFormatCSV:
		return ".csv"
	case ReportFormatExcel:
		return ".xls"
	case ReportFormatPDF:
		return ".pdf"
	default:
		return ""
	}
}

// ContentType returns the MIME type served for the format.
func (f ReportFormat) ContentType() string {
	switch f {
	case ReportFormatCSV:
		return "text/csv; charset=utf-8"
	case ReportFormatExcel:
		return "application/vnd.ms-excel"
	case ReportFormatPDF:
		return "text/html; charset=utf-8"
	default:
		return ""
	}
}

// ParseReportFormat converts raw input into a ReportFormat.
func ParseReportFormat(value string) (ReportFormat, error) {
	for _, candidate := range validReportFormats {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("unsupported report format %q", value)
}
