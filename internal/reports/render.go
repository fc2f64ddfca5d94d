package reports

import (
	"time"

	"github.com/vogant/storefront-backend/pkg/enums"
	pkgerrors "github.com/vogant/storefront-backend/pkg/errors"
)

// Report is a rendered downloadable artifact.
type Report struct {
	Payload     []byte
	Filename    string
	ContentType string
}

// Render serializes report data into the requested format. An unknown
// format is rejected naming the offender; no partial payload is produced.
func Render(data ReportData, format enums.ReportFormat, generatedAt time.Time) (Report, error) {
	var payload []byte
	switch format {
	case enums.ReportFormatCSV:
		payload = renderCSV(data)
	case enums.ReportFormatExcel:
		payload = renderExcel(data)
	case enums.ReportFormatPDF:
		payload = renderPDF(data)
	default:
		return Report{}, pkgerrors.Newf(pkgerrors.CodeValidation, "unsupported report format %q", format)
	}

	return Report{
		Payload:     payload,
		Filename:    "analytics-report-" + generatedAt.UTC().Format("2006-01-02") + format.Extension(),
		ContentType: format.ContentType(),
	}, nil
}
