package reports

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/vogant/storefront-backend/internal/analytics"
	"github.com/vogant/storefront-backend/pkg/enums"
	pkgerrors "github.com/vogant/storefront-backend/pkg/errors"
)

func sampleSnapshot() analytics.MetricsSnapshot {
	return analytics.MetricsSnapshot{
		Revenue:                   12345.678,
		GST:                       617.2839,
		ItemsSold:                 42,
		TotalOrders:               17,
		AvgOrderValue:             726.216,
		TotalCustomers:            9,
		NewCustomers:              4,
		ReturningCustomers:        3,
		RepeatRatePercent:         42.857,
		CustomerLTV:               1763.668,
		PaymentSuccessRatePercent: 88.235,
		PaymentMethodCounts: map[enums.PaymentMethod]int{
			enums.PaymentMethodCOD:    11,
			enums.PaymentMethodOnline: 6,
		},
		PaymentStatusCounts: map[enums.PaymentStatus]int{
			enums.PaymentStatusPending: 2,
			enums.PaymentStatusPaid:    15,
			enums.PaymentStatusFailed:  0,
		},
		TopProducts: []analytics.TopProduct{
			{Name: "banarasi saree", Category: "womens", QuantitySold: 7, Revenue: 9999.5},
			{Name: "cotton dhoti", Category: "mens", QuantitySold: 5, Revenue: 2346.178},
		},
	}
}

func sampleData() ReportData {
	generated := time.Date(2025, 6, 15, 18, 45, 12, 0, time.UTC)
	return BuildReportData(sampleSnapshot(), "month", "VOGANT Saree and Dhoti Store", generated)
}

func TestBuildReportDataRoundsOnce(t *testing.T) {
	data := sampleData()

	if data.Revenue != "12345.68" {
		t.Fatalf("revenue = %s, want 12345.68", data.Revenue)
	}
	if data.GST != "617.28" {
		t.Fatalf("gst = %s, want 617.28", data.GST)
	}
	if data.RepeatRate != "42.9" {
		t.Fatalf("repeat rate = %s, want 42.9", data.RepeatRate)
	}
	if data.SuccessRate != "88.2" {
		t.Fatalf("success rate = %s, want 88.2", data.SuccessRate)
	}
	if len(data.Products) != 2 {
		t.Fatalf("expected 2 product rows, got %d", len(data.Products))
	}
	if data.Products[0].Rank != 1 || data.Products[0].Revenue != "9999.50" {
		t.Fatalf("unexpected first product row %+v", data.Products[0])
	}
}

func TestRenderFilenamesAndContentTypes(t *testing.T) {
	data := sampleData()
	generated := time.Date(2025, 6, 15, 18, 45, 12, 0, time.UTC)

	cases := []struct {
		format      enums.ReportFormat
		filename    string
		contentType string
	}{
		{format: enums.ReportFormatCSV, filename: "analytics-report-2025-06-15.csv", contentType: "text/csv; charset=utf-8"},
		{format: enums.ReportFormatExcel, filename: "analytics-report-2025-06-15.xls", contentType: "application/vnd.ms-excel"},
		{format: enums.ReportFormatPDF, filename: "analytics-report-2025-06-15.pdf", contentType: "text/html; charset=utf-8"},
	}

	for _, tc := range cases {
		t.Run(string(tc.format), func(t *testing.T) {
			report, err := Render(data, tc.format, generated)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if report.Filename != tc.filename {
				t.Fatalf("filename = %s, want %s", report.Filename, tc.filename)
			}
			if report.ContentType != tc.contentType {
				t.Fatalf("content type = %s, want %s", report.ContentType, tc.contentType)
			}
			if len(report.Payload) == 0 {
				t.Fatal("empty payload")
			}
		})
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := Render(sampleData(), enums.ReportFormat("docx"), time.Now())
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "docx") {
		t.Fatalf("error should name the format: %v", err)
	}
}

func TestSectionsAppearInSharedOrder(t *testing.T) {
	data := sampleData()
	generated := time.Now()

	sections := []string{"SUMMARY METRICS", "CUSTOMER ANALYTICS", "PAYMENT ANALYTICS", "TOP PRODUCTS"}
	pdfSections := []string{"Summary Metrics", "Customer Analytics", "Payment Analytics", "Top Selling Products"}

	csvReport, err := Render(data, enums.ReportFormatCSV, generated)
	if err != nil {
		t.Fatalf("render csv: %v", err)
	}
	assertOrdered(t, string(csvReport.Payload), sections)

	excelReport, err := Render(data, enums.ReportFormatExcel, generated)
	if err != nil {
		t.Fatalf("render excel: %v", err)
	}
	assertOrdered(t, string(excelReport.Payload), sections)

	pdfReport, err := Render(data, enums.ReportFormatPDF, generated)
	if err != nil {
		t.Fatalf("render pdf: %v", err)
	}
	assertOrdered(t, string(pdfReport.Payload), pdfSections)
}

func assertOrdered(t *testing.T, payload string, sections []string) {
	t.Helper()
	last := -1
	for _, section := range sections {
		idx := strings.Index(payload, section)
		if idx < 0 {
			t.Fatalf("section %q missing", section)
		}
		if idx < last {
			t.Fatalf("section %q out of order", section)
		}
		last = idx
	}
}

func TestExcelUsesTypedCells(t *testing.T) {
	report, err := Render(sampleData(), enums.ReportFormatExcel, time.Now())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	payload := string(report.Payload)

	if !strings.Contains(payload, `<?mso-application progid="Excel.Sheet"?>`) {
		t.Fatal("missing mso processing instruction")
	}
	if !strings.Contains(payload, `<Cell><Data ss:Type="String">Total Revenue</Data></Cell><Cell><Data ss:Type="Number">12345.68</Data></Cell>`) {
		t.Fatal("revenue row should pair a String label with a Number value")
	}
	if !strings.Contains(payload, `<Cell><Data ss:Type="String">42.9%</Data></Cell>`) {
		t.Fatal("percentage values keep their suffix as String cells")
	}
}

func TestPDFIsSelfPrintingDocument(t *testing.T) {
	report, err := Render(sampleData(), enums.ReportFormatPDF, time.Now())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	payload := string(report.Payload)

	if !strings.HasPrefix(payload, "<!DOCTYPE html>") {
		t.Fatal("expected html document")
	}
	if !strings.Contains(payload, "window.onload=function(){window.print()}") {
		t.Fatal("print trigger missing")
	}
	if !strings.Contains(payload, "VOGANT Saree and Dhoti Store - Analytics Report") {
		t.Fatal("footer missing store label")
	}
}

// TestCSVSummaryRoundTrip parses the summary section back out of the CSV
// payload and checks the numbers survive the trip.
func TestCSVSummaryRoundTrip(t *testing.T) {
	snapshot := sampleSnapshot()
	data := BuildReportData(snapshot, "all", "VOGANT Saree and Dhoti Store", time.Now())

	report, err := Render(data, enums.ReportFormatCSV, time.Now())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	parsed := map[string]string{}
	inSummary := false
	for _, line := range strings.Split(string(report.Payload), "\n") {
		switch {
		case line == "SUMMARY METRICS":
			inSummary = true
			continue
		case line == "":
			inSummary = false
		}
		if !inSummary {
			continue
		}
		parts := strings.SplitN(line, ",", 2)
		if len(parts) == 2 {
			parsed[parts[0]] = parts[1]
		}
	}

	revenue, err := strconv.ParseFloat(parsed["Total Revenue"], 64)
	if err != nil {
		t.Fatalf("parse revenue %q: %v", parsed["Total Revenue"], err)
	}
	if revenue != 12345.68 {
		t.Fatalf("round-tripped revenue = %f, want 12345.68", revenue)
	}

	orders, err := strconv.Atoi(parsed["Total Orders"])
	if err != nil || orders != snapshot.TotalOrders {
		t.Fatalf("round-tripped orders = %q, want %d", parsed["Total Orders"], snapshot.TotalOrders)
	}

	items, err := strconv.Atoi(parsed["Items Sold"])
	if err != nil || items != snapshot.ItemsSold {
		t.Fatalf("round-tripped items = %q, want %d", parsed["Items Sold"], snapshot.ItemsSold)
	}
}
