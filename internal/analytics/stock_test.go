package analytics

import (
	"testing"

	"github.com/vogant/storefront-backend/pkg/enums"
)

func TestScanStockSeverityBoundaries(t *testing.T) {
	cases := []struct {
		name     string
		stock    int
		severity enums.StockSeverity
		alerted  bool
	}{
		{name: "five is critical", stock: 5, severity: enums.StockSeverityCritical, alerted: true},
		{name: "six is low", stock: 6, severity: enums.StockSeverityLow, alerted: true},
		{name: "ten is low", stock: 10, severity: enums.StockSeverityLow, alerted: true},
		{name: "eleven is excluded", stock: 11, alerted: false},
		{name: "zero is critical", stock: 0, severity: enums.StockSeverityCritical, alerted: true},
		{name: "negative is critical", stock: -3, severity: enums.StockSeverityCritical, alerted: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report := ScanStock([]ProductRecord{{Name: "p", Stock: tc.stock}}, 10, 5)
			if !tc.alerted {
				if report.LowStockCount != 0 {
					t.Fatalf("stock %d should not alert, got %+v", tc.stock, report)
				}
				return
			}
			if report.LowStockCount != 1 || len(report.Alerts) != 1 {
				t.Fatalf("stock %d should produce one alert, got %+v", tc.stock, report)
			}
			if report.Alerts[0].Severity != tc.severity {
				t.Fatalf("stock %d severity = %s, want %s", tc.stock, report.Alerts[0].Severity, tc.severity)
			}
			if report.Alerts[0].Stock != tc.stock {
				t.Fatalf("alert stock = %d, want %d", report.Alerts[0].Stock, tc.stock)
			}
		})
	}
}

func TestScanStockUnnamedProduct(t *testing.T) {
	report := ScanStock([]ProductRecord{{Stock: 2}}, 10, 5)
	if len(report.Alerts) != 1 {
		t.Fatalf("expected one alert, got %d", len(report.Alerts))
	}
	if report.Alerts[0].ProductName != "Unknown Product" {
		t.Fatalf("unexpected fallback name %q", report.Alerts[0].ProductName)
	}
}

func TestScanStockEmptyCatalog(t *testing.T) {
	report := ScanStock(nil, 10, 5)
	if report.LowStockCount != 0 || len(report.Alerts) != 0 {
		t.Fatalf("empty catalog should produce an empty report, got %+v", report)
	}
}

func TestScanStockDefaultThresholds(t *testing.T) {
	report := ScanStock([]ProductRecord{{Name: "p", Stock: 7}}, 0, 0)
	if len(report.Alerts) != 1 || report.Alerts[0].Severity != enums.StockSeverityLow {
		t.Fatalf("zero thresholds should fall back to defaults, got %+v", report)
	}
}
