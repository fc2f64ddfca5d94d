package analytics

import "github.com/vogant/storefront-backend/pkg/enums"

const (
	// CriticalStockThreshold is the inclusive bound for critical alerts.
	CriticalStockThreshold = 5
	// LowStockThreshold is the inclusive bound for low-stock alerts.
	LowStockThreshold = 10
)

// StockAlert flags one product whose stock has fallen to a restock level.
type StockAlert struct {
	ProductName string              `json:"product_name"`
	Stock       int                 `json:"stock"`
	Severity    enums.StockSeverity `json:"severity"`
}

// StockReport is the result of a full catalog scan.
type StockReport struct {
	LowStockCount int          `json:"low_stock_count"`
	Alerts        []StockAlert `json:"alerts"`
}

// ScanStock classifies products by stock level: critical at or below the
// critical threshold (negative stock included), low between the two
// thresholds, and excluded above. Pure function, independent of any date
// window. Thresholds at or below zero fall back to the defaults.
func ScanStock(products []ProductRecord, lowThreshold, criticalThreshold int) StockReport {
	if lowThreshold <= 0 {
		lowThreshold = LowStockThreshold
	}
	if criticalThreshold <= 0 {
		criticalThreshold = CriticalStockThreshold
	}

	report := StockReport{Alerts: []StockAlert{}}
	for _, product := range products {
		if product.Stock > lowThreshold {
			continue
		}
		severity := enums.StockSeverityLow
		if product.Stock <= criticalThreshold {
			severity = enums.StockSeverityCritical
		}
		name := product.Name
		if name == "" {
			name = "Unknown Product"
		}
		report.LowStockCount++
		report.Alerts = append(report.Alerts, StockAlert{
			ProductName: name,
			Stock:       product.Stock,
			Severity:    severity,
		})
	}
	return report
}
