package reports

import (
	"time"

	"github.com/vogant/storefront-backend/internal/analytics"
	"github.com/vogant/storefront-backend/pkg/enums"
	"github.com/vogant/storefront-backend/pkg/types"
)

// ReportTitle heads every export format.
const ReportTitle = "Analytics Report"

// ProductRow is one rendered line of the top-products table. Revenue is
// already a two-decimal string; formatters must not re-round it.
type ProductRow struct {
	Rank     int
	Name     string
	Category string
	Quantity int
	Revenue  string
}

// ReportData is the snapshot projected into display strings. All currency
// and percentage rounding happens here, exactly once; the per-format
// renderers only serialize what they are handed.
type ReportData struct {
	GeneratedAt    string
	DateRangeLabel string
	StoreLabel     string

	Revenue        string
	TotalOrders    int
	GST            string
	AvgOrderValue  string
	TotalCustomers int
	ItemsSold      int

	NewCustomers       int
	ReturningCustomers int
	RepeatRate         string
	CustomerLTV        string

	CODOrders       int
	OnlineOrders    int
	PendingPayments int
	SuccessRate     string

	Products []ProductRow
}

// BuildReportData projects a metrics snapshot into the display values
// shared by every export format.
func BuildReportData(snapshot analytics.MetricsSnapshot, dateRangeLabel, storeLabel string, generatedAt time.Time) ReportData {
	data := ReportData{
		GeneratedAt:    generatedAt.Format("02/01/2006, 15:04:05"),
		DateRangeLabel: dateRangeLabel,
		StoreLabel:     storeLabel,

		Revenue:        types.FormatCurrency(snapshot.Revenue),
		TotalOrders:    snapshot.TotalOrders,
		GST:            types.FormatCurrency(snapshot.GST),
		AvgOrderValue:  types.FormatCurrency(snapshot.AvgOrderValue),
		TotalCustomers: snapshot.TotalCustomers,
		ItemsSold:      snapshot.ItemsSold,

		NewCustomers:       snapshot.NewCustomers,
		ReturningCustomers: snapshot.ReturningCustomers,
		RepeatRate:         types.FormatPercent(snapshot.RepeatRatePercent),
		CustomerLTV:        types.FormatCurrency(snapshot.CustomerLTV),

		CODOrders:       snapshot.PaymentMethodCounts[enums.PaymentMethodCOD],
		OnlineOrders:    snapshot.PaymentMethodCounts[enums.PaymentMethodOnline],
		PendingPayments: snapshot.PaymentStatusCounts[enums.PaymentStatusPending],
		SuccessRate:     types.FormatPercent(snapshot.PaymentSuccessRatePercent),
	}

	data.Products = make([]ProductRow, 0, len(snapshot.TopProducts))
	for i, product := range snapshot.TopProducts {
		data.Products = append(data.Products, ProductRow{
			Rank:     i + 1,
			Name:     product.Name,
			Category: product.Category,
			Quantity: product.QuantitySold,
			Revenue:  types.FormatCurrency(product.Revenue),
		})
	}
	return data
}

// RangeLabel renders the window for the report header: preset names pass
// through, custom windows show both endpoints.
func RangeLabel(window analytics.Window) string {
	if window.Range != enums.DateRangeCustom {
		if window.Range == "" {
			return string(enums.DateRangeAll)
		}
		return string(window.Range)
	}
	var start, end string
	if window.Start != nil {
		start = window.Start.Format("02/01/2006")
	}
	if window.End != nil {
		end = window.End.Format("02/01/2006")
	}
	return start + " - " + end
}
