package reports

import (
	"fmt"
	"html"
	"strings"
)

// printStyles is the inline stylesheet of the print document.
const printStyles = `body{font-family:Arial,sans-serif;padding:20px}` +
	`h1{color:#8b1d1d;border-bottom:2px solid #8b1d1d;padding-bottom:10px}` +
	`h2{color:#374151;margin-top:30px}` +
	`table{width:100%;border-collapse:collapse;margin-bottom:20px}` +
	`th,td{border:1px solid #ddd;padding:8px;text-align:left}` +
	`th{background-color:#8b1d1d;color:white}` +
	`.summary-grid{display:grid;grid-template-columns:repeat(3,1fr);gap:15px;margin-bottom:30px}` +
	`.summary-card{border:1px solid #ddd;padding:15px;border-radius:8px}` +
	`.summary-card h4{margin:0 0 5px 0;color:#6b7280;font-size:12px}` +
	`.summary-card p{margin:0;font-size:24px;font-weight:bold;color:#8b1d1d}` +
	`.footer{margin-top:30px;text-align:center;color:#6b7280;font-size:12px}` +
	`@media print{body{-webkit-print-color-adjust:exact}}`

// renderPDF emits the print-ready HTML document the browser hands to its
// print/PDF pipeline; the embedded script triggers printing on load.
func renderPDF(data ReportData) []byte {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html><html><head><title>` + ReportTitle + `</title><style>`)
	b.WriteString(printStyles)
	b.WriteString(`</style></head><body>`)

	b.WriteString(`<h1>` + ReportTitle + `</h1>`)
	fmt.Fprintf(&b, `<p><strong>Generated:</strong> %s</p>`, html.EscapeString(data.GeneratedAt))
	fmt.Fprintf(&b, `<p><strong>Date Range:</strong> %s</p>`, html.EscapeString(data.DateRangeLabel))

	b.WriteString(`<h2>Summary Metrics</h2><div class="summary-grid">`)
	writeSummaryCard(&b, "Total Revenue", "Rs."+data.Revenue)
	writeSummaryCard(&b, "Total Orders", fmt.Sprintf("%d", data.TotalOrders))
	writeSummaryCard(&b, "Total GST", "Rs."+data.GST)
	writeSummaryCard(&b, "Avg Order Value", "Rs."+data.AvgOrderValue)
	writeSummaryCard(&b, "Customers", fmt.Sprintf("%d", data.TotalCustomers))
	writeSummaryCard(&b, "Items Sold", fmt.Sprintf("%d", data.ItemsSold))
	b.WriteString(`</div>`)

	b.WriteString(`<h2>Customer Analytics</h2><table><tr><th>Metric</th><th>Value</th></tr>`)
	writeMetricRow(&b, "New Customers", fmt.Sprintf("%d", data.NewCustomers))
	writeMetricRow(&b, "Returning Customers", fmt.Sprintf("%d", data.ReturningCustomers))
	writeMetricRow(&b, "Repeat Rate", data.RepeatRate+"%")
	writeMetricRow(&b, "Customer LTV", "Rs."+data.CustomerLTV)
	b.WriteString(`</table>`)

	b.WriteString(`<h2>Payment Analytics</h2><table><tr><th>Payment Type</th><th>Count</th></tr>`)
	writeMetricRow(&b, "COD Orders", fmt.Sprintf("%d", data.CODOrders))
	writeMetricRow(&b, "Online Paid", fmt.Sprintf("%d", data.OnlineOrders))
	writeMetricRow(&b, "Pending Payments", fmt.Sprintf("%d", data.PendingPayments))
	writeMetricRow(&b, "Success Rate", data.SuccessRate+"%")
	b.WriteString(`</table>`)

	b.WriteString(`<h2>Top Selling Products</h2><table><tr><th>#</th><th>Product</th><th>Category</th><th>Qty Sold</th><th>Revenue</th></tr>`)
	for _, product := range data.Products {
		fmt.Fprintf(&b, `<tr><td>%d</td><td>%s</td><td>%s</td><td>%d</td><td>Rs.%s</td></tr>`,
			product.Rank,
			html.EscapeString(product.Name),
			html.EscapeString(product.Category),
			product.Quantity,
			product.Revenue,
		)
	}
	b.WriteString(`</table>`)

	fmt.Fprintf(&b, `<div class="footer"><p>%s - %s</p></div>`, html.EscapeString(data.StoreLabel), ReportTitle)
	b.WriteString(`<script>window.onload=function(){window.print()}</script></body></html>`)

	return []byte(b.String())
}

func writeSummaryCard(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, `<div class="summary-card"><h4>%s</h4><p>%s</p></div>`, label, html.EscapeString(value))
}

func writeMetricRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, `<tr><td>%s</td><td>%s</td></tr>`, label, html.EscapeString(value))
}
