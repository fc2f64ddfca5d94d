package reports

import (
	"fmt"
	"strings"
)

// renderCSV emits the flat metric-per-line text format. Sections appear in
// the shared order: header, summary, customer analytics, payment
// analytics, top products.
func renderCSV(data ReportData) []byte {
	var b strings.Builder

	b.WriteString(ReportTitle + "\n")
	b.WriteString("Generated: " + data.GeneratedAt + "\n")
	b.WriteString("Date Range: " + data.DateRangeLabel + "\n\n")

	b.WriteString("SUMMARY METRICS\n")
	fmt.Fprintf(&b, "Total Revenue,%s\n", data.Revenue)
	fmt.Fprintf(&b, "Total Orders,%d\n", data.TotalOrders)
	fmt.Fprintf(&b, "Total GST,%s\n", data.GST)
	fmt.Fprintf(&b, "Average Order Value,%s\n", data.AvgOrderValue)
	fmt.Fprintf(&b, "Total Customers,%d\n", data.TotalCustomers)
	fmt.Fprintf(&b, "Items Sold,%d\n\n", data.ItemsSold)

	b.WriteString("CUSTOMER ANALYTICS\n")
	fmt.Fprintf(&b, "New Customers,%d\n", data.NewCustomers)
	fmt.Fprintf(&b, "Returning Customers,%d\n", data.ReturningCustomers)
	fmt.Fprintf(&b, "Repeat Rate,%s%%\n", data.RepeatRate)
	fmt.Fprintf(&b, "Customer LTV,%s\n\n", data.CustomerLTV)

	b.WriteString("PAYMENT ANALYTICS\n")
	fmt.Fprintf(&b, "COD Orders,%d\n", data.CODOrders)
	fmt.Fprintf(&b, "Online Paid,%d\n", data.OnlineOrders)
	fmt.Fprintf(&b, "Pending Payments,%d\n", data.PendingPayments)
	fmt.Fprintf(&b, "Success Rate,%s%%\n\n", data.SuccessRate)

	b.WriteString("TOP PRODUCTS\n")
	b.WriteString("Rank,Product Name,Category,Quantity Sold,Revenue\n")
	for _, product := range data.Products {
		fmt.Fprintf(&b, "%d,%s,%s,%d,Rs.%s\n", product.Rank, product.Name, product.Category, product.Quantity, product.Revenue)
	}

	return []byte(b.String())
}
