package reports

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// renderExcel emits the SpreadsheetML workbook the back office opens in
// Excel: a single Summary worksheet of typed String/Number cells.
func renderExcel(data ReportData) []byte {
	var b strings.Builder

	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><?mso-application progid="Excel.Sheet"?>`)
	b.WriteString(`<Workbook xmlns="urn:schemas-microsoft-com:office:spreadsheet" xmlns:ss="urn:schemas-microsoft-com:office:spreadsheet">`)
	b.WriteString(`<Worksheet ss:Name="Summary"><Table>`)

	writeStringRow(&b, ReportTitle)
	writeStringRow(&b, "Generated: "+data.GeneratedAt)
	writeStringRow(&b, "Date Range: "+data.DateRangeLabel)
	writeBlankRow(&b)

	writeStringRow(&b, "SUMMARY METRICS")
	writeNumberRow(&b, "Total Revenue", data.Revenue)
	writeNumberRow(&b, "Total Orders", fmt.Sprintf("%d", data.TotalOrders))
	writeNumberRow(&b, "Total GST", data.GST)
	writeNumberRow(&b, "Average Order Value", data.AvgOrderValue)
	writeNumberRow(&b, "Total Customers", fmt.Sprintf("%d", data.TotalCustomers))
	writeNumberRow(&b, "Items Sold", fmt.Sprintf("%d", data.ItemsSold))
	writeBlankRow(&b)

	writeStringRow(&b, "CUSTOMER ANALYTICS")
	writeNumberRow(&b, "New Customers", fmt.Sprintf("%d", data.NewCustomers))
	writeNumberRow(&b, "Returning Customers", fmt.Sprintf("%d", data.ReturningCustomers))
	// percentages keep their suffix, so they stay string cells
	writeLabelledStringRow(&b, "Repeat Rate", data.RepeatRate+"%")
	writeNumberRow(&b, "Customer LTV", data.CustomerLTV)
	writeBlankRow(&b)

	writeStringRow(&b, "PAYMENT ANALYTICS")
	writeNumberRow(&b, "COD Orders", fmt.Sprintf("%d", data.CODOrders))
	writeNumberRow(&b, "Online Paid", fmt.Sprintf("%d", data.OnlineOrders))
	writeNumberRow(&b, "Pending Payments", fmt.Sprintf("%d", data.PendingPayments))
	writeLabelledStringRow(&b, "Success Rate", data.SuccessRate+"%")
	writeBlankRow(&b)

	writeStringRow(&b, "TOP PRODUCTS")
	b.WriteString(`<Row>`)
	for _, header := range []string{"Rank", "Product Name", "Category", "Quantity", "Revenue"} {
		writeCell(&b, "String", header)
	}
	b.WriteString(`</Row>`)

	for _, product := range data.Products {
		b.WriteString(`<Row>`)
		writeCell(&b, "Number", fmt.Sprintf("%d", product.Rank))
		writeCell(&b, "String", product.Name)
		writeCell(&b, "String", product.Category)
		writeCell(&b, "Number", fmt.Sprintf("%d", product.Quantity))
		writeCell(&b, "Number", product.Revenue)
		b.WriteString(`</Row>`)
	}

	b.WriteString(`</Table></Worksheet></Workbook>`)
	return []byte(b.String())
}

func writeCell(b *strings.Builder, cellType, value string) {
	b.WriteString(`<Cell><Data ss:Type="` + cellType + `">`)
	xmlEscape(b, value)
	b.WriteString(`</Data></Cell>`)
}

func writeStringRow(b *strings.Builder, value string) {
	b.WriteString(`<Row>`)
	writeCell(b, "String", value)
	b.WriteString(`</Row>`)
}

func writeLabelledStringRow(b *strings.Builder, label, value string) {
	b.WriteString(`<Row>`)
	writeCell(b, "String", label)
	writeCell(b, "String", value)
	b.WriteString(`</Row>`)
}

func writeNumberRow(b *strings.Builder, label, value string) {
	b.WriteString(`<Row>`)
	writeCell(b, "String", label)
	writeCell(b, "Number", value)
	b.WriteString(`</Row>`)
}

func writeBlankRow(b *strings.Builder) {
	b.WriteString(`<Row><Cell></Cell></Row>`)
}

func xmlEscape(b *strings.Builder, value string) {
	_ = xml.EscapeText(b, []byte(value))
}
