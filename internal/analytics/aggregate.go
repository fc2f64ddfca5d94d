package analytics

import (
	"sort"
	"time"

	"github.com/vogant/storefront-backend/pkg/enums"
)

// DefaultGSTRatePercent matches the deployed tax policy: GST is a flat
// percentage of revenue, not a per-item computation.
const DefaultGSTRatePercent = 5.0

// revenueByDayLimit caps the chart series at the most recent days.
const revenueByDayLimit = 30

// topProductsLimit caps the ranked product table.
const topProductsLimit = 10

// DayRevenue is one calendar-day bucket of the revenue series.
type DayRevenue struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// TopProduct is one row of the ranked product table. QuantitySold counts
// line appearances across windowed orders; Revenue and Category are
// resolved by product name, matching the dashboard this replaces.
type TopProduct struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// MetricsSnapshot is the aggregation output. It is a value type produced
// fresh on every call; it carries no reference back to source records.
type MetricsSnapshot struct {
	Revenue                   float64                       `json:"revenue"`
	GST                       float64                       `json:"gst"`
	ItemsSold                 int                           `json:"items_sold"`
	TotalOrders               int                           `json:"total_orders"`
	AvgOrderValue             float64                       `json:"avg_order_value"`
	TotalCustomers            int                           `json:"total_customers"`
	NewCustomers              int                           `json:"new_customers"`
	ReturningCustomers        int                           `json:"returning_customers"`
	RepeatRatePercent         float64                       `json:"repeat_rate_percent"`
	CustomerLTV               float64                       `json:"customer_ltv"`
	PaymentMethodCounts       map[enums.PaymentMethod]int   `json:"payment_method_counts"`
	PaymentStatusCounts       map[enums.PaymentStatus]int   `json:"payment_status_counts"`
	PaymentSuccessRatePercent float64                       `json:"payment_success_rate_percent"`
	OrderStatusCounts         map[enums.OrderStatus]int     `json:"order_status_counts"`
	CategoryRevenue           map[string]float64            `json:"category_revenue"`
	RevenueByDay              []DayRevenue                  `json:"revenue_by_day"`
	TopProducts               []TopProduct                  `json:"top_products"`
}

type customerTally struct {
	orders int
	spend  float64
}

type productTally struct {
	name      string
	sightings int
	firstSeen int
}

// Aggregate computes a MetricsSnapshot in a single pass over the windowed
// orders. Customers contribute only the total-customer count; revenue math
// joins through the customerId carried on orders. Empty inputs produce an
// all-zero snapshot. A gstRatePercent of zero or below falls back to the default rate.
func Aggregate(orders []OrderRecord, customers []CustomerRecord, gstRatePercent float64, now time.Time) MetricsSnapshot {
	if gstRatePercent <= 0 {
		gstRatePercent = DefaultGSTRatePercent
	}

	snapshot := MetricsSnapshot{
		PaymentMethodCounts: map[enums.PaymentMethod]int{
			enums.PaymentMethodCOD:    0,
			enums.PaymentMethodOnline: 0,
		},
		PaymentStatusCounts: map[enums.PaymentStatus]int{
			enums.PaymentStatusPending: 0,
			enums.PaymentStatusPaid:    0,
			enums.PaymentStatusFailed:  0,
		},
		OrderStatusCounts: make(map[enums.OrderStatus]int, len(enums.AllOrderStatuses())),
		CategoryRevenue:   make(map[string]float64),
		RevenueByDay:      []DayRevenue{},
		TopProducts:       []TopProduct{},
	}
	for _, status := range enums.AllOrderStatuses() {
		snapshot.OrderStatusCounts[status] = 0
	}

	customerTallies := make(map[string]*customerTally)
	productTallies := make(map[string]*productTally)
	revenueByDay := make(map[string]float64)

	for _, order := range orders {
		total := sanitizeAmount(order.Total)
		snapshot.Revenue += total
		snapshot.GST += total * gstRatePercent / 100

		for _, item := range order.Items {
			snapshot.ItemsSold += sanitizeQuantity(item.Quantity)

			tally := productTallies[item.Name]
			if tally == nil {
				tally = &productTally{name: item.Name, firstSeen: len(productTallies)}
				productTallies[item.Name] = tally
			}
			tally.sightings++

			category := item.Category
			if category == "" {
				category = enums.CategoryOther
			}
			snapshot.CategoryRevenue[category] += sanitizeAmount(item.Price) * float64(sanitizeQuantity(item.Quantity))
		}

		status := order.OrderStatus
		if !status.IsValid() {
			status = enums.DefaultOrderStatus
		}
		snapshot.OrderStatusCounts[status]++

		snapshot.PaymentMethodCounts[enums.NormalizePaymentMethod(order.PaymentMethod)]++

		paymentStatus := order.PaymentStatus
		if !paymentStatus.IsValid() {
			paymentStatus = enums.DefaultPaymentStatus
		}
		snapshot.PaymentStatusCounts[paymentStatus]++

		if order.CustomerID != "" {
			tally := customerTallies[order.CustomerID]
			if tally == nil {
				tally = &customerTally{}
				customerTallies[order.CustomerID] = tally
			}
			tally.orders++
			tally.spend += total
		}

		day := order.EffectiveDate(now).UTC().Format("2006-01-02")
		revenueByDay[day] += total
	}

	snapshot.TotalOrders = len(orders)
	if snapshot.TotalOrders > 0 {
		snapshot.AvgOrderValue = snapshot.Revenue / float64(snapshot.TotalOrders)
	}
	snapshot.TotalCustomers = len(customers)

	var totalSpend float64
	for _, tally := range customerTallies {
		if tally.orders == 1 {
			snapshot.NewCustomers++
		} else if tally.orders > 1 {
			snapshot.ReturningCustomers++
		}
		totalSpend += tally.spend
	}
	if len(customerTallies) > 0 {
		snapshot.RepeatRatePercent = float64(snapshot.ReturningCustomers) / float64(len(customerTallies)) * 100
		snapshot.CustomerLTV = totalSpend / float64(len(customerTallies))
	}

	paid := snapshot.PaymentStatusCounts[enums.PaymentStatusPaid]
	totalPayments := paid + snapshot.PaymentStatusCounts[enums.PaymentStatusPending] + snapshot.PaymentStatusCounts[enums.PaymentStatusFailed]
	if totalPayments > 0 {
		snapshot.PaymentSuccessRatePercent = float64(paid) / float64(totalPayments) * 100
	}

	snapshot.RevenueByDay = buildRevenueByDay(revenueByDay)
	snapshot.TopProducts = buildTopProducts(productTallies, orders)

	return snapshot
}

// buildRevenueByDay keeps the most recent days of the series, sorted
// ascending so chart consumers can plot it directly.
func buildRevenueByDay(buckets map[string]float64) []DayRevenue {
	days := make([]string, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Strings(days)
	if len(days) > revenueByDayLimit {
		days = days[len(days)-revenueByDayLimit:]
	}

	out := make([]DayRevenue, 0, len(days))
	for _, day := range days {
		out = append(out, DayRevenue{Date: day, Revenue: buckets[day]})
	}
	return out
}

// buildTopProducts ranks products by sighting count descending with
// first-encountered order breaking ties, then resolves revenue and
// category for the surviving rows by scanning order lines for the name.
func buildTopProducts(tallies map[string]*productTally, orders []OrderRecord) []TopProduct {
	ranked := make([]*productTally, 0, len(tallies))
	for _, tally := range tallies {
		ranked = append(ranked, tally)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].sightings != ranked[j].sightings {
			return ranked[i].sightings > ranked[j].sightings
		}
		return ranked[i].firstSeen < ranked[j].firstSeen
	})
	if len(ranked) > topProductsLimit {
		ranked = ranked[:topProductsLimit]
	}

	revenueByName := make(map[string]float64, len(tallies))
	for _, order := range orders {
		for _, item := range order.Items {
			revenueByName[item.Name] += sanitizeAmount(item.Price) * float64(sanitizeQuantity(item.Quantity))
		}
	}

	out := make([]TopProduct, 0, len(ranked))
	for _, tally := range ranked {
		out = append(out, TopProduct{
			Name:         tally.name,
			Category:     resolveProductCategory(tally.name, orders),
			QuantitySold: tally.sightings,
			Revenue:      revenueByName[tally.name],
		})
	}
	return out
}

// resolveProductCategory finds the first order line carrying the product
// name with a non-empty category. Attribution is name-based, matching the
// observed system, so distinct products sharing a name conflate.
func resolveProductCategory(name string, orders []OrderRecord) string {
	for _, order := range orders {
		for _, item := range order.Items {
			if item.Name == name && item.Category != "" {
				return item.Category
			}
		}
	}
	return enums.CategoryOther
}
