package enums

// StockSeverity classifies how urgently a product needs restocking.
type StockSeverity string

const (
	StockSeverityCritical StockSeverity = "Critical"
	StockSeverityLow      StockSeverity = "Low"
)

// String implements fmt.Stringer.
func (s StockSeverity) String() string {
	return string(s)
}
