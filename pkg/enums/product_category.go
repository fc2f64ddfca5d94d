package enums

// ProductCategory names the storefront collections a product can belong to.
type ProductCategory string

const (
	ProductCategoryMens   ProductCategory = "mens"
	ProductCategoryWomens ProductCategory = "womens"
	ProductCategoryKids   ProductCategory = "kids"
	ProductCategoryFancy  ProductCategory = "fancy"
	ProductCategoryNew    ProductCategory = "new"
)

// CategoryOther is the default bucket for items whose category is absent
// or unrecognised; revenue breakdowns must never drop such items.
const CategoryOther = "Other"

var validProductCategories = []ProductCategory{
	ProductCategoryMens,
	ProductCategoryWomens,
	ProductCategoryKids,
	ProductCategoryFancy,
	ProductCategoryNew,
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ProductCategory.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}
