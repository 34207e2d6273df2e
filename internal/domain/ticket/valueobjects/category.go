package valueobjects

import "fmt"

type Category string

const (
	CategoryPayment        Category = "payment"
	CategoryMaintenance    Category = "maintenance"
	CategoryInquiry        Category = "inquiry"
	CategoryNewFeature     Category = "new_feature"
	CategoryAdministrative Category = "administrative"
)

var validCategories = map[Category]bool{
	CategoryPayment:        true,
	CategoryMaintenance:    true,
	CategoryInquiry:        true,
	CategoryNewFeature:     true,
	CategoryAdministrative: true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}

// Categories returns all valid categories in presentation order.
func Categories() []Category {
	return []Category{
		CategoryPayment,
		CategoryMaintenance,
		CategoryInquiry,
		CategoryNewFeature,
		CategoryAdministrative,
	}
}
