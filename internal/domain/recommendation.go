package domain

// Category identifies one of the fixed recommendation catalogs.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryPlace         Category = "place"
	CategoryActivity      Category = "activity"
	CategoryEntertainment Category = "entertainment"
	CategoryShopping      Category = "shopping"
)

// Categories returns every known category in presentation order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryPlace,
		CategoryActivity,
		CategoryEntertainment,
		CategoryShopping,
	}
}

// ParseCategory maps a raw string onto a known category. The second
// return is false for strings outside the known set; callers treat
// those as categories with an empty catalog, not as errors.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryFood, CategoryPlace, CategoryActivity, CategoryEntertainment, CategoryShopping:
		return Category(s), true
	}
	return "", false
}

func (c Category) String() string {
	return string(c)
}

type RecommendationItem struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Category    Category       `json:"category"`
	Score       float64        `json:"score"`
	Description string         `json:"description,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

type TrendingItem struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Category   Category `json:"category"`
	TrendScore int      `json:"trend_score"`
	Popularity string   `json:"popularity"`
}

// RecommendationResult is the service-layer outcome before the handler
// shapes it into a response body. TotalCount is the untruncated
// candidate count for the requested category.
type RecommendationResult struct {
	Items      []RecommendationItem
	TotalCount int
}
