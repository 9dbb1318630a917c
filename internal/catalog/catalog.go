// Package catalog holds the fixed in-memory catalogs the service
// serves from: recommendation items keyed by category, the trending
// list, and the model registry. Accessors return fresh copies so
// callers can never mutate the fixtures.
package catalog

import (
	"github.com/nineylabs/smart-server/internal/domain"
)

type Catalog struct{}

func New() *Catalog {
	return &Catalog{}
}

var recommendationsByCategory = map[domain.Category][]domain.RecommendationItem{
	domain.CategoryFood: {
		{ID: "1", Name: "Korean BBQ", Category: domain.CategoryFood, Score: 0.95, Description: "Delicious grilled meat with vegetables"},
		{ID: "2", Name: "Sushi", Category: domain.CategoryFood, Score: 0.88, Description: "Fresh Japanese cuisine"},
		{ID: "3", Name: "Pizza", Category: domain.CategoryFood, Score: 0.82, Description: "Classic Italian comfort food"},
	},
	domain.CategoryPlace: {
		{ID: "4", Name: "Central Park", Category: domain.CategoryPlace, Score: 0.92, Description: "Beautiful urban park"},
		{ID: "5", Name: "Museum of Art", Category: domain.CategoryPlace, Score: 0.87, Description: "World-class art collection"},
	},
	domain.CategoryActivity: {
		{ID: "6", Name: "Hiking", Category: domain.CategoryActivity, Score: 0.90, Description: "Outdoor adventure in nature"},
		{ID: "7", Name: "Movie Night", Category: domain.CategoryActivity, Score: 0.85, Description: "Relaxing entertainment at home"},
	},
}

var trendingItems = []domain.TrendingItem{
	{ID: "t1", Name: "Trendy Cafe", Category: domain.CategoryFood, TrendScore: 98, Popularity: "rising"},
	{ID: "t2", Name: "New Art Gallery", Category: domain.CategoryPlace, TrendScore: 95, Popularity: "hot"},
	{ID: "t3", Name: "Escape Room", Category: domain.CategoryActivity, TrendScore: 92, Popularity: "rising"},
}

var modelRegistry = map[domain.ModelName]domain.ModelInfo{
	domain.ModelDefault: {
		Name:    domain.ModelDefault,
		Version: "1.0.0",
		Type:    "classification",
		Status:  "ready",
		Metrics: map[string]float64{"accuracy": 0.95, "precision": 0.94, "recall": 0.96},
	},
	domain.ModelRecommendation: {
		Name:    domain.ModelRecommendation,
		Version: "1.0.0",
		Type:    "recommendation",
		Status:  "ready",
		Metrics: map[string]float64{"map": 0.85, "ndcg": 0.88},
	},
}

// Recommendations returns the catalog for cat. Categories without a
// catalog (entertainment, shopping) and unknown categories both yield
// an empty slice.
func (c *Catalog) Recommendations(cat domain.Category) []domain.RecommendationItem {
	items := recommendationsByCategory[cat]
	out := make([]domain.RecommendationItem, len(items))
	copy(out, items)
	return out
}

// Categories returns the known category names.
func (c *Catalog) Categories() []domain.Category {
	return domain.Categories()
}

// Trending returns the trending list.
func (c *Catalog) Trending() []domain.TrendingItem {
	out := make([]domain.TrendingItem, len(trendingItems))
	copy(out, trendingItems)
	return out
}

// Models returns every registry entry in a stable order.
func (c *Catalog) Models() []domain.ModelInfo {
	names := []domain.ModelName{domain.ModelDefault, domain.ModelRecommendation}
	out := make([]domain.ModelInfo, 0, len(names))
	for _, n := range names {
		out = append(out, modelRegistry[n])
	}
	return out
}

// Model looks up a registry entry by raw name.
func (c *Catalog) Model(name string) (domain.ModelInfo, error) {
	info, ok := modelRegistry[domain.ModelName(name)]
	if !ok {
		return domain.ModelInfo{}, domain.ErrModelNotFound
	}
	return info, nil
}
