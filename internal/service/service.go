package service

import (
	"github.com/nineylabs/smart-server/internal/catalog"
	"github.com/nineylabs/smart-server/internal/domain"
	"github.com/nineylabs/smart-server/internal/model"
)

type Service struct {
	catalog     *catalog.Catalog
	modelClient *model.Client
}

func NewService(catalog *catalog.Catalog, modelClient *model.Client) *Service {
	return &Service{
		catalog:     catalog,
		modelClient: modelClient,
	}
}

// GetRecommendations looks up the catalog for the raw category string
// and truncates to limit. Unknown categories yield an empty result,
// not an error. TotalCount always reflects the pre-truncation size.
func (s *Service) GetRecommendations(category string, limit int) *domain.RecommendationResult {
	cat, known := domain.ParseCategory(category)
	if !known {
		return &domain.RecommendationResult{Items: []domain.RecommendationItem{}}
	}

	items := s.catalog.Recommendations(cat)
	total := len(items)

	if limit < 0 {
		limit = 0
	}
	if limit < len(items) {
		items = items[:limit]
	}

	return &domain.RecommendationResult{
		Items:      items,
		TotalCount: total,
	}
}

// Categories returns the known category names.
func (s *Service) Categories() []domain.Category {
	return s.catalog.Categories()
}

// GetTrending filters the trending list by exact category match when
// category is non-empty, then truncates to limit.
func (s *Service) GetTrending(category string, limit int) []domain.TrendingItem {
	items := s.catalog.Trending()

	if category != "" {
		filtered := items[:0]
		for _, item := range items {
			if item.Category == domain.Category(category) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	if limit >= 0 && limit < len(items) {
		items = items[:limit]
	}

	return items
}

// Predict runs the model client over the request input.
func (s *Service) Predict(in model.PredictInput) model.PredictOutput {
	return s.modelClient.Predict(in)
}

// ListModels returns the model registry entries.
func (s *Service) ListModels() []domain.ModelInfo {
	return s.catalog.Models()
}

// GetModel looks up a single registry entry by name.
func (s *Service) GetModel(name string) (domain.ModelInfo, error) {
	return s.catalog.Model(name)
}
