package domain

// ModelName identifies an entry in the fixed model registry.
type ModelName string

const (
	ModelDefault        ModelName = "default"
	ModelRecommendation ModelName = "recommendation"
)

func (m ModelName) String() string {
	return string(m)
}

type ModelInfo struct {
	Name    ModelName          `json:"name"`
	Version string             `json:"version"`
	Type    string             `json:"type"`
	Status  string             `json:"status"`
	Metrics map[string]float64 `json:"metrics,omitempty"`
}
