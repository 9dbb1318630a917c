// Package model wraps the prediction backend. The current backend is a
// placeholder: it emits one constant result per input record and a
// constant confidence score, but the elapsed-time measurement around
// the computation is real so the response contract already matches a
// future non-placeholder implementation.
package model

import (
	"time"
)

const (
	placeholderResult     = "placeholder"
	placeholderConfidence = 0.95
)

type Client struct{}

func NewClient() *Client {
	return &Client{}
}

// Prediction is a single output record.
type Prediction struct {
	Result string `json:"result"`
}

// PredictInput carries the ordered feature records plus the model
// selection fields echoed back in the output.
type PredictInput struct {
	Data                []map[string]any
	ModelName           string
	ConfidenceThreshold float64
}

// PredictOutput preserves input order and count: one prediction and
// one confidence score per input record.
type PredictOutput struct {
	Predictions      []Prediction
	ModelName        string
	ConfidenceScores []float64
	ElapsedMs        float64
}

// Predict runs the placeholder computation over every input record.
func (c *Client) Predict(in PredictInput) PredictOutput {
	start := time.Now()

	predictions := make([]Prediction, len(in.Data))
	scores := make([]float64, len(in.Data))
	for i := range in.Data {
		predictions[i] = Prediction{Result: placeholderResult}
		scores[i] = placeholderConfidence
	}

	return PredictOutput{
		Predictions:      predictions,
		ModelName:        in.ModelName,
		ConfidenceScores: scores,
		ElapsedMs:        time.Since(start).Seconds() * 1000,
	}
}
