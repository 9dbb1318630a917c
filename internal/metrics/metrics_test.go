package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordRequest(t *testing.T) {
	before := testutil.ToFloat64(RequestsTotal.WithLabelValues("GET", "/health", "200"))

	RecordRequest("GET", "/health", "200", 5*time.Millisecond)

	after := testutil.ToFloat64(RequestsTotal.WithLabelValues("GET", "/health", "200"))
	if after != before+1 {
		t.Errorf("expected counter to increase by 1, got %v -> %v", before, after)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(ActiveRequests)

	TrackActiveRequest(1)
	if got := testutil.ToFloat64(ActiveRequests); got != before+1 {
		t.Errorf("expected gauge %v after increment, got %v", before+1, got)
	}

	TrackActiveRequest(-1)
	if got := testutil.ToFloat64(ActiveRequests); got != before {
		t.Errorf("expected gauge %v after decrement, got %v", before, got)
	}
}

func TestRecordPredictions(t *testing.T) {
	before := testutil.ToFloat64(PredictionsTotal.WithLabelValues("default"))

	RecordPredictions("default", 3)

	after := testutil.ToFloat64(PredictionsTotal.WithLabelValues("default"))
	if after != before+3 {
		t.Errorf("expected counter to increase by 3, got %v -> %v", before, after)
	}
}
