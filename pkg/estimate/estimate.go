// Package estimate computes the timing figures for a classification call:
// wall-clock duration and the speedup over an assumed manual conversion.
package estimate

import (
	"math"
	"strings"
	"time"

	"github.com/convert2ansible/iac-ai/pkg/model"
)

// manualEstimates maps a tool identity to the baseline milliseconds a human
// would need for the equivalent manual conversion.
var manualEstimates = map[string]float64{
	"terraform":      5 * 60 * 1000,
	"cloudformation": 5 * 60 * 1000,
	"chef":           7 * 60 * 1000,
	"salt":           7 * 60 * 1000,
	"puppet":         6 * 60 * 1000,
	"ansible":        4 * 60 * 1000,
	"bash":           3 * 60 * 1000,
	"powershell":     4 * 60 * 1000,
	"docker":         4 * 60 * 1000,
	"kubernetes":     6 * 60 * 1000,
	"helm":           5 * 60 * 1000,
	"vagrant":        4 * 60 * 1000,
	"packer":         5 * 60 * 1000,
	"unknown":        5 * 60 * 1000,
}

// ManualEstimateMS returns the manual-effort baseline for a classification,
// falling back to the "unknown" baseline for unrecognized tools.
func ManualEstimateMS(classification string) float64 {
	if ms, ok := manualEstimates[strings.ToLower(classification)]; ok {
		return ms
	}
	return manualEstimates["unknown"]
}

// Compute builds the metrics for one call: duration in milliseconds and the
// manual/actual speedup ratio, both rounded to two decimal places. Speedup
// is nil when the measured duration is zero.
func Compute(classification string, duration time.Duration) model.Metrics {
	durationMS := round2(float64(duration) / float64(time.Millisecond))
	estimateMS := ManualEstimateMS(classification)

	m := model.Metrics{
		DurationMS:       durationMS,
		ManualEstimateMS: estimateMS,
	}
	if durationMS > 0 {
		speedup := round2(estimateMS / durationMS)
		m.Speedup = &speedup
	}
	return m
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
