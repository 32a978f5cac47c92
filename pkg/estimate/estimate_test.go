package estimate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualEstimateLookup(t *testing.T) {
	assert.Equal(t, 420000.0, ManualEstimateMS("chef"))
	assert.Equal(t, 420000.0, ManualEstimateMS("Chef"))
	assert.Equal(t, 300000.0, ManualEstimateMS("terraform"))
	assert.Equal(t, 300000.0, ManualEstimateMS("cobol"))
	assert.Equal(t, 300000.0, ManualEstimateMS(""))
}

func TestComputeSpeedup(t *testing.T) {
	// 7 minute chef baseline over a 1.5 second run.
	m := Compute("chef", 1500*time.Millisecond)

	assert.Equal(t, 1500.0, m.DurationMS)
	assert.Equal(t, 420000.0, m.ManualEstimateMS)
	require.NotNil(t, m.Speedup)
	assert.Equal(t, 280.0, *m.Speedup)
}

func TestComputeZeroDuration(t *testing.T) {
	m := Compute("chef", 0)

	assert.Equal(t, 0.0, m.DurationMS)
	assert.Nil(t, m.Speedup)
}

func TestComputeRounding(t *testing.T) {
	m := Compute("bash", 333*time.Microsecond)

	assert.Equal(t, 0.33, m.DurationMS)
	require.NotNil(t, m.Speedup)
	assert.Equal(t, 545454.55, *m.Speedup)
}
