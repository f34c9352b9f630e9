package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/domain"
)

func TestReport_Found(t *testing.T) {
	comparison := []domain.ComparisonRecord{
		comparisonRow("A001", -3, 2, domain.Zone2, domain.Zone3),
		comparisonRow("A002", 5, -1, domain.Zone4, domain.Zone2),
	}

	report, found := Report("A001", comparison)
	require.True(t, found)

	assert.Equal(t, "A001", report.ID)
	assert.Equal(t, domain.Zone3, report.CurrentZone)
	assert.Equal(t, domain.Zone2, report.PreviousZone)
	assert.Equal(t, []string{"rate", "idle_time"}, report.ImprovementAreas)
}

func TestReport_NoImprovementAreas(t *testing.T) {
	comparison := []domain.ComparisonRecord{
		comparisonRow("A002", 5, -1, domain.Zone4, domain.Zone2),
	}

	report, found := Report("A002", comparison)
	require.True(t, found)
	assert.Empty(t, report.ImprovementAreas)
}

func TestReport_AbsentWhenNotFound(t *testing.T) {
	comparison := []domain.ComparisonRecord{
		comparisonRow("A001", -3, 2, domain.Zone2, domain.Zone3),
	}

	report, found := Report("B999", comparison)
	assert.False(t, found)
	assert.Nil(t, report)
}

func TestMetrics(t *testing.T) {
	last := []domain.WorkerRecord{
		classified("A001", 40, 10, domain.Zone3),
		classified("A002", 60, 20, domain.Zone2),
	}
	current := []domain.WorkerRecord{
		classified("A001", 50, 8, domain.Zone4),
		classified("A002", 70, 12, domain.Zone2),
		classified("A003", 60, 10, domain.Zone2),
	}

	metrics, ok := Metrics(last, current)
	require.True(t, ok)

	assert.Equal(t, 3, metrics.WorkerCount)
	assert.Equal(t, 1, metrics.WorkerCountDelta)
	assert.InDelta(t, 60.0, metrics.AverageRate, 1e-9)
	assert.InDelta(t, 10.0, metrics.AverageRateDelta, 1e-9)
	assert.InDelta(t, 10.0, metrics.AverageIdle, 1e-9)
	assert.InDelta(t, -5.0, metrics.AverageIdleDelta, 1e-9)
	assert.InDelta(t, 60.0, metrics.MedianRate, 1e-9)
	assert.InDelta(t, 10.0, metrics.MedianRateDelta, 1e-9)
}

func TestMetrics_AbsentWithoutCurrent(t *testing.T) {
	_, ok := Metrics([]domain.WorkerRecord{classified("A001", 40, 10, domain.Zone3)}, nil)
	assert.False(t, ok)
}

func TestFilterByZone(t *testing.T) {
	records := []domain.WorkerRecord{
		classified("A001", 40, 10, domain.Zone3),
		classified("A002", 60, 20, domain.Zone2),
	}

	assert.Len(t, FilterByZone(records, domain.ZoneUnclassified), 2)

	filtered := FilterByZone(records, domain.Zone2)
	require.Len(t, filtered, 1)
	assert.Equal(t, "A002", filtered[0].ID)
}

func TestFilterComparisonByZone(t *testing.T) {
	comparison := []domain.ComparisonRecord{
		comparisonRow("A001", 1, 1, domain.Zone2, domain.Zone3),
		comparisonRow("A002", 1, 1, domain.Zone3, domain.Zone2),
	}

	filtered := FilterComparisonByZone(comparison, domain.Zone2)
	require.Len(t, filtered, 1)
	assert.Equal(t, "A002", filtered[0].ID)
}
