package analyzer

import (
	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/domain"
	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/utils"
)

// FilterByZone 返回属于指定分区的记录，传入空分区时原样返回
func FilterByZone(records []domain.WorkerRecord, zone domain.Zone) []domain.WorkerRecord {
	if zone == domain.ZoneUnclassified {
		return records
	}

	filtered := []domain.WorkerRecord{}
	for _, record := range records {
		if record.Zone == zone {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// FilterComparisonByZone 按本周分区过滤对比表
func FilterComparisonByZone(comparison []domain.ComparisonRecord, zone domain.Zone) []domain.ComparisonRecord {
	if zone == domain.ZoneUnclassified {
		return comparison
	}

	filtered := []domain.ComparisonRecord{}
	for _, row := range comparison {
		if row.CurrentZone == zone {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// Metrics 计算本周相对上周的对比指标（人数、均值、中位数及其变化量）。
// 本周为空时返回 false。
func Metrics(last, current []domain.WorkerRecord) (*domain.ComparativeMetrics, bool) {
	if len(current) == 0 {
		return nil, false
	}

	currentRates := rates(current)
	currentIdles := idles(current)
	lastRates := rates(last)
	lastIdles := idles(last)

	return &domain.ComparativeMetrics{
		WorkerCount:      len(current),
		WorkerCountDelta: len(current) - len(last),
		AverageRate:      utils.Mean(currentRates),
		AverageRateDelta: utils.Mean(currentRates) - utils.Mean(lastRates),
		AverageIdle:      utils.Mean(currentIdles),
		AverageIdleDelta: utils.Mean(currentIdles) - utils.Mean(lastIdles),
		MedianRate:       utils.Median(currentRates),
		MedianRateDelta:  utils.Median(currentRates) - utils.Median(lastRates),
	}, true
}

func rates(records []domain.WorkerRecord) []float64 {
	vals := make([]float64, len(records))
	for i, record := range records {
		vals[i] = record.Rate
	}
	return vals
}

func idles(records []domain.WorkerRecord) []float64 {
	vals := make([]float64, len(records))
	for i, record := range records {
		vals[i] = record.IdleTimePct
	}
	return vals
}
