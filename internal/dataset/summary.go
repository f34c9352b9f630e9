package dataset

import (
	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/domain"
	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/utils"
)

// Summarize 计算单期快照的汇总统计，空表返回 false
func Summarize(records []domain.WorkerRecord) (*domain.SnapshotSummary, bool) {
	if len(records) == 0 {
		return nil, false
	}

	rates := make([]float64, len(records))
	idles := make([]float64, len(records))
	distribution := make(map[domain.Zone]int)
	for i, record := range records {
		rates[i] = record.Rate
		idles[i] = record.IdleTimePct
		if record.Zone != domain.ZoneUnclassified {
			distribution[record.Zone]++
		}
	}

	return &domain.SnapshotSummary{
		Total:            len(records),
		AverageRate:      utils.Mean(rates),
		MedianRate:       utils.Median(rates),
		AverageIdle:      utils.Mean(idles),
		MedianIdle:       utils.Median(idles),
		ZoneDistribution: distribution,
	}, true
}
