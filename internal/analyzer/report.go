package analyzer

import (
	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/domain"
)

// Report 提取某个工号在对比表中的第一条记录并给出改进方向。
// 找不到工号时返回 false，这不是错误。
func Report(workerID string, comparison []domain.ComparisonRecord) (*domain.WorkerReport, bool) {
	for _, row := range comparison {
		if row.ID != workerID {
			continue
		}

		report := &domain.WorkerReport{
			ID:               row.ID,
			CurrentZone:      row.CurrentZone,
			PreviousZone:     row.LastZone,
			RateChange:       row.RateChange,
			IdleChange:       row.IdleChange,
			ImprovementAreas: []string{},
		}
		if row.RateChange < 0 {
			report.ImprovementAreas = append(report.ImprovementAreas, "rate")
		}
		if row.IdleChange > 0 {
			report.ImprovementAreas = append(report.ImprovementAreas, "idle_time")
		}
		return report, true
	}

	return nil, false
}
