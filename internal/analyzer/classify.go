package analyzer

import (
	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/domain"
)

// Classify 把一对 (rate, idle) 指标映射到四个分区之一。
// 边界规则：rate 等于参考值时落入 Low 分支，idle 等于参考值时视为 Low UIT。
func Classify(rate, idle float64, t domain.Thresholds) domain.Zone {
	switch {
	case rate > t.RateRef && idle > t.IdleRef:
		return domain.Zone1
	case rate > t.RateRef && idle <= t.IdleRef:
		return domain.Zone2
	case rate <= t.RateRef && idle > t.IdleRef:
		return domain.Zone3
	default:
		return domain.Zone4
	}
}

// ClassifySnapshot 按行应用分区规则，返回新的切片，不修改输入。
// 相同阈值下重复调用结果完全一致。
func ClassifySnapshot(records []domain.WorkerRecord, t domain.Thresholds) []domain.WorkerRecord {
	classified := make([]domain.WorkerRecord, len(records))
	for i, record := range records {
		record.Zone = Classify(record.Rate, record.IdleTimePct, t)
		classified[i] = record
	}
	return classified
}
