package analyzer

import (
	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/domain"
)

// Merge 以工号为键对两期记录做内连接，只有两期都出现的工号才会产生输出行。
// 差值是精确的浮点相减，不做任何舍入；舍入是展示层的事情。
func Merge(last, current []domain.WorkerRecord) ([]domain.ComparisonRecord, error) {
	if err := checkMergeable(last, "上周"); err != nil {
		return nil, err
	}
	if err := checkMergeable(current, "本周"); err != nil {
		return nil, err
	}

	currentByID := make(map[string]domain.WorkerRecord, len(current))
	for _, record := range current {
		currentByID[record.ID] = record
	}

	// 输出顺序跟随上周表的行序
	comparison := []domain.ComparisonRecord{}
	for _, lastRecord := range last {
		currentRecord, exists := currentByID[lastRecord.ID]
		if !exists {
			continue
		}

		comparison = append(comparison, domain.ComparisonRecord{
			ID:          lastRecord.ID,
			LastRate:    lastRecord.Rate,
			CurrentRate: currentRecord.Rate,
			RateChange:  currentRecord.Rate - lastRecord.Rate,
			LastIdle:    lastRecord.IdleTimePct,
			CurrentIdle: currentRecord.IdleTimePct,
			IdleChange:  currentRecord.IdleTimePct - lastRecord.IdleTimePct,
			LastZone:    lastRecord.Zone,
			CurrentZone: currentRecord.Zone,
			ZoneChanged: lastRecord.Zone != currentRecord.Zone,
		})
	}

	return comparison, nil
}

func checkMergeable(records []domain.WorkerRecord, label string) error {
	for _, record := range records {
		if record.ID == "" {
			return &domain.MergeError{Reason: label + "数据存在缺少工号的记录"}
		}
		if record.Zone == domain.ZoneUnclassified {
			return &domain.MergeError{Reason: label + "数据尚未完成分区"}
		}
	}
	return nil
}
