package analyzer

import (
	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/domain"
)

// Transitions 交叉统计两期之间的分区转移。
// 单元格只对两期都出现的工号计数；行合计覆盖上周全部记录，
// 列合计覆盖本周全部记录，总计是两期工号的并集大小。
// 行列只包含实际观察到的分区。任一输入为空或未分区时返回 false。
func Transitions(last, current []domain.WorkerRecord) (*domain.TransitionMatrix, bool) {
	if len(last) == 0 || len(current) == 0 {
		return nil, false
	}
	if checkMergeable(last, "上周") != nil || checkMergeable(current, "本周") != nil {
		return nil, false
	}

	currentByID := make(map[string]domain.WorkerRecord, len(current))
	for _, record := range current {
		currentByID[record.ID] = record
	}

	matrix := &domain.TransitionMatrix{
		Cells:        make(map[domain.Zone]map[domain.Zone]int),
		RowTotals:    make(map[domain.Zone]int),
		ColumnTotals: make(map[domain.Zone]int),
	}

	union := make(map[string]bool, len(last)+len(current))
	for _, lastRecord := range last {
		matrix.RowTotals[lastRecord.Zone]++
		union[lastRecord.ID] = true

		currentRecord, exists := currentByID[lastRecord.ID]
		if !exists {
			continue
		}
		if matrix.Cells[lastRecord.Zone] == nil {
			matrix.Cells[lastRecord.Zone] = make(map[domain.Zone]int)
		}
		matrix.Cells[lastRecord.Zone][currentRecord.Zone]++
	}
	for _, record := range current {
		matrix.ColumnTotals[record.Zone]++
		union[record.ID] = true
	}
	matrix.GrandTotal = len(union)

	for _, zone := range domain.ZoneOrder {
		if matrix.RowTotals[zone] > 0 {
			matrix.LastZones = append(matrix.LastZones, zone)
		}
		if matrix.ColumnTotals[zone] > 0 {
			matrix.CurrentZones = append(matrix.CurrentZones, zone)
		}
	}

	return matrix, true
}
