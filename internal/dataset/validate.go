package dataset

import (
	"io"
	"log/slog"

	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/domain"
)

type Result struct {
	Records           []domain.WorkerRecord
	DroppedNullRows   int
	DroppedDuplicates int
}

// Validate 对解析后的原始行做三步校验：
//  1. 逐行剔除空值行（非致命，只记警告）
//  2. 对剩余数据做整表范围检查，发现越界值则整表作废
//  3. 重复工号只保留第一次出现的行
func Validate(rows []rawRow, period domain.Period) (*Result, error) {
	kept := make([]rawRow, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		if row.rate == nil || row.idle == nil || row.id == "" {
			dropped++
			continue
		}
		kept = append(kept, row)
	}
	if dropped > 0 {
		slog.Warn("数据中存在空值行，已剔除", "period", period, "dropped", dropped)
	}

	// 范围检查是全表一票否决的，和空值的逐行策略不同
	for _, row := range kept {
		switch {
		case *row.rate < 0:
			return nil, &domain.RangeError{Period: period, Row: row.line, Column: ColumnRate, Value: *row.rate}
		case *row.idle < 0 || *row.idle > 100:
			return nil, &domain.RangeError{Period: period, Row: row.line, Column: ColumnIdle, Value: *row.idle}
		}
	}

	records := make([]domain.WorkerRecord, 0, len(kept))
	seen := make(map[string]bool, len(kept))
	duplicates := 0
	for _, row := range kept {
		if seen[row.id] {
			duplicates++
			continue
		}
		seen[row.id] = true
		records = append(records, domain.WorkerRecord{
			ID:          row.id,
			Rate:        *row.rate,
			IdleTimePct: *row.idle,
		})
	}
	if duplicates > 0 {
		slog.Warn("数据中存在重复工号，只保留首次出现的行", "period", period, "duplicates", duplicates)
	}

	return &Result{
		Records:           records,
		DroppedNullRows:   dropped,
		DroppedDuplicates: duplicates,
	}, nil
}

func Load(r io.Reader, period domain.Period) (*Result, error) {
	rows, err := Parse(r, period)
	if err != nil {
		return nil, err
	}
	return Validate(rows, period)
}
