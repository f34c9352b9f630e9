package export

import (
	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/domain"
	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/utils"
	"github.com/xuri/excelize/v2"
)

const (
	detailSheet  = "Detailed Comparison"
	summarySheet = "Summary"
)

// BuildWorkbook 生成两张工作表的 xlsx 报表：
// 第一张是逐人对比明细（数值展示为两位小数），第二张是汇总指标
func BuildWorkbook(comparison []domain.ComparisonRecord) (*excelize.File, error) {
	if len(comparison) == 0 {
		return nil, ErrNoData
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", detailSheet); err != nil {
		return nil, err
	}

	header := []any{"ID", "Last_Rate", "Current_Rate", "Rate_Change", "Last_UIT", "Current_UIT", "UIT_Change", "Zone_Changed"}
	if err := f.SetSheetRow(detailSheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, row := range comparison {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []any{
			row.ID,
			utils.Round2(row.LastRate), utils.Round2(row.CurrentRate), utils.Round2(row.RateChange),
			utils.Round2(row.LastIdle), utils.Round2(row.CurrentIdle), utils.Round2(row.IdleChange),
			row.ZoneChanged,
		}
		if err := f.SetSheetRow(detailSheet, cell, &values); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(summarySheet, "A1", &[]any{"Metric", "Value"}); err != nil {
		return nil, err
	}

	for i, row := range summaryRows(comparison) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []any{row.metric, row.value}
		if err := f.SetSheetRow(summarySheet, cell, &values); err != nil {
			return nil, err
		}
	}

	return f, nil
}

type summaryRow struct {
	metric string
	value  any
}

func summaryRows(comparison []domain.ComparisonRecord) []summaryRow {
	rateImproved := 0
	idleImproved := 0
	overallImproved := 0
	zoneChanged := 0
	rateChanges := make([]float64, len(comparison))
	idleChanges := make([]float64, len(comparison))
	for i, row := range comparison {
		rateChanges[i] = row.RateChange
		idleChanges[i] = row.IdleChange
		if row.RateChange > 0 {
			rateImproved++
		}
		if row.IdleChange < 0 {
			idleImproved++
		}
		if row.RateChange > 0 && row.IdleChange < 0 {
			overallImproved++
		}
		if row.ZoneChanged {
			zoneChanged++
		}
	}

	return []summaryRow{
		{"Total Associates", len(comparison)},
		{"Associates with Improved Rate", rateImproved},
		{"Associates with Improved UIT", idleImproved},
		{"Overall Improvement", overallImproved},
		{"Average Rate Change", utils.Round2(utils.Mean(rateChanges))},
		{"Average UIT Change", utils.Round2(utils.Mean(idleChanges))},
		{"Associates that Changed Zone", zoneChanged},
	}
}
